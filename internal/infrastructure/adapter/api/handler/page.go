package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// render writes an HTML page with the layout data every page needs:
// the page title, the logged-in identity and any queued flash messages
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title

	if session := middleware.CurrentSession(c); session != nil {
		data["Identity"] = session.Identity
		data["Flashes"] = session.PopFlashes()
	}

	c.HTML(status, name, data)
}

// flashAndRedirect queues a message and sends the browser to location
func flashAndRedirect(c *gin.Context, category entity.FlashCategory, message, location string) {
	if session := middleware.CurrentSession(c); session != nil {
		session.AddFlash(category, message)
	}
	c.Redirect(http.StatusFound, location)
}
