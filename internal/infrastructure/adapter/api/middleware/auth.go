package middleware

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountChecker reports whether a logged in user's account still exists
type AccountChecker interface {
	UserExists(ctx context.Context, userID uint64) (bool, error)
}

// RequireLogin redirects anonymous browsers to the login page.
// A non-empty flash is queued as an error message first.
func RequireLogin(flash string, accounts AccountChecker, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if authenticated(c, session, accounts, logger) {
			c.Next()
			return
		}

		if session != nil && flash != "" {
			session.AddFlash(entity.FlashError, flash)
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// RequireLoginJSON rejects anonymous API calls with 401
func RequireLoginJSON(accounts AccountChecker, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticated(c, CurrentSession(c), accounts, logger) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.PaymentErrorResponse{
			Success: false,
			Code:    domainerr.CodeNotAuthenticated,
			Error:   domainerr.Reason(domainerr.ErrNotAuthenticated, ""),
		})
	}
}

// authenticated logs the session out when its account has been removed.
// Lookup failures leave the session alone.
func authenticated(c *gin.Context, session *entity.Session, accounts AccountChecker, logger coreport.Logger) bool {
	if session == nil || !session.IsAuthenticated() {
		return false
	}

	exists, err := accounts.UserExists(c.Request.Context(), session.Identity.UserID)
	if err != nil {
		logger.Warn("Failed to verify account", map[string]any{
			"error":      err.Error(),
			"user_id":    session.Identity.UserID,
			"request_id": GetRequestID(c),
		})
		return true
	}
	if !exists {
		logger.Info("Logging out session of removed account", map[string]any{
			"user_id":    session.Identity.UserID,
			"request_id": GetRequestID(c),
		})
		session.Logout()
		return false
	}
	return true
}
