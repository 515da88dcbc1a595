package routes

import (
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const loginRequiredFlash = "Please log in first"

// Handlers groups the handlers mounted by SetupRoutes
type Handlers struct {
	Auth    *handler.AuthHandler
	Payment *handler.PaymentHandler
	API     *handler.APIHandler
	Health  *handler.HealthHandler

	// Accounts confirms logged in users still exist
	Accounts middleware.AccountChecker
}

// SetupRoutes configures all the routes of the gateway
func SetupRoutes(router *gin.Engine, h Handlers, logger coreport.Logger) {
	router.GET("/healthz", h.Health.Health)

	// Public pages
	router.GET("/", h.Auth.Index)
	router.GET("/signup", h.Auth.SignupPage)
	router.POST("/signup", h.Auth.Signup)
	router.GET("/login", h.Auth.LoginPage)
	router.POST("/login", h.Auth.Login)
	router.GET("/logout", h.Auth.Logout)

	// Payment pages
	payment := router.Group("", middleware.RequireLogin(loginRequiredFlash, h.Accounts, logger))
	{
		payment.GET("/payment", h.Payment.PaymentPage)
		payment.POST("/payment", h.Payment.SetAmount)
		payment.POST("/pay", h.Payment.Pay)
	}

	receipts := router.Group("/success", middleware.RequireLogin("", h.Accounts, logger))
	{
		receipts.GET("/:transaction_id", h.Payment.Success)
		receipts.GET("/:transaction_id/qr.png", h.Payment.ReceiptQR)
	}

	// JSON API
	api := router.Group("/api", middleware.RequireLoginJSON(h.Accounts, logger))
	{
		// POST /api/pay/:method
		api.POST("/pay/:method", h.API.Pay)

		// GET /api/receipts/:transaction_id
		api.GET("/receipts/:transaction_id", h.API.GetReceipt)
	}

	router.NoRoute(h.Auth.NotFound)
}

// SetupMiddlewares configures global middlewares
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	store persistence.SessionStore,
	codec middleware.CookieCodec,
	opts middleware.SessionOptions,
) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Sessions(store, codec, opts, logger))
}
