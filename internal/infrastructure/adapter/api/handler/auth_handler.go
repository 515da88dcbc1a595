package handler

import (
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the landing, signup, login and logout pages
type AuthHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Index handles GET /
func (h *AuthHandler) Index(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil && session.IsAuthenticated() {
		c.Redirect(http.StatusFound, "/payment")
		return
	}
	render(c, http.StatusOK, "index.html", "Home", nil)
}

// SignupPage handles GET /signup
func (h *AuthHandler) SignupPage(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", "Sign up", nil)
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	req := usecase.SignupRequest{
		Email:           c.PostForm("email"),
		Username:        c.PostForm("username"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
		FullName:        c.PostForm("full_name"),
	}

	if _, err := h.userUseCase.Signup(c.Request.Context(), req); err != nil {
		if !domainerr.IsClientError(err) {
			h.logger.Error("Registration failed", map[string]any{
				"error":      err.Error(),
				"request_id": middleware.GetRequestID(c),
			})
		}
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(err, "An error occurred during registration"), "/signup")
		return
	}

	flashAndRedirect(c, entity.FlashSuccess, "Account created successfully! Please log in.", "/login")
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Log in", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	identity, err := h.userUseCase.Authenticate(c.Request.Context(), c.PostForm("username_or_email"), c.PostForm("password"))
	if err != nil {
		if !domainerr.IsClientError(err) {
			h.logger.Error("Login failed", map[string]any{
				"error":      err.Error(),
				"request_id": middleware.GetRequestID(c),
			})
		}
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(err, "An error occurred during login"), "/login")
		return
	}

	if err := middleware.RenewSession(c); err != nil {
		h.logger.Error("Failed to renew session on login", map[string]any{
			"error":      err.Error(),
			"request_id": middleware.GetRequestID(c),
		})
		flashAndRedirect(c, entity.FlashError, "An error occurred during login", "/login")
		return
	}
	middleware.CurrentSession(c).Login(*identity)
	h.logger.Info("User logged in", map[string]any{
		"user_id":    identity.UserID,
		"username":   identity.Username,
		"request_id": middleware.GetRequestID(c),
	})

	flashAndRedirect(c, entity.FlashSuccess, fmt.Sprintf("Welcome back, %s!", identity.FullName), "/payment")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil {
		session.Logout()
	}
	if err := middleware.RenewSession(c); err != nil {
		h.logger.Warn("Failed to renew session on logout", map[string]any{
			"error":      err.Error(),
			"request_id": middleware.GetRequestID(c),
		})
	}
	flashAndRedirect(c, entity.FlashSuccess, "You have been logged out", "/")
}

// NotFound renders the 404 page, or a JSON error under /api/
func (h *AuthHandler) NotFound(c *gin.Context) {
	if middleware.IsAPIRequest(c) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrNotFound),
			Message: "Not found",
		})
		return
	}
	render(c, http.StatusNotFound, "404.html", "Not found", nil)
}
