package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// APIHandler serves the JSON payment endpoints
type APIHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewAPIHandler creates a new JSON API handler instance
func NewAPIHandler(paymentUseCase usecase.PaymentUseCase, logger coreport.Logger) *APIHandler {
	return &APIHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

func paymentError(c *gin.Context, status, code int, message string, fieldErrors []dto.FieldError) {
	c.JSON(status, dto.PaymentErrorResponse{
		Success: false,
		Code:    code,
		Error:   message,
		Errors:  fieldErrors,
	})
}

// Pay handles POST /api/pay/:method
func (h *APIHandler) Pay(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if !session.HasPendingAmount() {
		paymentError(c, http.StatusBadRequest, domainerr.CodeAmountNotSet,
			domainerr.Reason(domainerr.ErrAmountNotSet, ""), nil)
		return
	}

	req, methodType, ok := dto.NewPaymentRequest(c.Param("method"))
	if !ok {
		paymentError(c, http.StatusBadRequest, domainerr.CodeInvalidPaymentMethod,
			domainerr.Reason(domainerr.ErrInvalidPaymentMethod, ""), nil)
		return
	}

	if err := c.ShouldBindJSON(req); err != nil {
		paymentError(c, http.StatusBadRequest, domainerr.CodeValidation, "Invalid request body", nil)
		return
	}

	if fieldErrors := dto.Validate(req); len(fieldErrors) > 0 {
		paymentError(c, http.StatusBadRequest, domainerr.CodeValidation, fieldErrors[0].Message, fieldErrors)
		return
	}

	method, err := entity.NewPaymentMethod(string(methodType), req.Field)
	if err != nil {
		paymentError(c, http.StatusBadRequest, domainerr.ErrorCode(err), domainerr.Reason(err, "Invalid payment method"), nil)
		return
	}

	amount := session.PendingAmount
	transactionID, err := h.paymentUseCase.SubmitPayment(c.Request.Context(), session.Identity, amount, method)
	if err != nil {
		var vErr *domainerr.ValidationError
		if errors.As(err, &vErr) {
			paymentError(c, http.StatusBadRequest, domainerr.CodeValidation, vErr.Reason,
				[]dto.FieldError{{Field: vErr.Field, Message: vErr.Reason}})
			return
		}

		h.logger.Error("API payment failed", map[string]any{
			"error":      err.Error(),
			"method":     string(methodType),
			"request_id": middleware.GetRequestID(c),
		})
		paymentError(c, http.StatusInternalServerError, domainerr.ErrorCode(err), "Payment processing failed", nil)
		return
	}

	session.ClearPendingAmount()
	c.JSON(http.StatusOK, dto.PaymentResponse{
		Success:       true,
		Message:       successMessage(amount, methodType),
		TransactionID: transactionID,
	})
}

// GetReceipt handles GET /api/receipts/:transaction_id
func (h *APIHandler) GetReceipt(c *gin.Context) {
	session := middleware.CurrentSession(c)

	record, err := h.paymentUseCase.GetReceiptFor(c.Request.Context(), c.Param("transaction_id"), session.Identity.Username)
	if err != nil {
		if domainerr.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.CodeTransactionNotFound,
				Message: domainerr.Reason(err, "Invalid transaction ID"),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to load receipt",
		})
		return
	}

	c.JSON(http.StatusOK, record.ToResponse())
}
