package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/validation"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/receipt"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	paymentFailedMessage = "An error occurred while processing the payment"
	recentReceiptsLimit  = 5
)

// PaymentHandler serves the amount entry, payment and receipt pages
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	renderer       coreport.ReceiptRenderer
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	paymentUseCase usecase.PaymentUseCase,
	renderer coreport.ReceiptRenderer,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		renderer:       renderer,
		logger:         logger,
	}
}

// successMessage is the flash shown after a payment is recorded
func successMessage(amount decimal.Decimal, method entity.PaymentMethodType) string {
	return fmt.Sprintf("Payment of %s processed successfully via %s!", entity.FormatRupees(amount), method)
}

func (h *PaymentHandler) renderPaymentPage(c *gin.Context) {
	session := middleware.CurrentSession(c)
	receipts, err := h.paymentUseCase.RecentReceipts(c.Request.Context(), session.Identity.Username, recentReceiptsLimit)
	if err != nil {
		h.logger.Warn("Failed to load recent receipts", map[string]any{
			"error":      err.Error(),
			"username":   session.Identity.Username,
			"request_id": middleware.GetRequestID(c),
		})
	}
	render(c, http.StatusOK, "payment.html", "Payment", gin.H{
		"User":          session.Identity.FullName,
		"HasAmount":     session.HasPendingAmount(),
		"Amount":        entity.FormatAmount(session.PendingAmount),
		"AmountDisplay": entity.FormatRupees(session.PendingAmount),
		"Banks":         validation.Banks,
		"Wallets":       validation.Wallets,
		"Receipts":      receipts,
	})
}

// PaymentPage handles GET /payment
func (h *PaymentHandler) PaymentPage(c *gin.Context) {
	h.renderPaymentPage(c)
}

// SetAmount handles POST /payment
func (h *PaymentHandler) SetAmount(c *gin.Context) {
	session := middleware.CurrentSession(c)

	if _, err := h.paymentUseCase.SetAmount(c.Request.Context(), session, c.PostForm("amount")); err != nil {
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(err, paymentFailedMessage), "/payment")
		return
	}

	h.renderPaymentPage(c)
}

// Pay handles POST /pay
func (h *PaymentHandler) Pay(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if !session.HasPendingAmount() {
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(domainerr.ErrAmountNotSet, ""), "/payment")
		return
	}

	method, err := entity.NewPaymentMethod(strings.TrimSpace(c.PostForm("method")), c.PostForm)
	if err != nil {
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(err, paymentFailedMessage), "/payment")
		return
	}

	amount := session.PendingAmount
	transactionID, err := h.paymentUseCase.SubmitPayment(c.Request.Context(), session.Identity, amount, method)
	if err != nil {
		h.logFailure(c, err)
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(err, paymentFailedMessage), "/payment")
		return
	}

	session.ClearPendingAmount()
	flashAndRedirect(c, entity.FlashSuccess, successMessage(amount, method.Type()), "/success/"+transactionID)
}

// Success handles GET /success/:transaction_id
func (h *PaymentHandler) Success(c *gin.Context) {
	session := middleware.CurrentSession(c)

	record, err := h.paymentUseCase.GetReceiptFor(c.Request.Context(), c.Param("transaction_id"), session.Identity.Username)
	if err != nil {
		flashAndRedirect(c, entity.FlashError, domainerr.Reason(err, "Invalid transaction ID"), "/payment")
		return
	}

	render(c, http.StatusOK, "success.html", "Payment successful", gin.H{
		"Transaction": record,
	})
}

// ReceiptQR handles GET /success/:transaction_id/qr.png
func (h *PaymentHandler) ReceiptQR(c *gin.Context) {
	session := middleware.CurrentSession(c)

	record, err := h.paymentUseCase.GetReceiptFor(c.Request.Context(), c.Param("transaction_id"), session.Identity.Username)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	image, err := h.renderer.RenderPNG(receipt.Payload(record), receipt.DefaultSize)
	if err != nil {
		h.logger.Error("Failed to render receipt QR", map[string]any{
			"transaction_id": record.TransactionID,
			"error":          err.Error(),
			"request_id":     middleware.GetRequestID(c),
		})
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, "image/png", image)
}

func (h *PaymentHandler) logFailure(c *gin.Context, err error) {
	fields := map[string]any{
		"error":      err.Error(),
		"request_id": middleware.GetRequestID(c),
	}

	var txErr *domainerr.TransactionError
	if errors.As(err, &txErr) {
		for k, v := range txErr.LogFields() {
			fields[k] = v
		}
	}

	if domainerr.IsValidationError(err) {
		h.logger.Debug("Payment rejected", fields)
		return
	}
	h.logger.Error("Payment failed", fields)
}
