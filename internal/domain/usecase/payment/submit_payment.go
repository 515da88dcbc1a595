package payment

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// SetAmount validates the amount typed on the payment page and stores it on the session
func (s *Service) SetAmount(ctx context.Context, session *entity.Session, raw string) (decimal.Decimal, error) {
	if session == nil || !session.IsAuthenticated() {
		return decimal.Zero, errs.ErrNotAuthenticated
	}

	amount, result := validation.ValidateAmount(raw)
	if err := result.Err("amount"); err != nil {
		s.logger.Debug("Amount rejected", map[string]any{
			"username": session.Identity.Username,
			"reason":   result.Reason,
		})
		return decimal.Zero, err
	}

	session.SetPendingAmount(amount)
	s.logger.Debug("Amount set", map[string]any{
		"username": session.Identity.Username,
		"amount":   entity.FormatAmount(amount),
	})

	return amount, nil
}

// SubmitPayment validates the method details, records an immutable receipt in
// the ledger and returns its transaction ID. Full card numbers and CVVs are
// validated here and then dropped.
func (s *Service) SubmitPayment(
	ctx context.Context,
	identity *entity.Identity,
	amount decimal.Decimal,
	method entity.PaymentMethod,
) (string, error) {
	if identity == nil {
		return "", errs.ErrNotAuthenticated
	}
	if !entity.IsPositiveAmount(amount) {
		return "", errs.ErrAmountNotSet
	}
	if entity.ExceedsMaxAmount(amount) {
		return "", errs.NewValidationError("amount", "Amount cannot exceed ₹10,00,000")
	}
	if method == nil {
		return "", errs.ErrInvalidPaymentMethod
	}

	if err := validation.ValidatePaymentMethod(method, s.timeProvider.Now()); err != nil {
		s.logger.Info("Payment rejected", map[string]any{
			"username": identity.Username,
			"method":   string(method.Type()),
			"error":    err.Error(),
		})
		return "", err
	}

	formattedAmount := entity.FormatAmount(amount)

	for attempt := 1; attempt <= s.idAttempts; attempt++ {
		transactionID, createdAt, err := s.idGenerator.Next()
		if err != nil {
			s.logger.Error("Failed to generate transaction ID", map[string]any{
				"error": err.Error(),
			})
			return "", fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
		}

		record := entity.NewTransactionRecord(transactionID, *identity, amount, method, createdAt)

		err = s.ledger.Insert(ctx, record)
		if err == nil {
			s.logger.Info("Payment processed", map[string]any{
				"transaction_id": transactionID,
				"method":         string(record.Method),
				"amount":         formattedAmount,
				"username":       identity.Username,
			})
			return transactionID, nil
		}

		if !errs.IsDuplicateTransactionError(err) {
			txErr := errs.NewTransactionError(transactionID, identity.Username, string(method.Type()), formattedAmount, err)
			s.logger.Error("Failed to record payment", txErr.(*errs.TransactionError).LogFields())
			return "", txErr
		}

		s.logger.Warn("Transaction ID collision, minting a new one", map[string]any{
			"transaction_id": transactionID,
			"attempt":        attempt,
		})
	}

	return "", errs.NewTransactionError("", identity.Username, string(method.Type()), formattedAmount, errs.ErrDuplicateTransaction)
}
