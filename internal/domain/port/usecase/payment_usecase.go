package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PaymentUseCase defines the payment flow: amount entry, submission and receipts
type PaymentUseCase interface {
	// SetAmount validates raw and stores it as the session's pending amount
	SetAmount(ctx context.Context, session *entity.Session, raw string) (decimal.Decimal, error)

	// SubmitPayment validates method, records a receipt for amount paid by identity
	// and returns the new transaction ID
	SubmitPayment(ctx context.Context, identity *entity.Identity, amount decimal.Decimal, method entity.PaymentMethod) (string, error)

	// GetReceipt returns a copy of the receipt, or ErrTransactionNotFound
	GetReceipt(ctx context.Context, transactionID string) (*entity.TransactionRecord, error)

	// GetReceiptFor returns the receipt only when it belongs to username,
	// otherwise ErrTransactionNotFound
	GetReceiptFor(ctx context.Context, transactionID, username string) (*entity.TransactionRecord, error)

	// RecentReceipts returns up to limit of username's receipts, newest first
	RecentReceipts(ctx context.Context, username string, limit int) ([]*entity.TransactionRecord, error)
}
