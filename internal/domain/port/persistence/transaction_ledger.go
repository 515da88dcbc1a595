package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
)

// TransactionLedger is the append-only store of payment receipts.
// Records are never updated or removed once inserted.
type TransactionLedger interface {
	// Insert appends a record
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a record with the same ID exists
	Insert(ctx context.Context, record *entity.TransactionRecord) error

	// Get returns a copy of the record with this ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no record has this ID
	Get(ctx context.Context, transactionID string) (*entity.TransactionRecord, error)

	// List returns copies of all records in insertion order
	List(ctx context.Context) ([]*entity.TransactionRecord, error)
}
