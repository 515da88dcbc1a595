package ledger

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
)

// MemoryLedger is a process-local, insertion-ordered TransactionLedger.
// Its contents are lost on restart.
type MemoryLedger struct {
	mu      sync.RWMutex
	records map[string]*entity.TransactionRecord
	order   []string
	logger  coreport.Logger
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger(logger coreport.Logger) *MemoryLedger {
	return &MemoryLedger{
		records: make(map[string]*entity.TransactionRecord),
		logger:  logger,
	}
}

// Insert appends a copy of record. An existing ID is never overwritten.
func (l *MemoryLedger) Insert(ctx context.Context, record *entity.TransactionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.records[record.TransactionID]; exists {
		l.logger.Warn("Duplicate transaction ID rejected", map[string]any{
			"transaction_id": record.TransactionID,
		})
		return errs.ErrDuplicateTransaction
	}

	l.records[record.TransactionID] = record.Clone()
	l.order = append(l.order, record.TransactionID)

	l.logger.Debug("Transaction recorded", map[string]any{
		"transaction_id": record.TransactionID,
		"ledger_size":    len(l.order),
	})
	return nil
}

// Get returns a copy of the record with this ID
func (l *MemoryLedger) Get(ctx context.Context, transactionID string) (*entity.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.records[transactionID]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return record.Clone(), nil
}

// List returns copies of all records in insertion order
func (l *MemoryLedger) List(ctx context.Context) ([]*entity.TransactionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*entity.TransactionRecord, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.records[id].Clone())
	}
	return out, nil
}
