package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(id, username string) *entity.TransactionRecord {
	return &entity.TransactionRecord{
		TransactionID: id,
		Method:        entity.MethodUPI,
		Amount:        decimal.NewFromInt(500),
		Username:      username,
		FullName:      "Alice Smith",
		CreatedAt:     time.Date(2024, 6, 15, 9, 30, 5, 0, time.UTC),
		UPIID:         "alice@okbank",
	}
}

func TestMemoryLedger_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(logger.NewNoopLogger())

	require.NoError(t, l.Insert(ctx, newRecord("TXN1", "alice")))

	got, err := l.Get(ctx, "TXN1")
	require.NoError(t, err)
	assert.Equal(t, newRecord("TXN1", "alice"), got)

	_, err = l.Get(ctx, "TXN2")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestMemoryLedger_RecordsAreImmutable(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(logger.NewNoopLogger())

	original := newRecord("TXN1", "alice")
	require.NoError(t, l.Insert(ctx, original))

	original.Username = "mallory"
	got, err := l.Get(ctx, "TXN1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got.UPIID = "changed@bank"
	again, err := l.Get(ctx, "TXN1")
	require.NoError(t, err)
	assert.Equal(t, "alice@okbank", again.UPIID)
}

func TestMemoryLedger_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(logger.NewNoopLogger())

	require.NoError(t, l.Insert(ctx, newRecord("TXN1", "alice")))
	err := l.Insert(ctx, newRecord("TXN1", "bob"))

	assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	got, _ := l.Get(ctx, "TXN1")
	assert.Equal(t, "alice", got.Username)
	records, err := l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryLedger_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(logger.NewNoopLogger())

	ids := []string{"TXN3", "TXN1", "TXN2"}
	for _, id := range ids {
		require.NoError(t, l.Insert(ctx, newRecord(id, "alice")))
	}

	records, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, id := range ids {
		assert.Equal(t, id, records[i].TransactionID)
	}
}

func TestMemoryLedger_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(logger.NewNoopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = l.Insert(ctx, newRecord(fmt.Sprintf("TXN%d", i), "alice"))
			_, _ = l.Get(ctx, "TXN0")
		}(i)
	}
	wg.Wait()

	records, err := l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 50)
}

func TestMemoryLedger_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewMemoryLedger(logger.NewNoopLogger())

	assert.ErrorIs(t, l.Insert(ctx, newRecord("TXN1", "alice")), context.Canceled)
	_, err := l.Get(context.Background(), "TXN1")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}
