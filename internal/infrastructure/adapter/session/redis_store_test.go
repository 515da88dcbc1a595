package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/logger"
	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	tp, _ := clock(t, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC))
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return NewRedisStore(client, 30*time.Minute, tp, logger.NewNoopLogger()), mock
}

func storedSession() *entity.Session {
	session := entity.NewSession("abc", time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC))
	session.Login(entity.Identity{UserID: 1, Username: "alice", FullName: "Alice Smith"})
	session.SetPendingAmount(decimal.RequireFromString("500.50"))
	session.AddFlash(entity.FlashSuccess, "Amount set to ₹500.50")
	return session
}

func TestRedisStore_SaveThenGet(t *testing.T) {
	ctx := context.Background()
	store, mock := newTestRedisStore(t)
	session := storedSession()

	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("session:abc", data, 30*time.Minute).SetVal("OK")
	mock.ExpectGet("session:abc").SetVal(string(data))

	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, session.Identity, loaded.Identity)
	assert.True(t, loaded.PendingAmount.Equal(decimal.RequireFromString("500.50")))
	assert.Equal(t, session.Flashes, loaded.Flashes)
	assert.True(t, session.CreatedAt.Equal(loaded.CreatedAt))
}

func TestRedisStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing key", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet("session:nope").RedisNil()

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("Garbage payload", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet("session:bad").SetVal("{not json")

		_, err := store.Get(ctx, "bad")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("Redis down", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet("session:abc").SetErr(errors.New("dial tcp: connection refused"))

		_, err := store.Get(ctx, "abc")
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, mock := newTestRedisStore(t)

	mock.ExpectDel("session:abc").SetVal(1)
	mock.ExpectDel("session:def").SetErr(errors.New("connection reset"))

	assert.NoError(t, store.Delete(ctx, "abc"))
	assert.ErrorIs(t, store.Delete(ctx, "def"), errs.ErrInternalServer)
}

func TestRedisStore_Create(t *testing.T) {
	store, _ := newTestRedisStore(t)

	session, err := store.Create(context.Background())

	require.NoError(t, err)
	assert.Len(t, session.ID, 36)
	assert.False(t, session.HasPendingAmount())
}
