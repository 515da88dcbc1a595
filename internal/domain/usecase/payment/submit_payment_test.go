package payment

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/payment-gateway/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/payment-gateway/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 15, 9, 30, 5, 0, time.UTC)

func newTestService(t *testing.T, random []byte, opts ...Option) (*Service, *persistencemocks.MockTransactionLedger) {
	ledger := persistencemocks.NewMockTransactionLedger(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	opts = append([]Option{WithRandomSource(bytes.NewReader(random))}, opts...)
	return NewPaymentService(ledger, mockTime, mockLogger, opts...), ledger
}

func alice() *entity.Identity {
	return &entity.Identity{UserID: 1, Username: "alice", FullName: "Alice Smith"}
}

func TestSubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("UPI payment of 500", func(t *testing.T) {
		svc, ledger := newTestService(t, []byte{0xde, 0xad, 0xbe, 0xef})

		var stored *entity.TransactionRecord
		ledger.EXPECT().Insert(ctx, mock.Anything).Run(func(_ context.Context, r *entity.TransactionRecord) {
			stored = r
		}).Return(nil).Once()

		id, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(500), entity.UPIPayment{UPIID: "alice@okbank"})

		require.NoError(t, err)
		assert.Equal(t, "TXN20240615093005DEADBEEF", id)
		assert.True(t, IsTransactionID(id))

		require.NotNil(t, stored)
		assert.Equal(t, id, stored.TransactionID)
		assert.Equal(t, entity.MethodUPI, stored.Method)
		assert.True(t, stored.Amount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, "alice@okbank", stored.UPIID)
		assert.Equal(t, "alice", stored.Username)
		assert.Equal(t, "Alice Smith", stored.FullName)
		assert.Equal(t, fixedTime, stored.CreatedAt)
		assert.Empty(t, stored.CardLast4)
	})

	t.Run("Card payment stores only last four digits", func(t *testing.T) {
		svc, ledger := newTestService(t, []byte{1, 2, 3, 4})

		card := entity.CardPayment{
			CardholderName: "Alice Smith",
			CardNumber:     "4532 0151 1283 0366",
			ExpiryDate:     "12/30",
			CVV:            "123",
		}

		ledger.EXPECT().Insert(ctx, mock.MatchedBy(func(r *entity.TransactionRecord) bool {
			return r.CardLast4 == "0366" && r.Cardholder == "Alice Smith" && r.Method == entity.MethodCard
		})).Return(nil).Once()

		id, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(250), card)

		require.NoError(t, err)
		assert.Equal(t, "TXN2024061509300501020304", id)
	})

	t.Run("Validation failure never touches the ledger", func(t *testing.T) {
		svc, ledger := newTestService(t, []byte{1, 2, 3, 4})

		_, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(100), entity.CardPayment{
			CardholderName: "Alice Smith",
			CardNumber:     "4532015112830367",
			ExpiryDate:     "12/30",
			CVV:            "123",
		})

		var vErr *errs.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, entity.FieldCardNumber, vErr.Field)
		assert.Equal(t, "Invalid card number", vErr.Reason)
		ledger.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Expired card uses the clock", func(t *testing.T) {
		svc, _ := newTestService(t, []byte{1, 2, 3, 4})

		_, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(100), entity.CardPayment{
			CardholderName: "Alice Smith",
			CardNumber:     "4532015112830366",
			ExpiryDate:     "05/24",
			CVV:            "123",
		})

		assert.Equal(t, "Card has expired", errs.Reason(err, ""))
	})

	t.Run("Preconditions", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		upi := entity.UPIPayment{UPIID: "alice@okbank"}

		_, err := svc.SubmitPayment(ctx, nil, decimal.NewFromInt(1), upi)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)

		_, err = svc.SubmitPayment(ctx, alice(), decimal.Zero, upi)
		assert.ErrorIs(t, err, errs.ErrAmountNotSet)

		_, err = svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(1_000_001), upi)
		assert.True(t, errs.IsValidationError(err))

		_, err = svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(1), nil)
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("ID collision is retried with a fresh ID", func(t *testing.T) {
		svc, ledger := newTestService(t, []byte{0, 0, 0, 1, 0, 0, 0, 2})

		ledger.EXPECT().Insert(ctx, mock.MatchedBy(func(r *entity.TransactionRecord) bool {
			return strings.HasSuffix(r.TransactionID, "00000001")
		})).Return(errs.ErrDuplicateTransaction).Once()
		ledger.EXPECT().Insert(ctx, mock.MatchedBy(func(r *entity.TransactionRecord) bool {
			return strings.HasSuffix(r.TransactionID, "00000002")
		})).Return(nil).Once()

		id, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(10), entity.WalletPayment{Wallet: "Paytm"})

		require.NoError(t, err)
		assert.Equal(t, "TXN2024061509300500000002", id)
	})

	t.Run("Gives up after the configured attempts", func(t *testing.T) {
		svc, ledger := newTestService(t, make([]byte, 8), WithIDAttempts(2))

		ledger.EXPECT().Insert(ctx, mock.Anything).Return(errs.ErrDuplicateTransaction).Twice()

		id, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(10), entity.NetBankingPayment{Bank: "SBI"})

		assert.Empty(t, id)
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Defaults to five attempts", func(t *testing.T) {
		svc, ledger := newTestService(t, make([]byte, 4*DefaultIDAttempts))

		ledger.EXPECT().Insert(ctx, mock.Anything).Return(errs.ErrDuplicateTransaction).Times(5)

		_, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(10), entity.NetBankingPayment{Bank: "SBI"})

		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Random source failure", func(t *testing.T) {
		svc, _ := newTestService(t, []byte{1})

		_, err := svc.SubmitPayment(ctx, alice(), decimal.NewFromInt(10), entity.NetBankingPayment{Bank: "SBI"})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestSetAmount(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a valid amount", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		session := entity.NewSession("sid", fixedTime)
		session.Login(*alice())

		amount, err := svc.SetAmount(ctx, session, " 500 ")

		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.NewFromInt(500)))
		assert.True(t, session.PendingAmount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Rejects and keeps the previous amount", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		session := entity.NewSession("sid", fixedTime)
		session.Login(*alice())
		session.SetPendingAmount(decimal.NewFromInt(20))

		_, err := svc.SetAmount(ctx, session, "2000000")

		assert.Equal(t, "Amount cannot exceed ₹10,00,000", errs.Reason(err, ""))
		assert.True(t, session.PendingAmount.Equal(decimal.NewFromInt(20)))
	})

	t.Run("Requires login", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.SetAmount(ctx, entity.NewSession("sid", fixedTime), "10")
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)

		_, err = svc.SetAmount(ctx, nil, "10")
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})
}
