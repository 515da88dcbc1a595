package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/receipt"
	coremocks "github.com/amirhossein-jamali/payment-gateway/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isAlice(identity *entity.Identity) bool {
	return identity != nil && identity.Username == "alice"
}

func amountOf(want int64) any {
	return mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(decimal.NewFromInt(want))
	})
}

func TestPaymentPage(t *testing.T) {
	t.Run("Anonymous users are sent to login with a message", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.get("/payment", nil)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Equal(t, []string{"Please log in first"}, messages(s.sessionOf(t, rec).Flashes))
	})

	t.Run("Greets the user without an amount", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().RecentReceipts(mock.Anything, "alice", 5).Return(nil, nil).Once()

		rec := s.get("/payment", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Hello, Alice Smith")
		assert.NotContains(t, body, `action="/pay"`)
	})

	t.Run("Shows the method form once an amount is set", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().RecentReceipts(mock.Anything, "alice", 5).Return(nil, nil).Once()

		rec := s.get("/payment", s.newSession(t, loggedIn, withAmount(500)))

		body := rec.Body.String()
		assert.Contains(t, body, `action="/pay"`)
		assert.Contains(t, body, "₹500.00")
		assert.Contains(t, body, `value="500.00"`)
		assert.Contains(t, body, "PhonePe")
		assert.Contains(t, body, "HDFC")
		assert.NotContains(t, body, "Recent payments")
	})

	t.Run("Lists recent receipts", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().RecentReceipts(mock.Anything, "alice", 5).
			Return([]*entity.TransactionRecord{aliceReceipt()}, nil).Once()

		rec := s.get("/payment", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Recent payments")
		assert.Contains(t, body, `href="/success/TXN20240615093005DEADBEEF"`)
		assert.Contains(t, body, "₹500.00 via UPI")
	})

	t.Run("Receipt lookup failure still renders the page", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().RecentReceipts(mock.Anything, "alice", 5).
			Return(nil, errors.New("ledger unavailable")).Once()

		rec := s.get("/payment", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hello, Alice Smith")
		assert.NotContains(t, rec.Body.String(), "Recent payments")
	})

	t.Run("Removed accounts are logged out", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.EXPECT().UserExists(mock.Anything, uint64(7)).Return(false, nil).Once()
		cookie := s.newSession(t, func(sess *entity.Session) {
			sess.Login(entity.Identity{UserID: 7, Username: "bob", FullName: "Bob Jones"})
		})

		rec := s.get("/payment", cookie)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		sess := s.sessionOf(t, rec)
		assert.False(t, sess.IsAuthenticated())
		assert.Equal(t, []string{"Please log in first"}, messages(sess.Flashes))
	})
}

func TestSetAmount(t *testing.T) {
	t.Run("Valid amount re-renders the page", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().RecentReceipts(mock.Anything, "alice", 5).Return(nil, nil).Once()
		s.payments.EXPECT().SetAmount(mock.Anything, mock.Anything, "500").
			RunAndReturn(func(_ context.Context, sess *entity.Session, _ string) (decimal.Decimal, error) {
				amount := decimal.NewFromInt(500)
				sess.SetPendingAmount(amount)
				return amount, nil
			}).Once()

		rec := s.postForm("/payment", url.Values{"amount": {"500"}}, s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Amount to pay: <strong>₹500.00</strong>")
		assert.True(t, s.sessionOf(t, rec).PendingAmount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Rejected amount flashes the reason", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().SetAmount(mock.Anything, mock.Anything, "abc").
			Return(decimal.Zero, domainerr.NewValidationError("amount", "Please enter a valid amount")).Once()

		rec := s.postForm("/payment", url.Values{"amount": {"abc"}}, s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/payment", rec.Header().Get("Location"))
		assert.Equal(t, []string{"Please enter a valid amount"}, messages(s.sessionOf(t, rec).Flashes))
	})
}

func TestPay(t *testing.T) {
	upiForm := url.Values{"method": {"UPI"}, "upi_id": {" alice@okbank "}}

	t.Run("Requires an amount", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.postForm("/pay", upiForm, s.newSession(t, loggedIn))

		assert.Equal(t, "/payment", rec.Header().Get("Location"))
		assert.Equal(t, []string{"Please set an amount first"}, messages(s.sessionOf(t, rec).Flashes))
	})

	t.Run("Unknown method", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.postForm("/pay", url.Values{"method": {"Bitcoin"}}, s.newSession(t, loggedIn, withAmount(500)))

		assert.Equal(t, "/payment", rec.Header().Get("Location"))
		assert.Equal(t, []string{"Invalid payment method"}, messages(s.sessionOf(t, rec).Flashes))
	})

	t.Run("Success clears the amount and shows the receipt", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().SubmitPayment(mock.Anything, mock.MatchedBy(isAlice), amountOf(500),
			entity.UPIPayment{UPIID: "alice@okbank"}).Return("TXN20240615093005DEADBEEF", nil).Once()

		rec := s.postForm("/pay", upiForm, s.newSession(t, loggedIn, withAmount(500)))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/success/TXN20240615093005DEADBEEF", rec.Header().Get("Location"))
		sess := s.sessionOf(t, rec)
		assert.False(t, sess.HasPendingAmount())
		assert.Equal(t, []string{"Payment of ₹500.00 processed successfully via UPI!"}, messages(sess.Flashes))
	})

	t.Run("Card fields reach the use case", func(t *testing.T) {
		s := newTestServer(t, nil)
		card := entity.CardPayment{
			CardholderName: "Alice Smith",
			CardNumber:     "4532 0151 1283 0366",
			ExpiryDate:     "12/30",
			CVV:            "123",
		}
		s.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything, amountOf(250), card).
			Return("TXN2024061509300501020304", nil).Once()

		rec := s.postForm("/pay", url.Values{
			"method":          {"Card"},
			"cardholder_name": {"Alice Smith"},
			"card_number":     {"4532 0151 1283 0366"},
			"expiry_date":     {"12/30"},
			"cvv":             {"123"},
		}, s.newSession(t, loggedIn, withAmount(250)))

		assert.Equal(t, "/success/TXN2024061509300501020304", rec.Header().Get("Location"))
	})

	t.Run("Validation failure keeps the amount", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", domainerr.NewValidationError(entity.FieldUPIID, "Invalid UPI ID format (e.g., username@bankname)")).Once()

		rec := s.postForm("/pay", upiForm, s.newSession(t, loggedIn, withAmount(500)))

		assert.Equal(t, "/payment", rec.Header().Get("Location"))
		sess := s.sessionOf(t, rec)
		assert.True(t, sess.HasPendingAmount())
		assert.Equal(t, []string{"Invalid UPI ID format (e.g., username@bankname)"}, messages(sess.Flashes))
	})

	t.Run("Ledger failure shows a generic message", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().SubmitPayment(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", domainerr.ErrDuplicateTransaction).Once()

		rec := s.postForm("/pay", upiForm, s.newSession(t, loggedIn, withAmount(500)))

		assert.Equal(t, []string{"An error occurred while processing the payment"}, messages(s.sessionOf(t, rec).Flashes))
	})
}

func TestSuccessPage(t *testing.T) {
	t.Run("Owner sees the receipt", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().GetReceiptFor(mock.Anything, "TXN20240615093005DEADBEEF", "alice").
			Return(aliceReceipt(), nil).Once()

		rec := s.get("/success/TXN20240615093005DEADBEEF", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "TXN20240615093005DEADBEEF")
		assert.Contains(t, body, "₹500.00")
		assert.Contains(t, body, "alice@okbank")
		assert.Contains(t, body, "2024-06-15 09:30:05")
		assert.Contains(t, body, `src="/success/TXN20240615093005DEADBEEF/qr.png"`)
	})

	t.Run("Unknown or foreign receipts redirect", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().GetReceiptFor(mock.Anything, "TXN0", "alice").
			Return(nil, domainerr.ErrTransactionNotFound).Once()

		rec := s.get("/success/TXN0", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/payment", rec.Header().Get("Location"))
		assert.Equal(t, []string{"Invalid transaction ID"}, messages(s.sessionOf(t, rec).Flashes))
	})

	t.Run("Anonymous users are sent to login silently", func(t *testing.T) {
		s := newTestServer(t, nil)

		rec := s.get("/success/TXN20240615093005DEADBEEF", nil)

		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Empty(t, s.sessionOf(t, rec).Flashes)
	})
}

func TestReceiptQR(t *testing.T) {
	t.Run("Renders a PNG", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().GetReceiptFor(mock.Anything, "TXN20240615093005DEADBEEF", "alice").
			Return(aliceReceipt(), nil).Once()

		rec := s.get("/success/TXN20240615093005DEADBEEF/qr.png", s.newSession(t, loggedIn))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("Render failure", func(t *testing.T) {
		renderer := coremocks.NewMockReceiptRenderer(t)
		renderer.EXPECT().RenderPNG(mock.MatchedBy(func(payload string) bool {
			return strings.Contains(payload, "TXN20240615093005DEADBEEF")
		}), receipt.DefaultSize).Return(nil, errors.New("too large")).Once()
		s := newTestServerWithRenderer(t, nil, renderer)
		s.payments.EXPECT().GetReceiptFor(mock.Anything, "TXN20240615093005DEADBEEF", "alice").
			Return(aliceReceipt(), nil).Once()

		rec := s.get("/success/TXN20240615093005DEADBEEF/qr.png", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Missing receipt", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.payments.EXPECT().GetReceiptFor(mock.Anything, "TXN0", "alice").
			Return(nil, domainerr.ErrTransactionNotFound).Once()

		rec := s.get("/success/TXN0/qr.png", s.newSession(t, loggedIn))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
