package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/templates"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/receipt"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/session"
	timeadapter "github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/payment-gateway/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const cookieName = "paygate_session"

type testServer struct {
	router   *gin.Engine
	store    *session.MemoryStore
	codec    *session.CookieCodec
	users    *usecasemocks.MockUserUseCase
	payments *usecasemocks.MockPaymentUseCase
}

func newTestServer(t *testing.T, db handler.Pinger) *testServer {
	t.Helper()
	return newTestServerWithRenderer(t, db, receipt.NewQRRenderer())
}

func newTestServerWithRenderer(t *testing.T, db handler.Pinger, renderer coreport.ReceiptRenderer) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeadapter.NewRealTimeProvider(time.UTC)

	codec, err := session.NewCookieCodec("test-secret", time.Hour, clock)
	require.NoError(t, err)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	s := &testServer{
		router:   gin.New(),
		store:    session.NewMemoryStore(time.Hour, clock, log),
		codec:    codec,
		users:    usecasemocks.NewMockUserUseCase(t),
		payments: usecasemocks.NewMockPaymentUseCase(t),
	}
	s.router.SetHTMLTemplate(tmpl)
	s.users.EXPECT().UserExists(mock.Anything, alice().UserID).Return(true, nil).Maybe()

	routes.SetupMiddlewares(s.router, log, s.store, codec, middleware.SessionOptions{CookieName: cookieName})
	routes.SetupRoutes(s.router, routes.Handlers{
		Auth:     handler.NewAuthHandler(s.users, log),
		Payment:  handler.NewPaymentHandler(s.payments, renderer, log),
		API:      handler.NewAPIHandler(s.payments, log),
		Health:   handler.NewHealthHandler(db, log),
		Accounts: s.users,
	}, log)
	return s
}

// newSession stores a session prepared by setup and returns its cookie
func (s *testServer) newSession(t *testing.T, setup ...func(*entity.Session)) *http.Cookie {
	t.Helper()
	ctx := context.Background()

	sess, err := s.store.Create(ctx)
	require.NoError(t, err)
	for _, fn := range setup {
		fn(sess)
	}
	require.NoError(t, s.store.Save(ctx, sess))

	value, err := s.codec.Encode(sess.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: cookieName, Value: value}
}

// sessionOf loads the session the response cookie points at
func (s *testServer) sessionOf(t *testing.T, rec *httptest.ResponseRecorder) *entity.Session {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != cookieName {
			continue
		}
		id, err := s.codec.Decode(cookie.Value)
		require.NoError(t, err)
		sess, err := s.store.Get(context.Background(), id)
		require.NoError(t, err)
		return sess
	}
	t.Fatalf("response has no %s cookie", cookieName)
	return nil
}

// sessionIDOf decodes the session ID a cookie points at
func (s *testServer) sessionIDOf(t *testing.T, cookie *http.Cookie) string {
	t.Helper()
	id, err := s.codec.Decode(cookie.Value)
	require.NoError(t, err)
	return id
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName {
			return cookie
		}
	}
	t.Fatalf("response has no %s cookie", cookieName)
	return nil
}

func (s *testServer) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return s.serve(req, cookie)
}

func (s *testServer) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.serve(req, cookie)
}

func (s *testServer) postJSON(path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.serve(req, cookie)
}

func (s *testServer) serve(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func alice() entity.Identity {
	return entity.Identity{UserID: 1, Username: "alice", FullName: "Alice Smith"}
}

func loggedIn(sess *entity.Session) {
	sess.Login(alice())
}

func withAmount(amount int64) func(*entity.Session) {
	return func(sess *entity.Session) {
		sess.SetPendingAmount(decimal.NewFromInt(amount))
	}
}

func messages(flashes []entity.Flash) []string {
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		out = append(out, f.Message)
	}
	return out
}

func aliceReceipt() *entity.TransactionRecord {
	return &entity.TransactionRecord{
		TransactionID: "TXN20240615093005DEADBEEF",
		Method:        entity.MethodUPI,
		Amount:        decimal.NewFromInt(500),
		Username:      "alice",
		FullName:      "Alice Smith",
		CreatedAt:     time.Date(2024, 6, 15, 9, 30, 5, 0, time.UTC),
		UPIID:         "alice@okbank",
	}
}
