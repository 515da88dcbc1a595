package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	"github.com/gin-gonic/gin"
)

const (
	sessionKey      = "session"
	sessionStateKey = "session_state"
)

// CookieCodec signs and verifies the session cookie value
type CookieCodec interface {
	Encode(sessionID string) (string, error)
	Decode(value string) (string, error)
	MaxAge() int
}

// SessionOptions configures the session cookie
type SessionOptions struct {
	CookieName string
	Secure     bool
}

// sessionWriter persists the session right before the first byte of the
// response goes out, so a redirected browser never races the store
type sessionWriter struct {
	gin.ResponseWriter
	persist func()
}

func (w *sessionWriter) WriteHeaderNow() {
	w.persist()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(data []byte) (int, error) {
	w.persist()
	return w.ResponseWriter.Write(data)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.persist()
	return w.ResponseWriter.WriteString(s)
}

// sessionState tracks the session served to the current request. RenewSession
// swaps it before the response is written.
type sessionState struct {
	store   persistence.SessionStore
	codec   CookieCodec
	logger  coreport.Logger
	session *entity.Session
	cookie  string
}

// Sessions loads the browser's session (or starts one), exposes it through
// CurrentSession and saves it once the handler produces a response
func Sessions(store persistence.SessionStore, codec CookieCodec, opts SessionOptions, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		session := loadSession(ctx, c, store, codec, opts.CookieName, logger)
		if session == nil {
			var err error
			session, err = store.Create(ctx)
			if err != nil {
				logger.Error("Failed to create session", map[string]any{
					"error":      err.Error(),
					"request_id": GetRequestID(c),
				})
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		value, err := codec.Encode(session.ID)
		if err != nil {
			logger.Error("Failed to sign session cookie", map[string]any{"error": err.Error()})
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		state := &sessionState{
			store:   store,
			codec:   codec,
			logger:  logger,
			session: session,
			cookie:  value,
		}
		c.Set(sessionStateKey, state)
		c.Set(sessionKey, session)

		var once sync.Once
		persist := func() {
			once.Do(func() {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(opts.CookieName, state.cookie, codec.MaxAge(), "/", "", opts.Secure, true)

				if err := store.Save(ctx, state.session); err != nil {
					logger.Error("Failed to save session", map[string]any{
						"error":      err.Error(),
						"session_id": state.session.ID,
						"request_id": GetRequestID(c),
					})
				}
			})
		}
		c.Writer = &sessionWriter{ResponseWriter: c.Writer, persist: persist}

		c.Next()

		persist()
	}
}

// RenewSession replaces the current session with a freshly issued one and
// drops the old ID from the store. Pending flashes survive the switch.
// Call it whenever the session's privilege level changes.
func RenewSession(c *gin.Context) error {
	v, ok := c.Get(sessionStateKey)
	state, _ := v.(*sessionState)
	if !ok || state == nil {
		return fmt.Errorf("%w: no session attached to request", domainerr.ErrInternalServer)
	}

	ctx := c.Request.Context()
	fresh, err := state.store.Create(ctx)
	if err != nil {
		return err
	}
	value, err := state.codec.Encode(fresh.ID)
	if err != nil {
		return err
	}

	old := state.session
	fresh.Flashes = append(fresh.Flashes, old.Flashes...)
	if err := state.store.Delete(ctx, old.ID); err != nil {
		state.logger.Warn("Failed to delete replaced session", map[string]any{
			"error":      err.Error(),
			"session_id": old.ID,
			"request_id": GetRequestID(c),
		})
	}

	state.session = fresh
	state.cookie = value
	c.Set(sessionKey, fresh)
	return nil
}

func loadSession(
	ctx context.Context,
	c *gin.Context,
	store persistence.SessionStore,
	codec CookieCodec,
	cookieName string,
	logger coreport.Logger,
) *entity.Session {
	value, err := c.Cookie(cookieName)
	if err != nil || value == "" {
		return nil
	}

	id, err := codec.Decode(value)
	if err != nil {
		logger.Debug("Ignoring invalid session cookie", map[string]any{
			"error":      err.Error(),
			"request_id": GetRequestID(c),
		})
		return nil
	}

	session, err := store.Get(ctx, id)
	if err != nil {
		return nil
	}
	return session
}

// CurrentSession returns the session attached by Sessions
func CurrentSession(c *gin.Context) *entity.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(*entity.Session); ok {
			return session
		}
	}
	return nil
}
