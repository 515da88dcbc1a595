package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

// RedisStore keeps JSON-encoded sessions in Redis under session:<id>
type RedisStore struct {
	client       redis.Cmdable
	ttl          time.Duration
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client redis.Cmdable, ttl time.Duration, timeProvider core.TimeProvider, logger core.Logger) *RedisStore {
	return &RedisStore{
		client:       client,
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ persistence.SessionStore = (*RedisStore)(nil)

func sessionKey(id string) string {
	return keyPrefix + id
}

// Create starts an anonymous session; it is stored on the first Save
func (s *RedisStore) Create(ctx context.Context) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.NewSession(uuid.NewString(), s.timeProvider.Now()), nil
}

// Get loads and decodes a session
func (s *RedisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("Failed to load session", map[string]any{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: load session: %v", errs.ErrInternalServer, err)
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Warn("Discarding undecodable session", map[string]any{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, errs.ErrSessionNotFound
	}

	return &session, nil
}

// Save encodes the session and resets its TTL
func (s *RedisStore) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", errs.ErrInternalServer, err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to save session", map[string]any{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: save session: %v", errs.ErrInternalServer, err)
	}
	return nil
}

// Delete removes the session key
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		s.logger.Error("Failed to delete session", map[string]any{
			"session_id": id,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: delete session: %v", errs.ErrInternalServer, err)
	}
	return nil
}
