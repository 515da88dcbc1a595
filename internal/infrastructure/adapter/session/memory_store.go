package session

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	"github.com/google/uuid"
)

type memoryEntry struct {
	session   *entity.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with a sliding TTL
type MemoryStore struct {
	mu           sync.Mutex
	sessions     map[string]memoryEntry
	ttl          time.Duration
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewMemoryStore creates an in-process session store
func NewMemoryStore(ttl time.Duration, timeProvider core.TimeProvider, logger core.Logger) *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ persistence.SessionStore = (*MemoryStore)(nil)

// Create starts an anonymous session; it is stored on the first Save
func (s *MemoryStore) Create(ctx context.Context) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.NewSession(uuid.NewString(), s.timeProvider.Now()), nil
}

// Get returns a copy of a live session
func (s *MemoryStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	if !s.timeProvider.Now().Before(entry.expiresAt) {
		delete(s.sessions, id)
		s.logger.Debug("Session expired", map[string]any{"session_id": id})
		return nil, errs.ErrSessionNotFound
	}

	return cloneSession(entry.session), nil
}

// Save stores a copy of the session and extends its lifetime
func (s *MemoryStore) Save(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = memoryEntry{
		session:   cloneSession(session),
		expiresAt: s.timeProvider.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes the session; unknown IDs are ignored
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Purge drops every expired session and returns how many were removed
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	removed := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func cloneSession(src *entity.Session) *entity.Session {
	dst := *src
	if src.Identity != nil {
		identity := *src.Identity
		dst.Identity = &identity
	}
	if src.Flashes != nil {
		dst.Flashes = append([]entity.Flash(nil), src.Flashes...)
	}
	return &dst
}
