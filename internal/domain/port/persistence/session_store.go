package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
)

// SessionStore keeps per-browser sessions between requests
type SessionStore interface {
	// Create starts a new anonymous session
	Create(ctx context.Context) (*entity.Session, error)

	// Get loads a session
	//
	// Possible errors:
	// - ErrSessionNotFound: If the ID is unknown or expired
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Save stores the current state of the session
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes the session
	Delete(ctx context.Context, id string) error
}
