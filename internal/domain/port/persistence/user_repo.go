package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
)

// UserRepository defines the identity store operations used by signup and login
type UserRepository interface {
	// Create persists a new account and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email or username is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.UserAccount) error

	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no account has this ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.UserAccount, error)

	// FindByUsernameOrEmail retrieves the account whose username equals key
	// or whose email equals the lower-cased key
	//
	// Possible errors:
	// - ErrUserNotFound: If no account matches
	// - ErrDatabaseConnection: If database connection fails
	FindByUsernameOrEmail(ctx context.Context, key string) (*entity.UserAccount, error)

	// ExistsByEmail reports whether an account uses this (lower-cased) email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether an account uses this username
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
