package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
)

// SignupRequest holds the raw fields of the registration form
type SignupRequest struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	FullName        string
}

// UserUseCase defines methods for account-related business operations
type UserUseCase interface {
	// Signup validates and registers a new account.
	// Fields are checked in the order email, username, password, confirmation, full name;
	// the first failure is returned as a ValidationError. A taken email or username
	// returns a DuplicateUserError and creates nothing.
	Signup(ctx context.Context, req SignupRequest) (*entity.UserAccount, error)

	// Authenticate resolves usernameOrEmail and checks the password.
	// Returns ErrInvalidCredentials for an unknown account or a wrong password.
	Authenticate(ctx context.Context, usernameOrEmail, password string) (*entity.Identity, error)

	// UserExists checks if an account exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
