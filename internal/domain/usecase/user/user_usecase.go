package user

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
)

// UserUseCase handles account-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	unitOfWork   persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	unitOfWork persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		unitOfWork:   unitOfWork,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UserExists checks if an account with the given ID exists
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
