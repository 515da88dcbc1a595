package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
)

// Authenticate resolves a username or email and verifies the password
func (u *UserUseCase) Authenticate(ctx context.Context, usernameOrEmail, password string) (*entity.Identity, error) {
	key := strings.TrimSpace(usernameOrEmail)
	password = strings.TrimSpace(password)

	if key == "" || password == "" {
		return nil, errs.NewValidationError("", "Please enter username/email and password")
	}

	account, err := u.userRepo.FindByUsernameOrEmail(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Info("Login failed", map[string]any{
				"reason": "unknown account",
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := u.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		u.logger.Error("Failed to verify password", map[string]any{
			"userId": account.ID,
			"error":  err.Error(),
		})
		return nil, err
	}
	if !ok {
		u.logger.Info("Login failed", map[string]any{
			"userId": account.ID,
			"reason": "wrong password",
		})
		return nil, errs.ErrInvalidCredentials
	}

	identity := account.Identity()
	u.logger.Info("User logged in", map[string]any{
		"userId":   identity.UserID,
		"username": identity.Username,
	})

	return &identity, nil
}
