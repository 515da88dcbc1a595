package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/validation"
)

// Signup validates the registration form and creates the account atomically
func (u *UserUseCase) Signup(ctx context.Context, req usecase.SignupRequest) (*entity.UserAccount, error) {
	req = normalizeSignup(req)

	if err := validateSignup(req); err != nil {
		u.logger.Debug("Signup rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	txCtx, err := u.unitOfWork.Begin(ctx)
	if err != nil {
		u.logger.Error("Failed to begin signup transaction", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.unitOfWork.Rollback(txCtx); rbErr != nil {
				u.logger.Warn("Failed to roll back signup", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	repo := u.unitOfWork.GetUserRepository(txCtx)

	// Duplicate checks run in the same order the fields are validated
	emailTaken, err := repo.ExistsByEmail(txCtx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, errs.NewDuplicateUserError("email", req.Email)
	}

	usernameTaken, err := repo.ExistsByUsername(txCtx, req.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, errs.NewDuplicateUserError("username", req.Username)
	}

	passwordHash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	account := entity.NewUserAccount(req.Email, req.Username, passwordHash, req.FullName, u.timeProvider)
	if err := repo.Create(txCtx, account); err != nil {
		u.logger.Error("Failed to create account", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	if err := u.unitOfWork.Commit(txCtx); err != nil {
		u.logger.Error("Failed to commit signup", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, err
	}
	committed = true

	u.logger.Info("Account created", map[string]any{
		"userId":   account.ID,
		"username": account.Username,
	})

	return account, nil
}

func normalizeSignup(req usecase.SignupRequest) usecase.SignupRequest {
	return usecase.SignupRequest{
		Email:           entity.NormalizeEmail(req.Email),
		Username:        strings.TrimSpace(req.Username),
		Password:        strings.TrimSpace(req.Password),
		ConfirmPassword: strings.TrimSpace(req.ConfirmPassword),
		FullName:        strings.TrimSpace(req.FullName),
	}
}

// validateSignup returns the first failing field as a *ValidationError
func validateSignup(req usecase.SignupRequest) error {
	if err := validation.ValidateEmail(req.Email).Err("email"); err != nil {
		return err
	}
	if err := validation.ValidateUsername(req.Username).Err("username"); err != nil {
		return err
	}
	if err := validation.ValidatePassword(req.Password).Err("password"); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return errs.NewValidationError("confirm_password", "Passwords do not match")
	}
	return validation.ValidateFullName(req.FullName).Err("full_name")
}
