package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	errorMapper     *database.ErrorMapper
	retryConfig     database.RetryConfig
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		errorMapper:     database.NewErrorMapper(),
		retryConfig:     database.DefaultRetryConfig(),
	}
}

// Factory binds new repositories to whatever connection the unit of work hands over
func Factory(logger coreport.Logger) database.UserRepositoryFactory {
	return func(db *gorm.DB) persistence.UserRepository {
		return NewUserRepository(db, logger)
	}
}

func modelToEntity(m *model.UserAccount) *entity.UserAccount {
	return &entity.UserAccount{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		CreatedAt:    m.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	mapped := r.errorMapper.MapUserNotFoundError(err)
	if errs.IsUserNotFoundError(mapped) {
		r.logger.Debug("User not found", logFields)
		return mapped
	}

	errorType := r.errorClassifier.Classify(err)
	logFields["error_type"] = string(errorType)
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	switch errorType {
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrDuplicateUser, operation)
	case TransientError, ConnectionError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, operation)
	}
	return mapped
}

// GetByID retrieves an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.UserAccount, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.UserAccount
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		return r.db.WithContext(ctx).First(&userModel, id).Error
	}, r.logger)
	if err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}

	return modelToEntity(&userModel), nil
}

// FindByUsernameOrEmail retrieves an account by exact username or by email
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, key string) (*entity.UserAccount, error) {
	r.logger.Debug("Looking up user for login", nil)

	var userModel model.UserAccount
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		return r.db.WithContext(ctx).
			Where("username = ? OR lower(email) = ?", key, strings.ToLower(key)).
			First(&userModel).Error
	}, r.logger)
	if err != nil {
		return nil, r.handleDatabaseError("looking up user", err, nil)
	}

	return modelToEntity(&userModel), nil
}

// ExistsByEmail reports whether the email is already registered
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "lower(email) = ?", strings.ToLower(email))
}

// ExistsByUsername reports whether the username is already taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserAccount{}).Where(query, arg).Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("checking account uniqueness", result.Error, nil)
	}
	return count > 0, nil
}

// Create persists a new account and writes the assigned ID back to user
func (r *UserRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
	})

	userModel := model.UserAccount{
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			field := r.errorClassifier.DuplicateField(err)
			r.logger.Warn("Duplicate account on insert", map[string]any{
				"username": user.Username,
				"field":    field,
			})
			value := user.Username
			if field == "email" {
				value = user.Email
			}
			return errs.NewDuplicateUserError(field, value)
		}
		return r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return nil
}
