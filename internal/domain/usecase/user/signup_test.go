package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/payment-gateway/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/payment-gateway/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type signupMocks struct {
	repo   *persistencemocks.MockUserRepository
	uow    *persistencemocks.MockUnitOfWork
	hasher *coremocks.MockPasswordHasher
	time   *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
}

func newSignupMocks(t *testing.T) signupMocks {
	m := signupMocks{
		repo:   persistencemocks.NewMockUserRepository(t),
		uow:    persistencemocks.NewMockUnitOfWork(t),
		hasher: coremocks.NewMockPasswordHasher(t),
		time:   coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m signupMocks) useCase() *UserUseCase {
	return NewUserUseCase(m.repo, m.uow, m.hasher, m.time, m.logger)
}

type txCtxKey struct{}

func validSignup() usecase.SignupRequest {
	return usecase.SignupRequest{
		Email:           "  Alice@Example.com ",
		Username:        " alice ",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FullName:        " Alice Smith ",
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txCtxKey{}, "tx")
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Successful signup", func(t *testing.T) {
		m := newSignupMocks(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.repo).Once()
		m.repo.EXPECT().ExistsByEmail(txCtx, "alice@example.com").Return(false, nil).Once()
		m.repo.EXPECT().ExistsByUsername(txCtx, "alice").Return(false, nil).Once()
		m.hasher.EXPECT().Hash("secret123").Return("$argon2id$hash", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().Create(txCtx, mock.MatchedBy(func(u *entity.UserAccount) bool {
			return u.Email == "alice@example.com" && u.Username == "alice" &&
				u.FullName == "Alice Smith" && u.PasswordHash == "$argon2id$hash"
		})).Run(func(_ context.Context, u *entity.UserAccount) {
			u.ID = 1
		}).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		account, err := m.useCase().Signup(ctx, validSignup())

		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
		assert.Equal(t, "alice@example.com", account.Email)
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.NotEqual(t, "secret123", account.PasswordHash)
	})

	t.Run("Validation order and reasons", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*usecase.SignupRequest)
			field  string
			reason string
		}{
			{"Bad email first", func(r *usecase.SignupRequest) { r.Email = "nope"; r.Username = "x" }, "email", "Invalid email format"},
			{"Short username", func(r *usecase.SignupRequest) { r.Username = "ab"; r.Password = "1" }, "username", "Username must be at least 3 characters"},
			{"Short password", func(r *usecase.SignupRequest) { r.Password = "123"; r.ConfirmPassword = "123" }, "password", "Password must be at least 6 characters"},
			{"Mismatch", func(r *usecase.SignupRequest) { r.ConfirmPassword = "other123" }, "confirm_password", "Passwords do not match"},
			{"Full name", func(r *usecase.SignupRequest) { r.FullName = "Al1ce" }, "full_name", "Full name must contain only letters and spaces"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				m := newSignupMocks(t)
				req := validSignup()
				tc.mutate(&req)

				account, err := m.useCase().Signup(ctx, req)

				assert.Nil(t, account)
				var vErr *errs.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tc.field, vErr.Field)
				assert.Equal(t, tc.reason, vErr.Reason)
			})
		}
	})

	t.Run("Duplicate email rolls back and creates nothing", func(t *testing.T) {
		m := newSignupMocks(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.repo).Once()
		m.repo.EXPECT().ExistsByEmail(txCtx, "alice@example.com").Return(true, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		account, err := m.useCase().Signup(ctx, validSignup())

		assert.Nil(t, account)
		assert.True(t, errs.IsDuplicateUserError(err))
		assert.Equal(t, "Email already registered", errs.Reason(err, ""))
		m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		m := newSignupMocks(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.repo).Once()
		m.repo.EXPECT().ExistsByEmail(txCtx, "alice@example.com").Return(false, nil).Once()
		m.repo.EXPECT().ExistsByUsername(txCtx, "alice").Return(true, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := m.useCase().Signup(ctx, validSignup())

		assert.Equal(t, "Username already taken", errs.Reason(err, ""))
	})

	t.Run("Store failure during create rolls back", func(t *testing.T) {
		m := newSignupMocks(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.repo).Once()
		m.repo.EXPECT().ExistsByEmail(txCtx, mock.Anything).Return(false, nil).Once()
		m.repo.EXPECT().ExistsByUsername(txCtx, mock.Anything).Return(false, nil).Once()
		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		account, err := m.useCase().Signup(ctx, validSignup())

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, "An error occurred during registration", errs.Reason(err, "An error occurred during registration"))
	})

	t.Run("Begin failure", func(t *testing.T) {
		m := newSignupMocks(t)
		m.uow.EXPECT().Begin(ctx).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := m.useCase().Signup(ctx, validSignup())

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	m := newSignupMocks(t)
	m.repo.EXPECT().GetByID(ctx, uint64(1)).Return(&entity.UserAccount{ID: 1}, nil).Once()
	m.repo.EXPECT().GetByID(ctx, uint64(2)).Return(nil, errs.ErrUserNotFound).Once()
	m.repo.EXPECT().GetByID(ctx, uint64(3)).Return(nil, errs.ErrDatabaseConnection).Once()

	uc := m.useCase()

	exists, err := uc.UserExists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = uc.UserExists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = uc.UserExists(ctx, 3)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}
