package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4001
	CodeInvalidPaymentMethod = 4002
	CodeAmountNotSet         = 4003
	CodeDuplicateTransaction = 4004
	CodeConstraintViolation  = 4005
	CodeInvalidCredentials   = 4010
	CodeNotAuthenticated     = 4011
	CodeUserNotFound         = 4040
	CodeTransactionNotFound  = 4041
	CodeNotFound             = 4044
	CodeDuplicateUser        = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrValidation is returned when user input fails a field validator
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPaymentMethod is returned when the payment method is not one of UPI, Card, Net Banking, Wallet
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrAmountNotSet is returned when a payment is submitted without a pending amount
	ErrAmountNotSet = errors.New("payment amount not set")

	// ErrDuplicateTransaction is returned when a transaction with the same ID already exists
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")

	// ErrInvalidCredentials is returned when the login key or password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned when an operation requires a logged-in session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSessionNotFound is returned when a session ID is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidPaymentMethod):
		return CodeInvalidPaymentMethod
	case errors.Is(err, ErrAmountNotSet):
		return CodeAmountNotSet
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrNotAuthenticated):
		return CodeNotAuthenticated
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ValidationError carries the field that failed and the user-facing reason
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateUserError reports which unique field of an account is already taken
type DuplicateUserError struct {
	Field string
	Value string
}

// Error implements the error interface
func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user already exists: %s is taken", e.Field)
}

// Is checks if the target error is an ErrDuplicateUser
func (e *DuplicateUserError) Is(target error) bool {
	return target == ErrDuplicateUser
}

// Reason returns the message shown to the user
func (e *DuplicateUserError) Reason() string {
	switch e.Field {
	case "email":
		return "Email already registered"
	case "username":
		return "Username already taken"
	default:
		return "Account already exists"
	}
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateUserError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_user",
		"field":      e.Field,
		"error_code": CodeDuplicateUser,
	}
}

// NewDuplicateUserError creates a new duplicate account error
func NewDuplicateUserError(field, value string) error {
	return &DuplicateUserError{Field: field, Value: value}
}

// TransactionError represents a failure while recording a payment
type TransactionError struct {
	TransactionID string
	Username      string
	Method        string
	Amount        string
	Err           error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error for ID %s (user: %s, method: %s, amount: %s): %v",
		e.TransactionID, e.Username, e.Method, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_error",
		"transaction_id": e.TransactionID,
		"username":       e.Username,
		"method":         e.Method,
		"amount":         e.Amount,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(transactionID, username, method, amount string, err error) error {
	return &TransactionError{
		TransactionID: transactionID,
		Username:      username,
		Method:        method,
		Amount:        amount,
		Err:           err,
	}
}

// Reason extracts the user-facing message for err. Server-side failures
// collapse into fallback so store details never reach the browser.
func Reason(err error, fallback string) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	var dErr *DuplicateUserError
	if errors.As(err, &dErr) {
		return dErr.Reason()
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username/email or password"
	case errors.Is(err, ErrNotAuthenticated):
		return "Please log in first"
	case errors.Is(err, ErrAmountNotSet):
		return "Please set an amount first"
	case errors.Is(err, ErrInvalidPaymentMethod):
		return "Invalid payment method"
	case errors.Is(err, ErrTransactionNotFound):
		return "Invalid transaction ID"
	default:
		return fallback
	}
}

// IsValidationError checks if the error is a field validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDuplicateUserError checks if the error is a duplicate account error
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsClientError reports whether err is caused by the caller rather than the server
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
