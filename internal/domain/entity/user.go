package entity

import (
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
)

// UserAccount represents a registered user of the gateway
type UserAccount struct {
	ID           uint64    // Unique identifier assigned by the identity store
	Email        string    // Always stored lower-cased
	Username     string    // Case-sensitive, unique
	PasswordHash string    // Encoded one-way hash, never the plaintext
	FullName     string    // Display name
	CreatedAt    time.Time // When the account was created
}

// Identity is the subset of an account a logged-in session carries
type Identity struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// NewUserAccount builds an account from already validated signup fields
func NewUserAccount(email, username, passwordHash, fullName string, timeProvider coreport.TimeProvider) *UserAccount {
	return &UserAccount{
		Email:        NormalizeEmail(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		CreatedAt:    timeProvider.Now(),
	}
}

// Identity returns the session identity for this account
func (u *UserAccount) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		FullName: u.FullName,
	}
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
