package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlashCategory classifies a one-shot message shown on the next page
type FlashCategory string

// Flash categories
const (
	FlashSuccess FlashCategory = "success"
	FlashError   FlashCategory = "error"
)

// Flash is a message displayed once and then discarded
type Flash struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}

// Session is the per-browser conversation state: who is logged in, the amount
// entered on the payment page and pending flash messages.
type Session struct {
	ID            string          `json:"id"`
	Identity      *Identity       `json:"identity,omitempty"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	Flashes       []Flash         `json:"flashes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewSession creates an anonymous session
func NewSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:            id,
		PendingAmount: decimal.Zero,
		CreatedAt:     createdAt,
	}
}

// IsAuthenticated reports whether a user is logged in on this session
func (s *Session) IsAuthenticated() bool {
	return s.Identity != nil
}

// Login binds identity to the session
func (s *Session) Login(identity Identity) {
	id := identity
	s.Identity = &id
}

// Logout clears the whole session, including the pending amount and queued messages
func (s *Session) Logout() {
	s.Identity = nil
	s.PendingAmount = decimal.Zero
	s.Flashes = nil
}

// HasPendingAmount reports whether a chargeable amount was entered
func (s *Session) HasPendingAmount() bool {
	return IsPositiveAmount(s.PendingAmount)
}

// SetPendingAmount stores the amount entered on the payment page
func (s *Session) SetPendingAmount(amount decimal.Decimal) {
	s.PendingAmount = amount
}

// ClearPendingAmount resets the amount after a successful payment
func (s *Session) ClearPendingAmount() {
	s.PendingAmount = decimal.Zero
}

// AddFlash queues a message for the next rendered page
func (s *Session) AddFlash(category FlashCategory, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns and clears all queued messages
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
