package payment

import (
	"crypto/rand"
	"io"

	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
)

// DefaultIDAttempts bounds how many fresh IDs are minted when the ledger
// reports a collision
const DefaultIDAttempts = 5

// Service implements the payment flow: amount entry, the transaction builder
// and receipt lookup
type Service struct {
	ledger       persistence.TransactionLedger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	idGenerator  *IDGenerator
	idAttempts   int
}

// Option customizes a Service
type Option func(*Service)

// WithRandomSource replaces crypto/rand as the source of transaction ID suffixes
func WithRandomSource(r io.Reader) Option {
	return func(s *Service) {
		s.idGenerator = NewIDGenerator(s.timeProvider, r)
	}
}

// WithIDAttempts sets how many IDs are tried before giving up on a payment
func WithIDAttempts(attempts int) Option {
	return func(s *Service) {
		if attempts > 0 {
			s.idAttempts = attempts
		}
	}
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	ledger persistence.TransactionLedger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
		idGenerator:  NewIDGenerator(timeProvider, rand.Reader),
		idAttempts:   DefaultIDAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
