package payment

import (
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
)

const (
	idPrefix      = "TXN"
	idTimeLayout  = "20060102150405"
	idRandomBytes = 4
)

// TransactionIDPattern matches every ID the generator can produce
var TransactionIDPattern = regexp.MustCompile(`^TXN\d{14}[0-9A-F]{8}$`)

// IDGenerator mints transaction IDs: "TXN", the current time as
// YYYYMMDDHHMMSS, then 4 random bytes as uppercase hex
type IDGenerator struct {
	timeProvider coreport.TimeProvider
	random       io.Reader
}

// NewIDGenerator creates a generator reading randomness from random
func NewIDGenerator(timeProvider coreport.TimeProvider, random io.Reader) *IDGenerator {
	return &IDGenerator{
		timeProvider: timeProvider,
		random:       random,
	}
}

// Next returns a new ID and the instant it was minted at
func (g *IDGenerator) Next() (string, time.Time, error) {
	buf := make([]byte, idRandomBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to read random bytes: %w", err)
	}

	now := g.timeProvider.Now()
	id := idPrefix + now.Format(idTimeLayout) + strings.ToUpper(hex.EncodeToString(buf))
	return id, now, nil
}

// IsTransactionID reports whether id has the shape of a generated transaction ID
func IsTransactionID(id string) bool {
	return TransactionIDPattern.MatchString(id)
}
