package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned when a stored hash cannot be decoded
var ErrMalformedHash = errors.New("malformed password hash")

// Argon2Params holds the argon2id cost parameters
type Argon2Params struct {
	Time       uint32 `mapstructure:"time"`
	Memory     uint32 `mapstructure:"memory"` // KiB
	Threads    uint8  `mapstructure:"threads"`
	KeyLength  uint32 `mapstructure:"keyLength"`
	SaltLength uint32 `mapstructure:"saltLength"`
}

// DefaultArgon2Params follows the RFC 9106 second recommended option
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:       3,
		Memory:     64 * 1024,
		Threads:    2,
		KeyLength:  32,
		SaltLength: 16,
	}
}

// Argon2Hasher hashes passwords with argon2id into PHC-formatted strings
type Argon2Hasher struct {
	params Argon2Params
	random io.Reader
}

// NewArgon2Hasher creates a hasher using crypto/rand for salts
func NewArgon2Hasher(params Argon2Params) core.PasswordHasher {
	return &Argon2Hasher{params: params, random: rand.Reader}
}

// Hash returns $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the key with the parameters stored in encodedHash.
// A well-formed hash that does not match returns false and no error.
func (h *Argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLength)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encodedHash string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, ErrMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrMalformedHash
	}
	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
