package security

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the suite fast
func testParams() Argon2Params {
	return Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLength: 32, SaltLength: 16}
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	hasher := NewArgon2Hasher(testParams())

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, hash, "secret123")

	ok, err := hasher.Verify("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("secret124", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_SaltsDiffer(t *testing.T) {
	hasher := NewArgon2Hasher(testParams())

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2Hasher_UsesParametersFromHash(t *testing.T) {
	old := NewArgon2Hasher(testParams())
	hash, err := old.Hash("secret123")
	require.NoError(t, err)

	stronger := testParams()
	stronger.Time = 2
	stronger.Memory = 2048

	ok, err := NewArgon2Hasher(stronger).Verify("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hasher_DeterministicWithFixedSalt(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, 16)
	hasher := &Argon2Hasher{params: testParams(), random: bytes.NewReader(append(salt, salt...))}

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "$AQEBAQEBAQEBAQEBAQEBAQ$")
}

func TestArgon2Hasher_SaltFailure(t *testing.T) {
	hasher := &Argon2Hasher{params: testParams(), random: bytes.NewReader([]byte{1, 2})}

	_, err := hasher.Hash("secret123")

	assert.Error(t, err)
}

func TestArgon2Hasher_MalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher(testParams())

	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1024,t=1,p=1$AQEB$AQEB",
		"$argon2id$v=16$m=1024,t=1,p=1$AQEB$AQEB",
		"$argon2id$v=19$m=x,t=1,p=1$AQEB$AQEB",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$AQEB",
		"$argon2id$v=19$m=1024,t=1,p=1$AQEB$",
	} {
		ok, err := hasher.Verify("secret123", encoded)
		assert.False(t, ok, encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}
