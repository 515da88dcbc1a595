package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec(t *testing.T) {
	tp, advance := clock(t, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC))
	codec, err := NewCookieCodec("top-secret", time.Hour, tp)
	require.NoError(t, err)

	value, err := codec.Encode("abc")
	require.NoError(t, err)

	t.Run("Round trip", func(t *testing.T) {
		id, err := codec.Decode(value)
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("Tampered", func(t *testing.T) {
		_, err := codec.Decode(value + "x")
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})

	t.Run("Other secret", func(t *testing.T) {
		other, err := NewCookieCodec("another-secret", time.Hour, tp)
		require.NoError(t, err)

		_, err = other.Decode(value)
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := codec.Decode("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})

	t.Run("Expired", func(t *testing.T) {
		advance(2 * time.Hour)
		_, err := codec.Decode(value)
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})

	assert.Equal(t, 3600, codec.MaxAge())
}

func TestNewCookieCodec_RequiresSecret(t *testing.T) {
	tp, _ := clock(t, time.Now())

	_, err := NewCookieCodec("", time.Hour, tp)

	assert.Error(t, err)
}
