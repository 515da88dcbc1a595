package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCookie is returned for cookies that are unsigned, tampered or expired
var ErrInvalidCookie = errors.New("invalid session cookie")

const cookieIssuer = "paygate"

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieCodec signs session IDs into HS256 tokens for the browser cookie
type CookieCodec struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewCookieCodec creates a codec; secret must not be empty
func NewCookieCodec(secret string, ttl time.Duration, timeProvider core.TimeProvider) (*CookieCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &CookieCodec{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Encode returns the signed cookie value for sessionID
func (c *CookieCodec) Encode(sessionID string) (string, error) {
	now := c.timeProvider.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cookieIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return token, nil
}

// Decode verifies the cookie value and returns the session ID it carries
func (c *CookieCodec) Decode(value string) (string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(value, &claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.timeProvider.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if claims.SessionID == "" {
		return "", ErrInvalidCookie
	}
	return claims.SessionID, nil
}

// MaxAge is the cookie lifetime in seconds
func (c *CookieCodec) MaxAge() int {
	return int(c.ttl / time.Second)
}
