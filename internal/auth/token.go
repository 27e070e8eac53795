// Package auth issues and verifies the bearer tokens that gate every drive
// operation.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"drivebox/internal/domain"
)

// TokenCodec mints and verifies bearer tokens. The middleware depends on
// this interface, not on the signing details.
type TokenCodec interface {
	// Issue signs a token identifying the given user
	Issue(userID string) (string, error)

	// Verify validates a token and returns the user id it names.
	// Returns domain.ErrUnauthorized for anything invalid or expired.
	Verify(token string) (string, error)
}

// HS256Codec signs tokens with a shared secret, the way the rest of this
// application expects them (sub = user id).
type HS256Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewHS256Codec creates a token codec from a shared secret
func NewHS256Codec(secret string, ttl time.Duration) (*HS256Codec, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &HS256Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token identifying the given user
func (c *HS256Codec) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the user id it names
func (c *HS256Codec) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			// Pin the algorithm; never accept whatever the token claims
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return c.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}

	return claims.Subject, nil
}
