package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues and validates the cookie token. The token carries only the
// session id (jti); identity always comes from the server-side store.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a signer with the given HMAC secret and absolute lifetime.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Key returns the HMAC key, for token parsing middleware.
func (s *Signer) Key() []byte { return s.secret }

// Sign returns a token for sessionID and its expiry.
func (s *Signer) Sign(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(s.ttl)
	claims := &jwt.RegisteredClaims{
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return token, expires, err
}

// Verify validates a token and returns the session id it names.
func (s *Signer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.ID, nil
}
