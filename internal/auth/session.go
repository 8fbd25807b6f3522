package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid or expired session")
)

// SessionMaxAge is how long a persisted session stays valid.
const SessionMaxAge = 24 * time.Hour

// SessionManager issues and validates the signed session tokens persisted
// between runs.
type SessionManager struct {
	secretKey []byte
	maxAge    time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// NewSessionManager creates a session manager. The signing key is derived
// from the registry passphrase, so it shares that passphrase's weakness.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		secretKey: registryKey(),
		maxAge:    SessionMaxAge,
		now:       time.Now,
	}
}

// Issue creates a signed session token for the given user ID.
func (m *SessionManager) Issue(userID string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a session token and returns the user ID it names.
// Expired or tampered tokens return ErrInvalidSession.
func (m *SessionManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
