// Package token issues and verifies signed identity assertions.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/himanshu221/medium-backend/internal/errs"
)

// Manager signs and verifies HS256 tokens bound to a shared server secret.
type Manager struct {
	secret []byte
}

// NewManager initializes a token manager with the signing secret
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue produces a compact signed token asserting the given user id.
// No expiry claim is set; issued tokens stay valid until the secret rotates.
func (m *Manager) Issue(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatInt(userID, 10),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and returns the embedded user id.
// Malformed tokens, signature mismatches and foreign signing methods all
// map to errs.ErrUnauthorized.
func (m *Manager) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errs.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errs.ErrUnauthorized
	}
	return userID, nil
}
