// Package token is the signing capability behind the session store: HMAC
// signed access and refresh tokens with separate secrets and lifetimes.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	PrincipalID uint   `json:"id"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (m *Manager) SignAccess(principalID uint, role string) (string, error) {
	return sign(m.accessSecret, principalID, role, m.accessTTL)
}

func (m *Manager) SignRefresh(principalID uint, role string) (string, error) {
	return sign(m.refreshSecret, principalID, role, m.refreshTTL)
}

// SignAccessWithTTL issues an access-secret token with a caller-chosen
// lifetime. Customer logins use it for their long-lived cookie token.
func (m *Manager) SignAccessWithTTL(principalID uint, role string, ttl time.Duration) (string, error) {
	return sign(m.accessSecret, principalID, role, ttl)
}

func (m *Manager) VerifyAccess(raw string) (*Claims, error) {
	return verify(m.accessSecret, raw)
}

func (m *Manager) VerifyRefresh(raw string) (*Claims, error) {
	return verify(m.refreshSecret, raw)
}

func sign(secret []byte, principalID uint, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func verify(secret []byte, raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
