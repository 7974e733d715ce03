package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds encoded in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Typed validation errors. Callers map these onto HTTP statuses;
// the manager itself knows nothing about transport.
var (
	ErrExpiredToken   = errors.New("token has expired")
	ErrMalformedToken = errors.New("token is malformed or has an invalid signature")
	ErrWrongTokenType = errors.New("token is of the wrong type")
)

// Claims carried by every token issued by the Manager.
// AccountID is the subject; Type distinguishes access from refresh tokens.
type Claims struct {
	AccountID int64  `json:"account_id"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256-signed tokens.
// Validation is pure computation: signature check plus clock comparison.
type Manager struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a JWT manager. Access tokens are short-lived
// (minutes), refresh tokens long-lived (hours to days).
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived access token for the account.
func (m *Manager) GenerateAccessToken(accountID int64) (string, error) {
	return m.generate(accountID, TokenTypeAccess, m.accessTTL)
}

// GenerateRefreshToken issues a long-lived refresh token for the account.
// Refresh tokens are never rotated server-side; there is no revocation list.
func (m *Manager) GenerateRefreshToken(accountID int64) (string, error) {
	return m.generate(accountID, TokenTypeRefresh, m.refreshTTL)
}

func (m *Manager) generate(accountID int64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken verifies signature and expiry and returns the claims.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}

	if !token.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// ValidateAccessToken validates the token and checks it is an access token.
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// ValidateRefreshToken validates the token and checks it is a refresh token.
func (m *Manager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != TokenTypeRefresh {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
