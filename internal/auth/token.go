package auth

import (
	"errors"
	"strings"
	"time"

	"edupress/internal/data"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rotisserie/eris"
)

var (
	// ErrMissingIDToken is returned when the token endpoint response carries no id_token.
	ErrMissingIDToken = errors.New("no id_token field in oauth2 token")
	// ErrInvalidToken is returned for bearer tokens that fail verification.
	ErrInvalidToken = errors.New("invalid bearer token")
)

const tokenIssuer = "edupress"

// TokenClaims are the claims of an API bearer token.
type TokenClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// Role returns the role granted by the token's scopes.
func (c *TokenClaims) Role() data.Role {
	return RoleForScopes(c.Scopes)
}

// RoleForScopes maps API key scopes to a role. Any write scope grants author, anything
// else is read-only.
func RoleForScopes(scopes []string) data.Role {
	for _, scope := range scopes {
		if strings.HasPrefix(scope, "write:") {
			return data.RoleAuthor
		}
	}
	return data.RoleViewer
}

// TokenIssuer signs and verifies HS256 bearer tokens for API keys.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. The secret must not be empty.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, eris.New("token secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for subject carrying scopes.
func (t *TokenIssuer) Issue(subject string, scopes []string) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := TokenClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, eris.Wrap(err, "failed to sign token")
	}
	return signed, expires, nil
}

// Parse verifies raw and returns its claims.
func (t *TokenIssuer) Parse(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, eris.Wrap(ErrInvalidToken, err.Error())
	}
	return claims, nil
}
