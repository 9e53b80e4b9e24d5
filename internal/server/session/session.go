// Package session mints and resolves the signed bearer tokens that carry a
// user's identity between requests. Tokens are self-contained: resolving one
// never touches the credential store.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/server/auth"
)

// Claims embeds the registered claims (iat, exp) plus the identity fields.
// The password hash never appears here.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

// Manager signs and verifies session tokens with a process-wide HS256 key.
type Manager struct {
	secret       []byte
	lifetime     time.Duration
	refreshAfter time.Duration

	// now is a test seam.
	now func() time.Time
}

// NewManager fails when the signing key is empty; the app treats that as a
// fatal startup condition rather than a per-request error.
func NewManager(secret string, lifetime, refreshAfter time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session: signing key is required")
	}
	return &Manager{
		secret:       []byte(secret),
		lifetime:     lifetime,
		refreshAfter: refreshAfter,
		now:          time.Now,
	}, nil
}

// Issue mints a token for the given identity with a fresh issued-at and an
// expiry one full lifetime away.
func (m *Manager) Issue(identity *auth.Identity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
		UserID: identity.ID,
		Email:  identity.Email,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return signed, nil
}

// Resolve verifies the signature and expiry and returns the embedded
// identity. Bad signature, malformed payload, and expiry all surface as
// sentinel errors the edge treats uniformly as "no session".
func (m *Manager) Resolve(tokenString string) (*auth.Identity, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &auth.Identity{ID: claims.UserID, Email: claims.Email}, nil
}

// RefreshIfNeeded re-issues the token with a fresh issued-at/expiry when it
// is older than the refresh interval. A token inside the interval comes back
// unchanged; an invalid or expired token is never refreshed.
func (m *Manager) RefreshIfNeeded(tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}

	if claims.IssuedAt == nil || m.now().Sub(claims.IssuedAt.Time) < m.refreshAfter {
		return tokenString, nil
	}

	return m.Issue(&auth.Identity{ID: claims.UserID, Email: claims.Email})
}

func (m *Manager) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
