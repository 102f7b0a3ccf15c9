package client

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/edudham/edudham-api/internal/models"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

const sessionTokenKey = "edudham.token"

// SessionStore keeps the bearer token across restarts and answers
// identity questions from the token's payload. The payload is decoded
// without verifying the signature; the server re-checks every request,
// so the client-side decode only drives what the UI shows. A token that
// cannot be decoded, or has expired, forces a logout.
type SessionStore struct {
	kv KV
}

// NewSessionStore builds a session store over the given KV.
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Token returns the persisted bearer token, or "" when logged out. It
// satisfies TokenSource.
func (s *SessionStore) Token() string {
	tok, _ := s.kv.Get(sessionTokenKey)
	return tok
}

// SetSession persists the token from a successful login. An
// undecodable token is rejected and nothing is stored.
func (s *SessionStore) SetSession(token string) error {
	if _, err := decodeClaims(token); err != nil {
		return err
	}
	return s.kv.Set(sessionTokenKey, token)
}

// Logout drops the persisted token.
func (s *SessionStore) Logout() {
	_ = s.kv.Delete(sessionTokenKey)
}

// Current returns the identity behind the persisted token. When no
// token is stored, or the stored token is undecodable or expired, it
// returns nil after clearing the session.
func (s *SessionStore) Current() *models.JWTClaims {
	tok := s.Token()
	if tok == "" {
		return nil
	}
	claims, err := decodeClaims(tok)
	if err != nil {
		s.Logout()
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		s.Logout()
		return nil
	}
	return claims
}

// IsLoggedIn reports whether a usable session exists.
func (s *SessionStore) IsLoggedIn() bool {
	return s.Current() != nil
}

// HasRole reports whether the session's role is one of the given roles.
func (s *SessionStore) HasRole(roles ...models.UserRole) bool {
	claims := s.Current()
	if claims == nil {
		return false
	}
	for _, role := range roles {
		if claims.Role == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session belongs to an admin.
func (s *SessionStore) IsAdmin() bool {
	return s.HasRole(models.RoleAdmin)
}

// IsManager reports whether the session belongs to a university manager.
func (s *SessionStore) IsManager() bool {
	return s.HasRole(models.RoleManager)
}

// ManagedUniversityID returns the university a manager session
// administers, or "" for other roles.
func (s *SessionStore) ManagedUniversityID() string {
	claims := s.Current()
	if claims == nil || claims.UniversityID == nil {
		return ""
	}
	return *claims.UniversityID
}

// decodeClaims reads the JWT payload segment without checking the
// signature.
func decodeClaims(token string) (*models.JWTClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "malformed token")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "malformed token payload")
	}
	var claims models.JWTClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "malformed token payload")
	}
	return &claims, nil
}
