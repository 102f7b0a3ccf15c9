package client

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

// fakeToken builds a structurally valid JWT with an unverifiable
// signature; the session store never checks signatures.
func fakeToken(t *testing.T, claims models.JWTClaims) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".bm90LWEtc2ln"
}

func TestSessionStoreRoundTrip(t *testing.T) {
	uniID := "u1"
	token := fakeToken(t, models.JWTClaims{
		UserID:       "m1",
		Email:        "manager@iitk.ac.in",
		Role:         models.RoleManager,
		UniversityID: &uniID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	s := NewSessionStore(NewMemoryKV())
	require.NoError(t, s.SetSession(token))
	assert.Equal(t, token, s.Token())
	assert.True(t, s.IsLoggedIn())
	assert.True(t, s.IsManager())
	assert.False(t, s.IsAdmin())
	assert.True(t, s.HasRole(models.RoleAdmin, models.RoleManager))
	assert.Equal(t, "u1", s.ManagedUniversityID())

	claims := s.Current()
	require.NotNil(t, claims)
	assert.Equal(t, "manager@iitk.ac.in", claims.Email)
}

func TestSessionStoreRejectsMalformedToken(t *testing.T) {
	s := NewSessionStore(NewMemoryKV())
	assert.Error(t, s.SetSession("not-a-jwt"))
	assert.Error(t, s.SetSession("a.!!!.c"))
	assert.Empty(t, s.Token())
}

func TestSessionStoreForcesLogoutOnUndecodableToken(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(sessionTokenKey, "garbage-from-an-old-release"))

	s := NewSessionStore(kv)
	assert.Nil(t, s.Current())
	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.Token(), "an undecodable token is cleared, not retried")
}

func TestSessionStoreForcesLogoutOnExpiredToken(t *testing.T) {
	token := fakeToken(t, models.JWTClaims{
		UserID: "a1",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(sessionTokenKey, token))

	s := NewSessionStore(kv)
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Token())
}

func TestSessionStoreLogout(t *testing.T) {
	token := fakeToken(t, models.JWTClaims{UserID: "a1", Role: models.RoleAdmin})
	s := NewSessionStore(NewMemoryKV())
	require.NoError(t, s.SetSession(token))
	require.True(t, s.IsLoggedIn())

	s.Logout()
	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.ManagedUniversityID())
}

func TestFileKVPersistsAcrossReopen(t *testing.T) {
	path := t.TempDir() + "/state.json"

	kv, err := NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("k", "v"))

	reopened, err := NewFileKV(path)
	require.NoError(t, err)
	v, ok := reopened.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, reopened.Delete("k"))
	again, err := NewFileKV(path)
	require.NoError(t, err)
	_, ok = again.Get("k")
	assert.False(t, ok)
}
