package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

const testSecret = "test-secret"

func adminIdentity() *domain.Identity {
	return &domain.Identity{ID: 1, OpenID: "admin-user", Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager(testSecret, "", false)

	token, err := m.Issue(adminIdentity(), time.Now(), time.Hour)
	require.NoError(t, err)

	identity, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, adminIdentity(), identity)
}

func TestManager_Parse_Rejects(t *testing.T) {
	m := NewManager(testSecret, "", false)

	expired, err := m.Issue(adminIdentity(), time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	foreign, err := NewManager("other-secret", "", false).Issue(adminIdentity(), time.Now(), time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1", "role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin", "role": "admin"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"expired":     expired,
		"foreign":     foreign,
		"alg none":    none,
		"bad subject": badSubject,
		"garbage":     "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestManager_UnknownRoleDegradesToUser(t *testing.T) {
	m := NewManager(testSecret, "", false)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "9", "role": "superuser"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	identity, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, identity.Role)
}

func TestManager_FromRequest(t *testing.T) {
	m := NewManager(testSecret, "sid", false)
	token, err := m.Issue(adminIdentity(), time.Now(), time.Hour)
	require.NoError(t, err)

	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: token})

		identity, err := m.FromRequest(r)
		require.NoError(t, err)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("bearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		identity, err := m.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, int64(1), identity.ID)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := m.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestManager_ClearCookie(t *testing.T) {
	m := NewManager(testSecret, "sid", true)
	rec := httptest.NewRecorder()

	m.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
	assert.True(t, cookies[0].Secure)
}
