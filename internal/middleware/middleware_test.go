package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dmdstore-be/internal/session"
	"dmdstore-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	identity := session.Identity{UserID: 1, Login: "bob", Role: user.RoleUser}
	token, err := store.Create(identity)
	require.NoError(t, err)

	var captured session.Identity
	var found bool

	handler := Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, found = IdentityFrom(r.Context())
	}))

	t.Run("ValidCookie_InjectsIdentity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.True(t, found)
		assert.Equal(t, identity, captured)
	})

	t.Run("NoCookie_Anonymous", func(t *testing.T) {
		found = false
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)

		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.False(t, found)
	})

	t.Run("UnknownToken_Anonymous", func(t *testing.T) {
		found = false
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})

		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.False(t, found)
	})
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(okHandler())

	t.Run("Anonymous_401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("Authenticated_Passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req = req.WithContext(WithIdentity(req.Context(), session.Identity{UserID: 1, Role: user.RoleUser}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	t.Run("Anonymous_401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NonAdmin_403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(WithIdentity(req.Context(), session.Identity{UserID: 1, Role: user.RoleUser}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
	})

	t.Run("Admin_Passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(WithIdentity(req.Context(), session.Identity{UserID: 1, Role: user.RoleAdmin}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(okHandler())

	t.Run("StrictTierExhausts", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "10.1.2.3:1234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			last = rec.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("GeneralTierAllows", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = "10.1.2.4:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
