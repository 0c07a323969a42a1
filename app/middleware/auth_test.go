package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "authboard/app/jwt"

	"github.com/stretchr/testify/require"
)

func newAuth(ttl time.Duration) *Auth {
	return &Auth{Signer: &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "authboard", TTL: ttl}}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	return body.Message
}

func TestRequireAuthRejections(t *testing.T) {
	a := newAuth(time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	expired := newAuth(-time.Minute)
	expiredToken, err := expired.Signer.Sign("u1", "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Token is missing"},
		{"not bearer", "Basic abc123", "Invalid token format"},
		{"no token after scheme", "Bearer ", "Invalid token format"},
		{"single word", "Bearertoken", "Invalid token format"},
		{"garbage token", "Bearer not.a.jwt", "Invalid token"},
		{"expired token", "Bearer " + expiredToken, "Token has expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			a.RequireAuth(next).ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, tt.message, decodeMessage(t, rec))
		})
	}
}

func TestRequireAuthInjectsClaims(t *testing.T) {
	a := newAuth(time.Hour)
	token, err := a.Signer.Sign("u1", "alice")
	require.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims := GetClaims(r.Context())
		require.NotNil(t, claims)
		require.Equal(t, "u1", claims.Subject)
		require.Equal(t, "alice", claims.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	a.RequireAuth(next).ServeHTTP(rec, req)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	a := newAuth(time.Hour)

	userToken, err := a.Signer.Sign("u1", "alice")
	require.NoError(t, err)
	adminToken, err := a.Signer.Sign("u2", "admin")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	a.RequireAdmin(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Admin access required", decodeMessage(t, rec))

	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	a.RequireAdmin(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// still requires a token at all
	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec = httptest.NewRecorder()
	a.RequireAdmin(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORS(t *testing.T) {
	wrapped := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// preflight from an allowed origin
	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	// disallowed origin gets no CORS headers
	req = httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
