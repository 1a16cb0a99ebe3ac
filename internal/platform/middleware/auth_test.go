package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signingKey = "unit-test-key"

func protectedEcho(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var gotSubject string
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := RequireAdmin(signingKey, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = AdminSubject(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &gotSubject
}

func TestRequireAdmin(t *testing.T) {
	t.Run("valid token passes with subject", func(t *testing.T) {
		handler, subject := protectedEcho(t)
		token, err := SignAdminToken(signingKey, "ops-team", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/divisions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops-team", *subject)
	})

	t.Run("missing header", func(t *testing.T) {
		handler, _ := protectedEcho(t)
		req := httptest.NewRequest(http.MethodPost, "/admin/divisions", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		handler, _ := protectedEcho(t)
		token, err := SignAdminToken("some-other-key", "ops-team", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/divisions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		handler, _ := protectedEcho(t)
		token, err := SignAdminToken(signingKey, "ops-team", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/divisions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		handler, _ := protectedEcho(t)
		req := httptest.NewRequest(http.MethodPost, "/admin/divisions", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
