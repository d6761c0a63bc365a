package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ga-tools/analytics-mcp/internal/auth"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Bearer ya29.token", "ya29.token", true},
		{"missing", "", "", false},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", false},
		{"lowercase scheme", "bearer ya29.token", "", false},
		{"bare scheme", "Bearer ", "", false},
		{"no space", "Bearerya29.token", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			got, ok := bearerToken(r)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenIntoContext(t *testing.T) {
	t.Run("token bound to context", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		r.Header.Set("Authorization", "Bearer ya29.token")

		ctx := tokenIntoContext(context.Background(), r)
		token, ok := auth.Token(ctx)
		assert.True(t, ok)
		assert.Equal(t, "ya29.token", token)
	})

	t.Run("no header leaves context clean", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)

		ctx := tokenIntoContext(context.Background(), r)
		_, ok := auth.Token(ctx)
		assert.False(t, ok)
	})
}

func TestRequireBearer(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)

		requireBearer(false, next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "Bearer")
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		r.Header.Set("Authorization", "Token abc")

		requireBearer(false, next).ServeHTTP(rec, r)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid header passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		r.Header.Set("Authorization", "Bearer ya29.token")

		requireBearer(false, next).ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header allowed with default credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)

		requireBearer(true, next).ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestWithCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("preflight answered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/mcp", nil)

		withCORS(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("headers added to normal requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/health", nil)

		withCORS(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
