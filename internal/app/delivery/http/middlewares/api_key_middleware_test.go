package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireAdminAPIKey(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-admin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			AdminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool)
		assert.True(t, ok, "CONTEXT_API_KEY_AUTH should be set")
		assert.True(t, apiKeyAuth, "CONTEXT_API_KEY_AUTH should be true")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/meals/refresh", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)
		rec := httptest.NewRecorder()

		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/meals/refresh", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "wrong-key")
		rec := httptest.NewRecorder()

		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/meals/refresh", nil)
		rec := httptest.NewRecorder()

		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("No Key Configured Disables Route", func(t *testing.T) {
		unconfigured := &Middlewares{
			Log:            logger,
			InternalConfig: &config.InternalConfig{},
		}
		req := httptest.NewRequest("POST", "/api/v1/meals/refresh", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "anything")
		rec := httptest.NewRecorder()

		unconfigured.RequireAdminAPIKey(testHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
