package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"

	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireAdminAPIKey guards the mutating endpoints (forced refresh, reminder
// dispatch). With no key configured the routes are disabled outright.
func (m *Middlewares) RequireAdminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configured := m.InternalConfig.App.AdminAPIKey
		if configured == "" {
			m.Log.Warn("RequireAdminAPIKey called with no admin API key configured")
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
			return
		}

		provided := r.Header.Get(constvars.HeaderXAPIKey)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
			m.Log.Warn("RequireAdminAPIKey rejected request",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
