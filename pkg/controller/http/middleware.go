package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/model/auth"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
)

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// bearerToken extracts the token of an "Authorization: Bearer" header
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate validates the bearer token of r. A nil authUC rejects every
// request.
func authenticate(authUC AuthUseCase, r *http.Request) (*auth.Token, error) {
	if authUC == nil {
		return nil, goerr.Wrap(usecase.ErrInvalidToken, "authentication is not configured")
	}
	raw := bearerToken(r)
	if raw == "" && !authUC.IsNoAuthn() {
		return nil, goerr.Wrap(usecase.ErrInvalidToken, "authentication required")
	}
	return authUC.ValidateToken(r.Context(), raw)
}

// authMiddleware validates authentication for protected requests
func authMiddleware(authUC AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := authenticate(authUC, r)
			if err != nil {
				handleError(r.Context(), w, err)
				return
			}

			// Add token to request context
			ctx := auth.ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
