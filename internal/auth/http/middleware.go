package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/ayurtrack/authd/internal/auth/domain"
	"github.com/ayurtrack/authd/internal/auth/service"
	"github.com/ayurtrack/authd/pkg/authsdk"
	"github.com/ayurtrack/authd/pkg/httpx"
	"github.com/ayurtrack/authd/pkg/slogx"
)

const bearerPrefix = "Bearer "

// requireAuth guards protected routes. It extracts a bearer token, verifies
// it, then re-resolves the embedded username against the store so a token
// for a vanished user stops working immediately. Every failure mode maps to
// 401, including unexpected internal ones, so verification faults can never
// leak as a different status.
func requireAuth(tokens *service.TokenService, users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, bearerPrefix) {
				writeUnauthorized(w, "Token is missing")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, bearerPrefix))
			if raw == "" {
				writeUnauthorized(w, "Token is missing")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeUnauthorized(w, "Token is invalid or expired")
				return
			}

			if claims.Username == "" {
				writeUnauthorized(w, "Token is invalid or expired")
				return
			}

			user, err := users.ResolveUsername(ctx, claims.Username)
			if err != nil {
				// Unknown user and store failure both fail closed as 401
				log.Warn("token identity did not resolve", "username", claims.Username, "err", err)
				writeUnauthorized(w, "User not found")
				return
			}

			ctx = contextWithUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithUser(ctx context.Context, u domain.User) context.Context {
	ctx = context.WithValue(ctx, httpx.CtxKeyUserID, u.ID)
	ctx = context.WithValue(ctx, httpx.CtxKeyUsername, u.Username)
	return ctx
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusUnauthorized, authsdk.Envelope{
		Status:  http.StatusUnauthorized,
		Message: message,
	})
}
