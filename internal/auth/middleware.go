package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/respond"
	"github.com/Vinayak4780/Guard/internal/domain"
)

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(domain.Principal)
	return p, ok
}

// Bearer enforces HS256 bearer tokens and stores the principal in the
// request context.
func Bearer(issuer *Issuer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				respond.Fail(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			tokenStr := strings.TrimSpace(authz[len("bearer "):])

			p, err := issuer.Parse(tokenStr)
			if err != nil {
				logger.Warn("invalid token", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
				respond.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole must run after Bearer.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				respond.Fail(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
				return
			}
			for _, role := range roles {
				if p.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			respond.Fail(w, http.StatusForbidden, "forbidden", "forbidden")
		})
	}
}
