package http

import (
	"context"
	"net/http"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/pkg/httpx"
)

type ctxKey int

const principalKey ctxKey = iota

// PrincipalFromContext returns the admitted principal stored by the
// guard middleware.
func PrincipalFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(principalKey).(domain.User)
	return u, ok
}

// guarded runs the full authorization gate for the request: resolve the
// bearer token into a live principal, require an active account, then
// require any of the given roles. The admitted principal is stored in
// the request context for handlers.
func (r *Router) guarded(want ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			token, ok := httpx.BearerToken(req)
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}

			principal, err := r.Guard.Authorize(req.Context(), token, want...)
			if err != nil {
				writeUsersError(w, req, err)
				return
			}

			ctx := context.WithValue(req.Context(), principalKey, principal)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
