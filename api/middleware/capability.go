package middleware

import (
	"net/http"

	"github.com/jordanhale/lapstore-backend/api/responses"
	"github.com/jordanhale/lapstore-backend/internal/authz"
	"github.com/jordanhale/lapstore-backend/pkg/enums"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
	"github.com/jordanhale/lapstore-backend/pkg/logger"
)

// RequireCapability rejects requests whose actor does not hold the capability.
// Must run after Auth so the role is present in the context.
func RequireCapability(capability authz.Capability, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			role, err := enums.ParseUserRole(RoleFromContext(ctx))
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "unknown role"))
				return
			}
			if !authz.Can(role, capability) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
