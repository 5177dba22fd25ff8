package middlewares

import (
	"net/http"

	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"
)

// AuthorizeAdmin rejects requests from authenticated non-administrators.
// Mutation affordances on reference data are admin-gated; everyone else gets
// read-only access through the non-admin routes.
func AuthorizeAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(models.UserClaimKey{}).(models.UserClaims)
		if !ok {
			h.RespondWithError(w, 401, []string{apierrors.ErrUnauthorized})
			return
		}

		if !userClaims.IsAdmin {
			h.RespondWithError(w, 403, []string{apierrors.ErrForbidden})
			return
		}

		next.ServeHTTP(w, r)
	})
}
