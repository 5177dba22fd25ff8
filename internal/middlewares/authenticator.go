package middlewares

import (
	"context"
	"net/http"
	"strings"

	"api/internal/configuration"
	apierrors "api/internal/errors"
	"api/internal/helpers"
	"api/internal/models"
)

// AuthExcludedKey marks requests that matched a public-path rule so later
// middlewares can skip claim checks.
type AuthExcludedKey struct{}

func Authenticate(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path, r.Method) {
				ctx := context.WithValue(r.Context(), AuthExcludedKey{}, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			accessToken := r.Header.Get("Authorization")
			userClaims, err := helpers.ParseAccessToken(jwtSecret, accessToken)
			if err != nil {
				helpers.RespondWithError(w, 401, []string{apierrors.ErrUnauthorized})
				return
			}

			ctx := context.WithValue(r.Context(), models.UserClaimKey{}, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func isExcluded(path, method string) bool {
	if exactRules, exists := configuration.AuthRuleExactMatchPath[path]; exists {
		for _, rule := range exactRules {
			if rule.Method == "*" || rule.Method == method {
				return !rule.RequireAuth
			}
		}
	}

	for _, rule := range configuration.AuthRulePrefixMatchPath {
		if strings.HasPrefix(path, rule.Path) {
			if rule.Method == "*" || rule.Method == method {
				return !rule.RequireAuth
			}
		}
	}

	return false
}
