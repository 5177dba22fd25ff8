package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "api/internal/errors"
	"api/internal/helpers"

	"github.com/go-playground/validator/v10"
)

// BodyKey carries the decoded, validated request body through the context so
// generic handlers can hand it to service methods with its concrete type.
type BodyKey struct{}

var validate = validator.New()

func Validate[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body T
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrInvalidBody})
			return
		}

		if err := validate.Struct(body); err != nil {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrValidationFailed})
			return
		}

		ctx := context.WithValue(r.Context(), BodyKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetBody[T any](ctx context.Context) (T, bool) {
	body, ok := ctx.Value(BodyKey{}).(T)
	return body, ok
}
