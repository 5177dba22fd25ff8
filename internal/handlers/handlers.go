// Package handlers adapts service methods onto chi routes. Services expose
// plain functions of (logger, claims, ids, body) and never touch the
// http.ResponseWriter; the adapters here do the decoding, error mapping and
// JSON encoding in one place.
package handlers

import (
	"errors"
	"net/http"

	apierrors "api/internal/errors"
	"api/internal/helpers"
	"api/internal/middlewares"
	"api/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListFunc[T any] func(logger *zap.Logger, claims models.UserClaims, ids []uint) ([]T, error)

type GetFunc[T any] func(logger *zap.Logger, claims models.UserClaims, ids []uint) (T, error)

type BodyFunc[B any, T any] func(logger *zap.Logger, claims models.UserClaims, ids []uint, body B) (T, error)

type DeleteFunc func(logger *zap.Logger, claims models.UserClaims, ids []uint) error

// FileFunc produces a downloadable payload: filename, content type, bytes.
type FileFunc func(logger *zap.Logger, claims models.UserClaims, r *http.Request) (string, string, []byte, error)

func requestContext(r *http.Request) (*zap.Logger, models.UserClaims, []uint, bool) {
	logger := zap.L().With(zap.String("path", r.URL.Path), zap.String("method", r.Method))

	claims, _ := r.Context().Value(models.UserClaimKey{}).(models.UserClaims)

	ids, ok := helpers.ParseIDs(r)
	return logger, claims, ids, ok
}

func respondResult(logger *zap.Logger, w http.ResponseWriter, status int, result any, err error) {
	if err == nil {
		helpers.RespondWithJSON(w, status, result)
		return
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		helpers.RespondWithError(w, apiErr.Status, []string{apiErr.Code})
		return
	}

	logger.Error("Unhandled service error", zap.Error(err))
	helpers.RespondWithError(w, 500, []string{"INTERNAL_SERVER_ERROR"})
}

func GetListHandler[T any](fn ListFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(r)
		if !ok {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrInvalidBody})
			return
		}

		result, err := fn(logger, claims, ids)
		if result == nil && err == nil {
			result = []T{}
		}
		respondResult(logger, w, 200, result, err)
	}
}

func GetOneHandler[T any](fn GetFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(r)
		if !ok {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrInvalidBody})
			return
		}

		result, err := fn(logger, claims, ids)
		respondResult(logger, w, 200, result, err)
	}
}

// CreateHandler serves routes whose body was decoded by middlewares.Validate.
// Used for both creates and in-place updates; the API keeps the original
// POST-with-body contract for both.
func CreateHandler[B any, T any](fn BodyFunc[B, T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(r)
		if !ok {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrInvalidBody})
			return
		}

		body, ok := middlewares.GetBody[B](r.Context())
		if !ok {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrInvalidBody})
			return
		}

		result, err := fn(logger, claims, ids, body)
		respondResult(logger, w, 200, result, err)
	}
}

func DeleteHandler(fn DeleteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(r)
		if !ok {
			helpers.RespondWithError(w, 400, []string{apierrors.ErrInvalidBody})
			return
		}

		if err := fn(logger, claims, ids); err != nil {
			respondResult(logger, w, 0, nil, err)
			return
		}
		helpers.RespondWithJSON(w, 204, nil)
	}
}

// GetOneStringHandler is the variant for resources keyed by a string
// identifier (prompts). The route must declare the parameter as {id}.
func GetOneStringHandler[T any](fn func(logger *zap.Logger, claims models.UserClaims, id string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, _, _ := requestContext(r)

		result, err := fn(logger, claims, chi.URLParam(r, "id"))
		respondResult(logger, w, 200, result, err)
	}
}

func FileHandler(fn FileFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, _, _ := requestContext(r)

		filename, contentType, content, err := fn(logger, claims, r)
		if err != nil {
			respondResult(logger, w, 0, nil, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(200)
		if _, err := w.Write(content); err != nil {
			logger.Error("Failed to write file payload", zap.Error(err))
		}
	}
}

// RawHandler passes the request through for endpoints with non-JSON input
// (multipart uploads, query-only fetches) while keeping the shared error
// mapping.
func RawHandler[T any](fn func(logger *zap.Logger, claims models.UserClaims, r *http.Request) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, _, _ := requestContext(r)

		result, err := fn(logger, claims, r)
		respondResult(logger, w, 200, result, err)
	}
}
