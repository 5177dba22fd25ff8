package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"api/internal/helpers"
	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-authenticator-32b"

func TestAuthenticate(t *testing.T) {
	user := &models.User{ID: 7, Username: "doctor", IsAdmin: true}

	t.Run("valid bearer token passes claims through", func(t *testing.T) {
		token, err := helpers.NewAccessToken(testJWTSecret, user, 60)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		var claims models.UserClaims
		handler := Authenticate(testJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ = r.Context().Value(models.UserClaimKey{}).(models.UserClaims)
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, uint(7), claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
		recorder := httptest.NewRecorder()

		handler := Authenticate(testJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"errors":["UNAUTHORIZED"]}`, recorder.Body.String())
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := helpers.NewAccessToken("another-secret-key-entirely-32-bytes", user, 60)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		handler := Authenticate(testJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("login endpoint is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		recorder := httptest.NewRecorder()

		var excluded bool
		handler := Authenticate(testJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			excluded, _ = r.Context().Value(AuthExcludedKey{}).(bool)
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, excluded)
	})

	t.Run("public prefix is open for every method", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			req := httptest.NewRequest(method, "/api/public/reviews", nil)
			recorder := httptest.NewRecorder()

			handler := Authenticate(testJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
		}
	})

	t.Run("GET on the login path still requires auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
		recorder := httptest.NewRecorder()

		handler := Authenticate(testJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
