package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	run := func(body string) (*httptest.ResponseRecorder, *models.LoginBody) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		var decoded *models.LoginBody
		Validate[models.LoginBody](http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if value, ok := GetBody[models.LoginBody](r.Context()); ok {
				decoded = &value
			}
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(recorder, req)
		return recorder, decoded
	}

	t.Run("valid body reaches the handler typed", func(t *testing.T) {
		recorder, decoded := run(`{"username":"doctor","password":"secret-password"}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, decoded)
		assert.Equal(t, "doctor", decoded.Username)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		recorder, decoded := run(`{"username":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"errors":["INVALID_BODY"]}`, recorder.Body.String())
		assert.Nil(t, decoded)
	})

	t.Run("failing validation rules are rejected", func(t *testing.T) {
		recorder, decoded := run(`{"username":"doctor"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"errors":["VALIDATION_FAILED"]}`, recorder.Body.String())
		assert.Nil(t, decoded)
	})

	t.Run("reorder body requires unique non-empty ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/doctors/reorder", strings.NewReader(`{"ordered_ids":[1,2,1]}`))
		recorder := httptest.NewRecorder()

		Validate[models.ReorderBody](http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
