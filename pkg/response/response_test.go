package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAppError_KnownKind(t *testing.T) {
	rec := httptest.NewRecorder()
	AppError(rec, apperror.FieldError("email", "email must end with @esi-sba.dz"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "email must end with @esi-sba.dz", body["message"])
	assert.Equal(t, map[string]interface{}{"email": "email must end with @esi-sba.dz"}, body["error"])
}

func TestAppError_HidesUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	AppError(rec, errors.New("pq: relation users does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, &Meta{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, NewMeta(2, 10, 25))
	assert.Equal(t, &Meta{Page: 1, Limit: 0, Total: 7, TotalPages: 1}, NewMeta(1, 0, 7))
}
