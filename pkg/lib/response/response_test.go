package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torneos/pkg/lib/validate"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendList_EmptySliceKeepsData(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	SendList(rec, req, "Equipos obtenidos exitosamente", []string{}, 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, float64(0), body["total"])
}

func TestSendMessage_OmitsData(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)

	SendMessage(rec, req, http.StatusOK, "Equipo eliminado exitosamente")

	body := decode(t, rec)
	assert.Equal(t, "Equipo eliminado exitosamente", body["message"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "total")
}

func TestSendInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	SendInternalError(rec, req, "Error al obtener equipos", errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Error al obtener equipos", body["message"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestSendValidationError(t *testing.T) {
	type in struct {
		Name string `json:"nombre" validate:"required"`
	}
	err := validate.New().Struct(in{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	SendValidationError(rec, req, err, validate.Messages{"nombre.required": "El nombre es requerido"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, ValidationMessage, body["message"])
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "nombre", first["campo"])
	assert.Equal(t, "El nombre es requerido", first["mensaje"])
}
