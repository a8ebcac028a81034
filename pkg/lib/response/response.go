package response

import (
	"net/http"

	"github.com/go-chi/render"

	"torneos/pkg/lib/validate"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool                  `json:"success" example:"true"`
	Message string                `json:"message,omitempty" example:"Equipo encontrado"`
	Data    interface{}           `json:"data,omitempty"`
	Total   *int                  `json:"total,omitempty" example:"3"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
	Error   string                `json:"error,omitempty" example:"underlying error description"`
}

// ErrorResponse is used by Swagger annotations for failure responses.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Equipo no encontrado"`
}

const ValidationMessage = "Errores de validación"

func Success(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

func List(message string, data interface{}, total int) Response {
	return Response{Success: true, Message: message, Data: data, Total: &total}
}

func Error(message string) Response {
	return Response{Success: false, Message: message}
}

// Send writes any body with the given status. Handlers use it for
// responses that extend Response with extra keys.
func Send(w http.ResponseWriter, r *http.Request, statusCode int, body interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, body)
}

func SendSuccess(w http.ResponseWriter, r *http.Request, statusCode int, message string, data interface{}) {
	Send(w, r, statusCode, Success(message, data))
}

func SendList(w http.ResponseWriter, r *http.Request, message string, data interface{}, total int) {
	Send(w, r, http.StatusOK, List(message, data, total))
}

func SendMessage(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	Send(w, r, statusCode, Response{Success: true, Message: message})
}

func SendError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	Send(w, r, statusCode, Error(message))
}

// SendInternalError answers 500 with a generic message and the error text
// for diagnostics.
func SendInternalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	body := Error(message)
	if err != nil {
		body.Error = err.Error()
	}
	Send(w, r, http.StatusInternalServerError, body)
}

func SendValidationError(w http.ResponseWriter, r *http.Request, err error, msgs validate.Messages) {
	SendFieldErrors(w, r, validate.Errors(err, msgs))
}

func SendFieldErrors(w http.ResponseWriter, r *http.Request, errs []validate.FieldError) {
	Send(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: ValidationMessage,
		Errors:  errs,
	})
}
