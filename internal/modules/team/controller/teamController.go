package controller

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"torneos/internal/modules/team"
	"torneos/pkg/lib/validate"
)

const (
	nameLengthMessage  = "El nombre debe tener entre 2 y 150 caracteres"
	phoneLengthMessage = "El teléfono debe tener entre 7 y 30 caracteres"
	invalidIDMessage   = "ID inválido"
)

var createMessages = validate.Messages{
	"nombre.required":              "El nombre del equipo es requerido",
	"nombre.min":                   nameLengthMessage,
	"nombre.max":                   nameLengthMessage,
	"color.max":                    "El color no puede exceder 30 caracteres",
	"representante.max":            "El nombre del representante no puede exceder 120 caracteres",
	"telefono_representante.phone": "El teléfono solo puede contener números, +, -, paréntesis y espacios",
	"telefono_representante.min":   phoneLengthMessage,
	"telefono_representante.max":   phoneLengthMessage,
	"telefono_representante.type":  "El teléfono solo puede contener números, +, -, paréntesis y espacios",
	"torneo_id.required":           "El ID del torneo es requerido",
	"torneo_id.gt":                 "El ID del torneo debe ser un número positivo",
	"torneo_id.type":               "El ID del torneo debe ser un número positivo",
	"id.int":                       "El ID debe ser un número entero positivo",
}

// updateMessages differ from create only for nombre: on update an explicit
// null or blank name fails the length rule.
var updateMessages = func() validate.Messages {
	m := make(validate.Messages, len(createMessages))
	for k, v := range createMessages {
		m[k] = v
	}
	m["nombre.required"] = nameLengthMessage
	return m
}()

type TeamController struct {
	useCase  team.UseCase
	log      *slog.Logger
	validate *validator.Validate
}

func NewTeamController(useCase team.UseCase, log *slog.Logger) *TeamController {
	v := validate.New()
	v.RegisterStructValidation(validateUpdateName, team.UpdateTeamRequest{})

	return &TeamController{
		useCase:  useCase,
		log:      log,
		validate: v,
	}
}

var _ team.Controller = (*TeamController)(nil)

// validateUpdateName rejects a name that is sent but null or blank. Field
// rules alone cannot see it because such a value is skipped by omitempty.
func validateUpdateName(sl validator.StructLevel) {
	req := sl.Current().Interface().(team.UpdateTeamRequest)
	if req.Name.Set && (req.Name.Null || req.Name.Value == "") {
		sl.ReportError(req.Name, "nombre", "Name", "required", "")
	}
}
