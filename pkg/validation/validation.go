// Package validation turns validator tag failures into the ordered
// violation list the API returns on 400 responses.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Violation is a single broken rule with its field reference.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldLabels maps struct field names to the Spanish labels used in
// user-facing validation messages.
var fieldLabels = map[string]string{
	"Name":        "El nombre",
	"Email":       "El email",
	"Password":    "La contraseña",
	"OldPassword": "La contraseña actual",
	"NewPassword": "La nueva contraseña",
	"Role":        "El rol",
	"Title":       "El título",
	"Description": "La descripción",
	"City":        "La ciudad",
	"Type":        "El tipo",
	"Modality":    "La modalidad",
	"Department":  "El departamento",
	"Sector":      "El sector",
	"CompanyName": "El nombre de la empresa",
	"Position":    "La posición",
	"HireDate":    "La fecha de contratación",
	"Salary":      "El salario",
	"Status":      "El estado",
	"Date":        "La fecha",
	"Severity":    "La severidad",
	"IssuedBy":    "El emisor",
	"Comment":     "El comentario",
	"Rating":      "La calificación",
	"Message":     "El mensaje",
	"UserQuery":   "La consulta",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return "El campo " + field
}

// Describe converts a binding error into the full ordered list of
// violations. Non-validator errors (malformed JSON and the like) map to
// a single generic violation.
func Describe(err error) []Violation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Field: "body", Message: "Cuerpo de la solicitud inválido"}}
	}

	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", l)
	case "email":
		return "Email inválido"
	case "oneof":
		return fmt.Sprintf("%s es inválido", l)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", l, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", l, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", l, fe.Param())
	case "datetime", "iso8601":
		return fmt.Sprintf("%s es una fecha inválida", l)
	default:
		return fmt.Sprintf("%s es inválido", l)
	}
}
