package entity

import (
	"strings"
)

// FieldError describe un campo inválido.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lista de errores de campo. Vacía significa entrada válida.
type ValidationErrors []FieldError

// Add registra un error para field.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Required registra un error si value está vacío o solo contiene espacios.
func (v *ValidationErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "es requerido")
	}
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, f := range v {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Err devuelve nil si no hay errores; evita retornar un slice vacío como error no nulo.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
