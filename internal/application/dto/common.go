package dto

import "github.com/jhoicas/inventario-tareas-api/internal/domain/entity"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Error   string              `json:"error,omitempty"`  // detalle del almacén (solo rutas de productos)
	Fields  []entity.FieldError `json:"fields,omitempty"` // errores de validación
}

// MessageResponse respuesta con un mensaje legible.
type MessageResponse struct {
	Message string `json:"message"`
}
