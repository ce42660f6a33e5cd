package repository

import (
	"context"

	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
)

// TaskRepository almacena la colección completa de tareas como un único documento.
type TaskRepository interface {
	// List lee la colección completa en orden de inserción.
	List(ctx context.Context) ([]entity.Task, error)
	// Mutate lee la colección, aplica fn y reescribe el resultado completo.
	// Si fn retorna error no se escribe nada. Las llamadas se serializan dentro del proceso.
	Mutate(ctx context.Context, fn func(tasks []entity.Task) ([]entity.Task, error)) error
}
