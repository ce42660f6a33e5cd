package repository

import (
	"context"

	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create asigna ID y persiste. Devuelve domain.ErrUserExists si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
