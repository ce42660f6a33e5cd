// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con DB_DRIVER=memory para desarrollo local y en los tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria, en orden de creación.
type UserRepo struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserRepository construye un repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{}
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	user.ID = uuid.NewString()
	r.users = append(r.users, *user)
	return nil
}

// FindByUsername busca por username exacto.
func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los usuarios.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.users))
	for i := range r.users {
		u := r.users[i]
		list = append(list, &u)
	}
	return list, nil
}

// Count número de usuarios.
func (r *UserRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
