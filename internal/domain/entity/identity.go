package entity

import "github.com/jhoicas/inventario-tareas-api/internal/domain"

// Identity es el payload del token {id, role, name} adjunto a cada petición autenticada.
type Identity struct {
	ID   string
	Role string
	Name string
}

// IsAdmin indica si la identidad tiene rol admin.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// HasRole indica si la identidad tiene alguno de los roles dados.
func (i Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Authorize devuelve domain.ErrForbidden si la identidad no tiene el rol requerido.
func Authorize(id Identity, requiredRole string) error {
	if !id.HasRole(requiredRole) {
		return domain.ErrForbidden
	}
	return nil
}
