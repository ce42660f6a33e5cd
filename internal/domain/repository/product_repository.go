package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las operaciones de un registro son atómicas en el almacén; no hay transacciones entre registros.
type ProductRepository interface {
	// Create asigna ID y persiste. Devuelve un error que envuelve domain.ErrDuplicate si el SKU existe.
	Create(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve nil, nil si no existe (incluye ids mal formados).
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update aplica patch y devuelve el producto actualizado, o nil, nil si no existe.
	Update(ctx context.Context, id string, patch entity.ProductPatch, updatedAt time.Time) (*entity.Product, error)
	// Delete devuelve false si no existía.
	Delete(ctx context.Context, id string) (bool, error)
}
