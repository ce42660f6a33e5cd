package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria con SKU único.
type ProductRepo struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewProductRepository construye un repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.skuTaken(product.SKU, "") {
		return fmt.Errorf("sku %q: %w", product.SKU, domain.ErrDuplicate)
	}
	product.ID = uuid.NewString()
	r.products = append(r.products, *product)
	return nil
}

// List devuelve copias de todos los productos.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		list = append(list, &p)
	}
	return list, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		p := r.products[i]
		return &p, nil
	}
	return nil, nil
}

// Update aplica patch sobre el producto id.
func (r *ProductRepo) Update(_ context.Context, id string, patch entity.ProductPatch, updatedAt time.Time) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	if patch.SKU != nil && r.skuTaken(*patch.SKU, id) {
		return nil, fmt.Errorf("sku %q: %w", *patch.SKU, domain.ErrDuplicate)
	}
	patch.Apply(&r.products[i])
	r.products[i].UpdatedAt = updatedAt
	p := r.products[i]
	return &p, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return true, nil
}

func (r *ProductRepo) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *ProductRepo) skuTaken(sku, exceptID string) bool {
	for _, p := range r.products {
		if p.SKU == sku && p.ID != exceptID {
			return true
		}
	}
	return false
}
