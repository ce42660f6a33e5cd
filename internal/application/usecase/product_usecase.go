package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos. Todas las operaciones exigen rol admin, incluida la lectura.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un producto. Stock por defecto 0; SKU duplicado devuelve un error que envuelve domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, caller entity.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	now := uc.now()
	product := &entity.Product{
		Nombre:    in.Nombre,
		SKU:       in.SKU,
		Categoria: in.Categoria,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Precio != nil {
		product.Precio = *in.Precio
	}
	errs := product.Validate()
	if in.Precio == nil {
		errs.Add("precio", "es requerido")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo, sin paginación ni filtros.
func (uc *ProductUseCase) List(ctx context.Context, caller entity.Identity) ([]dto.ProductResponse, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, caller entity.Identity, id string) (*dto.ProductResponse, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes y devuelve el producto actualizado.
func (uc *ProductUseCase) Update(ctx context.Context, caller entity.Identity, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	patch := entity.ProductPatch{
		Nombre:    in.Nombre,
		SKU:       in.SKU,
		Categoria: in.Categoria,
		Stock:     in.Stock,
		Precio:    in.Precio,
	}
	if err := patch.Validate().Err(); err != nil {
		return nil, err
	}
	product, err := uc.repo.Update(ctx, id, patch, uc.now())
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; domain.ErrNotFound si no existía.
func (uc *ProductUseCase) Delete(ctx context.Context, caller entity.Identity, id string) error {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		SKU:       p.SKU,
		Categoria: p.Categoria,
		Stock:     p.Stock,
		Precio:    p.Precio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
