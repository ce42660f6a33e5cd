package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, sku, categoria, stock, precio, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Nombre, &p.SKU, &p.Categoria, &p.Stock, &p.Precio, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto; sku es UNIQUE. product queda con la fila almacenada.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	stored, err := scanProduct(r.q.QueryRow(ctx,
		`INSERT INTO productos (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+productColumns,
		uuid.New().String(), product.Nombre, product.SKU, product.Categoria, product.Stock, product.Precio,
		product.CreatedAt, product.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, err.Error())
		}
		return fmt.Errorf("insert product: %w", err)
	}
	*product = *stored
	return nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update aplica solo los campos presentes en el patch y devuelve la fila resultante.
func (r *ProductRepo) Update(ctx context.Context, id string, patch entity.ProductPatch, updatedAt time.Time) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	args := pgx.NamedArgs{"id": id, "updated_at": updatedAt}
	sets := []string{"updated_at = @updated_at"}
	add := func(col string, v any) {
		args[col] = v
		sets = append(sets, col+" = @"+col)
	}
	if patch.Nombre != nil {
		add("nombre", *patch.Nombre)
	}
	if patch.SKU != nil {
		add("sku", *patch.SKU)
	}
	if patch.Categoria != nil {
		add("categoria", *patch.Categoria)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	if patch.Precio != nil {
		add("precio", *patch.Precio)
	}

	query := `UPDATE productos SET ` + strings.Join(sets, ", ") + ` WHERE id = @id RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicate, err.Error())
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
