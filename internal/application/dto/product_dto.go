package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// precio viaja como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateProductRequest entrada para crear un producto. Stock por defecto 0.
type CreateProductRequest struct {
	Nombre    string           `json:"nombre"`
	SKU       string           `json:"sku"`
	Categoria string           `json:"categoria"`
	Stock     *int             `json:"stock"`
	Precio    *decimal.Decimal `json:"precio"`
}

// UpdateProductRequest cambios parciales; los campos ausentes no se modifican.
type UpdateProductRequest struct {
	Nombre    *string          `json:"nombre"`
	SKU       *string          `json:"sku"`
	Categoria *string          `json:"categoria"`
	Stock     *int             `json:"stock"`
	Precio    *decimal.Decimal `json:"precio"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"_id"`
	Nombre    string          `json:"nombre"`
	SKU       string          `json:"sku"`
	Categoria string          `json:"categoria"`
	Stock     int             `json:"stock"`
	Precio    decimal.Decimal `json:"precio"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
