package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. SKU es único en todo el catálogo.
type Product struct {
	ID        string
	Nombre    string
	SKU       string
	Categoria string
	Stock     int // >= 0
	Precio    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate comprueba los campos obligatorios y los rangos.
func (p *Product) Validate() ValidationErrors {
	var errs ValidationErrors
	errs.Required("nombre", p.Nombre)
	errs.Required("sku", p.SKU)
	errs.Required("categoria", p.Categoria)
	if p.Stock < 0 {
		errs.Add("stock", "no puede ser negativo")
	}
	validatePrecio(&errs, p.Precio)
	return errs
}

// PrecioDecimales máximo de decimales de un precio (NUMERIC(14,2) en PostgreSQL).
const PrecioDecimales = 2

func validatePrecio(errs *ValidationErrors, precio decimal.Decimal) {
	if precio.IsNegative() {
		errs.Add("precio", "no puede ser negativo")
	}
	if !precio.Equal(precio.Round(PrecioDecimales)) {
		errs.Add("precio", "admite como máximo 2 decimales")
	}
}

// InventoryValue devuelve stock × precio.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ProductPatch cambios parciales de un producto; nil significa "sin cambio".
type ProductPatch struct {
	Nombre    *string
	SKU       *string
	Categoria *string
	Stock     *int
	Precio    *decimal.Decimal
}

// Validate aplica a los campos presentes las mismas reglas que Product.Validate.
func (p ProductPatch) Validate() ValidationErrors {
	var errs ValidationErrors
	if p.Nombre != nil {
		errs.Required("nombre", *p.Nombre)
	}
	if p.SKU != nil {
		errs.Required("sku", *p.SKU)
	}
	if p.Categoria != nil {
		errs.Required("categoria", *p.Categoria)
	}
	if p.Stock != nil && *p.Stock < 0 {
		errs.Add("stock", "no puede ser negativo")
	}
	if p.Precio != nil {
		validatePrecio(&errs, *p.Precio)
	}
	return errs
}

// Apply copia los campos presentes sobre product.
func (p ProductPatch) Apply(product *Product) {
	if p.Nombre != nil {
		product.Nombre = *p.Nombre
	}
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.Categoria != nil {
		product.Categoria = *p.Categoria
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.Precio != nil {
		product.Precio = *p.Precio
	}
}
