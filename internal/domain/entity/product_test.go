package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
)

func validProduct() *entity.Product {
	return &entity.Product{
		Nombre:    "Filtro HEPA",
		SKU:       "HEPA-001",
		Categoria: "Carrocería",
		Stock:     10,
		Precio:    decimal.NewFromInt(150),
	}
}

func TestProduct_Validate(t *testing.T) {
	assert.Empty(t, validProduct().Validate())

	p := validProduct()
	p.SKU = ""
	p.Stock = -1
	p.Precio = decimal.NewFromInt(-3)
	errs := p.Validate()
	require.Len(t, errs, 3)
	assert.Contains(t, errs.Error(), "sku")
	assert.Contains(t, errs.Error(), "stock")
	assert.Contains(t, errs.Error(), "precio")
}

func TestProduct_PrecioMaximoDosDecimales(t *testing.T) {
	p := validProduct()
	p.Precio = decimal.RequireFromString("19.990")
	assert.Empty(t, p.Validate(), "ceros a la derecha no cuentan")

	p.Precio = decimal.RequireFromString("19.999")
	errs := p.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "precio", errs[0].Field)

	precio := decimal.RequireFromString("0.125")
	assert.Len(t, entity.ProductPatch{Precio: &precio}.Validate(), 1)
}

func TestProduct_InventoryValue(t *testing.T) {
	p := validProduct()
	assert.True(t, decimal.NewFromInt(1500).Equal(p.InventoryValue()))
}

func TestProductPatch_ValidateYApply(t *testing.T) {
	stock := 3
	nombre := "Filtro HEPA v2"
	patch := entity.ProductPatch{Nombre: &nombre, Stock: &stock}
	require.Empty(t, patch.Validate())

	p := validProduct()
	patch.Apply(p)
	assert.Equal(t, "Filtro HEPA v2", p.Nombre)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, "HEPA-001", p.SKU, "los campos ausentes no cambian")

	negative := -1
	empty := ""
	bad := entity.ProductPatch{Stock: &negative, SKU: &empty}
	assert.Len(t, bad.Validate(), 2)
}

func TestAuthorize(t *testing.T) {
	admin := entity.Identity{Role: entity.RoleAdmin}
	user := entity.Identity{Role: entity.RoleUser}

	assert.NoError(t, entity.Authorize(admin, entity.RoleAdmin))
	assert.ErrorIs(t, entity.Authorize(user, entity.RoleAdmin), domain.ErrForbidden)
	assert.True(t, user.HasRole(entity.RoleAdmin, entity.RoleUser))
}

func TestValidateNewUser(t *testing.T) {
	assert.Empty(t, entity.ValidateNewUser("Ana", "ana", "123", ""))
	assert.Empty(t, entity.ValidateNewUser("Ana", "ana", "123", entity.RoleAdmin))

	errs := entity.ValidateNewUser("", "ana", "", "root")
	require.Len(t, errs, 3)
	assert.Error(t, errs.Err())
}
