package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "$0,00",
		"99.5":    "$99,50",
		"1999.99": "$1.999,99",
		"1000000": "$1.000.000,00",
		"-2500.1": "-$2.500,10",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestInventoryRenderer_GeneraPDF(t *testing.T) {
	report := &usecase.InventoryReport{
		GeneratedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		GeneratedBy: "Elon Musk",
		Products: []*entity.Product{
			{SKU: "MS-001", Nombre: "Model S", Categoria: "Autos", Stock: 3, Precio: decimal.RequireFromString("79990")},
		},
		TotalUnits: 3,
		TotalValue: decimal.RequireFromString("239970"),
	}

	r := NewInventoryRenderer()
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())

	out, err := r.Render(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestInventoryRenderer_SinProductos(t *testing.T) {
	out, err := NewInventoryRenderer().Render(context.Background(), &usecase.InventoryReport{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
