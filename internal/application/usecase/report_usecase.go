package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

// InventoryReport instantánea del catálogo con totales.
type InventoryReport struct {
	GeneratedAt time.Time
	GeneratedBy string
	Products    []*entity.Product
	TotalUnits  int
	TotalValue  decimal.Decimal // Σ stock × precio
}

// ReportRenderer convierte un InventoryReport a un formato concreto (pdf, xml).
type ReportRenderer interface {
	Format() string
	ContentType() string
	Render(ctx context.Context, report *InventoryReport) ([]byte, error)
}

// ReportUseCase genera el reporte de inventario. Solo admin.
type ReportUseCase struct {
	repo      repository.ProductRepository
	renderers map[string]ReportRenderer
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso con los formatos disponibles.
func NewReportUseCase(repo repository.ProductRepository, renderers ...ReportRenderer) *ReportUseCase {
	m := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		m[r.Format()] = r
	}
	return &ReportUseCase{repo: repo, renderers: m, now: time.Now}
}

// Build arma el reporte sin renderizarlo.
func (uc *ReportUseCase) Build(ctx context.Context, caller entity.Identity) (*InventoryReport, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	report := &InventoryReport{
		GeneratedAt: uc.now(),
		GeneratedBy: caller.Name,
		Products:    products,
		TotalValue:  decimal.Zero,
	}
	for _, p := range products {
		report.TotalUnits += p.Stock
		report.TotalValue = report.TotalValue.Add(p.InventoryValue())
	}
	return report, nil
}

// Generate renderiza el reporte en formato; devuelve el contenido y su content type.
func (uc *ReportUseCase) Generate(ctx context.Context, caller entity.Identity, format string) ([]byte, string, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, "", err
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, "", fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
	}
	report, err := uc.Build(ctx, caller)
	if err != nil {
		return nil, "", err
	}
	out, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("renderizar reporte %s: %w", format, err)
	}
	return out, renderer.ContentType(), nil
}
