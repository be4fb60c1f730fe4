package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

// Límites del rango de la tendencia diaria.
const (
	trendDefaultDays = 30
	trendMaxDays     = 90
)

// InventoryReportGenerator genera el reporte PDF del inventario actual.
type InventoryReportGenerator interface {
	Generate(rows []*repository.InventoryRow, generatedAt time.Time) ([]byte, error)
}

// StatisticsUseCase agregados de solo lectura del tablero y exportación PDF.
type StatisticsUseCase struct {
	statsRepo repository.StatisticsRepository
	invRepo   repository.InventoryRepository
	pdfGen    InventoryReportGenerator
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(
	statsRepo repository.StatisticsRepository,
	invRepo repository.InventoryRepository,
	pdfGen InventoryReportGenerator,
) *StatisticsUseCase {
	return &StatisticsUseCase{statsRepo: statsRepo, invRepo: invRepo, pdfGen: pdfGen}
}

// Dashboard devuelve los agregados de cabecera del tablero.
func (uc *StatisticsUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ProductCount:  stats.ProductCount,
		TotalQuantity: stats.TotalQuantity,
		StockValue:    stats.StockValue,
		LowStockCount: stats.LowStockCount,
	}, nil
}

// Summary es el tablero visto desde el módulo de inventario.
func (uc *StatisticsUseCase) Summary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	stats, err := uc.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventorySummaryResponse{
		ProductCount:  stats.ProductCount,
		TotalQuantity: stats.TotalQuantity,
		StockValue:    stats.StockValue,
		LowStockCount: stats.LowStockCount,
	}, nil
}

// Trend devuelve las unidades aprobadas por día. days acepta 1..90;
// cero usa el defecto de 30 días.
func (uc *StatisticsUseCase) Trend(ctx context.Context, days int) ([]dto.TrendPointResponse, error) {
	if days == 0 {
		days = trendDefaultDays
	}
	if days < 1 || days > trendMaxDays {
		return nil, domain.ErrValidation
	}
	points, err := uc.statsRepo.Trend(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TrendPointResponse{
			Date:        p.Day.Format("2006-01-02"),
			InboundQty:  p.InboundQty,
			OutboundQty: p.OutboundQty,
		})
	}
	return out, nil
}

// CategoryDistribution devuelve la porción de existencias por categoría raíz
// con su porcentaje sobre el total.
func (uc *StatisticsUseCase) CategoryDistribution(ctx context.Context) ([]dto.CategoryShareResponse, error) {
	shares, err := uc.statsRepo.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, s := range shares {
		total += s.Quantity
	}
	out := make([]dto.CategoryShareResponse, 0, len(shares))
	for _, s := range shares {
		pct := decimal.Zero
		if total > 0 {
			pct = decimal.NewFromInt(int64(s.Quantity)).
				Div(decimal.NewFromInt(int64(total))).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		out = append(out, dto.CategoryShareResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Quantity:     s.Quantity,
			Percentage:   pct,
		})
	}
	return out, nil
}

// InventoryPDF genera el reporte PDF del inventario completo.
func (uc *StatisticsUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	var all []*repository.InventoryRow
	const pageSize = 100
	for page := 1; ; page++ {
		rows, total, err := uc.invRepo.List("", false, page, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(rows) == 0 || page*pageSize >= total {
			break
		}
	}
	return uc.pdfGen.Generate(all, time.Now())
}
