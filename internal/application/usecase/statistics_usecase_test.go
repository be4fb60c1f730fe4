package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamargo/almacen-api/internal/application/usecase"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

type fakeStatsRepo struct {
	stats     repository.DashboardStats
	trendDays int
	shares    []*repository.CategoryShare
}

func (f *fakeStatsRepo) Dashboard(context.Context) (*repository.DashboardStats, error) {
	cp := f.stats
	return &cp, nil
}

func (f *fakeStatsRepo) Trend(_ context.Context, days int) ([]*repository.TrendPoint, error) {
	f.trendDays = days
	day := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	return []*repository.TrendPoint{
		{Day: day, InboundQty: 12, OutboundQty: 7},
	}, nil
}

func (f *fakeStatsRepo) CategoryDistribution(context.Context) ([]*repository.CategoryShare, error) {
	return f.shares, nil
}

type fakeReportGen struct {
	rows int
}

func (f *fakeReportGen) Generate(rows []*repository.InventoryRow, _ time.Time) ([]byte, error) {
	f.rows = len(rows)
	return []byte("%PDF-1.7"), nil
}

func TestStatisticsTrend_RangoDeDias(t *testing.T) {
	statsRepo := &fakeStatsRepo{}
	uc := usecase.NewStatisticsUseCase(statsRepo, newFakeInventoryRepo(), &fakeReportGen{})

	// Cero usa el defecto de 30 días.
	points, err := uc.Trend(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, statsRepo.trendDays)
	require.Len(t, points, 1)
	assert.Equal(t, "2026-01-04", points[0].Date)
	assert.Equal(t, 12, points[0].InboundQty)
	assert.Equal(t, 7, points[0].OutboundQty)

	_, err = uc.Trend(context.Background(), 91)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Trend(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Trend(context.Background(), 90)
	require.NoError(t, err)
	assert.Equal(t, 90, statsRepo.trendDays)
}

func TestStatisticsCategoryDistribution_Porcentajes(t *testing.T) {
	statsRepo := &fakeStatsRepo{shares: []*repository.CategoryShare{
		{CategoryID: "c1", CategoryName: "Alimentos", Quantity: 75},
		{CategoryID: "c2", CategoryName: "Aseo", Quantity: 25},
	}}
	uc := usecase.NewStatisticsUseCase(statsRepo, newFakeInventoryRepo(), &fakeReportGen{})

	out, err := uc.CategoryDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Percentage.Equal(decimal.NewFromInt(75)))
	assert.True(t, out[1].Percentage.Equal(decimal.NewFromInt(25)))
}

func TestStatisticsCategoryDistribution_SinExistencias(t *testing.T) {
	statsRepo := &fakeStatsRepo{shares: []*repository.CategoryShare{
		{CategoryID: "c1", CategoryName: "Alimentos", Quantity: 0},
	}}
	uc := usecase.NewStatisticsUseCase(statsRepo, newFakeInventoryRepo(), &fakeReportGen{})

	out, err := uc.CategoryDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	// Total cero: porcentaje cero, sin división por cero.
	assert.True(t, out[0].Percentage.IsZero())
}

func TestStatisticsSummary_ReusaDashboard(t *testing.T) {
	statsRepo := &fakeStatsRepo{stats: repository.DashboardStats{
		ProductCount:  8,
		TotalQuantity: 430,
		StockValue:    decimal.NewFromInt(1250000),
		LowStockCount: 2,
	}}
	uc := usecase.NewStatisticsUseCase(statsRepo, newFakeInventoryRepo(), &fakeReportGen{})

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, summary.ProductCount)
	assert.Equal(t, 430, summary.TotalQuantity)
	assert.Equal(t, 2, summary.LowStockCount)
	assert.True(t, summary.StockValue.Equal(decimal.NewFromInt(1250000)))
}

func TestStatisticsInventoryPDF_RecorreTodasLasFilas(t *testing.T) {
	invRepo := newFakeInventoryRepo()
	require.NoError(t, invRepo.Create(&entity.Inventory{ID: "a", ProductID: "p1", Quantity: 5, WarningStock: 10}))
	require.NoError(t, invRepo.Create(&entity.Inventory{ID: "b", ProductID: "p2", Quantity: 50, WarningStock: 10}))
	gen := &fakeReportGen{}
	uc := usecase.NewStatisticsUseCase(&fakeStatsRepo{}, invRepo, gen)

	pdfBytes, err := uc.InventoryPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, 2, gen.rows)
}
