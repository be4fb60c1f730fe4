package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats son los agregados de cabecera del tablero.
type DashboardStats struct {
	ProductCount  int             // productos habilitados
	TotalQuantity int             // unidades totales en existencia
	StockValue    decimal.Decimal // valoración a costo
	LowStockCount int             // productos en o bajo el umbral de alerta
}

// TrendPoint es el total diario de unidades aprobadas por tipo.
type TrendPoint struct {
	Day         time.Time
	InboundQty  int
	OutboundQty int
}

// CategoryShare es la porción de existencias de una categoría raíz.
type CategoryShare struct {
	CategoryID   string
	CategoryName string
	Quantity     int
}

// StatisticsRepository expone los agregados de solo lectura del tablero.
type StatisticsRepository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	// Trend devuelve un punto por día para los últimos days días,
	// contando solo documentos aprobados.
	Trend(ctx context.Context, days int) ([]*TrendPoint, error)
	CategoryDistribution(ctx context.Context) ([]*CategoryShare, error)
}
