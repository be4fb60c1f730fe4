package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados de cabecera del tablero.
type DashboardResponse struct {
	ProductCount  int             `json:"product_count"`
	TotalQuantity int             `json:"total_quantity"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStockCount int             `json:"low_stock_count"`
}

// TrendPointResponse unidades aprobadas de un día.
type TrendPointResponse struct {
	Date        string `json:"date"` // YYYY-MM-DD
	InboundQty  int    `json:"inbound_qty"`
	OutboundQty int    `json:"outbound_qty"`
}

// CategoryShareResponse porción de existencias de una categoría raíz.
type CategoryShareResponse struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Percentage   decimal.Decimal `json:"percentage"`
}
