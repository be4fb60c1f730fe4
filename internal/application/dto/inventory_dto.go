package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste manual de existencias.
const (
	AdjustAdd    = "add"
	AdjustReduce = "reduce"
	AdjustSet    = "set"
)

// AdjustInventoryRequest entrada para un ajuste manual de existencias.
type AdjustInventoryRequest struct {
	Type         string `json:"type" validate:"required,oneof=add reduce set"`
	Quantity     int    `json:"quantity" validate:"min=0"`
	WarningStock *int   `json:"warning_stock" validate:"omitempty,min=0"`
	Reason       string `json:"reason" validate:"max=200"`
}

// InventoryResponse salida de una fila de existencias con datos del producto.
type InventoryResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSKU   string    `json:"product_sku"`
	ProductUnit  string    `json:"product_unit"`
	CategoryName string    `json:"category_name"`
	Quantity     int       `json:"quantity"`
	WarningStock int       `json:"warning_stock"`
	LowStock     bool      `json:"low_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de existencias.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// InventorySummaryResponse totales del inventario.
type InventorySummaryResponse struct {
	ProductCount  int             `json:"product_count"`
	TotalQuantity int             `json:"total_quantity"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStockCount int             `json:"low_stock_count"`
}
