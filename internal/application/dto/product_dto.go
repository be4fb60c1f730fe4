package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID    string          `json:"category_id" validate:"required"`
	Unit          string          `json:"unit" validate:"required,max=20"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Specification string          `json:"specification" validate:"max=200"`
	Description   string          `json:"description" validate:"max=500"`
}

// UpdateProductRequest entrada para actualizar un producto (el SKU no cambia).
type UpdateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID    string          `json:"category_id" validate:"required"`
	Unit          string          `json:"unit" validate:"required,max=20"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Specification string          `json:"specification" validate:"max=200"`
	Description   string          `json:"description" validate:"max=500"`
}

// UpdateStatusRequest entrada para habilitar/deshabilitar un recurso.
type UpdateStatusRequest struct {
	Status int `json:"status" validate:"oneof=0 1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Specification string          `json:"specification"`
	Description   string          `json:"description"`
	Status        int             `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
