package repository

import "github.com/acamargo/almacen-api/internal/domain/entity"

// InventoryRow es una fila de existencias enriquecida para listados.
type InventoryRow struct {
	Inventory    *entity.Inventory
	ProductName  string
	ProductSKU   string
	ProductUnit  string
	CategoryName string
}

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetByProductID(productID string) (*entity.Inventory, error)
	// GetForUpdate carga la fila de existencias con bloqueo (FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID string) (*entity.Inventory, error)
	// SetQuantity fija las existencias y el umbral de alerta de la fila.
	SetQuantity(id string, quantity, warningStock int) error
	List(keyword string, lowStockOnly bool, page, pageSize int) ([]*InventoryRow, int, error)
	ListLowStock() ([]*InventoryRow, error)
	DeleteByProductID(productID string) error
}
