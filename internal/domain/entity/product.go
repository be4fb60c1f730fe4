package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Product y Category (habilitado/deshabilitado).
const (
	StatusEnabled  = 1
	StatusDisabled = 0
)

// Product representa un producto o SKU del catálogo. El stock vive en
// Inventory (una fila por producto); Price/CostPrice son decimales exactos.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	SearchName    string // Name normalizado sin acentos, para búsqueda
	CategoryID    string
	Unit          string // unidad de medida: unidad, caja, kg...
	Price         decimal.Decimal // precio de venta
	CostPrice     decimal.Decimal // costo de adquisición
	Specification string
	Description   string
	Status        int // 1 habilitado, 0 deshabilitado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Enabled indica si el producto admite movimientos de inventario.
func (p *Product) Enabled() bool { return p.Status == StatusEnabled }
