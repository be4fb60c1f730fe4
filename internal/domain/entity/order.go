package entity

import (
	"time"

	"github.com/acamargo/almacen-api/internal/domain/order"
)

// Order representa un documento de movimiento de inventario: una entrada
// (compra a proveedor) o una salida (entrega a receptor). El tipo se fija al
// crear y nunca cambia; el número de documento es único e inmutable.
type Order struct {
	ID                string
	DocumentNumber    string // IN/OUT + YYYYMMDD + secuencia de 4 dígitos
	Type              order.DocType
	ProductID         string
	Quantity          int    // unidades, 1..999999
	Counterparty      string // proveedor (entrada) o receptor (salida)
	CounterpartyPhone string // solo salidas, opcional
	MovementDate      time.Time
	Status            order.Status
	Remark            string
	CreatedBy         string
	CreatedAt         time.Time
	ApprovedBy        string
	ApprovedAt        *time.Time
	UpdatedAt         time.Time
}
