package entity

import "time"

// DefaultWarningStock es el umbral de alerta asignado al crear el producto.
const DefaultWarningStock = 10

// Inventory es la fila de existencias de un producto (una por producto).
// Quantity solo cambia por aprobación de documentos o ajustes manuales.
type Inventory struct {
	ID           string
	ProductID    string
	Quantity     int
	WarningStock int // umbral de stock bajo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock indica si las existencias están en o bajo el umbral de alerta.
func (i *Inventory) LowStock() bool { return i.Quantity <= i.WarningStock }
