package repository

import (
	"time"

	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/order"
)

// OrderFilter acota el listado de documentos. Type es obligatorio (cada
// endpoint lista un solo tipo); el resto es opcional.
type OrderFilter struct {
	Type      order.DocType
	ProductID string
	Status    *order.Status
	DateFrom  *time.Time // inclusivo
	DateTo    *time.Time // exclusivo
	Page      int
	PageSize  int
}

// OrderRow es un documento enriquecido con datos del producto para listados.
type OrderRow struct {
	Order       *entity.Order
	ProductName string
	ProductSKU  string
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate carga el documento con bloqueo de fila (FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Order, error)
	// Update persiste los campos mutables solo si el documento sigue
	// pendiente. Devuelve false si ninguna fila coincidió.
	Update(o *entity.Order) (bool, error)
	// Transition cambia el estado solo si el estado actual es from.
	// Devuelve false si otro proceso ganó la transición.
	Transition(o *entity.Order, from order.Status) (bool, error)
	Delete(id string) error
	List(filter OrderFilter) ([]*OrderRow, int, error)
	// CountByProduct cuenta documentos que referencian al producto,
	// en cualquier estado. Usado para bloquear el borrado de productos.
	CountByProduct(productID string) (int, error)
}
