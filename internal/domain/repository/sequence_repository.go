package repository

import (
	"context"
	"time"

	"github.com/acamargo/almacen-api/internal/domain/order"
)

// SequenceRepository asigna números consecutivos por tipo de documento y día.
type SequenceRepository interface {
	// Next devuelve el siguiente valor del contador (doc_type, día) de forma
	// atómica. Valores fuera de 1..9999 son responsabilidad del llamador.
	Next(ctx context.Context, docType order.DocType, day time.Time) (int, error)
}
