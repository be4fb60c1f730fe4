package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/acamargo/almacen-api/internal/domain/order"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo asigna los consecutivos diarios de documentos sobre la tabla
// order_sequences (una fila por tipo y día).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de consecutivos. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el contador (doc_type, día) en una sola sentencia
// atómica. Dos transacciones concurrentes nunca reciben el mismo valor: la
// segunda espera el lock de fila del upsert y lee el contador ya incrementado.
func (r *SequenceRepo) Next(ctx context.Context, docType order.DocType, day time.Time) (int, error) {
	query := `
		INSERT INTO order_sequences (doc_type, seq_date, seq_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (doc_type, seq_date)
		DO UPDATE SET seq_value = order_sequences.seq_value + 1
		RETURNING seq_value`
	var seq int
	err := r.q.QueryRow(ctx, query, string(docType), day.Format("2006-01-02")).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
