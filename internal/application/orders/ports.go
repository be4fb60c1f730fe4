package orders

import (
	"context"

	"github.com/acamargo/almacen-api/internal/domain/repository"
)

// TxRunner abre una transacción y entrega repos atados a ella. La
// implementación (postgres.TxRunner) hace Commit si fn devuelve nil y
// Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		seqRepo repository.SequenceRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
