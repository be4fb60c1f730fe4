package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/order"
	"github.com/acamargo/almacen-api/internal/domain/repository"
	"github.com/acamargo/almacen-api/pkg/logger"
)

// UseCase gestiona el ciclo de vida de los documentos de entrada y salida:
// creación con numeración consecutiva, modificación y borrado de pendientes,
// aprobación (que aplica el movimiento a existencias) y anulación.
type UseCase struct {
	tx          TxRunner
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso con reloj de pared.
func NewUseCase(
	tx TxRunner,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tx:          tx,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		invRepo:     invRepo,
		log:         log.Component("orders"),
		now:         time.Now,
	}
}

// WithClock reemplaza la fuente de tiempo. La numeración diaria y las marcas
// de aprobación salen de aquí, así que los tests la fijan a una fecha conocida.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// CreateInput entrada para crear un documento.
type CreateInput struct {
	Type              order.DocType
	ProductID         string
	Quantity          int
	Counterparty      string
	CounterpartyPhone string
	MovementDate      time.Time
	Remark            string
	CreatedBy         string
}

// UpdateInput entrada para modificar un documento pendiente. El tipo y el
// número de documento no cambian nunca.
type UpdateInput struct {
	ProductID         string
	Quantity          int
	Counterparty      string
	CounterpartyPhone string
	MovementDate      time.Time
	Remark            string
}

// Create valida la entrada, verifica el producto y, dentro de una
// transacción, toma el siguiente consecutivo del día y persiste el documento
// en estado pendiente.
//
// Para salidas se verifica aquí que haya existencias suficientes, y se vuelve
// a verificar al aprobar: entre ambos momentos el stock puede haber cambiado.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*entity.Order, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrValidation
	}
	if err := order.ValidateDetails(input.Quantity, input.Counterparty, input.Remark); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.Enabled() {
		return nil, domain.ErrProductDisabled
	}

	if input.Type == order.DocTypeOutbound {
		inv, err := uc.invRepo.GetByProductID(input.ProductID)
		if err != nil {
			return nil, err
		}
		if inv == nil || inv.Quantity < input.Quantity {
			return nil, domain.ErrInsufficientStock
		}
	}

	now := uc.now()
	movementDate := input.MovementDate
	if movementDate.IsZero() {
		movementDate = now
	}

	o := &entity.Order{
		ID:                uuid.New().String(),
		Type:              input.Type,
		ProductID:         input.ProductID,
		Quantity:          input.Quantity,
		Counterparty:      input.Counterparty,
		CounterpartyPhone: input.CounterpartyPhone,
		MovementDate:      movementDate,
		Status:            order.StatusPending,
		Remark:            input.Remark,
		CreatedBy:         input.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		seqRepo repository.SequenceRepository,
		_ repository.InventoryRepository,
	) error {
		seq, err := seqRepo.Next(ctx, input.Type, now)
		if err != nil {
			return err
		}
		if seq > order.MaxDailySequence {
			return domain.ErrSequenceExhausted
		}
		number, err := order.FormatNumber(input.Type, now, seq)
		if err != nil {
			return err
		}
		o.DocumentNumber = number
		return orderRepo.Create(o)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("document_number", o.DocumentNumber).
		Str("product_id", o.ProductID).
		Int("quantity", o.Quantity).
		Msg("documento creado")
	return o, nil
}

// Update modifica un documento pendiente. Los campos se validan con las
// mismas reglas de Create; el tipo y el número no cambian.
func (uc *UseCase) Update(ctx context.Context, id string, input UpdateInput) (*entity.Order, error) {
	if err := order.ValidateDetails(input.Quantity, input.Counterparty, input.Remark); err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := order.EnsureMutable(o.Status); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.Enabled() {
		return nil, domain.ErrProductDisabled
	}

	o.ProductID = input.ProductID
	o.Quantity = input.Quantity
	o.Counterparty = input.Counterparty
	o.CounterpartyPhone = input.CounterpartyPhone
	if !input.MovementDate.IsZero() {
		o.MovementDate = input.MovementDate
	}
	o.Remark = input.Remark
	o.UpdatedAt = uc.now()

	// El UPDATE exige status pendiente: si otro proceso aprobó o anuló
	// entre la lectura y la escritura, no toca ninguna fila.
	ok, err := uc.orderRepo.Update(o)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConcurrencyConflict
	}
	return o, nil
}

// Delete elimina un documento pendiente. Aprobados y anulados se conservan
// como historial y no pueden borrarse.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.SequenceRepository,
		_ repository.InventoryRepository,
	) error {
		o, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if err := order.EnsureMutable(o.Status); err != nil {
			return err
		}
		return orderRepo.Delete(id)
	})
}

// Approve pasa un documento pendiente a aprobado y aplica el movimiento a
// existencias en la misma transacción: las entradas suman, las salidas
// restan tras re-verificar el stock con la fila bloqueada.
func (uc *UseCase) Approve(ctx context.Context, id, actor string) (*entity.Order, error) {
	if actor == "" {
		return nil, domain.ErrValidation
	}

	var approved *entity.Order
	err := uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.SequenceRepository,
		invRepo repository.InventoryRepository,
	) error {
		o, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if err := order.EnsureMutable(o.Status); err != nil {
			return err
		}

		inv, err := invRepo.GetForUpdate(o.ProductID)
		if err != nil {
			return err
		}
		newQty := o.Quantity
		warning := entity.DefaultWarningStock
		if inv != nil {
			warning = inv.WarningStock
		}
		switch o.Type {
		case order.DocTypeInbound:
			if inv != nil {
				newQty = inv.Quantity + o.Quantity
			}
		case order.DocTypeOutbound:
			if inv == nil || inv.Quantity < o.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = inv.Quantity - o.Quantity
		default:
			return domain.ErrValidation
		}

		now := uc.now()
		o.Status = order.StatusApproved
		o.ApprovedBy = actor
		o.ApprovedAt = &now
		o.UpdatedAt = now

		ok, err := orderRepo.Transition(o, order.StatusPending)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConcurrencyConflict
		}
		approved = o

		if inv == nil {
			// Entrada de un producto sin fila de existencias: se crea aquí.
			return invRepo.Create(&entity.Inventory{
				ID:           uuid.New().String(),
				ProductID:    o.ProductID,
				Quantity:     newQty,
				WarningStock: warning,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}
		return invRepo.SetQuantity(inv.ID, newQty, warning)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("document_number", approved.DocumentNumber).
		Str("approved_by", actor).
		Msg("documento aprobado")
	return approved, nil
}

// Void anula un documento pendiente. No toca existencias: solo los
// documentos aprobados han movido stock.
func (uc *UseCase) Void(ctx context.Context, id string) (*entity.Order, error) {
	var voided *entity.Order
	err := uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.SequenceRepository,
		_ repository.InventoryRepository,
	) error {
		o, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if err := order.EnsureMutable(o.Status); err != nil {
			return err
		}

		o.Status = order.StatusVoid
		o.UpdatedAt = uc.now()

		ok, err := orderRepo.Transition(o, order.StatusPending)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConcurrencyConflict
		}
		voided = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("document_number", voided.DocumentNumber).
		Msg("documento anulado")
	return voided, nil
}

// GetByID devuelve el documento enriquecido con datos del producto, o nil si
// no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*repository.OrderRow, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	row := &repository.OrderRow{Order: o}
	if product, err := uc.productRepo.GetByID(o.ProductID); err == nil && product != nil {
		row.ProductName = product.Name
		row.ProductSKU = product.SKU
	}
	return row, nil
}

// List pagina documentos de un tipo con filtros opcionales.
func (uc *UseCase) List(ctx context.Context, filter repository.OrderFilter) ([]*repository.OrderRow, int, error) {
	if !filter.Type.Valid() {
		return nil, 0, domain.ErrValidation
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, 0, domain.ErrValidation
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	if filter.DateTo != nil {
		// date_to llega como día inclusivo; se traduce al inicio del día
		// siguiente (límite exclusivo) para no excluir documentos cuya fecha
		// de movimiento lleva hora.
		end := filter.DateTo.Truncate(24 * time.Hour).AddDate(0, 0, 1)
		filter.DateTo = &end
	}
	return uc.orderRepo.List(filter)
}
