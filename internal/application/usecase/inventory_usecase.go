package usecase

import (
	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/repository"
	"github.com/acamargo/almacen-api/pkg/logger"
	"github.com/acamargo/almacen-api/pkg/normalizer"
)

// InventoryUseCase consultas y ajustes manuales de existencias. Los ajustes
// quedan auditados en el log estructurado con su motivo.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	log  *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, log: log.Component("inventory")}
}

// List pagina existencias con datos de producto y categoría.
func (uc *InventoryUseCase) List(keyword string, lowStockOnly bool, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	rows, total, err := uc.repo.List(normalizer.Fold(keyword), lowStockOnly, page.Page, page.PageSize)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryListResponse{
		Items: toInventoryResponses(rows),
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// ListLowStock devuelve todas las filas en o bajo el umbral de alerta.
func (uc *InventoryUseCase) ListLowStock() ([]dto.InventoryResponse, error) {
	rows, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(rows), nil
}

// Adjust aplica un ajuste manual sobre una fila de existencias:
// add suma, reduce resta (sin dejar negativo), set fija el valor.
// WarningStock se actualiza si viene en la petición.
func (uc *InventoryUseCase) Adjust(id string, in dto.AdjustInventoryRequest) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}

	newQty := inv.Quantity
	switch in.Type {
	case dto.AdjustAdd:
		if in.Quantity <= 0 {
			return domain.ErrValidation
		}
		newQty += in.Quantity
	case dto.AdjustReduce:
		if in.Quantity <= 0 {
			return domain.ErrValidation
		}
		if in.Quantity > newQty {
			return domain.ErrInsufficientStock
		}
		newQty -= in.Quantity
	case dto.AdjustSet:
		if in.Quantity < 0 {
			return domain.ErrValidation
		}
		newQty = in.Quantity
	default:
		return domain.ErrValidation
	}

	warning := inv.WarningStock
	if in.WarningStock != nil {
		warning = *in.WarningStock
	}
	if err := uc.repo.SetQuantity(inv.ID, newQty, warning); err != nil {
		return err
	}

	uc.log.Info().
		Str("product_id", inv.ProductID).
		Str("adjust_type", in.Type).
		Int("from", inv.Quantity).
		Int("to", newQty).
		Str("reason", in.Reason).
		Msg("ajuste manual de existencias")
	return nil
}

// CheckStock indica si un producto tiene al menos quantity unidades.
func (uc *InventoryUseCase) CheckStock(productID string, quantity int) (bool, error) {
	inv, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return false, err
	}
	return inv != nil && inv.Quantity >= quantity, nil
}

func toInventoryResponses(rows []*repository.InventoryRow) []dto.InventoryResponse {
	items := make([]dto.InventoryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.InventoryResponse{
			ID:           row.Inventory.ID,
			ProductID:    row.Inventory.ProductID,
			ProductName:  row.ProductName,
			ProductSKU:   row.ProductSKU,
			ProductUnit:  row.ProductUnit,
			CategoryName: row.CategoryName,
			Quantity:     row.Inventory.Quantity,
			WarningStock: row.Inventory.WarningStock,
			LowStock:     row.Inventory.LowStock(),
			UpdatedAt:    row.Inventory.UpdatedAt,
		})
	}
	return items
}
