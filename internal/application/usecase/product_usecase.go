package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/repository"
	"github.com/acamargo/almacen-api/pkg/normalizer"
)

// CatalogTxRunner abre una transacción con los repos de catálogo: el alta de
// un producto crea también su fila de existencias, y ambas escrituras van juntas.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// ProductUseCase casos de uso CRUD para productos. El stock no se edita aquí:
// cambia al aprobar documentos o con ajustes de inventario.
type ProductUseCase struct {
	tx           CatalogTxRunner
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	invRepo      repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	tx CatalogTxRunner,
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
	invRepo repository.InventoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		tx:           tx,
		repo:         repo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		invRepo:      invRepo,
	}
}

// Create crea un producto habilitado y su fila de existencias (cantidad 0,
// umbral por defecto) en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrValidation
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if !category.Enabled() {
		return nil, domain.ErrCategoryDisabled
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		SearchName:    normalizer.Fold(in.Name),
		CategoryID:    in.CategoryID,
		Unit:          in.Unit,
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		Specification: in.Specification,
		Description:   in.Description,
		Status:        entity.StatusEnabled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.tx.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return invRepo.Create(&entity.Inventory{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			Quantity:     0,
			WarningStock: entity.DefaultWarningStock,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los datos de catálogo. El SKU y el stock no cambian.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrValidation
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if !category.Enabled() {
		return nil, domain.ErrCategoryDisabled
	}

	product.Name = in.Name
	product.SearchName = normalizer.Fold(in.Name)
	product.CategoryID = in.CategoryID
	product.Unit = in.Unit
	product.Price = in.Price
	product.CostPrice = in.CostPrice
	product.Specification = in.Specification
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateStatus habilita o deshabilita un producto. Deshabilitado no admite
// documentos nuevos, pero conserva su historial y sus existencias.
func (uc *ProductUseCase) UpdateStatus(id string, status int) error {
	if status != entity.StatusEnabled && status != entity.StatusDisabled {
		return domain.ErrValidation
	}
	ok, err := uc.repo.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// List pagina productos. El keyword se normaliza igual que search_name.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	filter.Keyword = normalizer.Fold(filter.Keyword)
	list, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	}, nil
}

// Delete elimina un producto sin historial. Si tiene documentos asociados o
// existencias distintas de cero, se rechaza: deshabilitar es el camino.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	n, err := uc.orderRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrInUse
	}
	inv, err := uc.invRepo.GetByProductID(id)
	if err != nil {
		return err
	}
	if inv != nil && inv.Quantity != 0 {
		return domain.ErrInUse
	}
	return uc.tx.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := invRepo.DeleteByProductID(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		Unit:          p.Unit,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		Specification: p.Specification,
		Description:   p.Description,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
