package repository

import "github.com/acamargo/almacen-api/internal/domain/entity"

// ProductFilter acota el listado de productos.
type ProductFilter struct {
	Keyword    string // busca en nombre normalizado y SKU
	CategoryID string
	Status     *int
	Page       int
	PageSize   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStatus(id string, status int) (bool, error)
	List(filter ProductFilter) ([]*entity.Product, int, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
