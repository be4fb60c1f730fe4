package usecase_test

import (
	"context"
	"strings"
	"sync"

	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/order"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests de este paquete.

type fakeCategoryRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.rows {
		if existing.ParentID == c.ParentID && existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetByParentAndName(parentID, name string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.ParentID == parentID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) UpdateStatus(id string, status int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}

func (f *fakeCategoryRepo) ListAll() ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Category
	for _, c := range f.rows {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeCategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Category
	for _, c := range f.rows {
		if c.ParentID == parentID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeCategoryRepo) SearchByName(keyword string) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(strings.Trim(keyword, "%"))
	var list []*entity.Category
	for _, c := range f.rows {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeCategoryRepo) CountChildren(parentID string) (int, error) {
	list, _ := f.ListByParent(parentID)
	return len(list), nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

type fakeProductRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.rows {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStatus(id string, status int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	return true, nil
}

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.Trim(filter.Keyword, "%")
	var list []*entity.Product
	for _, p := range f.rows {
		if needle != "" && !strings.Contains(p.SearchName, needle) && !strings.Contains(p.SKU, needle) {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	return list, len(list), nil
}

func (f *fakeProductRepo) CountByCategory(categoryID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.rows {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

type fakeInventoryRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Inventory // por product_id
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{rows: map[string]*entity.Inventory{}}
}

func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inv
	f.rows[inv.ProductID] = &cp
	return nil
}

func (f *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.rows {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.rows[productID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInventoryRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	return f.GetByProductID(productID)
}

func (f *fakeInventoryRepo) SetQuantity(id string, quantity, warningStock int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.rows {
		if inv.ID == id {
			inv.Quantity = quantity
			inv.WarningStock = warningStock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInventoryRepo) List(keyword string, lowStockOnly bool, page, pageSize int) ([]*repository.InventoryRow, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*repository.InventoryRow
	for _, inv := range f.rows {
		if lowStockOnly && !inv.LowStock() {
			continue
		}
		cp := *inv
		list = append(list, &repository.InventoryRow{Inventory: &cp})
	}
	return list, len(list), nil
}

func (f *fakeInventoryRepo) ListLowStock() ([]*repository.InventoryRow, error) {
	list, _, err := f.List("", true, 1, 100)
	return list, err
}

func (f *fakeInventoryRepo) DeleteByProductID(productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, productID)
	return nil
}

// fakeOrderRepo solo cuenta documentos por producto; el resto no se usa aquí.
type fakeOrderRepo struct {
	countByProduct map[string]int
}

func (f *fakeOrderRepo) Create(*entity.Order) error                    { return nil }
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error)         { return nil, nil }
func (f *fakeOrderRepo) GetForUpdate(string) (*entity.Order, error)    { return nil, nil }
func (f *fakeOrderRepo) Update(*entity.Order) (bool, error)            { return false, nil }
func (f *fakeOrderRepo) Delete(string) error                           { return nil }
func (f *fakeOrderRepo) Transition(*entity.Order, order.Status) (bool, error) {
	return false, nil
}
func (f *fakeOrderRepo) List(repository.OrderFilter) ([]*repository.OrderRow, int, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) CountByProduct(productID string) (int, error) {
	return f.countByProduct[productID], nil
}

// fakeCatalogTx entrega los mismos fakes dentro de la "transacción".
type fakeCatalogTx struct {
	products *fakeProductRepo
	inv      *fakeInventoryRepo
}

func (f *fakeCatalogTx) RunCatalog(_ context.Context, fn func(
	repository.ProductRepository,
	repository.InventoryRepository,
) error) error {
	return fn(f.products, f.inv)
}
