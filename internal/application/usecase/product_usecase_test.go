package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/application/usecase"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

type productFixture struct {
	uc     *usecase.ProductUseCase
	cats   *fakeCategoryRepo
	prods  *fakeProductRepo
	inv    *fakeInventoryRepo
	orders *fakeOrderRepo
}

func newProductFixture(t *testing.T) (*productFixture, *entity.Category) {
	t.Helper()
	cats := newFakeCategoryRepo()
	prods := newFakeProductRepo()
	inv := newFakeInventoryRepo()
	ordersRepo := &fakeOrderRepo{countByProduct: map[string]int{}}
	tx := &fakeCatalogTx{products: prods, inv: inv}

	category := &entity.Category{
		ID:     "cat-1",
		Name:   "Bebidas",
		Level:  1,
		Status: entity.StatusEnabled,
	}
	require.NoError(t, cats.Create(category))

	uc := usecase.NewProductUseCase(tx, prods, cats, ordersRepo, inv)
	return &productFixture{uc: uc, cats: cats, prods: prods, inv: inv, orders: ordersRepo}, category
}

func createRequest(sku string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:        sku,
		Name:       "Café Colombiano 500g",
		CategoryID: "cat-1",
		Unit:       "unidad",
		Price:      decimal.NewFromInt(18000),
		CostPrice:  decimal.NewFromInt(12000),
	}
}

func TestProductCreate_InicializaExistencias(t *testing.T) {
	fx, _ := newProductFixture(t)

	p, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnabled, p.Status)
	// El nombre se normaliza para búsqueda sin acentos.
	stored, err := fx.prods.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "cafe colombiano 500g", stored.SearchName)

	inv, err := fx.inv.GetByProductID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Quantity)
	assert.Equal(t, entity.DefaultWarningStock, inv.WarningStock)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	fx, _ := newProductFixture(t)

	_, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)
	_, err = fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInvalida(t *testing.T) {
	fx, category := newProductFixture(t)

	req := createRequest("CAFE-001")
	req.CategoryID = "no-existe"
	_, err := fx.uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = fx.cats.UpdateStatus(category.ID, entity.StatusDisabled)
	require.NoError(t, err)
	_, err = fx.uc.Create(context.Background(), createRequest("CAFE-002"))
	assert.ErrorIs(t, err, domain.ErrCategoryDisabled)
}

func TestProductCreate_PreciosNegativos(t *testing.T) {
	fx, _ := newProductFixture(t)

	req := createRequest("CAFE-001")
	req.Price = decimal.NewFromInt(-1)
	_, err := fx.uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductDelete_BloqueadoConHistorial(t *testing.T) {
	fx, _ := newProductFixture(t)

	p, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)

	fx.orders.countByProduct[p.ID] = 3
	assert.ErrorIs(t, fx.uc.Delete(context.Background(), p.ID), domain.ErrInUse)

	fx.orders.countByProduct[p.ID] = 0
	require.NoError(t, fx.uc.Delete(context.Background(), p.ID))

	got, err := fx.uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	// La fila de existencias se fue con el producto.
	inv, err := fx.inv.GetByProductID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, inv)
}

func TestProductDelete_BloqueadoConStock(t *testing.T) {
	fx, _ := newProductFixture(t)

	p, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)

	inv, err := fx.inv.GetByProductID(p.ID)
	require.NoError(t, err)
	require.NoError(t, fx.inv.SetQuantity(inv.ID, 50, inv.WarningStock))

	assert.ErrorIs(t, fx.uc.Delete(context.Background(), p.ID), domain.ErrInUse)
}

func TestProductList_BusquedaSinAcentos(t *testing.T) {
	fx, _ := newProductFixture(t)

	_, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)

	// "CAFÉ" con acento encuentra "Café Colombiano".
	res, err := fx.uc.List(repository.ProductFilter{Keyword: "CAFÉ"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "CAFE-001", res.Items[0].SKU)
}

func TestProductUpdateStatus(t *testing.T) {
	fx, _ := newProductFixture(t)

	p, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)

	require.NoError(t, fx.uc.UpdateStatus(p.ID, entity.StatusDisabled))
	got, err := fx.uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDisabled, got.Status)

	assert.ErrorIs(t, fx.uc.UpdateStatus(p.ID, 7), domain.ErrValidation)
	assert.ErrorIs(t, fx.uc.UpdateStatus("no-existe", entity.StatusEnabled), domain.ErrNotFound)
}

func TestProductUpdate_MantieneSKU(t *testing.T) {
	fx, _ := newProductFixture(t)

	p, err := fx.uc.Create(context.Background(), createRequest("CAFE-001"))
	require.NoError(t, err)

	updated, err := fx.uc.Update(p.ID, dto.UpdateProductRequest{
		Name:       "Café Premium 500g",
		CategoryID: "cat-1",
		Unit:       "caja",
		Price:      decimal.NewFromInt(22000),
		CostPrice:  decimal.NewFromInt(15000),
	})
	require.NoError(t, err)
	assert.Equal(t, "CAFE-001", updated.SKU)
	assert.Equal(t, "Café Premium 500g", updated.Name)
	assert.True(t, updated.UpdatedAt.After(time.Time{}))
}
