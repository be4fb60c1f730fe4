package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/application/usecase"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/pkg/logger"
)

func newInventoryFixture(t *testing.T, qty, warning int) (*usecase.InventoryUseCase, *fakeInventoryRepo, *entity.Inventory) {
	t.Helper()
	repo := newFakeInventoryRepo()
	inv := &entity.Inventory{ID: "inv-1", ProductID: "p1", Quantity: qty, WarningStock: warning}
	require.NoError(t, repo.Create(inv))
	return usecase.NewInventoryUseCase(repo, logger.Nop()), repo, inv
}

func TestInventoryAdjust_Tipos(t *testing.T) {
	cases := []struct {
		name    string
		req     dto.AdjustInventoryRequest
		wantQty int
		wantErr error
	}{
		{"sumar", dto.AdjustInventoryRequest{Type: dto.AdjustAdd, Quantity: 30}, 130, nil},
		{"restar", dto.AdjustInventoryRequest{Type: dto.AdjustReduce, Quantity: 40}, 60, nil},
		{"fijar", dto.AdjustInventoryRequest{Type: dto.AdjustSet, Quantity: 7}, 7, nil},
		{"fijar en cero", dto.AdjustInventoryRequest{Type: dto.AdjustSet, Quantity: 0}, 0, nil},
		{"restar de más", dto.AdjustInventoryRequest{Type: dto.AdjustReduce, Quantity: 101}, 100, domain.ErrInsufficientStock},
		{"sumar cero", dto.AdjustInventoryRequest{Type: dto.AdjustAdd, Quantity: 0}, 100, domain.ErrValidation},
		{"tipo desconocido", dto.AdjustInventoryRequest{Type: "swap", Quantity: 1}, 100, domain.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, inv := newInventoryFixture(t, 100, 10)

			err := uc.Adjust(inv.ID, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			stored, err := repo.GetByID(inv.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantQty, stored.Quantity)
		})
	}
}

func TestInventoryAdjust_ActualizaUmbral(t *testing.T) {
	uc, repo, inv := newInventoryFixture(t, 100, 10)

	warning := 25
	err := uc.Adjust(inv.ID, dto.AdjustInventoryRequest{
		Type:         dto.AdjustAdd,
		Quantity:     1,
		WarningStock: &warning,
		Reason:       "conteo físico",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.WarningStock)
}

func TestInventoryAdjust_FilaInexistente(t *testing.T) {
	uc, _, _ := newInventoryFixture(t, 100, 10)
	err := uc.Adjust("no-existe", dto.AdjustInventoryRequest{Type: dto.AdjustAdd, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryCheckStock(t *testing.T) {
	uc, _, _ := newInventoryFixture(t, 5, 10)

	ok, err := uc.CheckStock("p1", 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.CheckStock("p1", 6)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.CheckStock("sin-fila", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInventoryListLowStock(t *testing.T) {
	repo := newFakeInventoryRepo()
	require.NoError(t, repo.Create(&entity.Inventory{ID: "a", ProductID: "p1", Quantity: 5, WarningStock: 10}))
	require.NoError(t, repo.Create(&entity.Inventory{ID: "b", ProductID: "p2", Quantity: 50, WarningStock: 10}))
	require.NoError(t, repo.Create(&entity.Inventory{ID: "c", ProductID: "p3", Quantity: 10, WarningStock: 10}))
	uc := usecase.NewInventoryUseCase(repo, logger.Nop())

	items, err := uc.ListLowStock()
	require.NoError(t, err)
	// El umbral es inclusivo: 5<=10 y 10<=10 alertan, 50 no.
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.LowStock)
	}
}
