package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/application/usecase"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
)

func newCategoryFixture() (*usecase.CategoryUseCase, *fakeCategoryRepo, *fakeProductRepo) {
	catRepo := newFakeCategoryRepo()
	prodRepo := newFakeProductRepo()
	return usecase.NewCategoryUseCase(catRepo, prodRepo), catRepo, prodRepo
}

func TestCategoryCreate_NivelesCalculados(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	assert.Equal(t, 1, root.Level)

	child, err := uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, 2, child.Level)

	grandchild, err := uc.Create(dto.CreateCategoryRequest{ParentID: child.ID, Name: "Gaseosas"})
	require.NoError(t, err)
	assert.Equal(t, 3, grandchild.Level)

	// El cuarto nivel excede la profundidad máxima.
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: grandchild.ID, Name: "Colas"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryCreate_NombreUnicoEntreHermanos(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	require.NoError(t, err)

	// Mismo nombre bajo el mismo padre: rechazado.
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mismo nombre bajo otro padre: permitido.
	other, err := uc.Create(dto.CreateCategoryRequest{Name: "Aseo"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: other.ID, Name: "Bebidas"})
	assert.NoError(t, err)
}

func TestCategoryCreate_PadreInexistenteODeshabilitado(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	_, err := uc.Create(dto.CreateCategoryRequest{ParentID: "no-existe", Name: "Huérfana"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	require.NoError(t, uc.UpdateStatus(root.ID, entity.StatusDisabled))

	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrCategoryDisabled)
}

func TestCategoryTree_ArmaJerarquia(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	child, err := uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: child.ID, Name: "Gaseosas"})
	require.NoError(t, err)

	tree, err := uc.Tree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Alimentos", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Bebidas", tree[0].Children[0].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "Gaseosas", tree[0].Children[0].Children[0].Name)
}

func TestCategoryEnabledTree_OcultaDeshabilitadasYDescendientes(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	child, err := uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: child.ID, Name: "Gaseosas"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(child.ID, entity.StatusDisabled))

	tree, err := uc.EnabledTree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	// Bebidas está deshabilitada: ni ella ni Gaseosas aparecen.
	assert.Empty(t, tree[0].Children)
}

func TestCategoryDelete_BloqueadaConHijosOProductos(t *testing.T) {
	uc, _, prodRepo := newCategoryFixture()

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	child, err := uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(root.ID), domain.ErrInUse)

	require.NoError(t, prodRepo.Create(&entity.Product{ID: "p1", SKU: "S1", CategoryID: child.ID}))
	assert.ErrorIs(t, uc.Delete(child.ID), domain.ErrInUse)

	require.NoError(t, prodRepo.Delete("p1"))
	assert.NoError(t, uc.Delete(child.ID))
	assert.NoError(t, uc.Delete(root.ID))
}

func TestCategoryUpdate_RenombreChocaConHermano(t *testing.T) {
	uc, _, _ := newCategoryFixture()

	root, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Bebidas"})
	require.NoError(t, err)
	snacks, err := uc.Create(dto.CreateCategoryRequest{ParentID: root.ID, Name: "Snacks"})
	require.NoError(t, err)

	_, err = uc.Update(snacks.ID, dto.UpdateCategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	updated, err := uc.Update(snacks.ID, dto.UpdateCategoryRequest{Name: "Pasabocas", Sort: 5})
	require.NoError(t, err)
	assert.Equal(t, "Pasabocas", updated.Name)
	assert.Equal(t, 5, updated.Sort)
}
