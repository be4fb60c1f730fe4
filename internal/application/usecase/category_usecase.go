package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/acamargo/almacen-api/internal/application/dto"
	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

// CategoryUseCase casos de uso del árbol de categorías (hasta 3 niveles,
// nombre único entre hermanos).
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una categoría. El nivel se calcula desde el padre; el padre
// debe existir, estar habilitado y no estar ya en el nivel máximo.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	level := 1
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrCategoryNotFound
		}
		if !parent.Enabled() {
			return nil, domain.ErrCategoryDisabled
		}
		if parent.Level >= entity.MaxCategoryLevel {
			return nil, domain.ErrValidation
		}
		level = parent.Level + 1
	}
	existing, err := uc.repo.GetByParentAndName(in.ParentID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		ParentID:  in.ParentID,
		Name:      in.Name,
		Level:     level,
		Sort:      in.Sort,
		Status:    entity.StatusEnabled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update renombra o reordena una categoría. El padre no cambia (mover
// subárboles rompería los niveles calculados).
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != category.Name {
		sibling, err := uc.repo.GetByParentAndName(category.ParentID, in.Name)
		if err != nil {
			return nil, err
		}
		if sibling != nil {
			return nil, domain.ErrDuplicate
		}
	}
	category.Name = in.Name
	category.Sort = in.Sort
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// UpdateStatus habilita o deshabilita una categoría.
func (uc *CategoryUseCase) UpdateStatus(id string, status int) error {
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

// Delete elimina una categoría sin hijos ni productos asignados.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	children, err := uc.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrInUse
	}
	products, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrInUse
	}
	return uc.repo.Delete(id)
}

// Tree devuelve el árbol completo de categorías.
func (uc *CategoryUseCase) Tree() ([]*dto.CategoryNode, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return buildTree(all), nil
}

// EnabledTree devuelve el árbol solo con categorías habilitadas. Un nodo
// deshabilitado oculta también a sus descendientes.
func (uc *CategoryUseCase) EnabledTree() ([]*dto.CategoryNode, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	enabled := make([]*entity.Category, 0, len(all))
	for _, c := range all {
		if c.Enabled() {
			enabled = append(enabled, c)
		}
	}
	return buildTree(enabled), nil
}

// Children devuelve los hijos directos de una categoría.
func (uc *CategoryUseCase) Children(parentID string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByParent(parentID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// Search busca categorías por coincidencia parcial de nombre.
func (uc *CategoryUseCase) Search(keyword string) ([]dto.CategoryResponse, error) {
	if keyword == "" {
		return []dto.CategoryResponse{}, nil
	}
	list, err := uc.repo.SearchByName(keyword)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// buildTree arma el árbol en memoria. Los nodos cuyo padre no está en la
// lista (podado o inexistente) quedan fuera.
func buildTree(categories []*entity.Category) []*dto.CategoryNode {
	nodes := make(map[string]*dto.CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &dto.CategoryNode{
			CategoryResponse: *toCategoryResponse(c),
			Children:         []*dto.CategoryNode{},
		}
	}
	roots := []*dto.CategoryNode{}
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Name:      c.Name,
		Level:     c.Level,
		Sort:      c.Sort,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}
