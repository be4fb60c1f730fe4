package repository

import "github.com/acamargo/almacen-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByParentAndName(parentID, name string) (*entity.Category, error)
	Update(category *entity.Category) error
	UpdateStatus(id string, status int) (bool, error)
	ListAll() ([]*entity.Category, error)
	ListByParent(parentID string) ([]*entity.Category, error)
	SearchByName(keyword string) ([]*entity.Category, error)
	CountChildren(parentID string) (int, error)
	Delete(id string) error
}
