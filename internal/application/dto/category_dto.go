package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	ParentID string `json:"parent_id"`
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Sort     int    `json:"sort" validate:"min=0"`
}

// UpdateCategoryRequest entrada para renombrar/reordenar una categoría.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Sort int    `json:"sort" validate:"min=0"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Sort      int       `json:"sort"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryNode nodo del árbol de categorías.
type CategoryNode struct {
	CategoryResponse
	Children []*CategoryNode `json:"children"`
}
