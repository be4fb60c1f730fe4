package entity

import "time"

// MaxCategoryLevel limita la profundidad del árbol de categorías.
const MaxCategoryLevel = 3

// Category representa un nodo del árbol de categorías (hasta 3 niveles).
// ParentID vacío indica raíz; Level se calcula a partir del padre.
type Category struct {
	ID        string
	ParentID  string
	Name      string // único entre hermanos
	Level     int    // 1..3
	Sort      int
	Status    int // 1 habilitada, 0 deshabilitada
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enabled indica si la categoría admite productos nuevos.
func (c *Category) Enabled() bool { return c.Status == StatusEnabled }
