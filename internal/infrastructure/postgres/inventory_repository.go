package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste la fila de existencias de un producto (una por producto).
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, warning_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.Quantity, inv.WarningStock, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert inventory: ya existe fila para el producto %s", inv.ProductID)
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de existencias por su ID. Devuelve nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, warning_stock, created_at, updated_at
		FROM inventory WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory by id")
}

// GetByProductID obtiene las existencias de un producto. Devuelve nil si no hay fila.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, warning_stock, created_at, updated_at
		FROM inventory WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get inventory")
}

// GetForUpdate obtiene las existencias con bloqueo de fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, warning_stock, created_at, updated_at
		FROM inventory WHERE product_id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get inventory for update")
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.WarningStock, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}

// SetQuantity fija las existencias y el umbral de alerta de la fila.
func (r *InventoryRepo) SetQuantity(id string, quantity, warningStock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET quantity = $2, warning_stock = $3, updated_at = now() WHERE id = $1`,
		id, quantity, warningStock,
	)
	if err != nil {
		return fmt.Errorf("set inventory quantity: %w", err)
	}
	return nil
}

// List pagina existencias con datos de producto y categoría. El keyword busca
// sobre el nombre normalizado y el SKU del producto.
func (r *InventoryRepo) List(keyword string, lowStockOnly bool, page, pageSize int) ([]*repository.InventoryRow, int, error) {
	conds := "p.status = 1"
	args := []any{}
	if keyword != "" {
		args = append(args, "%"+keyword+"%")
		conds += fmt.Sprintf(" AND (p.search_name LIKE $%d OR p.sku ILIKE $%d)", len(args), len(args))
	}
	if lowStockOnly {
		conds += " AND i.quantity <= i.warning_stock"
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE ` + conds
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
		SELECT i.id, i.product_id, i.quantity, i.warning_stock, i.created_at, i.updated_at,
			p.name, p.sku, p.unit, COALESCE(c.name, '')
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE %s
		ORDER BY p.name
		LIMIT $%d OFFSET $%d`, conds, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	list, err := scanInventoryRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListLowStock devuelve todas las filas en o bajo el umbral de alerta.
func (r *InventoryRepo) ListLowStock() ([]*repository.InventoryRow, error) {
	query := `
		SELECT i.id, i.product_id, i.quantity, i.warning_stock, i.created_at, i.updated_at,
			p.name, p.sku, p.unit, COALESCE(c.name, '')
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.status = 1 AND i.quantity <= i.warning_stock
		ORDER BY i.quantity`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanInventoryRows(rows)
}

func scanInventoryRows(rows pgx.Rows) ([]*repository.InventoryRow, error) {
	var list []*repository.InventoryRow
	for rows.Next() {
		var (
			inv entity.Inventory
			row repository.InventoryRow
		)
		if err := rows.Scan(
			&inv.ID, &inv.ProductID, &inv.Quantity, &inv.WarningStock, &inv.CreatedAt, &inv.UpdatedAt,
			&row.ProductName, &row.ProductSKU, &row.ProductUnit, &row.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		row.Inventory = &inv
		list = append(list, &row)
	}
	return list, rows.Err()
}

// DeleteByProductID elimina la fila de existencias de un producto.
func (r *InventoryRepo) DeleteByProductID(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}
