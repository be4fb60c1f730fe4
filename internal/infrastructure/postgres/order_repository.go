package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/acamargo/almacen-api/internal/domain"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/order"
	"github.com/acamargo/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, document_number, doc_type, product_id, quantity, counterparty,
	COALESCE(counterparty_phone, ''), movement_date, status, COALESCE(remark, ''),
	created_by, created_at, COALESCE(approved_by, ''), approved_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de documentos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo documento (siempre nace pendiente).
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (id, document_number, doc_type, product_id, quantity, counterparty,
			counterparty_phone, movement_date, status, remark, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, NULLIF($10, ''), $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.DocumentNumber, string(o.Type), o.ProductID, o.Quantity, o.Counterparty,
		o.CounterpartyPhone, o.MovementDate, int(o.Status), o.Remark, o.CreatedBy,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order")
}

// GetForUpdate obtiene un documento con bloqueo de fila (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order for update")
}

func (r *OrderRepo) scanOne(row pgx.Row, op string) (*entity.Order, error) {
	var (
		o       entity.Order
		docType string
		status  int
	)
	err := row.Scan(
		&o.ID, &o.DocumentNumber, &docType, &o.ProductID, &o.Quantity, &o.Counterparty,
		&o.CounterpartyPhone, &o.MovementDate, &status, &o.Remark,
		&o.CreatedBy, &o.CreatedAt, &o.ApprovedBy, &o.ApprovedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.Type = order.DocType(docType)
	o.Status = order.Status(status)
	return &o, nil
}

// Update persiste los campos mutables. La cláusula WHERE exige que el
// documento siga pendiente; devuelve false si otra transición ganó.
func (r *OrderRepo) Update(o *entity.Order) (bool, error) {
	query := `
		UPDATE orders
		SET product_id = $2, quantity = $3, counterparty = $4, counterparty_phone = NULLIF($5, ''),
			movement_date = $6, remark = NULLIF($7, ''), updated_at = $8
		WHERE id = $1 AND status = $9`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProductID, o.Quantity, o.Counterparty, o.CounterpartyPhone,
		o.MovementDate, o.Remark, o.UpdatedAt, int(order.StatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("update order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Transition cambia el estado del documento solo si el estado actual es from.
func (r *OrderRepo) Transition(o *entity.Order, from order.Status) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2, approved_by = NULLIF($3, ''), approved_at = $4, updated_at = $5
		WHERE id = $1 AND status = $6`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, int(o.Status), o.ApprovedBy, o.ApprovedAt, o.UpdatedAt, int(from),
	)
	if err != nil {
		return false, fmt.Errorf("transition order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un documento por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// List pagina documentos de un tipo con filtros opcionales, enriquecidos con
// nombre y SKU del producto.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*repository.OrderRow, int, error) {
	conds := []string{"o.doc_type = $1"}
	args := []any{string(filter.Type)}

	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("o.product_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, int(*filter.Status))
		conds = append(conds, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("o.movement_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("o.movement_date < $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM orders o WHERE ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := fmt.Sprintf(`
		SELECT o.id, o.document_number, o.doc_type, o.product_id, o.quantity, o.counterparty,
			COALESCE(o.counterparty_phone, ''), o.movement_date, o.status, COALESCE(o.remark, ''),
			o.created_by, o.created_at, COALESCE(o.approved_by, ''), o.approved_at, o.updated_at,
			p.name, p.sku
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE %s
		ORDER BY o.document_number DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*repository.OrderRow
	for rows.Next() {
		var (
			o       entity.Order
			docType string
			status  int
			row     repository.OrderRow
		)
		if err := rows.Scan(
			&o.ID, &o.DocumentNumber, &docType, &o.ProductID, &o.Quantity, &o.Counterparty,
			&o.CounterpartyPhone, &o.MovementDate, &status, &o.Remark,
			&o.CreatedBy, &o.CreatedAt, &o.ApprovedBy, &o.ApprovedAt, &o.UpdatedAt,
			&row.ProductName, &row.ProductSKU,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		o.Type = order.DocType(docType)
		o.Status = order.Status(status)
		row.Order = &o
		list = append(list, &row)
	}
	return list, total, rows.Err()
}

// CountByProduct cuenta documentos que referencian al producto en cualquier estado.
func (r *OrderRepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE product_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by product: %w", err)
	}
	return n, nil
}
