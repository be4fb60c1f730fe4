package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acamargo/almacen-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo consultas de solo lectura para el tablero de inventario.
type StatisticsRepo struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository construye el adaptador de estadísticas.
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepo {
	return &StatisticsRepo{pool: pool}
}

// Dashboard devuelve los agregados de cabecera: productos habilitados,
// unidades totales, valoración a costo y productos en stock bajo.
// Usa COALESCE para devolver ceros con el inventario vacío.
func (r *StatisticsRepo) Dashboard(ctx context.Context) (*repository.DashboardStats, error) {
	const query = `
	SELECT
	    COUNT(*)                                                    AS product_count,
	    COALESCE(SUM(i.quantity), 0)                                AS total_quantity,
	    COALESCE(SUM(i.quantity * p.cost_price), 0)                 AS stock_value,
	    COUNT(*) FILTER (WHERE i.quantity <= i.warning_stock)       AS low_stock_count
	FROM products p
	JOIN inventory i ON i.product_id = p.id
	WHERE p.status = 1`

	var s repository.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.ProductCount, &s.TotalQuantity, &s.StockValue, &s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("statistics.Dashboard: %w", err)
	}
	return &s, nil
}

// Trend devuelve un punto por día (incluyendo días sin movimientos) con las
// unidades aprobadas de entrada y salida de los últimos days días.
func (r *StatisticsRepo) Trend(ctx context.Context, days int) ([]*repository.TrendPoint, error) {
	const query = `
	SELECT
	    d.day,
	    COALESCE(SUM(o.quantity) FILTER (WHERE o.doc_type = 'IN'),  0) AS inbound_qty,
	    COALESCE(SUM(o.quantity) FILTER (WHERE o.doc_type = 'OUT'), 0) AS outbound_qty
	FROM generate_series(
	    CURRENT_DATE - ($1::INT - 1) * INTERVAL '1 day',
	    CURRENT_DATE,
	    INTERVAL '1 day'
	) AS d(day)
	LEFT JOIN orders o
	    ON o.movement_date::DATE = d.day::DATE
	   AND o.status = 1
	GROUP BY d.day
	ORDER BY d.day`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("statistics.Trend: %w", err)
	}
	defer rows.Close()

	var points []*repository.TrendPoint
	for rows.Next() {
		var p repository.TrendPoint
		if err := rows.Scan(&p.Day, &p.InboundQty, &p.OutboundQty); err != nil {
			return nil, fmt.Errorf("statistics.Trend scan: %w", err)
		}
		points = append(points, &p)
	}
	return points, rows.Err()
}

// CategoryDistribution agrupa las existencias por categoría raíz. Los
// productos sin categoría se consolidan en el grupo "Sin categoría".
func (r *StatisticsRepo) CategoryDistribution(ctx context.Context) ([]*repository.CategoryShare, error) {
	const query = `
	WITH RECURSIVE roots AS (
	    SELECT id, id AS root_id FROM categories WHERE parent_id IS NULL
	    UNION ALL
	    SELECT c.id, r.root_id FROM categories c JOIN roots r ON c.parent_id = r.id
	)
	SELECT
	    COALESCE(rc.id::TEXT, '')            AS category_id,
	    COALESCE(rc.name, 'Sin categoría')   AS category_name,
	    COALESCE(SUM(i.quantity), 0)         AS quantity
	FROM products p
	JOIN inventory i ON i.product_id = p.id
	LEFT JOIN roots r ON r.id = p.category_id
	LEFT JOIN categories rc ON rc.id = r.root_id
	WHERE p.status = 1
	GROUP BY rc.id, rc.name
	ORDER BY quantity DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("statistics.CategoryDistribution: %w", err)
	}
	defer rows.Close()

	var shares []*repository.CategoryShare
	for rows.Next() {
		var s repository.CategoryShare
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.Quantity); err != nil {
			return nil, fmt.Errorf("statistics.CategoryDistribution scan: %w", err)
		}
		shares = append(shares, &s)
	}
	return shares, rows.Err()
}
