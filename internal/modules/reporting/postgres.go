package reporting

import (
	"context"

	"github.com/amods/cantina-backend/internal/database"
)

type postgresRepo struct{ db database.DBTX }

func NewPostgresRepository(db database.DBTX) Repository { return &postgresRepo{db: db} }

// LowStock left-joins stock so products that never received a stock row
// still show up at quantity 0 instead of being silently excluded.
func (r *postgresRepo) LowStock(ctx context.Context, threshold int) ([]*LowStockItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.unit_price, COALESCE(s.quantity, 0) AS quantity
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		WHERE COALESCE(s.quantity, 0) < $1
		ORDER BY COALESCE(s.quantity, 0) ASC, p.name ASC`, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*LowStockItem
	for rows.Next() {
		item := &LowStockItem{}
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Totals(ctx context.Context) (*Totals, error) {
	t := &Totals{}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&t.Products); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&t.Sales); err != nil {
		return nil, err
	}
	return t, nil
}
