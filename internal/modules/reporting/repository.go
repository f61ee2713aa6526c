package reporting

import "context"

// Repository defines the derived, read-only reporting queries. It owns no
// state of its own; everything is computed from the three ledgers.
type Repository interface {
	LowStock(ctx context.Context, threshold int) ([]*LowStockItem, error)
	Totals(ctx context.Context) (*Totals, error)
}
