package stock

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/amods/cantina-backend/internal/database"
)

type postgresRepo struct{ db database.DBTX }

// NewPostgresRepository creates a stock repository bound to db, which may be
// a *sql.DB or a *sql.Tx.
func NewPostgresRepository(db database.DBTX) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Get(ctx context.Context, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.QueryRowContext(ctx,
		`SELECT quantity FROM stock WHERE product_id=$1`, productID).Scan(&qty)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return qty, nil
}

func (r *postgresRepo) Set(ctx context.Context, productID uuid.UUID, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stock (product_id, quantity) VALUES ($1,$2)
		ON CONFLICT (product_id) DO UPDATE SET quantity=$2, updated_at=NOW()`,
		productID, quantity)
	return err
}

// Decrement runs as a single guarded UPDATE so two concurrent sales can
// never both pass a stale sufficiency check.
func (r *postgresRepo) Decrement(ctx context.Context, productID uuid.UUID, amount int) (int, error) {
	var remaining int
	err := r.db.QueryRowContext(ctx, `
		UPDATE stock SET quantity = quantity - $1, updated_at=NOW()
		WHERE product_id=$2 AND quantity >= $1
		RETURNING quantity`, amount, productID).Scan(&remaining)
	if err == sql.ErrNoRows {
		// Guard refused: the row is missing or the quantity is short.
		available, getErr := r.getStrict(ctx, productID)
		if getErr != nil {
			return 0, getErr
		}
		return 0, &InsufficientError{Available: available}
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *postgresRepo) Delete(ctx context.Context, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stock WHERE product_id=$1`, productID)
	return err
}

func (r *postgresRepo) getStrict(ctx context.Context, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.QueryRowContext(ctx,
		`SELECT quantity FROM stock WHERE product_id=$1`, productID).Scan(&qty)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return qty, nil
}
