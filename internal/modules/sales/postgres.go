package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/amods/cantina-backend/internal/database"
)

type postgresRepo struct{ db database.DBTX }

// NewPostgresRepository creates a sales repository bound to db, which may be
// a *sql.DB or a *sql.Tx.
func NewPostgresRepository(db database.DBTX) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Append(ctx context.Context, s *Sale) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO sales (id, product_id, user_id, quantity, total_price)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		s.ID, s.ProductID, s.UserID, s.Quantity, s.TotalPrice).Scan(&s.CreatedAt)
}

func (r *postgresRepo) CountByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sales WHERE product_id=$1`, productID).Scan(&count)
	return count, err
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.product_id, v.user_id, v.quantity, v.total_price, v.created_at,
		       p.name, u.nickname
		FROM sales v
		JOIN products p ON v.product_id = p.id
		JOIN users u ON v.user_id = u.id
		ORDER BY v.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.UserID, &rec.Quantity,
			&rec.TotalPrice, &rec.CreatedAt, &rec.ProductName, &rec.Nickname); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
