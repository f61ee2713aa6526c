package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/amods/cantina-backend/internal/database"
)

type postgresRepo struct{ db database.DBTX }

// NewPostgresRepository creates a product repository bound to db, which may
// be a *sql.DB or a *sql.Tx.
func NewPostgresRepository(db database.DBTX) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, unit_price) VALUES ($1,$2,$3)`,
		p.ID, p.Name, p.UnitPrice)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id,name,unit_price,created_at,updated_at
		FROM products WHERE id=$1`, id))
}

func (r *postgresRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*Product, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id,name,unit_price,created_at,updated_at
		FROM products WHERE id=$1 FOR UPDATE`, id))
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]*ProductWithQuantity, error) {
	query := `
		SELECT p.id,p.name,p.unit_price,p.created_at,p.updated_at,COALESCE(s.quantity,0)
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE p.name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY p.name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*ProductWithQuantity
	for rows.Next() {
		p := &ProductWithQuantity{}
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, unit_price=$2, updated_at=NOW() WHERE id=$3`,
		p.Name, p.UnitPrice, p.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOne(row *sql.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
