package inventory

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/amods/cantina-backend/internal/modules/catalog"
	"github.com/amods/cantina-backend/internal/modules/sales"
	"github.com/amods/cantina-backend/internal/modules/stock"
)

type sqlTransactor struct{ db *sql.DB }

// NewSQLTransactor creates a Transactor that opens one database transaction
// per call and rebinds the three repositories to it.
func NewSQLTransactor(db *sql.DB) Transactor { return &sqlTransactor{db: db} }

func (t *sqlTransactor) InTx(ctx context.Context, fn func(s TxStores) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	stores := TxStores{
		Products: catalog.NewPostgresRepository(tx),
		Stock:    stock.NewPostgresRepository(tx),
		Sales:    sales.NewPostgresRepository(tx),
	}

	if err := fn(stores); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}
