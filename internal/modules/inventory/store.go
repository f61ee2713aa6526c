package inventory

import (
	"context"

	"github.com/amods/cantina-backend/internal/modules/catalog"
	"github.com/amods/cantina-backend/internal/modules/sales"
	"github.com/amods/cantina-backend/internal/modules/stock"
)

// TxStores bundles the three ledgers bound to one transaction. Everything an
// engine operation does through a TxStores commits or rolls back as a unit.
type TxStores struct {
	Products catalog.Repository
	Stock    stock.Repository
	Sales    sales.Repository
}

// Transactor runs fn inside a single transaction. When fn returns an error
// the transaction is rolled back and the error is returned unchanged;
// begin/commit failures come back wrapped as *StorageError by the engine.
type Transactor interface {
	InTx(ctx context.Context, fn func(s TxStores) error) error
}
