package sales

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for the append-only sales ledger.
type Repository interface {
	Append(ctx context.Context, s *Sale) error
	CountByProduct(ctx context.Context, productID uuid.UUID) (int, error)
	ListAll(ctx context.Context) ([]*Record, error)
}
