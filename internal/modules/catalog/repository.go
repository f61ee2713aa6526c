package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no product exists with the given id.
var ErrNotFound = errors.New("product not found")

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// GetForUpdate locks the product row for the rest of the transaction.
	// Only meaningful on a transaction-bound repository.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, search string) ([]*ProductWithQuantity, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
