package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Decrement when no stock row exists for the
// product. A missing row is only an error for decrements; reads treat it as
// zero stock.
var ErrNotFound = errors.New("stock entry not found")

// InsufficientError is returned when a decrement would drive the quantity
// below zero. Available is the quantity on hand at decision time.
type InsufficientError struct {
	Available int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// Repository defines the interface for stock data storage.
type Repository interface {
	// Get returns the quantity on hand, 0 when no row exists.
	Get(ctx context.Context, productID uuid.UUID) (int, error)
	// Set upserts the quantity: inserts if absent, otherwise overwrites.
	Set(ctx context.Context, productID uuid.UUID, quantity int) error
	// Decrement atomically subtracts amount and returns the new quantity.
	// Fails with ErrNotFound when no row exists and with *InsufficientError
	// when amount exceeds the quantity on hand.
	Decrement(ctx context.Context, productID uuid.UUID, amount int) (int, error)
	Delete(ctx context.Context, productID uuid.UUID) error
}
