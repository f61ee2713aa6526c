package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced product or stock row is absent.
var ErrNotFound = errors.New("not found")

// ValidationError reports bad or missing input. It is user-correctable and
// surfaces as a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError is returned when a sale exceeds the quantity on
// hand. Available is exact at decision time: it is read under the same row
// lock that refused the decrement.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// HasSalesHistoryError blocks deletion of a product that sales reference.
type HasSalesHistoryError struct {
	Count int
}

func (e *HasSalesHistoryError) Error() string {
	return fmt.Sprintf("product has %d recorded sales and cannot be deleted", e.Count)
}

// StorageError wraps a connection or transaction failure. The engine
// guarantees the transaction was rolled back before it is returned. Handlers
// surface it as a generic server error without storage detail.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage unavailable: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
