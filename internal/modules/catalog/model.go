package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item sold at the canteen counter.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductWithQuantity is a product joined with its quantity on hand.
// Products with no stock row report quantity 0.
type ProductWithQuantity struct {
	Product
	Quantity int `json:"quantity"`
}
