package sales

import (
	"time"

	"github.com/google/uuid"
)

// Sale records one completed transaction at the counter. Sales are
// append-only history: never updated, never deleted.
type Sale struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	UserID     uuid.UUID `json:"user_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// Record is a sale joined with the product name and seller nickname for
// the history listing.
type Record struct {
	Sale
	ProductName string `json:"product_name"`
	Nickname    string `json:"nickname"`
}
