package stock

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the quantity-on-hand record for one product.
type Entry struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
