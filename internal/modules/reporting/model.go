package reporting

import "github.com/google/uuid"

// LowStockItem is a product whose quantity on hand is below the threshold.
// Products with no stock row appear at quantity 0.
type LowStockItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// Totals are the aggregate counters shown on the dashboard.
type Totals struct {
	Products int `json:"products"`
	Sales    int `json:"sales"`
}

// Dashboard is the landing-page payload: low-stock products plus totals.
type Dashboard struct {
	LowStock []*LowStockItem `json:"low_stock"`
	Totals   Totals          `json:"totals"`
}
