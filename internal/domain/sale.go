package domain

import "time"

// Sale is an insert-only record of goods sold from a shelf.
type Sale struct {
	ID        int       `json:"id"`
	ShelfID   int       `json:"shelf_id"`
	Amount    float64   `json:"amount"`
	CreatedOn time.Time `json:"created_on"`
}

// SaleReceipt is a persisted sale together with the commission owed on it
type SaleReceipt struct {
	Sale       Sale    `json:"sale"`
	Commission float64 `json:"commission"`
}
