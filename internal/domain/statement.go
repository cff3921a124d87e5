package domain

// RentStatement is the monthly rent owed by one customer for the shelves they hold.
type RentStatement struct {
	CustomerID    int     `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	ShelfNumbers  []int   `json:"shelf_numbers"`
	ShelfCount    int     `json:"shelf_count"`
	PricePerShelf float64 `json:"price_per_shelf"`
	MonthlyTotal  float64 `json:"monthly_total"`
}
