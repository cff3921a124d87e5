package domain

import "fmt"

// Shelf is a rentable storage unit. CustomerID is set only while the shelf is rented;
// this holds for well-formed rows but is not enforced on write.
type Shelf struct {
	ID              int  `json:"id"`
	Number          int  `json:"number"`
	HasClothingRack bool `json:"has_clothing_rack"`
	IsRented        bool `json:"is_rented"`
	CustomerID      *int `json:"customer_id,omitempty"`
}

// Kind returns "Clothing Rack" or "Shelves".
func (s Shelf) Kind() string {
	if s.HasClothingRack {
		return "Clothing Rack"
	}
	return "Shelves"
}

func (s Shelf) String() string {
	status := "Available"
	if s.IsRented {
		if s.CustomerID != nil {
			status = fmt.Sprintf("Rented to customer %d", *s.CustomerID)
		} else {
			status = "Rented to customer "
		}
	}
	return fmt.Sprintf("Shelf %d - %s - %s", s.Number, s.Kind(), status)
}
