package domain

// Fallback is the placeholder dataset served when the store cannot be reached.
type Fallback struct {
	Customers []Customer
	Shelves   []Shelf
}

// DefaultFallback returns the built-in offline dataset: two customers and three shelves,
// the third rented to customer 1.
func DefaultFallback() Fallback {
	one := 1
	return Fallback{
		Customers: []Customer{
			{ID: 1, Name: "Offline Customer 1", Email: "offline1@test.com", Phone: "11111111"},
			{ID: 2, Name: "Offline Customer 2", Email: "offline2@test.com", Phone: "22222222"},
		},
		Shelves: []Shelf{
			{ID: 1, Number: 1, HasClothingRack: false, IsRented: false},
			{ID: 2, Number: 2, HasClothingRack: true, IsRented: false},
			{ID: 3, Number: 3, HasClothingRack: false, IsRented: true, CustomerID: &one},
		},
	}
}

// CustomersCopy returns a fresh slice so callers cannot mutate the placeholder set.
func (f Fallback) CustomersCopy() []Customer {
	out := make([]Customer, len(f.Customers))
	copy(out, f.Customers)
	return out
}

// ShelvesCopy returns a deep copy of the placeholder shelves.
func (f Fallback) ShelvesCopy() []Shelf {
	out := make([]Shelf, len(f.Shelves))
	for i, s := range f.Shelves {
		if s.CustomerID != nil {
			id := *s.CustomerID
			s.CustomerID = &id
		}
		out[i] = s
	}
	return out
}
