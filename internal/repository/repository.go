package repository

import (
	"context"

	"shelfrent-backend/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) error
}

type ShelfRepository interface {
	List(ctx context.Context) ([]domain.Shelf, error)
	// Rent marks the shelf rented to customerID regardless of its prior state and
	// returns the number of rows changed (0 for an unknown shelf).
	Rent(ctx context.Context, shelfID, customerID int) (int64, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
}

// Pinger reports whether the store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}
