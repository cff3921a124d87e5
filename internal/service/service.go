package service

import (
	"context"

	"shelfrent-backend/internal/domain"
)

// InventoryService is the single data-access component for customers, shelves and sales.
// Operations never return a Go error: every call yields a Result carrying the value,
// the outcome kind and a human-readable status.
type InventoryService interface {
	ListCustomers(ctx context.Context) Result[[]domain.Customer]
	AddCustomer(ctx context.Context, name, email, phone string) Result[domain.Customer]
	ListShelves(ctx context.Context) Result[[]domain.Shelf]
	RentShelf(ctx context.Context, shelfID, customerID int) Result[int64] // rows affected
	RegisterSale(ctx context.Context, shelfID int, amount float64) Result[domain.SaleReceipt]
	Statements(ctx context.Context) Result[[]domain.RentStatement]

	// LatestStatus mirrors the status of the most recent call, for single-window front-ends.
	LatestStatus() string
	Ping(ctx context.Context) error
}

// Mailer delivers monthly rent statements to customers
type Mailer interface {
	SendStatement(ctx context.Context, statement domain.RentStatement) error
}
