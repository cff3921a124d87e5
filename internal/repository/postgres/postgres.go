package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"shelfrent-backend/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.ShelfRepository
	repository.SaleRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CustomerRepository: NewCustomerRepository(db),
		ShelfRepository:    NewShelfRepository(db),
		SaleRepository:     NewSaleRepository(db),
	}
}

// PingContext checks that the store is reachable
func (s *Store) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Open opens a connection pool with the "postgres" (lib/pq) or "pgx" driver.
// No connection is made until the first statement.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "postgres", "pgx":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shelves (
		id SERIAL PRIMARY KEY,
		number INT NOT NULL,
		has_hanger_bar BOOLEAN NOT NULL DEFAULT FALSE,
		is_rented BOOLEAN NOT NULL DEFAULT FALSE,
		customer_id INT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id SERIAL PRIMARY KEY,
		shelf_id INT NOT NULL,
		sale_amount DOUBLE PRECISION NOT NULL,
		created_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the customers, shelves and sales tables when they are missing
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return nil
}
