package postgres

import (
	"context"
	"database/sql"

	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// List returns customers in the order the store yields them
func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, email, phone FROM customers`
	logger.StoreCall("customerRepository.List", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, email, phone) VALUES ($1, $2, $3) RETURNING id`
	logger.StoreCall("customerRepository.Create", query, "name", c.Name)
	return r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone).Scan(&c.ID)
}
