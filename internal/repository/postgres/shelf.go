package postgres

import (
	"context"
	"database/sql"

	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/repository"
)

type shelfRepository struct {
	db *sql.DB
}

func NewShelfRepository(db *sql.DB) repository.ShelfRepository {
	return &shelfRepository{db: db}
}

func (r *shelfRepository) List(ctx context.Context) ([]domain.Shelf, error) {
	query := `SELECT id, number, has_hanger_bar, is_rented, customer_id FROM shelves`
	logger.StoreCall("shelfRepository.List", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shelves := []domain.Shelf{}
	for rows.Next() {
		var s domain.Shelf
		var customerID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Number, &s.HasClothingRack, &s.IsRented, &customerID); err != nil {
			return nil, err
		}
		if customerID.Valid {
			id := int(customerID.Int64)
			s.CustomerID = &id
		}
		shelves = append(shelves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shelves, nil
}

// Rent overwrites any previous occupant. Unknown shelf ids update nothing.
func (r *shelfRepository) Rent(ctx context.Context, shelfID, customerID int) (int64, error) {
	query := `UPDATE shelves SET is_rented = TRUE, customer_id = $1 WHERE id = $2`
	logger.StoreCall("shelfRepository.Rent", query, "shelf_id", shelfID, "customer_id", customerID)
	result, err := r.db.ExecContext(ctx, query, customerID, shelfID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
