package postgres

import (
	"context"
	"database/sql"

	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/repository"
)

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, s *domain.Sale) error {
	query := `INSERT INTO sales (shelf_id, sale_amount) VALUES ($1, $2) RETURNING id, created_on`
	logger.StoreCall("saleRepository.Create", query, "shelf_id", s.ShelfID, "amount", s.Amount)
	return r.db.QueryRowContext(ctx, query, s.ShelfID, s.Amount).Scan(&s.ID, &s.CreatedOn)
}
