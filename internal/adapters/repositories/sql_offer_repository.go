package repositories

import (
	"context"
	"database/sql"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQL-backed implementation of the OfferRepository port.
// The query has no bind parameters, so it runs unchanged on Postgres (pgx) and SQLite.
type SQLOfferRepository struct{ DB *sql.DB }

func NewSQLOfferRepository(db *sql.DB) *SQLOfferRepository {
	return &SQLOfferRepository{DB: db}
}

// Return all offers in catalog order.
func (s *SQLOfferRepository) ListOffers(ctx context.Context) (_ []domain.Offer, err error) {
	defer obs.Time(ctx, "offers.repository.ListOffers")(&err)

	if s.DB == nil {
		return nil, errors.New("sql offer repository: DB is nil")
	}

	query := `
	SELECT
		code,
		min_weight,
		max_weight,
		min_distance,
		max_distance,
		discount_percent
	FROM offers
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list offers: query offers table: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0, 8)
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(&o.Code, &o.MinWeight, &o.MaxWeight, &o.MinDistance, &o.MaxDistance, &o.DiscountPercent); err != nil {
			return nil, fmt.Errorf("list offers: scan row: %w", err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offers: row iteration: %w", err)
	}

	return offers, nil
}
