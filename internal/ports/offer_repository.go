package ports

import (
	"context"
	"delivery-estimate-service/internal/domain"
)

// Port: a boundary for reading the discount offer table from a data source.
type OfferRepository interface {
	// Return offers in catalog order. The first matching offer wins during pricing.
	ListOffers(ctx context.Context) ([]domain.Offer, error)
}
