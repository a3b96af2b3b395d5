package repositories

import (
	"context"
	"delivery-estimate-service/internal/domain"
)

// StaticOfferRepository serves a fixed in-memory offer table.
type StaticOfferRepository struct {
	offers []domain.Offer
}

// NewStaticOfferRepository serves offers, or the reference table when none are given.
func NewStaticOfferRepository(offers ...domain.Offer) *StaticOfferRepository {
	if len(offers) == 0 {
		offers = domain.DefaultOffers()
	}
	out := make([]domain.Offer, len(offers))
	copy(out, offers)
	return &StaticOfferRepository{offers: out}
}

func (r *StaticOfferRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	out := make([]domain.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}
