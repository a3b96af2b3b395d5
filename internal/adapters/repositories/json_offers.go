package repositories

import (
	"context"
	"delivery-estimate-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type OfferSeed struct {
	Code            string  `json:"code"`
	MinWeight       float64 `json:"min_weight"`
	MaxWeight       float64 `json:"max_weight"`
	MinDistance     float64 `json:"min_distance"`
	MaxDistance     float64 `json:"max_distance"`
	DiscountPercent float64 `json:"discount_percent"`
}

// ParseOffersJSON decodes a JSON array of offers, keeping file order.
func ParseOffersJSON(data []byte) ([]domain.Offer, error) {
	var seeds []OfferSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse offers: parse json: %w", err)
	}

	offers := make([]domain.Offer, 0, len(seeds))
	for i, s := range seeds {
		o := domain.Offer{
			Code:            strings.TrimSpace(s.Code),
			MinWeight:       s.MinWeight,
			MaxWeight:       s.MaxWeight,
			MinDistance:     s.MinDistance,
			MaxDistance:     s.MaxDistance,
			DiscountPercent: s.DiscountPercent,
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("parse offers: item at index %d: %w", i+1, err)
		}
		offers = append(offers, o)
	}

	return offers, nil
}

func ReadOffersJSON(path string) ([]domain.Offer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read offers: read %q: %w", path, err)
	}
	return ParseOffersJSON(data)
}

// JSONOfferRepository serves offers loaded once from a JSON file.
type JSONOfferRepository struct {
	offers []domain.Offer
}

func NewJSONOfferRepository(path string) (*JSONOfferRepository, error) {
	offers, err := ReadOffersJSON(path)
	if err != nil {
		return nil, err
	}
	return &JSONOfferRepository{offers: offers}, nil
}

func (r *JSONOfferRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	out := make([]domain.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}
