package domain

import (
	"fmt"
	"strings"
)

// A named discount rule. Both ranges are inclusive on each end.
type Offer struct {
	Code            string
	MinWeight       float64
	MaxWeight       float64
	MinDistance     float64
	MaxDistance     float64
	DiscountPercent float64
}

func (o Offer) Validate() error {
	if strings.TrimSpace(o.Code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidOffer)
	}
	if o.MinWeight > o.MaxWeight {
		return fmt.Errorf("%w: %s weight range [%v,%v] is inverted", ErrInvalidOffer, o.Code, o.MinWeight, o.MaxWeight)
	}
	if o.MinDistance > o.MaxDistance {
		return fmt.Errorf("%w: %s distance range [%v,%v] is inverted", ErrInvalidOffer, o.Code, o.MinDistance, o.MaxDistance)
	}
	if o.DiscountPercent < 0 || o.DiscountPercent > 100 {
		return fmt.Errorf("%w: %s discount %v%% outside [0,100]", ErrInvalidOffer, o.Code, o.DiscountPercent)
	}
	return nil
}

// Applies reports whether the package falls inside both ranges.
// The offer code is not compared here.
func (o Offer) Applies(weight, distance float64) bool {
	return weight >= o.MinWeight && weight <= o.MaxWeight &&
		distance >= o.MinDistance && distance <= o.MaxDistance
}

// OfferCatalog is an ordered, read-only set of offers. A code may appear more
// than once with different ranges; Match keeps the first hit.
// The zero value is an empty catalog that matches nothing.
type OfferCatalog struct {
	offers []Offer
}

func NewOfferCatalog(offers ...Offer) (OfferCatalog, error) {
	out := make([]Offer, 0, len(offers))
	for i, o := range offers {
		if err := o.Validate(); err != nil {
			return OfferCatalog{}, fmt.Errorf("new offer catalog: offer #%d: %w", i+1, err)
		}
		out = append(out, o)
	}
	return OfferCatalog{offers: out}, nil
}

// Match returns the first offer, in catalog order, whose code equals the
// package offer code and whose ranges contain the package.
func (c OfferCatalog) Match(p Package) (Offer, bool) {
	for _, o := range c.offers {
		if o.Code == p.OfferCode && o.Applies(p.Weight, p.Distance) {
			return o, true
		}
	}
	return Offer{}, false
}

// Offers returns a copy of the catalog in order.
func (c OfferCatalog) Offers() []Offer {
	out := make([]Offer, len(c.offers))
	copy(out, c.offers)
	return out
}

func (c OfferCatalog) Len() int { return len(c.offers) }

// DefaultOffers is the reference offer table.
func DefaultOffers() []Offer {
	return []Offer{
		{Code: "OFR001", MinWeight: 70, MaxWeight: 200, MinDistance: 0, MaxDistance: 199, DiscountPercent: 10},
		{Code: "OFR002", MinWeight: 100, MaxWeight: 250, MinDistance: 50, MaxDistance: 150, DiscountPercent: 7},
		{Code: "OFR003", MinWeight: 10, MaxWeight: 150, MinDistance: 50, MaxDistance: 250, DiscountPercent: 5},
	}
}
