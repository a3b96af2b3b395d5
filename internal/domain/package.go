package domain

import (
	"fmt"
	"strings"
)

// Represents a single parcel awaiting delivery.
// Identity fields (ID, Weight, Distance, OfferCode) come from input and never change.
// Discount and Cost are populated by the cost calculator; DeliveryTime is populated
// exactly once by the fleet scheduler.
type Package struct {
	ID        string
	Weight    float64
	Distance  float64
	OfferCode string

	Discount     float64
	Cost         float64
	DeliveryTime *float64
}

func NewPackage(id string, weight, distance float64, offerCode string) *Package {
	return &Package{
		ID:        strings.TrimSpace(id),
		Weight:    weight,
		Distance:  distance,
		OfferCode: strings.TrimSpace(offerCode),
	}
}

// Validate checks the identity fields of the package.
func (p *Package) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: id must not be empty", ErrInvalidPackage)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("%w: package %q weight must be positive, got %v", ErrInvalidPackage, p.ID, p.Weight)
	}
	if p.Distance < 0 {
		return fmt.Errorf("%w: package %q distance must not be negative, got %v", ErrInvalidPackage, p.ID, p.Distance)
	}
	return nil
}

// Record the delivery time. A package is delivered once; later calls fail.
func (p *Package) MarkDelivered(at float64) error {
	if p.DeliveryTime != nil {
		return fmt.Errorf("mark delivered: package %q: %w", p.ID, ErrAlreadyScheduled)
	}
	t := Truncate2(at)
	p.DeliveryTime = &t
	return nil
}

func (p *Package) Delivered() bool { return p.DeliveryTime != nil }
