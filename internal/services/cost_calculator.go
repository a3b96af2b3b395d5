package services

import "delivery-estimate-service/internal/domain"

const (
	CostPerKg = 10
	CostPerKm = 5
)

// CostCalculator prices a package and applies at most one discount offer.
type CostCalculator struct {
	BaseCost float64
	Catalog  domain.OfferCatalog
}

// DeliveryCost is the undiscounted cost of delivering pkg.
func (c CostCalculator) DeliveryCost(pkg domain.Package) float64 {
	return c.BaseCost + pkg.Weight*CostPerKg + pkg.Distance*CostPerKm
}

// Compute returns the discount and the discounted cost for pkg.
// Only the first matching offer in catalog order applies; no match means no discount.
func (c CostCalculator) Compute(pkg domain.Package) (discount, netCost float64) {
	cost := c.DeliveryCost(pkg)
	if offer, ok := c.Catalog.Match(pkg); ok {
		discount = offer.DiscountPercent / 100 * cost
	}
	return discount, cost - discount
}

// Apply writes the computed discount and cost into pkg.
func (c CostCalculator) Apply(pkg *domain.Package) {
	pkg.Discount, pkg.Cost = c.Compute(*pkg)
}
