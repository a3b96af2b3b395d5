package domain

// Final per-package result, exposed in original input order.
type DeliveryEstimate struct {
	PackageID    string
	Discount     float64
	Cost         float64
	DeliveryTime float64
}

// Aggregates of a whole run.
type EstimateSummary struct {
	TotalCost      float64
	TotalDiscount  float64
	CompletionTime float64
	Trips          int
}

type Estimate struct {
	Results    []DeliveryEstimate
	Dispatches []Dispatch
	Summary    EstimateSummary
}
