package dto

type PackageRequest struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"`
	Distance  float64 `json:"distance"`
	OfferCode string  `json:"offer_code"`
}

type FleetRequest struct {
	Vehicles int     `json:"vehicles"`
	MaxSpeed float64 `json:"max_speed"`
	MaxLoad  float64 `json:"max_load"`
}

type EstimateRequest struct {
	BaseCost float64          `json:"base_cost"`
	Packages []PackageRequest `json:"packages"`
	Fleet    FleetRequest     `json:"fleet"`
}

// Discount and Cost are whole currency units, rounded half away from zero.
type EstimateResultResponse struct {
	ID           string  `json:"id"`
	Discount     int64   `json:"discount"`
	Cost         int64   `json:"cost"`
	DeliveryTime float64 `json:"delivery_time"`
}

type DispatchResponse struct {
	VehicleID   int      `json:"vehicle_id"`
	DepartAt    float64  `json:"depart_at"`
	ReturnAt    float64  `json:"return_at"`
	PackageIDs  []string `json:"package_ids"`
	TotalWeight float64  `json:"total_weight"`
}

type SummaryResponse struct {
	TotalCost      int64   `json:"total_cost"`
	TotalDiscount  int64   `json:"total_discount"`
	CompletionTime float64 `json:"completion_time"`
	Trips          int     `json:"trips"`
}

type EstimateResponse struct {
	Results    []EstimateResultResponse `json:"results"`
	Dispatches []DispatchResponse       `json:"dispatches"`
	Summary    SummaryResponse          `json:"summary"`
}
