package dto

type OfferResponse struct {
	Code            string  `json:"code"`
	MinWeight       float64 `json:"min_weight"`
	MaxWeight       float64 `json:"max_weight"`
	MinDistance     float64 `json:"min_distance"`
	MaxDistance     float64 `json:"max_distance"`
	DiscountPercent float64 `json:"discount_percent"`
}

type ListOfferResponse struct {
	Offers []OfferResponse `json:"offers"`
}
