package handlers

import (
	"delivery-estimate-service/internal/api/dto"
	"delivery-estimate-service/internal/platform/logger"
	"delivery-estimate-service/internal/platform/obs"
	"delivery-estimate-service/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

type OfferHandler struct {
	Repo ports.OfferRepository
}

// List returns the active offer catalog in match order.
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	offers, err := h.Repo.ListOffers(r.Context())
	if err != nil {
		logger.Get().Error("list offers failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOfferResponse{Offers: make([]dto.OfferResponse, 0, len(offers))}
	for _, o := range offers {
		res.Offers = append(res.Offers, dto.OfferResponse{
			Code:            o.Code,
			MinWeight:       o.MinWeight,
			MaxWeight:       o.MaxWeight,
			MinDistance:     o.MinDistance,
			MaxDistance:     o.MaxDistance,
			DiscountPercent: o.DiscountPercent,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
