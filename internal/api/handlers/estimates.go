package handlers

import (
	"delivery-estimate-service/internal/api/dto"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/logger"
	"delivery-estimate-service/internal/platform/obs"
	"delivery-estimate-service/internal/ports"
	"delivery-estimate-service/internal/services"
	"errors"
	"math"
	"net/http"

	"go.uber.org/zap"
)

type EstimateHandler struct {
	Offers   ports.OfferRepository
	Recorder ports.EstimateRecorder
}

// statusFor maps service errors to HTTP status codes. Malformed input is a
// 400; well-formed input the fleet cannot serve, including a pool wider than
// the selector's mask, is a 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrNoVehiclesAvailable),
		errors.Is(err, domain.ErrPoolTooLarge):
		return http.StatusUnprocessableEntity
	case services.IsRejection(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func roundCurrency(v float64) int64 {
	return int64(math.Round(v))
}

// Estimate prices the posted packages and simulates their delivery.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.EstimateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errTrailingData) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	svcReq := services.EstimateDeliveriesRequest{
		BaseCost:     req.BaseCost,
		Packages:     make([]services.PackageInput, 0, len(req.Packages)),
		VehicleCount: req.Fleet.Vehicles,
		MaxSpeed:     req.Fleet.MaxSpeed,
		MaxLoad:      req.Fleet.MaxLoad,
	}
	for _, p := range req.Packages {
		svcReq.Packages = append(svcReq.Packages, services.PackageInput{
			ID:        p.ID,
			Weight:    p.Weight,
			Distance:  p.Distance,
			OfferCode: p.OfferCode,
		})
	}

	est, err := services.EstimateDeliveries(r.Context(), svcReq, h.Offers, h.Recorder)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Get().Error("estimate deliveries failed",
				zap.String("req_id", obs.RequestID(r.Context())),
				zap.Error(err),
			)
			writeError(w, r, status, "internal server error")
			return
		}
		writeError(w, r, status, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, toEstimateResponse(est))
}

func toEstimateResponse(est *domain.Estimate) dto.EstimateResponse {
	res := dto.EstimateResponse{
		Results:    make([]dto.EstimateResultResponse, 0, len(est.Results)),
		Dispatches: make([]dto.DispatchResponse, 0, len(est.Dispatches)),
		Summary: dto.SummaryResponse{
			TotalCost:      roundCurrency(est.Summary.TotalCost),
			TotalDiscount:  roundCurrency(est.Summary.TotalDiscount),
			CompletionTime: est.Summary.CompletionTime,
			Trips:          est.Summary.Trips,
		},
	}

	for _, e := range est.Results {
		res.Results = append(res.Results, dto.EstimateResultResponse{
			ID:           e.PackageID,
			Discount:     roundCurrency(e.Discount),
			Cost:         roundCurrency(e.Cost),
			DeliveryTime: e.DeliveryTime,
		})
	}
	for _, d := range est.Dispatches {
		res.Dispatches = append(res.Dispatches, dto.DispatchResponse{
			VehicleID:   d.VehicleID,
			DepartAt:    d.DepartAt,
			ReturnAt:    d.ReturnAt,
			PackageIDs:  d.PackageIDs,
			TotalWeight: d.TotalWeight,
		})
	}

	return res
}
