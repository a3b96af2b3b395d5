package api

import (
	"delivery-estimate-service/internal/api/handlers"
	"delivery-estimate-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// recorder and metrics may be nil; /metrics is only mounted when metrics is set.
func NewRouter(offers ports.OfferRepository, recorder ports.EstimateRecorder, metrics http.Handler) http.Handler {
	mux := http.NewServeMux()

	offerHandler := &handlers.OfferHandler{Repo: offers}
	estimateHandler := &handlers.EstimateHandler{
		Offers:   offers,
		Recorder: recorder,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/offers", offerHandler.List)
	mux.HandleFunc("/estimates", estimateHandler.Estimate)
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}

	return requestIDMiddleware(loggingMiddleware(mux))
}
