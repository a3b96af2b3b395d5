package api

import (
	"context"
	"delivery-estimate-service/internal/adapters/metrics"
	"delivery-estimate-service/internal/adapters/repositories"
	"delivery-estimate-service/internal/api/dto"
	"delivery-estimate-service/internal/domain"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
  "base_cost": 100,
  "packages": [
    {"id": "PKG1", "weight": 50, "distance": 30, "offer_code": "OFR001"},
    {"id": "PKG2", "weight": 75, "distance": 125, "offer_code": "OFFR0008"},
    {"id": "PKG3", "weight": 175, "distance": 100, "offer_code": "OFFR003"},
    {"id": "PKG4", "weight": 110, "distance": 60, "offer_code": "OFR002"},
    {"id": "PKG5", "weight": 155, "distance": 95, "offer_code": "NA"}
  ],
  "fleet": {"vehicles": 2, "max_speed": 70, "max_load": 200}
}`

type failingOffers struct{}

func (failingOffers) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return nil, errors.New("connection refused")
}

func newTestRouter(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPromRecorder(reg)
	require.NoError(t, err)

	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return NewRouter(repositories.NewStaticOfferRepository(), rec, h), reg
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		method, path, allow string
	}{
		{http.MethodPost, "/health", http.MethodGet},
		{http.MethodDelete, "/offers", http.MethodGet},
		{http.MethodGet, "/estimates", http.MethodPost},
	}
	for _, tt := range tests {
		rr := do(t, h, tt.method, tt.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, tt.path)
		assert.Equal(t, tt.allow, rr.Header().Get("Allow"), tt.path)
	}
}

func TestListOffers(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/offers", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var res dto.ListOfferResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Offers, 3)
	assert.Equal(t, dto.OfferResponse{
		Code: "OFR002", MinWeight: 100, MaxWeight: 250, MinDistance: 50, MaxDistance: 150, DiscountPercent: 7,
	}, res.Offers[1])
}

func TestListOffersRepositoryFailure(t *testing.T) {
	h := NewRouter(failingOffers{}, nil, nil)

	rr := do(t, h, http.MethodGet, "/offers", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestEstimateSample(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/estimates", sampleBody)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res dto.EstimateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))

	assert.Equal(t, []dto.EstimateResultResponse{
		{ID: "PKG1", Discount: 0, Cost: 750, DeliveryTime: 3.99},
		{ID: "PKG2", Discount: 0, Cost: 1475, DeliveryTime: 1.78},
		{ID: "PKG3", Discount: 0, Cost: 2350, DeliveryTime: 1.42},
		{ID: "PKG4", Discount: 105, Cost: 1395, DeliveryTime: 0.85},
		{ID: "PKG5", Discount: 0, Cost: 2125, DeliveryTime: 4.2},
	}, res.Results)

	require.Len(t, res.Dispatches, 4)
	assert.Equal(t, []string{"PKG2", "PKG4"}, res.Dispatches[0].PackageIDs)
	assert.Equal(t, 4, res.Summary.Trips)
	assert.Equal(t, int64(8095), res.Summary.TotalCost)
	assert.Equal(t, int64(105), res.Summary.TotalDiscount)
}

func TestEstimateErrors(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"invalid json", `{"base_cost":`, http.StatusBadRequest},
		{"unknown field", `{"base_cost": 1, "hub": "x"}`, http.StatusBadRequest},
		{"trailing object", `{"base_cost": 1} {}`, http.StatusBadRequest},
		{"negative weight", `{"base_cost": 1, "packages": [{"id": "A", "weight": -1, "distance": 1}], "fleet": {"vehicles": 1, "max_speed": 1, "max_load": 10}}`, http.StatusBadRequest},
		{"zero speed", `{"base_cost": 1, "packages": [{"id": "A", "weight": 1, "distance": 1}], "fleet": {"vehicles": 1, "max_speed": 0, "max_load": 10}}`, http.StatusBadRequest},
		{"no vehicles", `{"base_cost": 1, "packages": [{"id": "A", "weight": 1, "distance": 1}], "fleet": {"vehicles": 0, "max_speed": 1, "max_load": 10}}`, http.StatusUnprocessableEntity},
		{"overweight", `{"base_cost": 1, "packages": [{"id": "A", "weight": 11, "distance": 1}], "fleet": {"vehicles": 1, "max_speed": 1, "max_load": 10}}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/estimates", tt.body)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}

func TestEstimateOfferRepositoryFailure(t *testing.T) {
	h := NewRouter(failingOffers{}, nil, nil)

	rr := do(t, h, http.MethodPost, "/estimates", sampleBody)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/estimates", sampleBody).Code)

	rr := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `estimates_total{outcome="success"} 1`)
	assert.Contains(t, rr.Body.String(), "shipments_dispatched_total 4")
}

func TestMetricsNotMountedWithoutHandler(t *testing.T) {
	h := NewRouter(repositories.NewStaticOfferRepository(), nil, nil)

	rr := do(t, h, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
