package services

import (
	"context"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/obs"
	"delivery-estimate-service/internal/ports"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
)

type PackageInput struct {
	ID        string
	Weight    float64
	Distance  float64
	OfferCode string
}

type EstimateDeliveriesRequest struct {
	BaseCost     float64
	Packages     []PackageInput
	VehicleCount int
	MaxSpeed     float64
	MaxLoad      float64
}

// IsRejection reports whether err describes input the fleet cannot serve
// (as opposed to an infrastructure failure).
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidPackage) ||
		errors.Is(err, domain.ErrDuplicatePackage) ||
		errors.Is(err, domain.ErrInvalidFleet) ||
		errors.Is(err, domain.ErrNoVehiclesAvailable) ||
		errors.Is(err, domain.ErrCapacityExceeded) ||
		errors.Is(err, domain.ErrPoolTooLarge)
}

func buildPackages(req EstimateDeliveriesRequest) ([]*domain.Package, error) {
	if req.BaseCost < 0 {
		return nil, fmt.Errorf("%w: base cost must not be negative, got %v", domain.ErrInvalidPackage, req.BaseCost)
	}

	seen := make(map[string]struct{}, len(req.Packages))
	pkgs := make([]*domain.Package, 0, len(req.Packages))
	for i, in := range req.Packages {
		pkg := domain.NewPackage(in.ID, in.Weight, in.Distance, in.OfferCode)
		if err := pkg.Validate(); err != nil {
			return nil, fmt.Errorf("package #%d: %w", i+1, err)
		}
		if _, ok := seen[pkg.ID]; ok {
			return nil, fmt.Errorf("package #%d: %w: %q", i+1, domain.ErrDuplicatePackage, pkg.ID)
		}
		seen[pkg.ID] = struct{}{}
		pkgs = append(pkgs, pkg)
	}

	return pkgs, nil
}

// EstimateDeliveries prices every package and simulates its delivery by the fleet.
//
// Offers are read once per run, so every package in a run sees the same catalog.
// Results follow the input order. Any failure aborts the whole run; no partial
// estimate is returned. recorder may be nil.
func EstimateDeliveries(
	ctx context.Context,
	req EstimateDeliveriesRequest,
	offers ports.OfferRepository,
	recorder ports.EstimateRecorder,
) (_ *domain.Estimate, err error) {
	defer obs.Time(ctx, "services.EstimateDeliveries")(&err)

	if recorder != nil {
		start := time.Now()
		defer func() {
			outcome := ports.OutcomeSuccess
			if err != nil {
				outcome = ports.OutcomeFailed
				if IsRejection(err) {
					outcome = ports.OutcomeRejected
				}
			}
			recorder.RecordEstimate(outcome, time.Since(start))
		}()
	}

	pkgs, err := buildPackages(req)
	if err != nil {
		return nil, fmt.Errorf("estimate deliveries: %w", err)
	}

	if offers == nil {
		return nil, errors.New("estimate deliveries: offer repository is nil")
	}
	list, err := offers.ListOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("estimate deliveries: list offers: %w", err)
	}
	catalog, err := domain.NewOfferCatalog(list...)
	if err != nil {
		return nil, fmt.Errorf("estimate deliveries: %w", err)
	}

	calc := CostCalculator{BaseCost: req.BaseCost, Catalog: catalog}
	for _, pkg := range pkgs {
		calc.Apply(pkg)
	}

	scheduler := FleetScheduler{
		FleetSize: req.VehicleCount,
		Capacity:  req.MaxLoad,
		Speed:     req.MaxSpeed,
		Recorder:  recorder,
	}

	dispatches, err := scheduler.Run(ctx, pkgs)
	if err != nil {
		return nil, fmt.Errorf("estimate deliveries: %w", err)
	}

	results := make([]domain.DeliveryEstimate, 0, len(pkgs))
	costs := make([]float64, 0, len(pkgs))
	discounts := make([]float64, 0, len(pkgs))
	times := make([]float64, 0, len(pkgs))
	for _, pkg := range pkgs {
		if !pkg.Delivered() {
			return nil, fmt.Errorf("estimate deliveries: package %q was never scheduled", pkg.ID)
		}
		results = append(results, domain.DeliveryEstimate{
			PackageID:    pkg.ID,
			Discount:     pkg.Discount,
			Cost:         pkg.Cost,
			DeliveryTime: *pkg.DeliveryTime,
		})
		costs = append(costs, pkg.Cost)
		discounts = append(discounts, pkg.Discount)
		times = append(times, *pkg.DeliveryTime)
	}

	summary := domain.EstimateSummary{Trips: len(dispatches)}
	if len(results) > 0 {
		summary.TotalCost = floats.Sum(costs)
		summary.TotalDiscount = floats.Sum(discounts)
		summary.CompletionTime = floats.Max(times)
	}

	return &domain.Estimate{
		Results:    results,
		Dispatches: dispatches,
		Summary:    summary,
	}, nil
}
