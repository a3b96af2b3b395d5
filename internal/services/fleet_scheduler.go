package services

import (
	"context"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/logger"
	"delivery-estimate-service/internal/ports"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// FleetScheduler simulates delivery of a package pool by a fleet of identical vehicles.
type FleetScheduler struct {
	FleetSize int
	// Capacity is the maximum total weight of one shipment, in kg.
	Capacity float64
	// Speed is the constant vehicle speed, in km per time unit.
	Speed float64
	// Recorder is optional.
	Recorder ports.DispatchRecorder
}

func (s FleetScheduler) validate(packages []*domain.Package) error {
	if s.FleetSize < 1 {
		return fmt.Errorf("%w: fleet size is %d", domain.ErrNoVehiclesAvailable, s.FleetSize)
	}
	if s.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", domain.ErrInvalidFleet, s.Speed)
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %v", domain.ErrInvalidFleet, s.Capacity)
	}
	if len(packages) > MaxPoolSize {
		return fmt.Errorf("%w: %d packages, limit is %d", domain.ErrPoolTooLarge, len(packages), MaxPoolSize)
	}

	for i, p := range packages {
		if p == nil {
			return fmt.Errorf("%w: package at index %d is nil", domain.ErrInvalidPackage, i)
		}
		if p.Delivered() {
			return fmt.Errorf("package %q: %w", p.ID, domain.ErrAlreadyScheduled)
		}
		// Such a package could never be selected and the loop would not terminate.
		if p.Weight > s.Capacity {
			return &domain.CapacityExceededError{PackageID: p.ID, Weight: p.Weight, Capacity: s.Capacity}
		}
	}

	return nil
}

// Run assigns every package to a vehicle trip and records its delivery time.
//
// The earliest available vehicle repeatedly takes the shipment chosen by
// SelectShipment. Each package is delivered at departure + distance/speed; the
// vehicle returns after the round trip to the farthest package of the shipment.
// Both times are truncated to two decimals.
//
// Inputs are validated before any package is touched, so an error leaves the
// packages unchanged except when ctx is cancelled mid-run.
func (s FleetScheduler) Run(ctx context.Context, packages []*domain.Package) ([]domain.Dispatch, error) {
	if err := s.validate(packages); err != nil {
		return nil, fmt.Errorf("run fleet scheduler: %w", err)
	}

	log := logger.Get()
	vehicles := NewVehicleQueue(s.FleetSize)

	pending := make([]*domain.Package, len(packages))
	copy(pending, packages)

	dispatches := make([]domain.Dispatch, 0, len(packages))

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run fleet scheduler: %w", err)
		}

		vehicle := PopVehicle(vehicles)
		if vehicle == nil {
			return nil, fmt.Errorf("run fleet scheduler: %w", domain.ErrNoVehiclesAvailable)
		}

		snapshot := make([]domain.Package, len(pending))
		for i, p := range pending {
			snapshot[i] = *p
		}

		idx := SelectShipment(snapshot, s.Capacity)
		if len(idx) == 0 {
			return nil, errors.New("run fleet scheduler: no shipment fits the vehicle capacity")
		}

		shipment := make(domain.Shipment, 0, len(idx))
		chosen := make(map[int]struct{}, len(idx))
		for _, i := range idx {
			shipment = append(shipment, pending[i])
			chosen[i] = struct{}{}
		}

		departAt := vehicle.AvailableAt
		for _, p := range shipment {
			if err := p.MarkDelivered(departAt + p.Distance/s.Speed); err != nil {
				return nil, fmt.Errorf("run fleet scheduler: %w", err)
			}
		}

		returnAt := domain.Truncate2(departAt + 2*(shipment.MaxDistance()/s.Speed))
		if err := vehicle.Advance(returnAt); err != nil {
			return nil, fmt.Errorf("run fleet scheduler: %w", err)
		}
		PushVehicle(vehicles, vehicle)

		remaining := pending[:0:0]
		for i, p := range pending {
			if _, ok := chosen[i]; !ok {
				remaining = append(remaining, p)
			}
		}
		pending = remaining

		d := domain.Dispatch{
			VehicleID:   vehicle.ID,
			DepartAt:    departAt,
			ReturnAt:    returnAt,
			PackageIDs:  shipment.IDs(),
			TotalWeight: shipment.TotalWeight(),
		}
		dispatches = append(dispatches, d)

		if s.Recorder != nil {
			s.Recorder.RecordDispatch(d)
		}

		log.Debug("shipment dispatched",
			zap.Int("vehicle_id", d.VehicleID),
			zap.Float64("depart_at", d.DepartAt),
			zap.Float64("return_at", d.ReturnAt),
			zap.Strings("package_ids", d.PackageIDs),
			zap.Int("pending", len(pending)),
		)
	}

	return dispatches, nil
}
