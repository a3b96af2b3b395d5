package domain

import "fmt"

// Delivery vehicle in a fleet of identical vehicles.
// AvailableAt is the earliest time the vehicle can start its next trip and
// only ever moves forward.
type Vehicle struct {
	ID          int
	AvailableAt float64
}

func NewVehicle(id int) *Vehicle {
	return &Vehicle{ID: id}
}

// Advance the availability time to the end of a completed trip.
func (v *Vehicle) Advance(until float64) error {
	if until < v.AvailableAt {
		return fmt.Errorf(
			"advance vehicle %d: %w (at=%v, requested=%v)",
			v.ID, ErrVehicleTimeTravel, v.AvailableAt, until,
		)
	}
	v.AvailableAt = until
	return nil
}
