package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPackage      = errors.New("invalid package")
	ErrDuplicatePackage    = errors.New("duplicate package id")
	ErrAlreadyScheduled    = errors.New("package already has a delivery time")
	ErrInvalidOffer        = errors.New("invalid offer")
	ErrInvalidFleet        = errors.New("invalid fleet")
	ErrNoVehiclesAvailable = errors.New("no vehicles available")
	ErrCapacityExceeded    = errors.New("package exceeds vehicle capacity")
	ErrPoolTooLarge        = errors.New("too many packages for a subset bitmask")
	ErrVehicleTimeTravel   = errors.New("vehicle availability cannot move backwards")
)

// CapacityExceededError names the package that no vehicle can ever carry.
type CapacityExceededError struct {
	PackageID string
	Weight    float64
	Capacity  float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("package %q weighs %v kg, vehicle capacity is %v kg", e.PackageID, e.Weight, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }
