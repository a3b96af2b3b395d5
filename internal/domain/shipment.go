package domain

import "gonum.org/v1/gonum/floats"

// Packages assigned together to one vehicle trip.
type Shipment []*Package

func (s Shipment) TotalWeight() float64 {
	w := make([]float64, len(s))
	for i, p := range s {
		w[i] = p.Weight
	}
	return floats.Sum(w)
}

// MaxDistance is the distance of the farthest package, 0 for an empty shipment.
func (s Shipment) MaxDistance() float64 {
	if len(s) == 0 {
		return 0
	}
	d := make([]float64, len(s))
	for i, p := range s {
		d[i] = p.Distance
	}
	return floats.Max(d)
}

func (s Shipment) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, p := range s {
		ids = append(ids, p.ID)
	}
	return ids
}

// Dispatch records one completed vehicle trip.
// It is immutable planning output and contains no side effects.
type Dispatch struct {
	VehicleID   int
	DepartAt    float64
	ReturnAt    float64
	PackageIDs  []string
	TotalWeight float64
}
