package services

import (
	"container/heap"
	"delivery-estimate-service/internal/domain"
)

// VehicleQueue implements heap.Interface for vehicles.
// Earlier AvailableAt is popped first; equal times pop the lower vehicle ID first.
type VehicleQueue []*domain.Vehicle

func (q VehicleQueue) Len() int { return len(q) }

func (q VehicleQueue) Less(i, j int) bool {
	if q[i].AvailableAt != q[j].AvailableAt {
		return q[i].AvailableAt < q[j].AvailableAt
	}
	return q[i].ID < q[j].ID
}

func (q VehicleQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; use PushVehicle.
func (q *VehicleQueue) Push(x any) {
	*q = append(*q, x.(*domain.Vehicle))
}

// Pop is called by heap.Pop; use PopVehicle.
func (q *VehicleQueue) Pop() any {
	old := *q
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return v
}

// NewVehicleQueue builds a queue of size vehicles, IDs 1..size, all available at 0.
func NewVehicleQueue(size int) *VehicleQueue {
	q := make(VehicleQueue, 0, size)
	for i := 1; i <= size; i++ {
		q = append(q, domain.NewVehicle(i))
	}
	heap.Init(&q)
	return &q
}

func PushVehicle(q *VehicleQueue, v *domain.Vehicle) {
	heap.Push(q, v)
}

// PopVehicle removes the earliest available vehicle, or returns nil when empty.
func PopVehicle(q *VehicleQueue) *domain.Vehicle {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*domain.Vehicle)
}
