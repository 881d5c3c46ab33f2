package model

import "time"

// Order belongs to exactly one customer. Its packages are looked up through
// Package.OrderID; TotalCost is derived from their costs and is only
// guaranteed correct at the moment it is recomputed.
//
// Status is a free-form string ("processing", "to be shipped", "in hub",
// "in transit") with no enforced transition order.
type Order struct {
	ID         int
	CustomerID int
	DeliveryID int
	PlacedAt   time.Time
	DeliveryAt time.Time
	TotalCost  float64
	Status     string
	Location   string
}

// EntityID returns the order's unique identifier.
func (o Order) EntityID() int { return o.ID }
