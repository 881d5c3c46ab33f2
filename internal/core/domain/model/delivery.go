package model

// Delivery groups the orders of one location for a delivery run. Its orders
// are looked up through Order.DeliveryID.
//
// EmployeeID and DeliveryPersonID are mutually exclusive in well-formed
// usage: a delivery is carried either by an employee or by a delivery
// person, never both. 0 means unassigned.
type Delivery struct {
	ID               int
	Location         string
	EmployeeID       int
	DeliveryPersonID int
}

// EntityID returns the delivery's unique identifier.
func (d Delivery) EntityID() int { return d.ID }

// Assigned reports whether the delivery is held by any actor.
func (d Delivery) Assigned() bool {
	return d.EmployeeID != 0 || d.DeliveryPersonID != 0
}
