package model

// DeliveryPerson is an external driver enrolled on the platform.
// VehicleID links the optional personal vehicle (0 = none); picked-up
// deliveries are looked up through Delivery.DeliveryPersonID.
type DeliveryPerson struct {
	ID        int
	Name      string
	Phone     string
	Verified  bool
	License   string
	VehicleID int
}

// EntityID returns the delivery person's unique identifier.
func (p DeliveryPerson) EntityID() int { return p.ID }
