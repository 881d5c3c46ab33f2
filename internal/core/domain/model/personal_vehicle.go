package model

// PersonalVehicle is a vehicle owned by at most one delivery person
// (DeliveryPersonID, 0 = unowned). ExtraFee is the surcharge applied when
// the vehicle is used for a delivery.
type PersonalVehicle struct {
	ID               int
	DeliveryPersonID int
	ExtraFee         float64
	Capacity         int
	Kind             TransportKind
}

// EntityID returns the vehicle's unique identifier.
func (v PersonalVehicle) EntityID() int { return v.ID }
