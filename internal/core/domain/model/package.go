package model

// Package is a shippable item. It is referenced by zero or one order
// (OrderID, 0 when unattached) and may sit in a deposit (DepositID).
type Package struct {
	ID         int
	OrderID    int
	DepositID  int
	Weight     float64
	Dimensions string
	Cost       float64
}

// EntityID returns the package's unique identifier.
func (p Package) EntityID() int { return p.ID }
