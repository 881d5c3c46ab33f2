package model

// Deposit is a storage location attached to at most one store.
// StoreID is 0 when the deposit has been detached from a removed store;
// the deposit itself keeps existing independently.
type Deposit struct {
	ID      int
	StoreID int
	Address string
	Status  string
}

// EntityID returns the deposit's unique identifier.
func (d Deposit) EntityID() int { return d.ID }
