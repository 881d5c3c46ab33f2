package model

// Store is a selling point that owns zero or more deposits
// (looked up through Deposit.StoreID).
type Store struct {
	ID      int
	Name    string
	Address string
	Contact string
}

// EntityID returns the store's unique identifier.
func (s Store) EntityID() int { return s.ID }
