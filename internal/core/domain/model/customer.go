package model

// Customer is a registered buyer. Its orders are not stored on the record;
// they are looked up through Order.CustomerID.
type Customer struct {
	ID      int
	Name    string
	Address string
	Phone   string
	Email   string
}

// EntityID returns the customer's unique identifier.
func (c Customer) EntityID() int { return c.ID }
