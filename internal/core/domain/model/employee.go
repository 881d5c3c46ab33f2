package model

// Employee is in-house delivery staff belonging to one department.
// The deliveries an employee has picked up are looked up through
// Delivery.EmployeeID.
type Employee struct {
	ID           int
	DepartmentID int
	Name         string
	Phone        string
	License      string
}

// EntityID returns the employee's unique identifier.
func (e Employee) EntityID() int { return e.ID }
