package model

// Department groups employees by task. Membership is looked up through
// Employee.DepartmentID.
type Department struct {
	ID   int
	Name string
	Task string
}

// EntityID returns the department's unique identifier.
func (d Department) EntityID() int { return d.ID }
