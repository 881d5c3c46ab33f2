package services

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// UserService handles the people-facing administration: departments,
// customer accounts and the enrolment of staff and drivers.
type UserService struct {
	customers   ports.Repository[model.Customer]
	employees   ports.Repository[model.Employee]
	persons     ports.Repository[model.DeliveryPerson]
	departments ports.Repository[model.Department]
	ids         ports.IDAllocator
}

// NewUserService wires the service over its repositories.
func NewUserService(
	customers ports.Repository[model.Customer],
	employees ports.Repository[model.Employee],
	persons ports.Repository[model.DeliveryPerson],
	departments ports.Repository[model.Department],
	ids ports.IDAllocator,
) UserService {
	return UserService{
		customers:   customers,
		employees:   employees,
		persons:     persons,
		departments: departments,
		ids:         ids,
	}
}

// TransportKinds returns the names of all transport kinds.
func (s UserService) TransportKinds() []string {
	return model.TransportKinds()
}

// CreateDepartment adds a department and returns its identifier.
func (s UserService) CreateDepartment(ctx context.Context, name, task string) (int, error) {
	id, err := s.ids.Next(ctx, s.departments)
	if err != nil {
		return 0, err
	}

	department := model.Department{ID: id, Name: name, Task: task}
	if err := s.departments.Create(ctx, department); err != nil {
		return 0, err
	}
	return id, nil
}

// Departments returns all departments.
func (s UserService) Departments(ctx context.Context) ([]model.Department, error) {
	return s.departments.ReadAll(ctx)
}

// Customers returns all customers.
func (s UserService) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.customers.ReadAll(ctx)
}

// DeleteCustomer removes the customer record.
func (s UserService) DeleteCustomer(ctx context.Context, customerID int) error {
	_, found, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("customer", customerID)
	}
	return s.customers.Delete(ctx, customerID)
}

// Employees returns all employees.
func (s UserService) Employees(ctx context.Context) ([]model.Employee, error) {
	return s.employees.ReadAll(ctx)
}

// UnenrollEmployee removes the employee. Department membership is computed
// from Employee.DepartmentID, so deleting the record also removes the
// employee from its department's staff. The employee's department must
// still resolve.
func (s UserService) UnenrollEmployee(ctx context.Context, employeeID int) error {
	employee, found, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("employee", employeeID)
	}

	_, found, err = s.departments.Get(ctx, employee.DepartmentID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("employee %d is not assigned to any department", employeeID))
	}

	return s.employees.Delete(ctx, employeeID)
}

// DeliveryPersons returns all enrolled drivers.
func (s UserService) DeliveryPersons(ctx context.Context) ([]model.DeliveryPerson, error) {
	return s.persons.ReadAll(ctx)
}

// UnenrollDeliveryPerson removes the delivery person record.
func (s UserService) UnenrollDeliveryPerson(ctx context.Context, deliveryPersonID int) error {
	_, found, err := s.persons.Get(ctx, deliveryPersonID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("delivery person", deliveryPersonID)
	}
	return s.persons.Delete(ctx, deliveryPersonID)
}
