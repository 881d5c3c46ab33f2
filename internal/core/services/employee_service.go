package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"logistics/internal/core/domain/model"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// EmployeeService handles in-house staff, their departments and the
// deliveries they carry.
type EmployeeService struct {
	employees   ports.Repository[model.Employee]
	deliveries  ports.Repository[model.Delivery]
	departments ports.Repository[model.Department]
	orders      ports.Repository[model.Order]
	ids         ports.IDAllocator
}

// NewEmployeeService wires the service over its repositories.
func NewEmployeeService(
	employees ports.Repository[model.Employee],
	deliveries ports.Repository[model.Delivery],
	departments ports.Repository[model.Department],
	orders ports.Repository[model.Order],
	ids ports.IDAllocator,
) EmployeeService {
	return EmployeeService{
		employees:   employees,
		deliveries:  deliveries,
		departments: departments,
		orders:      orders,
		ids:         ids,
	}
}

// CreateEmployee adds an employee to the department and returns its
// identifier. The department is checked before anything is written, so a
// failed call leaves the employee collection untouched.
func (s EmployeeService) CreateEmployee(ctx context.Context, departmentID int, name, phone, license string) (int, error) {
	_, found, err := s.departments.Get(ctx, departmentID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errs.NewObjectNotFoundError("department", departmentID)
	}

	id, err := s.ids.Next(ctx, s.employees)
	if err != nil {
		return 0, err
	}

	employee := model.Employee{
		ID:           id,
		DepartmentID: departmentID,
		Name:         name,
		Phone:        phone,
		License:      license,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return 0, err
	}
	return id, nil
}

// Employees returns all employees.
func (s EmployeeService) Employees(ctx context.Context) ([]model.Employee, error) {
	return s.employees.ReadAll(ctx)
}

// Departments returns all departments.
func (s EmployeeService) Departments(ctx context.Context) ([]model.Department, error) {
	return s.departments.ReadAll(ctx)
}

// Deliveries returns all deliveries.
func (s EmployeeService) Deliveries(ctx context.Context) ([]model.Delivery, error) {
	return s.deliveries.ReadAll(ctx)
}

// EmployeesOfDepartment returns the department's staff, computed from
// Employee.DepartmentID.
func (s EmployeeService) EmployeesOfDepartment(ctx context.Context, departmentID int) ([]model.Employee, error) {
	_, found, err := s.departments.Get(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("department", departmentID)
	}

	all, err := s.employees.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	staff := make([]model.Employee, 0)
	for _, employee := range all {
		if employee.DepartmentID == departmentID {
			staff = append(staff, employee)
		}
	}
	return staff, nil
}

// DeliveriesForEmployee returns the deliveries the employee has picked up.
func (s EmployeeService) DeliveriesForEmployee(ctx context.Context, employeeID int) ([]model.Delivery, error) {
	_, found, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("employee", employeeID)
	}

	all, err := s.deliveries.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	picked := make([]model.Delivery, 0)
	for _, delivery := range all {
		if delivery.EmployeeID == employeeID {
			picked = append(picked, delivery)
		}
	}
	return picked, nil
}

// PickDelivery assigns the delivery to the employee. A delivery already
// held by either actor kind rejects the pick.
func (s EmployeeService) PickDelivery(ctx context.Context, employeeID, deliveryID int) error {
	delivery, found, err := s.deliveries.Get(ctx, deliveryID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("delivery", deliveryID)
	}

	_, found, err = s.employees.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("employee", employeeID)
	}

	if err := checkDeliveryUnassigned(delivery); err != nil {
		return err
	}

	delivery.EmployeeID = employeeID
	return s.deliveries.Update(ctx, delivery)
}

// DropDelivery releases a delivery the employee currently holds, restoring
// it to the unassigned state.
func (s EmployeeService) DropDelivery(ctx context.Context, employeeID, deliveryID int) error {
	_, found, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("employee", employeeID)
	}

	delivery, found, err := s.deliveries.Get(ctx, deliveryID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("delivery", deliveryID)
	}

	if delivery.EmployeeID != employeeID {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("delivery %d is not assigned to employee %d", deliveryID, employeeID))
	}

	delivery.EmployeeID = 0
	return s.deliveries.Update(ctx, delivery)
}

// SortDeliveriesByEarliestOrderDate returns a copy of deliveries sorted by
// the earliest delivery timestamp among each delivery's orders. Deliveries
// without orders sort last, as if dated at the maximum possible time.
func (s EmployeeService) SortDeliveriesByEarliestOrderDate(ctx context.Context, deliveries []model.Delivery) ([]model.Delivery, error) {
	all, err := s.orders.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	// Maximum representable timestamp, the sort key for empty deliveries.
	maxTime := time.Unix(1<<62, 0)

	earliest := make(map[int]time.Time)
	for _, order := range all {
		if order.DeliveryID == 0 {
			continue
		}
		if current, ok := earliest[order.DeliveryID]; !ok || order.DeliveryAt.Before(current) {
			earliest[order.DeliveryID] = order.DeliveryAt
		}
	}

	keyOf := func(d model.Delivery) time.Time {
		if at, ok := earliest[d.ID]; ok {
			return at
		}
		return maxTime
	}

	sorted := make([]model.Delivery, len(deliveries))
	copy(sorted, deliveries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keyOf(sorted[i]).Before(keyOf(sorted[j]))
	})
	return sorted, nil
}
