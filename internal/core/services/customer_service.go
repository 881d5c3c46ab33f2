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

// CustomerService handles customers and the orders they place.
type CustomerService struct {
	customers  ports.Repository[model.Customer]
	orders     ports.Repository[model.Order]
	deliveries ports.Repository[model.Delivery]
	packages   ports.Repository[model.Package]
	ids        ports.IDAllocator
}

// NewCustomerService wires the service over its repositories.
func NewCustomerService(
	customers ports.Repository[model.Customer],
	orders ports.Repository[model.Order],
	deliveries ports.Repository[model.Delivery],
	packages ports.Repository[model.Package],
	ids ports.IDAllocator,
) CustomerService {
	return CustomerService{
		customers:  customers,
		orders:     orders,
		deliveries: deliveries,
		packages:   packages,
		ids:        ids,
	}
}

// CreateCustomer registers a new customer and returns its identifier.
func (s CustomerService) CreateCustomer(ctx context.Context, name, address, phone, email string) (int, error) {
	id, err := s.ids.Next(ctx, s.customers)
	if err != nil {
		return 0, err
	}

	customer := model.Customer{
		ID:      id,
		Name:    name,
		Address: address,
		Phone:   phone,
		Email:   email,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return 0, err
	}
	return id, nil
}

// Customers returns all registered customers.
func (s CustomerService) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.customers.ReadAll(ctx)
}

// Orders returns all orders across customers.
func (s CustomerService) Orders(ctx context.Context) ([]model.Order, error) {
	return s.orders.ReadAll(ctx)
}

// Deliveries returns all deliveries.
func (s CustomerService) Deliveries(ctx context.Context) ([]model.Delivery, error) {
	return s.deliveries.ReadAll(ctx)
}

// Packages returns all packages.
func (s CustomerService) Packages(ctx context.Context) ([]model.Package, error) {
	return s.packages.ReadAll(ctx)
}

// DeleteCustomer removes the customer record.
func (s CustomerService) DeleteCustomer(ctx context.Context, customerID int) error {
	_, found, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("customer", customerID)
	}
	return s.customers.Delete(ctx, customerID)
}

// OrdersFromCustomer returns the customer's orders in repository order.
// The order repository is the single source of truth; the list is computed
// from Order.CustomerID rather than stored on the customer.
func (s CustomerService) OrdersFromCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	_, found, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("customer", customerID)
	}

	all, err := s.orders.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]model.Order, 0)
	for _, order := range all {
		if order.CustomerID == customerID {
			owned = append(owned, order)
		}
	}
	return owned, nil
}

// PlaceOrder creates an order for the customer, attaches the packages that
// resolve and returns the new order's identifier. Package ids that do not
// resolve are silently skipped. The order is delivered to the customer's
// address and starts in the "processing" status; its total cost is the sum
// of the attached packages' costs.
func (s CustomerService) PlaceOrder(ctx context.Context, customerID int, deliveryAt time.Time, packageIDs []int) (int, error) {
	customer, found, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errs.NewObjectNotFoundError("customer", customerID)
	}

	orderID, err := s.ids.Next(ctx, s.orders)
	if err != nil {
		return 0, err
	}

	order := model.Order{
		ID:         orderID,
		CustomerID: customerID,
		PlacedAt:   time.Now(),
		DeliveryAt: deliveryAt,
		Status:     statusProcessing,
		Location:   customer.Address,
	}

	total := 0.0
	for _, packageID := range packageIDs {
		pkg, found, err := s.packages.Get(ctx, packageID)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}
		pkg.OrderID = orderID
		if err := s.packages.Update(ctx, pkg); err != nil {
			return 0, err
		}
		total += pkg.Cost
	}
	order.TotalCost = total

	if err := s.orders.Create(ctx, order); err != nil {
		return 0, err
	}
	return orderID, nil
}

// RecomputeOrderCost derives the order's total cost from its packages,
// persists it and returns the value. Idempotent while the order's packages
// are unchanged.
func (s CustomerService) RecomputeOrderCost(ctx context.Context, orderID int) (float64, error) {
	order, found, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errs.NewObjectNotFoundError("order", orderID)
	}

	all, err := s.packages.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, pkg := range all {
		if pkg.OrderID == orderID {
			total += pkg.Cost
		}
	}

	order.TotalCost = total
	if err := s.orders.Update(ctx, order); err != nil {
		return 0, err
	}
	return total, nil
}

// RemoveOrder deletes the customer's order. The order must belong to the
// given customer.
func (s CustomerService) RemoveOrder(ctx context.Context, customerID, orderID int) error {
	_, found, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("customer", customerID)
	}

	order, found, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	if order.CustomerID != customerID {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("order %d does not belong to customer %d", orderID, customerID))
	}
	return s.orders.Delete(ctx, orderID)
}

// ScheduleDelivery sets the order's delivery timestamp. Date sanity is a
// front-end concern; no ordering constraint is enforced here.
func (s CustomerService) ScheduleDelivery(ctx context.Context, orderID int, deliveryAt time.Time) error {
	order, found, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	order.DeliveryAt = deliveryAt
	return s.orders.Update(ctx, order)
}

// SortOrdersByCostDescending returns a copy of orders sorted by total cost,
// highest first. Ties keep their source order.
func (s CustomerService) SortOrdersByCostDescending(orders []model.Order) []model.Order {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCost > sorted[j].TotalCost
	})
	return sorted
}
