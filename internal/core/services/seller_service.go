package services

import (
	"context"
	"strings"

	"logistics/internal/core/domain/model"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// SellerService handles stores, their deposits, the package catalogue and
// the creation of deliveries for a location's orders.
type SellerService struct {
	stores     ports.Repository[model.Store]
	deposits   ports.Repository[model.Deposit]
	packages   ports.Repository[model.Package]
	deliveries ports.Repository[model.Delivery]
	orders     ports.Repository[model.Order]
	ids        ports.IDAllocator
}

// NewSellerService wires the service over its repositories.
func NewSellerService(
	stores ports.Repository[model.Store],
	deposits ports.Repository[model.Deposit],
	packages ports.Repository[model.Package],
	deliveries ports.Repository[model.Delivery],
	orders ports.Repository[model.Order],
	ids ports.IDAllocator,
) SellerService {
	return SellerService{
		stores:     stores,
		deposits:   deposits,
		packages:   packages,
		deliveries: deliveries,
		orders:     orders,
		ids:        ids,
	}
}

// RegisterStore creates a new store and returns its identifier.
func (s SellerService) RegisterStore(ctx context.Context, name, address, contact string) (int, error) {
	id, err := s.ids.Next(ctx, s.stores)
	if err != nil {
		return 0, err
	}

	store := model.Store{ID: id, Name: name, Address: address, Contact: contact}
	if err := s.stores.Create(ctx, store); err != nil {
		return 0, err
	}
	return id, nil
}

// Stores returns all registered stores.
func (s SellerService) Stores(ctx context.Context) ([]model.Store, error) {
	return s.stores.ReadAll(ctx)
}

// RemoveStore deletes the store after detaching its deposits: each owned
// deposit's store reference is reset to the no-owner sentinel and the
// deposit persists independently. Never a cascade delete.
func (s SellerService) RemoveStore(ctx context.Context, storeID int) error {
	_, found, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("store", storeID)
	}

	all, err := s.deposits.ReadAll(ctx)
	if err != nil {
		return err
	}
	for _, deposit := range all {
		if deposit.StoreID != storeID {
			continue
		}
		deposit.StoreID = 0
		if err := s.deposits.Update(ctx, deposit); err != nil {
			return err
		}
	}

	return s.stores.Delete(ctx, storeID)
}

// RegisterDeposit creates a deposit owned by the store and returns its
// identifier.
func (s SellerService) RegisterDeposit(ctx context.Context, storeID int, address, status string) (int, error) {
	_, found, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errs.NewObjectNotFoundError("store", storeID)
	}

	id, err := s.ids.Next(ctx, s.deposits)
	if err != nil {
		return 0, err
	}

	deposit := model.Deposit{ID: id, StoreID: storeID, Address: address, Status: status}
	if err := s.deposits.Create(ctx, deposit); err != nil {
		return 0, err
	}
	return id, nil
}

// Deposits returns all deposits.
func (s SellerService) Deposits(ctx context.Context) ([]model.Deposit, error) {
	return s.deposits.ReadAll(ctx)
}

// RemoveDeposit deletes the deposit. Both the store and the deposit must
// exist.
func (s SellerService) RemoveDeposit(ctx context.Context, storeID, depositID int) error {
	_, found, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("store", storeID)
	}

	_, found, err = s.deposits.Get(ctx, depositID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("deposit", depositID)
	}

	return s.deposits.Delete(ctx, depositID)
}

// StorePackage places the package in the deposit.
func (s SellerService) StorePackage(ctx context.Context, depositID, packageID int) error {
	_, found, err := s.deposits.Get(ctx, depositID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("deposit", depositID)
	}

	pkg, found, err := s.packages.Get(ctx, packageID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("package", packageID)
	}

	pkg.DepositID = depositID
	return s.packages.Update(ctx, pkg)
}

// PackagesInDeposit returns the packages stored in the deposit.
func (s SellerService) PackagesInDeposit(ctx context.Context, depositID int) ([]model.Package, error) {
	_, found, err := s.deposits.Get(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("deposit", depositID)
	}

	all, err := s.packages.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	stored := make([]model.Package, 0)
	for _, pkg := range all {
		if pkg.DepositID == depositID {
			stored = append(stored, pkg)
		}
	}
	return stored, nil
}

// CreatePackage adds a package to the catalogue and returns its identifier.
func (s SellerService) CreatePackage(ctx context.Context, weight float64, dimensions string, cost float64) (int, error) {
	id, err := s.ids.Next(ctx, s.packages)
	if err != nil {
		return 0, err
	}

	pkg := model.Package{ID: id, Weight: weight, Dimensions: dimensions, Cost: cost}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return 0, err
	}
	return id, nil
}

// Packages returns the whole package catalogue.
func (s SellerService) Packages(ctx context.Context) ([]model.Package, error) {
	return s.packages.ReadAll(ctx)
}

// RemovePackage deletes the package.
func (s SellerService) RemovePackage(ctx context.Context, packageID int) error {
	_, found, err := s.packages.Get(ctx, packageID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("package", packageID)
	}
	return s.packages.Delete(ctx, packageID)
}

// PackagesFromOrder returns the packages attached to the order.
func (s SellerService) PackagesFromOrder(ctx context.Context, orderID int) ([]model.Package, error) {
	_, found, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	all, err := s.packages.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	attached := make([]model.Package, 0)
	for _, pkg := range all {
		if pkg.OrderID == orderID {
			attached = append(attached, pkg)
		}
	}
	return attached, nil
}

// FilterOrdersByLocation returns the orders delivered to the location,
// compared case-insensitively, in source order.
func (s SellerService) FilterOrdersByLocation(ctx context.Context, location string) ([]model.Order, error) {
	all, err := s.orders.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]model.Order, 0)
	for _, order := range all {
		if strings.EqualFold(order.Location, location) {
			matching = append(matching, order)
		}
	}
	return matching, nil
}

// CreateDelivery creates an unassigned delivery for the location and
// gathers the location's orders onto it, stamping them "to be shipped".
// Returns the new delivery's identifier.
func (s SellerService) CreateDelivery(ctx context.Context, location string) (int, error) {
	id, err := s.ids.Next(ctx, s.deliveries)
	if err != nil {
		return 0, err
	}

	all, err := s.orders.ReadAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, order := range all {
		if !strings.EqualFold(order.Location, location) {
			continue
		}
		order.DeliveryID = id
		order.Status = statusToBeShipped
		if err := s.orders.Update(ctx, order); err != nil {
			return 0, err
		}
	}

	delivery := model.Delivery{ID: id, Location: location}
	if err := s.deliveries.Create(ctx, delivery); err != nil {
		return 0, err
	}
	return id, nil
}
