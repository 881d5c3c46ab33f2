package services

import (
	"context"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DeliveryPersonService handles external drivers, their personal vehicles
// and the deliveries they pick up.
type DeliveryPersonService struct {
	deliveries ports.Repository[model.Delivery]
	persons    ports.Repository[model.DeliveryPerson]
	vehicles   ports.Repository[model.PersonalVehicle]
	orders     ports.Repository[model.Order]
	ids        ports.IDAllocator
}

// NewDeliveryPersonService wires the service over its repositories.
func NewDeliveryPersonService(
	deliveries ports.Repository[model.Delivery],
	persons ports.Repository[model.DeliveryPerson],
	vehicles ports.Repository[model.PersonalVehicle],
	orders ports.Repository[model.Order],
	ids ports.IDAllocator,
) DeliveryPersonService {
	return DeliveryPersonService{
		deliveries: deliveries,
		persons:    persons,
		vehicles:   vehicles,
		orders:     orders,
		ids:        ids,
	}
}

// EnrollAsDriver registers a new delivery person, already verified, and
// returns its identifier.
func (s DeliveryPersonService) EnrollAsDriver(ctx context.Context, name, phone, license string) (int, error) {
	id, err := s.ids.Next(ctx, s.persons)
	if err != nil {
		return 0, err
	}

	person := model.DeliveryPerson{
		ID:       id,
		Name:     name,
		Phone:    phone,
		Verified: true,
		License:  license,
	}
	if err := s.persons.Create(ctx, person); err != nil {
		return 0, err
	}
	return id, nil
}

// DeliveryPersons returns all enrolled drivers.
func (s DeliveryPersonService) DeliveryPersons(ctx context.Context) ([]model.DeliveryPerson, error) {
	return s.persons.ReadAll(ctx)
}

// Deliveries returns all deliveries.
func (s DeliveryPersonService) Deliveries(ctx context.Context) ([]model.Delivery, error) {
	return s.deliveries.ReadAll(ctx)
}

// PersonalVehicles returns all registered vehicles.
func (s DeliveryPersonService) PersonalVehicles(ctx context.Context) ([]model.PersonalVehicle, error) {
	return s.vehicles.ReadAll(ctx)
}

// RegisterVehicle adds an unowned personal vehicle and returns its
// identifier.
func (s DeliveryPersonService) RegisterVehicle(ctx context.Context, extraFee float64, capacity int, kind model.TransportKind) (int, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	id, err := s.ids.Next(ctx, s.vehicles)
	if err != nil {
		return 0, err
	}

	vehicle := model.PersonalVehicle{
		ID:       id,
		ExtraFee: extraFee,
		Capacity: capacity,
		Kind:     kind,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return 0, err
	}
	return id, nil
}

// PickDelivery assigns the delivery to the delivery person. Goes through
// the same precondition as the employee pathway: a delivery already held
// by either actor kind rejects the pick.
func (s DeliveryPersonService) PickDelivery(ctx context.Context, deliveryPersonID, deliveryID int) error {
	_, found, err := s.persons.Get(ctx, deliveryPersonID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("delivery person", deliveryPersonID)
	}

	delivery, found, err := s.deliveries.Get(ctx, deliveryID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("delivery", deliveryID)
	}

	if err := checkDeliveryUnassigned(delivery); err != nil {
		return err
	}

	delivery.DeliveryPersonID = deliveryPersonID
	return s.deliveries.Update(ctx, delivery)
}

// AssignPersonalVehicle links the vehicle and the delivery person both
// ways. A vehicle already owned by a different driver rejects the
// assignment and neither side changes.
func (s DeliveryPersonService) AssignPersonalVehicle(ctx context.Context, deliveryPersonID, vehicleID int) error {
	person, found, err := s.persons.Get(ctx, deliveryPersonID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("delivery person", deliveryPersonID)
	}

	vehicle, found, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("personal vehicle", vehicleID)
	}

	if vehicle.DeliveryPersonID != 0 && vehicle.DeliveryPersonID != deliveryPersonID {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("vehicle %d is already assigned to delivery person %d", vehicleID, vehicle.DeliveryPersonID))
	}

	vehicle.DeliveryPersonID = deliveryPersonID
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return err
	}

	person.VehicleID = vehicleID
	return s.persons.Update(ctx, person)
}

// DeliveriesForDeliveryPerson returns the deliveries the driver has picked
// up.
func (s DeliveryPersonService) DeliveriesForDeliveryPerson(ctx context.Context, deliveryPersonID int) ([]model.Delivery, error) {
	_, found, err := s.persons.Get(ctx, deliveryPersonID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("delivery person", deliveryPersonID)
	}

	all, err := s.deliveries.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	picked := make([]model.Delivery, 0)
	for _, delivery := range all {
		if delivery.DeliveryPersonID == deliveryPersonID {
			picked = append(picked, delivery)
		}
	}
	return picked, nil
}

// DeliveriesWithPendingOrders returns the deliveries holding at least one
// order still in the "to be shipped" status.
func (s DeliveryPersonService) DeliveriesWithPendingOrders(ctx context.Context) ([]model.Delivery, error) {
	orders, err := s.orders.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := make(map[int]bool)
	for _, order := range orders {
		if order.DeliveryID != 0 && strings.EqualFold(order.Status, statusToBeShipped) {
			pending[order.DeliveryID] = true
		}
	}

	all, err := s.deliveries.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]model.Delivery, 0)
	for _, delivery := range all {
		if pending[delivery.ID] {
			matching = append(matching, delivery)
		}
	}
	return matching, nil
}
