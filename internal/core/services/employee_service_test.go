package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateEmployee(t *testing.T) {
	t.Run("missing department writes nothing", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()

		_, err := f.employeeSvc.CreateEmployee(ctx, 7, "Dan", "0711", "B")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		keys, keysErr := f.employees.Keys(ctx)
		require.NoError(t, keysErr)
		assert.Empty(t, keys)
	})

	t.Run("employee joins the department staff", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.departments.Create(ctx, model.Department{ID: 1, Name: "Dispatch"}))

		id, err := f.employeeSvc.CreateEmployee(ctx, 1, "Dan", "0711", "B")
		require.NoError(t, err)

		staff, err := f.employeeSvc.EmployeesOfDepartment(ctx, 1)
		require.NoError(t, err)
		require.Len(t, staff, 1)
		assert.Equal(t, id, staff[0].ID)
		assert.Equal(t, "Dan", staff[0].Name)
	})
}

func TestEmployeeService_PickAndDropDelivery(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	require.NoError(t, f.departments.Create(ctx, model.Department{ID: 1}))
	require.NoError(t, f.employees.Create(ctx, model.Employee{ID: 1, DepartmentID: 1}))
	require.NoError(t, f.deliveries.Create(ctx, model.Delivery{ID: 3, Location: "Cluj"}))

	require.NoError(t, f.employeeSvc.PickDelivery(ctx, 1, 3))

	picked, err := f.employeeSvc.DeliveriesForEmployee(ctx, 1)
	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, 3, picked[0].ID)

	require.NoError(t, f.employeeSvc.DropDelivery(ctx, 1, 3))

	delivery, _, err := f.deliveries.Get(ctx, 3)
	require.NoError(t, err)
	assert.False(t, delivery.Assigned(), "drop restores the unassigned state")
}

func TestEmployeeService_PickDelivery_AlreadyHeld(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	require.NoError(t, f.departments.Create(ctx, model.Department{ID: 1}))
	require.NoError(t, f.employees.Create(ctx, model.Employee{ID: 1, DepartmentID: 1}))
	require.NoError(t, f.employees.Create(ctx, model.Employee{ID: 2, DepartmentID: 1}))
	require.NoError(t, f.deliveries.Create(ctx, model.Delivery{ID: 3}))

	require.NoError(t, f.employeeSvc.PickDelivery(ctx, 1, 3))

	err := f.employeeSvc.PickDelivery(ctx, 2, 3)
	require.ErrorIs(t, err, errs.ErrBusinessRule)

	delivery, _, getErr := f.deliveries.Get(ctx, 3)
	require.NoError(t, getErr)
	assert.Equal(t, 1, delivery.EmployeeID, "the first holder keeps the delivery")
}

func TestEmployeeService_PickDelivery_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	require.NoError(t, f.deliveries.Create(ctx, model.Delivery{ID: 3}))

	require.ErrorIs(t, f.employeeSvc.PickDelivery(ctx, 1, 9), errs.ErrObjectNotFound)
	require.ErrorIs(t, f.employeeSvc.PickDelivery(ctx, 9, 3), errs.ErrObjectNotFound)
}

func TestEmployeeService_DropDelivery_NotHolder(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	require.NoError(t, f.employees.Create(ctx, model.Employee{ID: 1}))
	require.NoError(t, f.employees.Create(ctx, model.Employee{ID: 2}))
	require.NoError(t, f.deliveries.Create(ctx, model.Delivery{ID: 3, EmployeeID: 2}))

	err := f.employeeSvc.DropDelivery(ctx, 1, 3)
	require.ErrorIs(t, err, errs.ErrBusinessRule)

	delivery, _, getErr := f.deliveries.Get(ctx, 3)
	require.NoError(t, getErr)
	assert.Equal(t, 2, delivery.EmployeeID)
}

func TestEmployeeService_SortDeliveriesByEarliestOrderDate(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, f.orders.Create(ctx, model.Order{ID: 1, DeliveryID: 1, DeliveryAt: jun}))
	require.NoError(t, f.orders.Create(ctx, model.Order{ID: 2, DeliveryID: 1, DeliveryAt: mar}))
	require.NoError(t, f.orders.Create(ctx, model.Order{ID: 3, DeliveryID: 2, DeliveryAt: jan}))

	deliveries := []model.Delivery{{ID: 1}, {ID: 2}, {ID: 3}}

	sorted, err := f.employeeSvc.SortDeliveriesByEarliestOrderDate(ctx, deliveries)
	require.NoError(t, err)

	ids := []int{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	assert.Equal(t, []int{2, 1, 3}, ids, "delivery 2 has the earliest order, delivery 3 has none and sorts last")
	assert.Equal(t, 1, deliveries[0].ID, "input slice must not be reordered")
}
