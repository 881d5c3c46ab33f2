package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateCustomer_AllocatesSequentialIDs(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	first, err := f.customerSvc.CreateCustomer(ctx, "Ana", "Cluj", "0712", "ana@mail.com")
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := f.customerSvc.CreateCustomer(ctx, "Ion", "Sibiu", "0734", "ion@mail.com")
	require.NoError(t, err)
	assert.Equal(t, 2, second)
}

func TestCustomerService_PlaceOrder(t *testing.T) {
	deliveryAt := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

	t.Run("total cost is the sum of the resolved packages", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 1, Name: "Ana", Address: "Cluj"}))
		require.NoError(t, f.packages.Create(ctx, model.Package{ID: 10, Cost: 100.0}))
		require.NoError(t, f.packages.Create(ctx, model.Package{ID: 20, Cost: 50.0}))

		orderID, err := f.customerSvc.PlaceOrder(ctx, 1, deliveryAt, []int{10, 20})
		require.NoError(t, err)

		owned, err := f.customerSvc.OrdersFromCustomer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, orderID, owned[0].ID)
		assert.Equal(t, 150.0, owned[0].TotalCost)
		assert.Equal(t, "Cluj", owned[0].Location, "order is delivered to the customer's address")
		assert.Equal(t, "processing", owned[0].Status)
		assert.True(t, deliveryAt.Equal(owned[0].DeliveryAt))
	})

	t.Run("unknown customer fails and creates no order", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()

		_, err := f.customerSvc.PlaceOrder(ctx, 42, deliveryAt, []int{10})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		keys, keysErr := f.orders.Keys(ctx)
		require.NoError(t, keysErr)
		assert.Empty(t, keys)
	})

	t.Run("unresolvable package ids are silently skipped", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 1, Address: "Cluj"}))
		require.NoError(t, f.packages.Create(ctx, model.Package{ID: 10, Cost: 100.0}))

		orderID, err := f.customerSvc.PlaceOrder(ctx, 1, deliveryAt, []int{10, 999})
		require.NoError(t, err)

		order, found, err := f.orders.Get(ctx, orderID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 100.0, order.TotalCost)
	})

	t.Run("attached packages reference the order", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 1, Address: "Cluj"}))
		require.NoError(t, f.packages.Create(ctx, model.Package{ID: 10, Cost: 100.0}))

		orderID, err := f.customerSvc.PlaceOrder(ctx, 1, deliveryAt, []int{10})
		require.NoError(t, err)

		pkg, _, err := f.packages.Get(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, orderID, pkg.OrderID)
	})
}

func TestCustomerService_OrdersFromCustomer_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	_, err := f.customerSvc.OrdersFromCustomer(ctx, 5)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCustomerService_RecomputeOrderCost(t *testing.T) {
	t.Run("is idempotent while packages are unchanged", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.orders.Create(ctx, model.Order{ID: 1, CustomerID: 1}))
		require.NoError(t, f.packages.Create(ctx, model.Package{ID: 10, OrderID: 1, Cost: 30.0}))
		require.NoError(t, f.packages.Create(ctx, model.Package{ID: 11, OrderID: 1, Cost: 12.5}))

		first, err := f.customerSvc.RecomputeOrderCost(ctx, 1)
		require.NoError(t, err)
		second, err := f.customerSvc.RecomputeOrderCost(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 42.5, first)
		assert.Equal(t, first, second)

		order, _, err := f.orders.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 42.5, order.TotalCost)
	})

	t.Run("unknown order fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()

		_, err := f.customerSvc.RecomputeOrderCost(ctx, 7)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCustomerService_RemoveOrder(t *testing.T) {
	t.Run("order of another customer is rejected and kept", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 1}))
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 2}))
		require.NoError(t, f.orders.Create(ctx, model.Order{ID: 4, CustomerID: 2}))

		err := f.customerSvc.RemoveOrder(ctx, 1, 4)
		require.ErrorIs(t, err, errs.ErrBusinessRule)

		_, found, getErr := f.orders.Get(ctx, 4)
		require.NoError(t, getErr)
		assert.True(t, found, "rejected removal must leave the order repository unchanged")
	})

	t.Run("owned order is deleted", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 1}))
		require.NoError(t, f.orders.Create(ctx, model.Order{ID: 4, CustomerID: 1}))

		require.NoError(t, f.customerSvc.RemoveOrder(ctx, 1, 4))

		_, found, err := f.orders.Get(ctx, 4)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unknown customer or order fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		require.NoError(t, f.customers.Create(ctx, model.Customer{ID: 1}))

		require.ErrorIs(t, f.customerSvc.RemoveOrder(ctx, 9, 4), errs.ErrObjectNotFound)
		require.ErrorIs(t, f.customerSvc.RemoveOrder(ctx, 1, 4), errs.ErrObjectNotFound)
	})
}

func TestCustomerService_ScheduleDelivery(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	require.NoError(t, f.orders.Create(ctx, model.Order{ID: 1, CustomerID: 1}))

	at := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	require.NoError(t, f.customerSvc.ScheduleDelivery(ctx, 1, at))

	order, _, err := f.orders.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, at.Equal(order.DeliveryAt))

	require.ErrorIs(t, f.customerSvc.ScheduleDelivery(ctx, 9, at), errs.ErrObjectNotFound)
}

func TestCustomerService_SortOrdersByCostDescending(t *testing.T) {
	f := newFixture()
	orders := []model.Order{
		{ID: 1, TotalCost: 10},
		{ID: 2, TotalCost: 99},
		{ID: 3, TotalCost: 50},
	}

	sorted := f.customerSvc.SortOrdersByCostDescending(orders)

	assert.Equal(t, []int{2, 3, 1}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, 1, orders[0].ID, "input slice must not be reordered")
}
