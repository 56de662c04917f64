package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, units int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(units)
	require.NoError(t, err)
	return m
}

func line(t *testing.T, quantity int64, price int64) order.OrderLine {
	t.Helper()
	l, err := order.NewOrderLine(kernel.NewUUID(), quantity, money(t, price))
	require.NoError(t, err)
	return l
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a takeout order in Waiting status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Takeout,
			[]order.OrderLine{line(t, 2, 80001), line(t, 3, 80000)}, "", nil)

		require.NoError(t, err)
		assert.Equal(t, order.Waiting, o.Status())
		assert.Equal(t, order.Takeout, o.Channel())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("should reject a missing channel", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.UnknownChannel,
			[]order.OrderLine{line(t, 1, 100)}, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty line lists", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Takeout, nil, "", nil)
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)

		_, err = order.NewOrder(kernel.NewUUID(), order.Takeout, []order.OrderLine{}, "", nil)
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("should reject negative quantities for takeout and delivery", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Takeout,
			[]order.OrderLine{line(t, -1, 100)}, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(kernel.NewUUID(), order.Delivery,
			[]order.OrderLine{line(t, -1, 100)}, "221B Baker Street", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	// The quantity check is intentionally skipped for eat-in orders at
	// creation time. The exemption is pinned here so a future change to it is
	// a conscious decision rather than an accident.
	t.Run("should keep negative line quantities out of validation for eat-in orders", func(t *testing.T) {
		tableID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), order.EatIn,
			[]order.OrderLine{line(t, -1, 100)}, "", &tableID)

		require.NoError(t, err)
		assert.Equal(t, order.Waiting, o.Status())
	})

	t.Run("should require an address for delivery orders", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Delivery,
			[]order.OrderLine{line(t, 1, 100)}, "", nil)

		require.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should require a table for eat-in orders", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.EatIn,
			[]order.OrderLine{line(t, 1, 100)}, "", nil)

		require.ErrorIs(t, err, order.ErrTableIsRequired)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum price times quantity over all lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Takeout,
			[]order.OrderLine{line(t, 2, 10000), line(t, 3, 20000)}, "", nil)

		require.NoError(t, err)
		assert.Equal(t, "80000", o.Total().String())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("eat-in order runs Waiting through Completed", func(t *testing.T) {
		tableID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), order.EatIn,
			[]order.OrderLine{line(t, 1, 100)}, "", &tableID)
		require.NoError(t, err)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())
		require.NoError(t, o.Serve())
		assert.Equal(t, order.Served, o.Status())
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("delivery order passes through the delivery stages", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Delivery,
			[]order.OrderLine{line(t, 1, 100)}, "221B Baker Street", nil)
		require.NoError(t, err)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())

		// complete before the delivery leg must fail
		require.ErrorIs(t, o.Complete(), order.ErrIllegalStatus)

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.Delivering, o.Status())
		require.NoError(t, o.CompleteDelivery())
		assert.Equal(t, order.Delivered, o.Status())
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("takeout order cannot enter the delivery stages", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Takeout,
			[]order.OrderLine{line(t, 1, 100)}, "", nil)
		require.NoError(t, err)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())
		require.ErrorIs(t, o.StartDelivery(), order.ErrIllegalStatus)
		require.ErrorIs(t, o.CompleteDelivery(), order.ErrIllegalStatus)
		require.NoError(t, o.Complete())
	})

	t.Run("re-invoking a transition on a terminal order fails", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Takeout,
			[]order.OrderLine{line(t, 1, 100)}, "", nil)
		require.NoError(t, err)

		require.NoError(t, o.Accept())
		require.NoError(t, o.Serve())
		require.NoError(t, o.Complete())
		require.ErrorIs(t, o.Complete(), order.ErrIllegalStatus)
		require.ErrorIs(t, o.Accept(), order.ErrIllegalStatus)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore status as persisted", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Delivery, order.Delivering,
			[]order.OrderLine{line(t, 1, 100)}, "221B Baker Street", nil)

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, o.Status())
	})

	t.Run("should reject an invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.Takeout, order.Status(99),
			[]order.OrderLine{line(t, 1, 100)}, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a zero-value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
