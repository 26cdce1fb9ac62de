package order_test

import (
	"testing"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) order.CustomerSnapshot {
	t.Helper()
	snapshot, err := order.NewCustomerSnapshot(nil, "Maria Silva", "Rua das Flores 123", "11 91234-5678")
	require.NoError(t, err)
	return snapshot
}

func testLine(t *testing.T, quantity int, price string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Galao 20L", quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with totals from lines", func(t *testing.T) {
		lines := []order.Line{testLine(t, 2, "15.00"), testLine(t, 1, "8.50")}

		o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "leave at gate", lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("38.50")))
		assert.True(t, o.NetAmount().Equal(o.TotalAmount()))
		assert.Empty(t, o.TripCosts())
		assert.Empty(t, o.Payments())
		assert.Equal(t, "leave at gate", o.Notes())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("fails with empty line list", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, testSnapshot(t), "", []order.Line{testLine(t, 1, "10.00")})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("line with zero quantity cannot be built", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Galao 20L", 0, decimal.NewFromInt(10))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("line with negative price cannot be built", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Galao 20L", 1, decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		line, err := order.NewLine(kernel.NewUUID(), "Brinde", 1, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, line.Subtotal().IsZero())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "", []order.Line{testLine(t, 2, "15.00")})
		require.NoError(t, err)
		return o
	}

	t.Run("full path pending assigned in_progress completed", func(t *testing.T) {
		o := newOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.Assign(driverID))
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))

		require.NoError(t, o.Start())
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("complete from pending fails", func(t *testing.T) {
		o := newOrder(t)

		err := o.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("complete from assigned fails", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("start from pending fails", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.Start(), errs.ErrInvalidTransition)
	})

	t.Run("assign from assigned fails", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Start())
		require.NoError(t, o.Complete())

		require.ErrorIs(t, o.Assign(kernel.NewUUID()), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Start(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Complete(), errs.ErrInvalidTransition)
	})

	t.Run("delete only from pending", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ValidateDelete())

		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.ErrorIs(t, o.ValidateDelete(), errs.ErrInvalidTransition)
	})
}

func TestOrder_TripCosts(t *testing.T) {
	activeOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "", []order.Line{testLine(t, 2, "15.00")})
		require.NoError(t, err)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		return o
	}

	t.Run("add and remove recompute net amount", func(t *testing.T) {
		o := activeOrder(t)
		assert.True(t, o.NetAmount().Equal(decimal.RequireFromString("30.00")))

		toll, err := order.NewTripCost(decimal.RequireFromString("8.00"), "toll")
		require.NoError(t, err)
		require.NoError(t, o.AddTripCost(toll))
		assert.True(t, o.NetAmount().Equal(decimal.RequireFromString("22.00")))
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("30.00")))

		require.NoError(t, o.RemoveTripCost(0))
		assert.True(t, o.NetAmount().Equal(decimal.RequireFromString("30.00")))
		assert.Empty(t, o.TripCosts())
	})

	t.Run("net amount may go negative", func(t *testing.T) {
		o := activeOrder(t)

		cost, err := order.NewTripCost(decimal.RequireFromString("45.00"), "long detour")
		require.NoError(t, err)
		require.NoError(t, o.AddTripCost(cost))

		assert.True(t, o.NetAmount().Equal(decimal.RequireFromString("-15.00")))
	})

	t.Run("add fails while pending", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "", []order.Line{testLine(t, 1, "10.00")})
		require.NoError(t, err)

		cost, err := order.NewTripCost(decimal.NewFromInt(5), "toll")
		require.NoError(t, err)

		require.ErrorIs(t, o.AddTripCost(cost), errs.ErrInvalidTransition)
	})

	t.Run("add fails after completion", func(t *testing.T) {
		o := activeOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Complete())

		cost, err := order.NewTripCost(decimal.NewFromInt(5), "toll")
		require.NoError(t, err)

		require.ErrorIs(t, o.AddTripCost(cost), errs.ErrInvalidTransition)
	})

	t.Run("non-positive amount cannot be built", func(t *testing.T) {
		_, err := order.NewTripCost(decimal.Zero, "nothing")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("remove with invalid index fails out of range", func(t *testing.T) {
		o := activeOrder(t)

		require.ErrorIs(t, o.RemoveTripCost(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.RemoveTripCost(-1), errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_Payments(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "", []order.Line{testLine(t, 2, "15.00")})
		require.NoError(t, err)
		return o
	}

	t.Run("payments append and sum by kind", func(t *testing.T) {
		o := newOrder(t)

		cash, err := order.NewPayment(order.PaymentCash, decimal.RequireFromString("10.00"))
		require.NoError(t, err)
		pix, err := order.NewPayment(order.PaymentPix, decimal.RequireFromString("15.00"))
		require.NoError(t, err)
		moreCash, err := order.NewPayment(order.PaymentCash, decimal.RequireFromString("2.50"))
		require.NoError(t, err)

		require.NoError(t, o.AddPayment(cash))
		require.NoError(t, o.AddPayment(pix))
		require.NoError(t, o.AddPayment(moreCash))

		assert.Len(t, o.Payments(), 3)
		assert.True(t, o.PaymentTotal(order.PaymentCash).Equal(decimal.RequireFromString("12.50")))
		assert.True(t, o.PaymentTotal(order.PaymentPix).Equal(decimal.RequireFromString("15.00")))
	})

	t.Run("over-payment is representable", func(t *testing.T) {
		o := newOrder(t)

		p, err := order.NewPayment(order.PaymentCash, decimal.RequireFromString("100.00"))
		require.NoError(t, err)
		require.NoError(t, o.AddPayment(p))
	})

	t.Run("completion does not require payments", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Start())

		require.NoError(t, o.Complete())
		assert.Empty(t, o.Payments())
	})

	t.Run("non-positive amount cannot be built", func(t *testing.T) {
		_, err := order.NewPayment(order.PaymentCash, decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown kind cannot be built", func(t *testing.T) {
		_, err := order.NewPayment(order.PaymentKind("card"), decimal.NewFromInt(10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores aggregate with stored derived amounts", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()
		lines := []order.Line{testLine(t, 2, "15.00")}
		toll, err := order.NewTripCost(decimal.RequireFromString("8.00"), "toll")
		require.NoError(t, err)
		payment, err := order.NewPayment(order.PaymentPix, decimal.RequireFromString("22.00"))
		require.NoError(t, err)

		source, err := order.NewOrder(id, testSnapshot(t), "notes", lines)
		require.NoError(t, err)

		restored, err := order.RestoreOrder(
			id,
			source.Customer(),
			&driverID,
			order.InProgress,
			"notes",
			lines,
			[]order.TripCost{toll},
			[]order.Payment{payment},
			decimal.RequireFromString("30.00"),
			decimal.RequireFromString("22.00"),
			source.CreatedAt(),
			source.UpdatedAt(),
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, order.InProgress, restored.Status())
		assert.True(t, restored.NetAmount().Equal(decimal.RequireFromString("22.00")))
		require.NotNil(t, restored.Driver())
		assert.True(t, restored.Driver().IsEqual(driverID))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		id := kernel.NewUUID()
		lines := []order.Line{testLine(t, 1, "10.00")}

		_, err := order.RestoreOrder(
			id, testSnapshot(t), nil, order.Unknown, "",
			lines, nil, nil,
			decimal.NewFromInt(10), decimal.NewFromInt(10),
			time.Now(), time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
