package commands_test

import (
	"testing"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/register"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLines(t *testing.T, quantity int, price string) []order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Galao 20L", quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return []order.Line{line}
}

func testSnapshot(t *testing.T) order.CustomerSnapshot {
	t.Helper()
	snapshot, err := order.NewCustomerSnapshot(nil, "Maria Silva", "Rua das Flores 123", "")
	require.NoError(t, err)
	return snapshot
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), testSnapshot(t), "", testLines(t, 2, "15.00"))
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.Assign(kernel.NewUUID()))
	return o
}

func completedOrder(t *testing.T, payments ...order.Payment) *order.Order {
	t.Helper()
	o := assignedOrder(t)
	require.NoError(t, o.Start())
	require.NoError(t, o.Complete())
	for _, p := range payments {
		require.NoError(t, o.AddPayment(p))
	}
	return o
}

func testPayment(t *testing.T, kind order.PaymentKind, amount string) order.Payment {
	t.Helper()
	p, err := order.NewPayment(kind, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return p
}

func testDate(t *testing.T) kernel.Date {
	t.Helper()
	date, err := kernel.DateFromString("2024-06-01")
	require.NoError(t, err)
	return date
}

func openTestRegister(t *testing.T, opening string) *register.Register {
	t.Helper()
	r, err := register.NewRegister(kernel.NewUUID(), testDate(t), decimal.RequireFromString(opening))
	require.NoError(t, err)
	return r
}
