package register_test

import (
	"testing"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/register"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T) kernel.Date {
	t.Helper()
	date, err := kernel.DateFromString("2024-06-01")
	require.NoError(t, err)
	return date
}

func openRegister(t *testing.T, opening string) *register.Register {
	t.Helper()
	r, err := register.NewRegister(kernel.NewUUID(), testDate(t), decimal.RequireFromString(opening))
	require.NoError(t, err)
	return r
}

func movement(t *testing.T, amount, reason string) register.Movement {
	t.Helper()
	m, err := register.NewMovement(decimal.RequireFromString(amount), reason)
	require.NoError(t, err)
	return m
}

func TestNewRegister(t *testing.T) {
	t.Run("opens with zeroed totals", func(t *testing.T) {
		r := openRegister(t, "100.00")

		require.NoError(t, r.Validate())
		assert.Equal(t, register.Open, r.Status())
		assert.True(t, r.OpeningBalance().Equal(decimal.RequireFromString("100.00")))
		assert.True(t, r.TotalCash().IsZero())
		assert.True(t, r.TotalPix().IsZero())
		assert.True(t, r.ClosingBalance().IsZero())
		assert.Empty(t, r.Deposits())
		assert.Empty(t, r.Withdrawals())
	})

	t.Run("zero opening balance is allowed", func(t *testing.T) {
		_, err := register.NewRegister(kernel.NewUUID(), testDate(t), decimal.Zero)

		require.NoError(t, err)
	})

	t.Run("negative opening balance fails", func(t *testing.T) {
		_, err := register.NewRegister(kernel.NewUUID(), testDate(t), decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid date fails", func(t *testing.T) {
		_, err := register.NewRegister(kernel.NewUUID(), kernel.Date{}, decimal.Zero)

		require.Error(t, err)
	})
}

func TestRegister_Movements(t *testing.T) {
	t.Run("deposits and withdrawals append in order", func(t *testing.T) {
		r := openRegister(t, "100.00")

		require.NoError(t, r.Deposit(movement(t, "50.00", "change fund")))
		require.NoError(t, r.Deposit(movement(t, "10.00", "owner top-up")))
		require.NoError(t, r.Withdraw(movement(t, "20.00", "supplier")))

		deposits := r.Deposits()
		require.Len(t, deposits, 2)
		assert.Equal(t, "change fund", deposits[0].Reason())
		assert.Equal(t, "owner top-up", deposits[1].Reason())
		require.Len(t, r.Withdrawals(), 1)
	})

	t.Run("withdrawal may exceed drawer contents", func(t *testing.T) {
		r := openRegister(t, "10.00")

		require.NoError(t, r.Withdraw(movement(t, "500.00", "emergency")))
	})

	t.Run("non-positive movement cannot be built", func(t *testing.T) {
		_, err := register.NewMovement(decimal.Zero, "nothing")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("closed register rejects movements", func(t *testing.T) {
		r := openRegister(t, "100.00")
		require.NoError(t, r.Close(""))

		require.ErrorIs(t, r.Deposit(movement(t, "5.00", "late")), errs.ErrInvalidTransition)
		require.ErrorIs(t, r.Withdraw(movement(t, "5.00", "late")), errs.ErrInvalidTransition)
	})
}

func TestRegister_SetSettlementTotals(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		r := openRegister(t, "100.00")

		require.NoError(t, r.SetSettlementTotals(decimal.RequireFromString("120.00"), decimal.RequireFromString("30.00")))
		require.NoError(t, r.SetSettlementTotals(decimal.RequireFromString("200.00"), decimal.RequireFromString("75.00")))

		assert.True(t, r.TotalCash().Equal(decimal.RequireFromString("200.00")))
		assert.True(t, r.TotalPix().Equal(decimal.RequireFromString("75.00")))
	})

	t.Run("negative totals fail", func(t *testing.T) {
		r := openRegister(t, "100.00")

		err := r.SetSettlementTotals(decimal.NewFromInt(-1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("closed register rejects updates", func(t *testing.T) {
		r := openRegister(t, "100.00")
		require.NoError(t, r.Close(""))

		err := r.SetSettlementTotals(decimal.NewFromInt(1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRegister_Close(t *testing.T) {
	t.Run("computes and freezes the closing balance", func(t *testing.T) {
		r := openRegister(t, "100.00")
		require.NoError(t, r.Deposit(movement(t, "50.00", "change fund")))
		require.NoError(t, r.Withdraw(movement(t, "20.00", "supplier")))
		require.NoError(t, r.SetSettlementTotals(decimal.RequireFromString("200.00"), decimal.RequireFromString("75.00")))

		require.NoError(t, r.Close("all reconciled"))

		assert.Equal(t, register.Closed, r.Status())
		assert.True(t, r.ClosingBalance().Equal(decimal.RequireFromString("405.00")))
		assert.Equal(t, "all reconciled", r.Notes())
	})

	t.Run("pix total counts toward the closing balance", func(t *testing.T) {
		r := openRegister(t, "0.00")
		require.NoError(t, r.SetSettlementTotals(decimal.Zero, decimal.RequireFromString("75.00")))

		require.NoError(t, r.Close(""))

		assert.True(t, r.ClosingBalance().Equal(decimal.RequireFromString("75.00")))
	})

	t.Run("close twice fails", func(t *testing.T) {
		r := openRegister(t, "100.00")
		require.NoError(t, r.Close(""))

		require.ErrorIs(t, r.Close(""), errs.ErrInvalidTransition)
	})
}

func TestRestoreRegister(t *testing.T) {
	t.Run("restores a closed register with its frozen balance", func(t *testing.T) {
		id := kernel.NewUUID()
		deposit, err := register.RestoreMovement(decimal.RequireFromString("50.00"), "change fund", time.Now())
		require.NoError(t, err)

		restored, err := register.RestoreRegister(
			id,
			testDate(t),
			register.Closed,
			decimal.RequireFromString("100.00"),
			decimal.RequireFromString("200.00"),
			decimal.RequireFromString("75.00"),
			[]register.Movement{deposit},
			nil,
			decimal.RequireFromString("425.00"),
			"done",
			time.Now(),
			time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, register.Closed, restored.Status())
		assert.True(t, restored.ClosingBalance().Equal(decimal.RequireFromString("425.00")))
		assert.Len(t, restored.Deposits(), 1)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := register.RestoreRegister(
			kernel.NewUUID(), testDate(t), register.Unknown,
			decimal.Zero, decimal.Zero, decimal.Zero,
			nil, nil, decimal.Zero, "",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("zero value register is invalid", func(t *testing.T) {
		var r register.Register

		require.ErrorIs(t, r.Validate(), register.ErrRegisterIsNotConstructed)
	})
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []register.Status{register.Open, register.Closed} {
		parsed, err := register.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := register.StatusFromString("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
