package cost_test

import (
	"testing"

	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/kernel"
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

func TestNewCost(t *testing.T) {
	t.Run("creates a dated expense", func(t *testing.T) {
		c, err := cost.NewCost(
			kernel.NewUUID(),
			testDate(t),
			"abastecimento caminhao",
			decimal.RequireFromString("250.00"),
			cost.CategoryDiesel,
			"posto da esquina",
		)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, cost.CategoryDiesel, c.Category())
		assert.True(t, c.Amount().Equal(decimal.RequireFromString("250.00")))
		assert.Equal(t, "posto da esquina", c.Notes())
	})

	t.Run("description is required", func(t *testing.T) {
		_, err := cost.NewCost(kernel.NewUUID(), testDate(t), "", decimal.NewFromInt(10), cost.CategoryOutros, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive amount fails", func(t *testing.T) {
		_, err := cost.NewCost(kernel.NewUUID(), testDate(t), "almoco", decimal.Zero, cost.CategoryAlimentacao, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("notes are optional", func(t *testing.T) {
		_, err := cost.NewCost(kernel.NewUUID(), testDate(t), "almoco", decimal.NewFromInt(25), cost.CategoryAlimentacao, "")

		require.NoError(t, err)
	})
}

func TestCategory(t *testing.T) {
	t.Run("closed set round-trips", func(t *testing.T) {
		for _, c := range cost.Categories() {
			parsed, err := cost.CategoryFromString(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("rejects anything outside the set", func(t *testing.T) {
		for _, raw := range []string{"", "diesel", "Gasolina", "OUTROS"} {
			_, err := cost.CategoryFromString(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestCost_Validate(t *testing.T) {
	var c cost.Cost

	require.ErrorIs(t, c.Validate(), cost.ErrCostIsNotConstructed)
}
