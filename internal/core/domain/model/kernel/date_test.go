package kernel_test

import (
	"testing"
	"time"

	"entregas/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	t.Run("truncates instant to calendar day in UTC", func(t *testing.T) {
		instant := time.Date(2024, 6, 1, 23, 59, 58, 0, time.UTC)

		d := kernel.DateOf(instant)

		require.NoError(t, d.Validate())
		assert.Equal(t, "2024-06-01", d.String())
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("normalizes non-UTC instants", func(t *testing.T) {
		loc := time.FixedZone("UTC-3", -3*60*60)
		instant := time.Date(2024, 6, 1, 22, 30, 0, 0, loc)

		d := kernel.DateOf(instant)

		assert.Equal(t, "2024-06-02", d.String())
	})
}

func TestDateFromString(t *testing.T) {
	t.Run("parses valid calendar day", func(t *testing.T) {
		d, err := kernel.DateFromString("2024-06-01")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "2024-06-01", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := kernel.DateFromString("01/06/2024")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid")
	})

	t.Run("rejects impossible day", func(t *testing.T) {
		_, err := kernel.DateFromString("2024-02-31")

		require.Error(t, err)
	})
}

func TestDate_IsEqual(t *testing.T) {
	a, _ := kernel.DateFromString("2024-06-01")
	b := kernel.DateOf(time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC))
	c, _ := kernel.DateFromString("2024-06-02")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestDate_Contains(t *testing.T) {
	d, _ := kernel.DateFromString("2024-06-01")

	assert.True(t, d.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.Contains(time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)))
	assert.False(t, d.Contains(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))
}

func TestDate_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var d kernel.Date

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDateIsNotConstructed, err)
	})
}
