package kernel_test

import (
	"errors"
	"testing"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("mints a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("consecutive ids differ", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		raw := "9b2f8a44-0d3c-4f6e-9a11-7c25b0a4d2e1"

		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, raw, id.String())
	})

	t.Run("parse then render is stable regardless of input case", func(t *testing.T) {
		id, err := kernel.UUIDFromString("9B2F8A44-0D3C-4F6E-9A11-7C25B0A4D2E1")

		require.NoError(t, err)
		assert.Equal(t, "9b2f8a44-0d3c-4f6e-9a11-7c25b0a4d2e1", id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"not-an-id",
			"9b2f8a44-0d3c-4f6e-9a11",
			"9b2f8a44-0d3c-4f6e-9a11-7c25b0a4d2e1ff",
			"zb2f8a44-0d3c-4f6e-9a11-7c25b0a4d2e1",
		} {
			_, err := kernel.UUIDFromString(raw)

			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through the stored byte form", func(t *testing.T) {
		original := kernel.NewUUID()
		stored := original.Bytes()

		restored, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
		assert.Equal(t, original.String(), restored.String())
	})

	t.Run("rejects slices that are not 16 bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x9b, 0x2f, 0x8a})

		assert.Error(t, err)
	})

	t.Run("rejects the nil identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same value compares equal across construction paths", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)

		assert.True(t, id.IsEqual(parsed))
		assert.True(t, parsed.IsEqual(id))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var a, b kernel.UUID

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails with the required sentinel", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("constructed value passes", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})
}
