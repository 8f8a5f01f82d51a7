//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, math.MaxUint32, got)
}

func TestUintToInt(t *testing.T) {
	t.Run("max int", func(t *testing.T) {
		got, err := UintToInt(uint(math.MaxInt))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := UintToInt(uint(math.MaxInt) + 1)
		assert.Error(t, err)
	})
}
