package bitvec

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryBitAccess(t *testing.T) {
	v := New(100)

	require.NoError(t, v.TrySetBit(99))
	got, err := v.TryBit(99)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got)

	require.NoError(t, v.TryUnsetBit(99))
	got, err = v.TryBit(99)
	require.NoError(t, err)
	assert.Equal(t, uint(0), got)
}

func TestTryBitOutOfRange(t *testing.T) {
	v := New(100)

	for _, pos := range []int{-1, 100, 127, 1000} {
		_, err := v.TryBit(pos)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "TryBit(%d)", pos)
		assert.ErrorIs(t, v.TrySetBit(pos), ErrIndexOutOfRange, "TrySetBit(%d)", pos)
		assert.ErrorIs(t, v.TryUnsetBit(pos), ErrIndexOutOfRange, "TryUnsetBit(%d)", pos)
	}

	// The don't-care region (100..127) must stay untouched.
	assert.Zero(t, v.Word(1))
}

func TestTryBinaryOps(t *testing.T) {
	ops := map[string]func(v, o *BitVector) error{
		"and": (*BitVector).TryAnd,
		"or":  (*BitVector).TryOr,
		"xor": (*BitVector).TryXor,
		"add": (*BitVector).TryAdd,
		"sub": (*BitVector).TrySub,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			t.Run("same width", func(t *testing.T) {
				v := withBits(100, set1)
				require.NoError(t, op(v, withBits(100, set2)))
			})

			t.Run("width mismatch", func(t *testing.T) {
				v := withBits(100, set1)
				before := v.String()

				err := op(v, New(200))

				var wm *ErrWidthMismatch
				require.True(t, errors.As(err, &wm))
				assert.Equal(t, 2, wm.Expected)
				assert.Equal(t, 4, wm.Actual)
				assert.Equal(t, before, v.String())
			})

			t.Run("same word count different size", func(t *testing.T) {
				v := New(100)
				assert.NoError(t, op(v, New(120)))
			})

			t.Run("nil operand", func(t *testing.T) {
				v := New(100)

				err := op(v, nil)

				var wm *ErrWidthMismatch
				require.True(t, errors.As(err, &wm))
				assert.ErrorIs(t, err, errNilOperand)
			})
		})
	}
}

func TestTryAddResult(t *testing.T) {
	a := FromUint64(100, 9758613597)
	require.NoError(t, a.TryAdd(FromUint64(100, 4799104567)))
	assert.Equal(t, uint64(14557718164), a.Word(0))
}

func TestRejectedOperationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := New(100, WithLogger(logger))
	require.Error(t, v.TrySetBit(500))

	out := buf.String()
	assert.Contains(t, out, `"msg":"operation rejected"`)
	assert.Contains(t, out, `"op":"set_bit"`)
	assert.Contains(t, out, `"width":100`)
}

func TestAcceptedOperationsAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v := New(100, WithLogger(logger))
	require.NoError(t, v.TrySetBit(5))

	assert.Empty(t, buf.String())
}

func TestWithLoggerNil(t *testing.T) {
	v := New(10, WithLogger(nil))
	assert.ErrorIs(t, v.TrySetBit(10), ErrIndexOutOfRange)
}

func TestErrWidthMismatchMessage(t *testing.T) {
	err := &ErrWidthMismatch{Expected: 2, Actual: 4}
	assert.Equal(t, "width mismatch: expected 2 words, got 4", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
