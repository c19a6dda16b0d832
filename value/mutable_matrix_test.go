// SPDX-License-Identifier: MIT

package value_test

import (
	"testing"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
	"github.com/katalvlaran/lvunits/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMutable(t *testing.T, data [][]float32, kind storage.Kind) *value.MutableMatrix[length] {
	t.Helper()
	m, err := value.NewMutableMatrix[length](data, kind)
	require.NoError(t, err)

	return m
}

func TestCopyOnWriteAliasing(t *testing.T) {
	for _, kind := range []storage.Kind{storage.KindDense, storage.KindSparse} {
		t.Run(kind.String(), func(t *testing.T) {
			m1 := mustMatrix(t, [][]float32{{1, 2}, {3, 4}}, kind)
			m2 := m1.Mutable()

			require.True(t, m2.Shared())
			require.Same(t, storageOf(m1), storageOf(m2), "no copy before the first write")

			require.NoError(t, m2.SetSI(0, 0, 10))

			v1, _ := m1.GetSI(0, 0)
			v2, _ := m2.GetSI(0, 0)
			assert.Equal(t, float32(1), v1)
			assert.Equal(t, float32(10), v2)
			assert.NotSame(t, storageOf(m1), storageOf(m2))
			assert.False(t, m2.Shared())
		})
	}
}

func TestCopyOnWriteImmutableSnapshot(t *testing.T) {
	w := mustMutable(t, [][]float32{{1, 2}}, storage.KindDense)
	frozen := w.Immutable()
	require.True(t, w.Shared())

	w.MultiplyByScalar(3)
	assert.Equal(t, [][]float32{{1, 2}}, frozen.ValuesSI())
	assert.Equal(t, [][]float32{{3, 6}}, w.ValuesSI())

	// sole holder now: further writes stay in place
	before := storageOf(w)
	w.IncrementByScalar(value.NewScalar[length](1))
	assert.Same(t, before, storageOf(w))
	assert.Equal(t, [][]float32{{4, 7}}, w.ValuesSI())
}

func TestMutableCopyIndependence(t *testing.T) {
	w := mustMutable(t, [][]float32{{1, 2}}, storage.KindSparse)
	c := w.MutableCopy()
	require.False(t, c.Shared())
	require.NotSame(t, storageOf(w), storageOf(c))

	require.NoError(t, c.SetSI(0, 1, 0))
	v, _ := w.GetSI(0, 1)
	assert.Equal(t, float32(2), v)
}

func TestMutableSetSIOutOfRange(t *testing.T) {
	m := mustMatrix(t, [][]float32{{1, 2}}, storage.KindDense)
	w := m.Mutable()

	err := w.SetSI(1, 0, 5)
	require.ErrorIs(t, err, value.ErrOutOfRange)
	assert.True(t, w.Shared(), "a failed write must not detach")
	assert.Equal(t, [][]float32{{1, 2}}, w.ValuesSI())
}

func TestMutableBinaryOps(t *testing.T) {
	w := mustMutable(t, [][]float32{{1, 2}, {3, 4}}, storage.KindDense)
	one := mustMatrix(t, [][]float32{{1, 1}, {1, 1}}, storage.KindSparse)

	require.NoError(t, w.IncrementBy(one))
	assert.Equal(t, [][]float32{{2, 3}, {4, 5}}, w.ValuesSI())

	require.NoError(t, w.DecrementBy(one))
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, w.ValuesSI())

	half, err := value.NewMatrix[quantity.Dimensionless]([][]float32{{2, 2}, {2, 2}}, storage.KindDense)
	require.NoError(t, err)
	require.NoError(t, w.DivideBy(half))
	assert.Equal(t, [][]float32{{0.5, 1}, {1.5, 2}}, w.ValuesSI())
	require.NoError(t, w.MultiplyBy(half))
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, w.ValuesSI())

	// operand is a co-holder of the receiver's own storage
	self := w.Mutable()
	require.NoError(t, w.IncrementBy(self))
	assert.Equal(t, [][]float32{{2, 4}, {6, 8}}, w.ValuesSI())
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, self.ValuesSI())
}

func TestMutableBinaryMismatchLeavesReceiver(t *testing.T) {
	m := mustMatrix(t, [][]float32{{1, 2}}, storage.KindDense)
	w := m.Mutable()
	other := mustMatrix(t, [][]float32{{1, 2, 3}}, storage.KindDense)

	require.ErrorIs(t, w.IncrementBy(other), value.ErrDimensionMismatch)
	require.ErrorIs(t, w.DecrementBy(other), value.ErrDimensionMismatch)
	assert.True(t, w.Shared())
	assert.Equal(t, [][]float32{{1, 2}}, w.ValuesSI())
}

func TestMutableScalarOps(t *testing.T) {
	w := mustMutable(t, [][]float32{{0, 2}}, storage.KindSparse)

	w.IncrementByScalar(value.NewScalar[length](1))
	assert.Equal(t, [][]float32{{1, 3}}, w.ValuesSI())
	w.DecrementByScalar(value.NewScalar[length](1))
	assert.Equal(t, [][]float32{{0, 2}}, w.ValuesSI())
	assert.Equal(t, 1, w.Cardinality())
	w.DivideByScalar(2)
	assert.Equal(t, [][]float32{{0, 1}}, w.ValuesSI())
	assert.True(t, w.IsSparse())
}

func TestMutableUnaryOnSparse(t *testing.T) {
	cases := []struct {
		name string
		do   func(*value.MutableMatrix[length])
		want [][]float32
	}{
		{"Ceil", (*value.MutableMatrix[length]).Ceil, [][]float32{{0, 1}, {-1, 3}}},
		{"Floor", (*value.MutableMatrix[length]).Floor, [][]float32{{0, 0}, {-2, 2}}},
		{"Round", (*value.MutableMatrix[length]).Round, [][]float32{{0, 0}, {-2, 2}}},
		{"Abs", (*value.MutableMatrix[length]).Abs, [][]float32{{0, 0.25}, {1.5, 2.5}}},
		{"Neg", (*value.MutableMatrix[length]).Neg, [][]float32{{0, -0.25}, {1.5, -2.5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := mustMatrix(t, [][]float32{{0, 0.25}, {-1.5, 2.5}}, storage.KindSparse)
			w := src.Mutable()
			tc.do(w)

			assert.Equal(t, tc.want, w.ValuesSI())
			assert.True(t, w.IsSparse())
			assert.Equal(t, [][]float32{{0, 0.25}, {-1.5, 2.5}}, src.ValuesSI())
		})
	}
}

func TestMutableAssignCreatesSparseEntries(t *testing.T) {
	w := mustMutable(t, [][]float32{{0, 0}}, storage.KindSparse)
	require.Zero(t, w.Cardinality())

	w.Assign(func(v float32) float32 { return v + 1 })
	assert.Equal(t, 2, w.Cardinality())
	assert.Equal(t, [][]float32{{1, 1}}, w.ValuesSI())
}

func TestMutableNormalize(t *testing.T) {
	w := mustMutable(t, [][]float32{{1, 3}}, storage.KindDense)
	require.NoError(t, w.Normalize())
	assert.Equal(t, [][]float32{{0.25, 0.75}}, w.ValuesSI())
}

func TestMutableNormalizeDegenerate(t *testing.T) {
	for _, kind := range []storage.Kind{storage.KindDense, storage.KindSparse} {
		t.Run(kind.String(), func(t *testing.T) {
			m := mustMatrix(t, [][]float32{{1, -1}, {0, 0}}, kind)
			w := m.Mutable()

			err := w.Normalize()
			require.ErrorIs(t, err, value.ErrDegenerate)
			assert.Equal(t, [][]float32{{1, -1}, {0, 0}}, w.ValuesSI())
			assert.True(t, w.Shared())
		})
	}
}

func TestMutableConversions(t *testing.T) {
	w := mustMutable(t, [][]float32{{0, 1}}, storage.KindDense)

	same := w.ToDense()
	assert.True(t, same.Shared())
	assert.Same(t, storageOf(w), storageOf(same))

	sp := w.ToSparse()
	assert.True(t, sp.IsSparse())
	assert.False(t, sp.Shared())
	assert.True(t, sp.Equal(w))

	require.NoError(t, sp.SetSI(0, 0, 5))
	v, _ := w.GetSI(0, 0)
	assert.Zero(t, v)
}

func TestMutableString(t *testing.T) {
	w := mustMutable(t, [][]float32{{1, 0}}, storage.KindSparse)
	assert.Equal(t, "MutableMatrix[Length] 1x2 sparse (m)\n[1, 0]\n", w.String())
}
