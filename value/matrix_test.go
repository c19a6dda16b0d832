// SPDX-License-Identifier: MIT

package value_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
	"github.com/katalvlaran/lvunits/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type length = quantity.Length

func mustMatrix(t *testing.T, data [][]float32, kind storage.Kind) *value.Matrix[length] {
	t.Helper()
	m, err := value.NewMatrix[length](data, kind)
	require.NoError(t, err)

	return m
}

func storageOf(m value.MatrixOperand[length]) storage.Storage {
	return value.MatrixStorage_TestOnly[length](m)
}

func TestNewMatrixKinds(t *testing.T) {
	data := [][]float32{{1, 0}, {0, 2}}
	for _, kind := range []storage.Kind{storage.KindDense, storage.KindSparse} {
		t.Run(kind.String(), func(t *testing.T) {
			m := mustMatrix(t, data, kind)
			assert.Equal(t, 2, m.Rows())
			assert.Equal(t, 2, m.Cols())
			assert.Equal(t, kind == storage.KindSparse, m.IsSparse())
			assert.Equal(t, data, m.ValuesSI())
			assert.Equal(t, 2, m.Cardinality())
			assert.Equal(t, float32(3), m.ZSum())
		})
	}
}

func TestNewMatrixErrors(t *testing.T) {
	_, err := value.NewMatrix[length]([][]float32{{1, 2}, {3}}, storage.KindDense)
	require.ErrorIs(t, err, value.ErrDimension)

	_, err = value.NewMatrix[length](nil, storage.KindSparse)
	require.ErrorIs(t, err, value.ErrEmptyInput)

	_, err = value.NewMatrixFlat[length]([]float32{1, 2, 3}, 2, 2, storage.KindDense)
	require.ErrorIs(t, err, value.ErrDimension)
}

func TestNewMatrixCopiesInput(t *testing.T) {
	data := [][]float32{{1, 2}}
	m := mustMatrix(t, data, storage.KindDense)
	data[0][0] = 99

	v, err := m.GetSI(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), v)
}

func TestNewSparseMatrixCopiesArrays(t *testing.T) {
	values := []float32{5}
	indices := []int64{1}
	m := value.NewSparseMatrix[length](values, indices, 2, 1)
	values[0] = 0

	v, err := m.GetSI(1, 0)
	require.NoError(t, err)
	require.Equal(t, float32(5), v)
}

func TestMatrixGetSIBounds(t *testing.T) {
	m := mustMatrix(t, [][]float32{{1, 2}, {3, 4}}, storage.KindDense)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.GetSI(rc[0], rc[1])
		require.ErrorIs(t, err, value.ErrOutOfRange, "at %v", rc)
	}
	_, err := m.RowSI(2)
	require.ErrorIs(t, err, value.ErrOutOfRange)
	_, err = m.ColumnSI(-1)
	require.ErrorIs(t, err, value.ErrOutOfRange)
}

func TestMatrixRowsColumnsDiagonal(t *testing.T) {
	m := mustMatrix(t, [][]float32{{1, 2}, {3, 4}}, storage.KindSparse)

	row, err := m.RowSI(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4}, row)

	col, err := m.ColumnSI(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3}, col)

	diag, err := m.DiagonalSI()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 4}, diag)

	det, err := m.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, 1e-9)

	wide := mustMatrix(t, [][]float32{{1, 2, 3}}, storage.KindDense)
	_, err = wide.DiagonalSI()
	require.ErrorIs(t, err, value.ErrNonSquare)
	_, err = wide.Determinant()
	require.ErrorIs(t, err, value.ErrNonSquare)
}

func TestMatrixConversionIdempotent(t *testing.T) {
	d := mustMatrix(t, [][]float32{{0, 1}, {2, 0}}, storage.KindDense)
	require.Same(t, d, d.ToDense())

	s := d.ToSparse()
	require.True(t, s.IsSparse())
	require.Same(t, s, s.ToSparse())
	require.True(t, d.Equal(s))
	require.True(t, s.ToDense().Equal(d))
}

func TestMatrixPlusMinus(t *testing.T) {
	a := mustMatrix(t, [][]float32{{1, 2}, {3, 4}}, storage.KindDense)
	b := mustMatrix(t, [][]float32{{1, 0}, {0, 1}}, storage.KindSparse)

	sum, err := a.Plus(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 2}, {3, 5}}, sum.ValuesSI())
	assert.True(t, sum.IsDense())

	diff, err := b.Minus(b)
	require.NoError(t, err)
	assert.True(t, diff.IsSparse())
	assert.Zero(t, diff.Cardinality())

	// operands are untouched
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, a.ValuesSI())
	assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, b.ValuesSI())
}

func TestMatrixPlusShapeMismatch(t *testing.T) {
	a := mustMatrix(t, [][]float32{{1, 2}}, storage.KindDense)
	b := mustMatrix(t, [][]float32{{1}, {2}}, storage.KindDense)

	_, err := a.Plus(b)
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
	_, err = a.Minus(b)
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
}

func TestMatrixTimesDivideByDimensionless(t *testing.T) {
	a := mustMatrix(t, [][]float32{{2, 4}}, storage.KindDense)
	k, err := value.NewMatrix[quantity.Dimensionless]([][]float32{{0.5, 0}}, storage.KindDense)
	require.NoError(t, err)

	p, err := a.Times(k)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}}, p.ValuesSI())

	q, err := a.DivideBy(k)
	require.NoError(t, err)
	v, _ := q.GetSI(0, 0)
	assert.Equal(t, float32(4), v)
	v, _ = q.GetSI(0, 1)
	assert.True(t, math.IsInf(float64(v), 1), "expected +Inf, got %v", v)
}

func TestMatrixUnaryTransforms(t *testing.T) {
	a := mustMatrix(t, [][]float32{{-1, 0}, {2, -3}}, storage.KindSparse)

	assert.Equal(t, [][]float32{{1, 0}, {-2, 3}}, a.Neg().ValuesSI())
	assert.Equal(t, [][]float32{{1, 0}, {2, 3}}, a.Abs().ValuesSI())
	assert.Equal(t, [][]float32{{-2, 0}, {4, -6}}, a.Scale(2).ValuesSI())
	assert.True(t, a.Neg().IsSparse())
	assert.Equal(t, [][]float32{{-1, 0}, {2, -3}}, a.ValuesSI())
}

func TestMatrixFromStorageDeepCopies(t *testing.T) {
	d, err := storage.NewDense2D([][]float32{{1, 2}})
	require.NoError(t, err)
	m := value.MatrixFromStorage[length](d)
	d.Set(0, 0, 9)

	v, _ := m.GetSI(0, 0)
	require.Equal(t, float32(1), v)
}

func TestMatrixEqualIgnoresExplicitZeros(t *testing.T) {
	a := value.NewSparseMatrix[length]([]float32{0, 2}, []int64{0, 1}, 1, 2)
	b := value.NewSparseMatrix[length]([]float32{2}, []int64{1}, 1, 2)
	require.True(t, a.Equal(b))

	c := mustMatrix(t, [][]float32{{0, 2, 0}}, storage.KindDense)
	require.False(t, a.Equal(c))
}

func TestMatrixString(t *testing.T) {
	m := mustMatrix(t, [][]float32{{1, 2}}, storage.KindDense)
	require.Equal(t, "Matrix[Length] 1x2 dense (m)\n[1, 2]\n", m.String())
}

func TestConstructorsRejectUnknownKind(t *testing.T) {
	data := [][]float32{{1, 2}}
	for _, kind := range []storage.Kind{0, 7} {
		_, err := value.NewMatrix[length](data, kind)
		assert.ErrorIs(t, err, value.ErrDimension, "NewMatrix kind %d", kind)

		_, err = value.NewMatrixFlat[length]([]float32{1, 2}, 1, 2, kind)
		assert.ErrorIs(t, err, value.ErrDimension, "NewMatrixFlat kind %d", kind)

		_, err = value.NewMutableMatrix[length](data, kind)
		assert.ErrorIs(t, err, value.ErrDimension, "NewMutableMatrix kind %d", kind)

		_, err = value.NewVector[length]([]float32{1, 2}, kind)
		assert.ErrorIs(t, err, value.ErrDimension, "NewVector kind %d", kind)

		_, err = value.NewMutableVector[length]([]float32{1, 2}, kind)
		assert.ErrorIs(t, err, value.ErrDimension, "NewMutableVector kind %d", kind)
	}
}

func TestIndexErrorsNameTheWrapper(t *testing.T) {
	m := mustMatrix(t, [][]float32{{1, 2}}, storage.KindDense)
	w := m.Mutable()

	_, err := m.GetSI(5, 0)
	require.ErrorIs(t, err, value.ErrOutOfRange)
	assert.True(t, strings.HasPrefix(err.Error(), "Matrix.GetSI(5,0)"), err.Error())

	_, err = w.GetSI(5, 0)
	require.ErrorIs(t, err, value.ErrOutOfRange)
	assert.True(t, strings.HasPrefix(err.Error(), "MutableMatrix.GetSI(5,0)"), err.Error())

	_, err = w.RowSI(3)
	assert.True(t, strings.HasPrefix(err.Error(), "MutableMatrix.RowSI(3)"), err.Error())

	_, err = w.DiagonalSI()
	require.ErrorIs(t, err, value.ErrNonSquare)
	assert.True(t, strings.HasPrefix(err.Error(), "MutableMatrix.DiagonalSI"), err.Error())

	v, err := value.NewVector[length]([]float32{1}, storage.KindDense)
	require.NoError(t, err)
	_, err = v.GetSI(2)
	assert.True(t, strings.HasPrefix(err.Error(), "Vector.GetSI(2)"), err.Error())
	_, err = v.Mutable().GetSI(2)
	assert.True(t, strings.HasPrefix(err.Error(), "MutableVector.GetSI(2)"), err.Error())
}
