// SPDX-License-Identifier: MIT

// Package storage - the shared Storage contract, kinds and cell functions.
//
// Purpose:
//   - One interface over the two representations (Dense, Sparse) so value
//     wrappers never branch on the concrete type except for conversions.
//   - Kernels pattern-match on the operand pair (type switch) and dispatch to
//     the algorithm of the receiver kind.
//
// Complexity quicksheet:
//   - Dense At/Set O(1); Sparse At O(log nnz), Set O(nnz) on insertion.
//   - Element-wise ops O(r*c) for both kinds (sparse recompacts on every op).
package storage

import (
	"fmt"
	"math"
	"strings"
)

// Kind tags the representation of a storage.
type Kind uint8

const (
	// KindDense is a flat row-major array of r*c cells.
	KindDense Kind = iota + 1
	// KindSparse is a pair of parallel arrays of non-zero values and their
	// ascending linear indices.
	KindSparse
)

// String returns "dense", "sparse" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// CellFunc maps one cell value to a new value.
type CellFunc func(v float32) float32

// Preset cell functions used by the value layer.
var (
	Ceil  CellFunc = func(v float32) float32 { return float32(math.Ceil(float64(v))) }
	Floor CellFunc = func(v float32) float32 { return float32(math.Floor(float64(v))) }
	// Round rounds half to even ("rint").
	Round CellFunc = func(v float32) float32 { return float32(math.RoundToEven(float64(v))) }
	Abs   CellFunc = func(v float32) float32 { return float32(math.Abs(float64(v))) }
	Neg   CellFunc = func(v float32) float32 { return -v }
)

// Storage is a fixed-shape grid of float32 SI values.
//
// At and Set are unchecked: callers validate 0 ≤ row < Rows() and
// 0 ≤ col < Cols(). Out-of-range access panics through the slice index.
// The binary operations return ErrDimensionMismatch when shapes differ and
// leave the receiver untouched in that case.
type Storage interface {
	Rows() int
	Cols() int
	At(row, col int) float32
	Set(row, col int, v float32)

	Kind() Kind
	IsDense() bool
	IsSparse() bool
	ToDense() *Dense
	ToSparse() *Sparse
	Copy() Storage
	Options() Options

	// Cardinality counts cells whose value is not zero.
	Cardinality() int
	// ZSum is the sum of every cell.
	ZSum() float32

	IncrementBy(other Storage) error
	DecrementBy(other Storage) error
	MultiplyBy(other Storage) error
	DivideBy(other Storage) error

	IncrementByScalar(k float32)
	DecrementByScalar(k float32)
	MultiplyByScalar(k float32)
	DivideByScalar(k float32)

	Apply(f CellFunc)
	Equal(other Storage) bool
}

// Compile-time assertions.
var (
	_ Storage = (*Dense)(nil)
	_ Storage = (*Sparse)(nil)
)

// ---------- element-wise operator vocabulary ----------

// binOp combines a receiver cell with an operand cell.
type binOp func(a, b float32) float32

const (
	opIncrement = "IncrementBy"
	opDecrement = "DecrementBy"
	opMultiply  = "MultiplyBy"
	opDivide    = "DivideBy"
)

func opAdd(a, b float32) float32 { return a + b }
func opSub(a, b float32) float32 { return a - b }
func opMul(a, b float32) float32 { return a * b }

// opDiv follows IEEE-754: x/0 is ±Inf, 0/0 is NaN.
func opDiv(a, b float32) float32 { return a / b }

// SameShape returns ErrDimensionMismatch when a and b differ in rows or cols.
func SameShape(a, b Storage) error {
	if a.Rows() != b.Rows() {
		return storageErrorf("SameShape: rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return storageErrorf("SameShape: cols", ErrDimensionMismatch)
	}

	return nil
}

// validShape reports rows ≥ 0, cols ≥ 0 and rows*cols representable as int.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// ---------- formatting ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// formatRows renders any storage row by row with %g cells.
func formatRows(s Storage) string {
	var b strings.Builder
	r, c := s.Rows(), s.Cols()
	for i := 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			b.WriteString(fmt.Sprintf("%g", s.At(i, j)))
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// flatten2D validates a rectangular array and returns it flattened row-major.
// Returns ErrDimension on nil, empty or jagged input.
func flatten2D(data [][]float32) ([]float32, int, int, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, 0, 0, ErrDimension
	}
	rows, cols := len(data), len(data[0])
	flat := make([]float32, 0, rows*cols)
	for _, row := range data {
		if len(row) != cols {
			return nil, 0, 0, ErrDimension
		}
		flat = append(flat, row...)
	}

	return flat, rows, cols, nil
}
