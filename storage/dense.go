// SPDX-License-Identifier: MIT

// Package storage - Dense storage (row-major).
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula
//     row*cols + col.
//   - Keep the hot accessors unchecked; bounds are the wrapper layer's contract.
//   - Convert to the sparse representation with a single ordered scan.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At/Set: O(1); Copy: O(r*c); ToSparse: O(r*c).

package storage

import "slices"

const (
	ctxNewDense   = "NewDense"
	ctxNewDense2D = "NewDense2D"
	ctxZeros      = "NewDenseZeros"
)

// Dense is a concrete row-major storage.
//   - r,c hold dimensions (rows, cols), fixed for the lifetime of the value.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - opts is the kernel policy carried through copies and conversions.
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float32 // contiguous row-major storage (len == r*c)
	opts Options   // kernel scheduling policy
}

// NewDense builds an r×c Dense from a row-major flat slice.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; the slice is copied so
//     the caller keeps ownership of its array.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0, cols ≥ 0, no int overflow of rows*cols,
//     and rows*cols == len(flat).
//   - Stage 2: copy into a fresh buffer and resolve options.
//
// Errors:
//   - ErrDimension (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(flat []float32, rows, cols int, opts ...Option) (*Dense, error) {
	if !validShape(rows, cols) || rows*cols != len(flat) {
		return nil, denseErrorf(ctxNewDense, ErrDimension)
	}

	return newDenseOwned(slices.Clone(flat), rows, cols, gatherOptions(opts...)), nil
}

// NewDense2D builds a Dense from a rectangular 2D array.
// Returns ErrDimension when data is nil, empty, or jagged.
// Complexity: O(r*c).
func NewDense2D(data [][]float32, opts ...Option) (*Dense, error) {
	flat, rows, cols, err := flatten2D(data)
	if err != nil {
		return nil, denseErrorf(ctxNewDense2D, err)
	}

	return newDenseOwned(flat, rows, cols, gatherOptions(opts...)), nil
}

// NewDenseZeros allocates a zero-filled r×c Dense. Zero-area shapes are legal.
// Returns ErrDimension on negative dimensions or when rows*cols overflows int.
func NewDenseZeros(rows, cols int, opts ...Option) (*Dense, error) {
	if !validShape(rows, cols) {
		return nil, denseErrorf(ctxZeros, ErrDimension)
	}

	return newDenseOwned(make([]float32, rows*cols), rows, cols, gatherOptions(opts...)), nil
}

// newDenseOwned adopts data without copying. Callers guarantee len == r*c.
func newDenseOwned(data []float32, r, c int, o Options) *Dense {
	if data == nil {
		data = []float32{}
	}

	return &Dense{r: r, c: c, data: data, opts: o}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports KindDense.
func (m *Dense) Kind() Kind { return KindDense }

// IsDense is always true.
func (m *Dense) IsDense() bool { return true }

// IsSparse is always false.
func (m *Dense) IsSparse() bool { return false }

// Options returns the kernel policy of the storage.
func (m *Dense) Options() Options { return m.opts }

// At returns the cell at (row, col). Unchecked.
func (m *Dense) At(row, col int) float32 { return m.data[row*m.c+col] }

// Set writes v at (row, col) in place. Unchecked.
func (m *Dense) Set(row, col int, v float32) { m.data[row*m.c+col] = v }

// Clone returns a deep copy with the same policy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	return newDenseOwned(slices.Clone(m.data), m.r, m.c, m.opts)
}

// Copy returns a deep copy as a Storage.
func (m *Dense) Copy() Storage { return m.Clone() }

// ToDense returns an equal-valued deep copy; the receiver is already dense.
func (m *Dense) ToDense() *Dense { return m.Clone() }

// ToSparse converts to the sparse representation.
// MAIN DESCRIPTION:
//   - Emit one (index, value) pair per non-zero cell in row-major order, so
//     the index array is strictly ascending by construction.
//
// Implementation:
//   - Stage 1: count non-zero cells.
//   - Stage 2: allocate exactly nnz slots and fill them in order.
//
// Complexity:
//   - Time O(r*c), Space O(nnz).
func (m *Dense) ToSparse() *Sparse {
	return sparseFromFlat(m.data, m.r, m.c, m.opts)
}

// Values returns a copy of the row-major buffer.
func (m *Dense) Values() []float32 { return slices.Clone(m.data) }

// Values2D returns a fresh [rows][cols] copy.
func (m *Dense) Values2D() [][]float32 {
	out := make([][]float32, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = slices.Clone(m.data[i*m.c : (i+1)*m.c])
	}

	return out
}

// Cardinality counts non-zero cells with a full scan.
func (m *Dense) Cardinality() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// ZSum returns the sum of all cells, accumulated in float64.
func (m *Dense) ZSum() float32 {
	var sum float64
	for _, v := range m.data {
		sum += float64(v)
	}

	return float32(sum)
}

// Equal reports cell-wise equality with any storage of the same shape.
func (m *Dense) Equal(other Storage) bool {
	if other == nil || SameShape(m, other) != nil {
		return false
	}
	if d, ok := other.(*Dense); ok {
		return slices.Equal(m.data, d.data)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.data[i*m.c+j] != other.At(i, j) {
				return false
			}
		}
	}

	return true
}

// String renders rows as "[a, b]\n" lines.
func (m *Dense) String() string { return formatRows(m) }
