// SPDX-License-Identifier: MIT

// Package storage - Sparse storage (sorted linear indices + parallel values).
//
// Purpose:
//   - Represent mostly-zero grids by their non-zero cells only.
//   - Keep indices strictly ascending so At can binary-search them.
//
// Behavior highlights:
//   - Set on a present index overwrites in place, even with 0: the entry stays
//     as an explicit zero until the next arithmetic op or Compact.
//   - Set on an absent index with v != 0 inserts and shifts the tail right.
//   - Arithmetic always recompacts: no stored zero survives an op.
//
// Complexity quicksheet:
//   - At O(log nnz); Set O(nnz) on insert; ToDense O(r*c); ops O(r*c).

package storage

import "slices"

const (
	ctxNewSparseFromDense = "NewSparseFromDense"
	ctxNewSparse2D        = "NewSparse2D"
)

// Sparse is a concrete compressed storage.
//   - values[k] is the cell at linear index indices[k] = row*c + col.
//   - length is the declared dense-equivalent length (r*c).
type Sparse struct {
	r, c    int
	length  int
	values  []float32
	indices []int64
	opts    Options
}

// NewSparse adopts prebuilt parallel arrays.
// MAIN DESCRIPTION:
//   - Trusted constructor: indices must already be strictly ascending with
//     values[k] paired to indices[k]. Nothing is validated or copied.
//
// Inputs:
//   - values, indices: parallel arrays of equal length.
//   - length: declared dense length (rows*cols).
//   - rows, cols: logical shape.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Violating the ordering contract breaks At's binary search silently.
func NewSparse(values []float32, indices []int64, length, rows, cols int, opts ...Option) *Sparse {
	return &Sparse{
		r:       rows,
		c:       cols,
		length:  length,
		values:  values,
		indices: indices,
		opts:    gatherOptions(opts...),
	}
}

// NewSparseFromDense extracts the non-zero cells of a row-major flat slice.
// MAIN DESCRIPTION:
//   - Count non-zero cells, allocate exactly that many slots, fill in
//     ascending index order.
//
// Errors:
//   - ErrEmptyInput when flat is nil or empty.
//   - ErrDimension when rows*cols overflows int or != len(flat).
//
// Complexity:
//   - Time O(r*c), Space O(nnz).
func NewSparseFromDense(flat []float32, rows, cols int, opts ...Option) (*Sparse, error) {
	if len(flat) == 0 {
		return nil, sparseErrorf(ctxNewSparseFromDense, ErrEmptyInput)
	}
	if !validShape(rows, cols) || rows*cols != len(flat) {
		return nil, sparseErrorf(ctxNewSparseFromDense, ErrDimension)
	}

	return sparseFromFlat(flat, rows, cols, gatherOptions(opts...)), nil
}

// NewSparse2D extracts the non-zero cells of a rectangular 2D array.
// Returns ErrEmptyInput on nil/empty input and ErrDimension on jagged rows.
func NewSparse2D(data [][]float32, opts ...Option) (*Sparse, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, sparseErrorf(ctxNewSparse2D, ErrEmptyInput)
	}
	flat, rows, cols, err := flatten2D(data)
	if err != nil {
		return nil, sparseErrorf(ctxNewSparse2D, err)
	}

	return sparseFromFlat(flat, rows, cols, gatherOptions(opts...)), nil
}

// sparseFromFlat is the shared count-then-fill extraction.
func sparseFromFlat(flat []float32, r, c int, o Options) *Sparse {
	nnz := 0
	for _, v := range flat {
		if v != 0 {
			nnz++
		}
	}
	values := make([]float32, nnz)
	indices := make([]int64, nnz)
	k := 0
	for i, v := range flat {
		if v != 0 {
			values[k] = v
			indices[k] = int64(i)
			k++
		}
	}

	return &Sparse{r: r, c: c, length: r * c, values: values, indices: indices, opts: o}
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// Shape packs Rows() and Cols().
func (s *Sparse) Shape() (rows, cols int) { return s.r, s.c }

// Kind reports KindSparse.
func (s *Sparse) Kind() Kind { return KindSparse }

// IsDense is always false.
func (s *Sparse) IsDense() bool { return false }

// IsSparse is always true.
func (s *Sparse) IsSparse() bool { return true }

// Options returns the kernel policy of the storage.
func (s *Sparse) Options() Options { return s.opts }

// Length returns the declared dense-equivalent length.
func (s *Sparse) Length() int { return s.length }

// NNZ returns the number of stored entries, explicit zeros included.
func (s *Sparse) NNZ() int { return len(s.indices) }

// Indices returns a copy of the ascending linear index array.
func (s *Sparse) Indices() []int64 { return slices.Clone(s.indices) }

// Values returns a copy of the stored values, paired with Indices().
func (s *Sparse) Values() []float32 { return slices.Clone(s.values) }

// search locates the linear index of (row, col).
func (s *Sparse) search(row, col int) (int64, int, bool) {
	idx := int64(row*s.c + col)
	pos, found := slices.BinarySearch(s.indices, idx)

	return idx, pos, found
}

// At returns the cell at (row, col), 0 when absent. Unchecked.
// Complexity: O(log nnz).
func (s *Sparse) At(row, col int) float32 {
	if _, pos, found := s.search(row, col); found {
		return s.values[pos]
	}

	return 0
}

// Set writes v at (row, col). Unchecked.
// MAIN DESCRIPTION:
//   - Present index: overwrite in place (v == 0 leaves an explicit zero).
//   - Absent index and v != 0: insert at the sorted position, shifting every
//     entry at or above it right by one.
//   - Absent index and v == 0: nothing to store.
//
// Complexity:
//   - Time O(log nnz) overwrite, O(nnz) insert.
func (s *Sparse) Set(row, col int, v float32) {
	idx, pos, found := s.search(row, col)
	if found {
		s.values[pos] = v
		return
	}
	if v == 0 {
		return
	}
	s.indices = slices.Insert(s.indices, pos, idx)
	s.values = slices.Insert(s.values, pos, v)
}

// Compact drops explicit zero entries left behind by Set.
// Complexity: O(nnz).
func (s *Sparse) Compact() {
	k := 0
	for i, v := range s.values {
		if v != 0 {
			s.values[k] = v
			s.indices[k] = s.indices[i]
			k++
		}
	}
	s.values = slices.Clip(s.values[:k])
	s.indices = slices.Clip(s.indices[:k])
}

// Clone returns a deep copy of both parallel arrays; shape, length and policy
// are preserved.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{
		r:       s.r,
		c:       s.c,
		length:  s.length,
		values:  slices.Clone(s.values),
		indices: slices.Clone(s.indices),
		opts:    s.opts,
	}
}

// Copy returns a deep copy as a Storage.
func (s *Sparse) Copy() Storage { return s.Clone() }

// ToSparse returns an equal-valued deep copy; the receiver is already sparse.
func (s *Sparse) ToSparse() *Sparse { return s.Clone() }

// ToDense scatters the stored entries into a zero-filled r*c buffer.
// Complexity: O(r*c + nnz).
func (s *Sparse) ToDense() *Dense {
	data := make([]float32, s.r*s.c)
	for k, idx := range s.indices {
		data[idx] = s.values[k]
	}

	return newDenseOwned(data, s.r, s.c, s.opts)
}

// Cardinality counts stored values that are not zero.
func (s *Sparse) Cardinality() int {
	n := 0
	for _, v := range s.values {
		if v != 0 {
			n++
		}
	}

	return n
}

// ZSum sums the stored values, accumulated in float64.
func (s *Sparse) ZSum() float32 {
	var sum float64
	for _, v := range s.values {
		sum += float64(v)
	}

	return float32(sum)
}

// Equal compares against another storage.
//   - Sparse operand: same rows, cols, and identical indices and values
//     sequences (explicit zeros are not normalized away).
//   - Any other operand: cell-wise equality over the same shape.
func (s *Sparse) Equal(other Storage) bool {
	if other == nil || SameShape(s, other) != nil {
		return false
	}
	if o, ok := other.(*Sparse); ok {
		return slices.Equal(s.indices, o.indices) && slices.Equal(s.values, o.values)
	}
	for i := 0; i < s.r; i++ {
		for j := 0; j < s.c; j++ {
			if s.At(i, j) != other.At(i, j) {
				return false
			}
		}
	}

	return true
}

// String renders the logical grid row by row.
func (s *Sparse) String() string { return formatRows(s) }

// cursor walks a Sparse in ascending linear index order.
type cursor struct {
	s *Sparse
	k int
}

// next returns the cell at linear index i. Calls must use non-decreasing i.
func (cur *cursor) next(i int) float32 {
	ix := int64(i)
	for cur.k < len(cur.s.indices) && cur.s.indices[cur.k] < ix {
		cur.k++
	}
	if cur.k < len(cur.s.indices) && cur.s.indices[cur.k] == ix {
		return cur.s.values[cur.k]
	}

	return 0
}
