// SPDX-License-Identifier: MIT
// Package: storage
//
// Purpose:
//   - Sparse element-wise kernels. An op may zero out a stored cell or make a
//     zero cell non-zero, so every kernel rescans all r*c logical cells and
//     rebuilds the parallel arrays.
//
// Determinism:
//   - The fill pass is sequential and ascending; it is never split across
//     goroutines because each write offset depends on every earlier cell.

package storage

import "slices"

// rebuild recomputes the receiver from cell(i, a), where a is the current
// value at linear index i. Only results != 0 are kept (NaN is kept).
func (s *Sparse) rebuild(cell func(i int, a float32) float32) {
	n := s.r * s.c
	values := make([]float32, 0, len(s.values))
	indices := make([]int64, 0, len(s.indices))
	self := cursor{s: s}
	for i := 0; i < n; i++ {
		if v := cell(i, self.next(i)); v != 0 {
			values = append(values, v)
			indices = append(indices, int64(i))
		}
	}
	s.values = slices.Clip(values)
	s.indices = slices.Clip(indices)
	s.length = n
}

// operandReader returns a sequential reader of other's cells by linear index.
func operandReader(other Storage) func(i int) float32 {
	switch o := other.(type) {
	case *Dense:
		return func(i int) float32 { return o.data[i] }
	case *Sparse:
		cur := &cursor{s: o}
		return cur.next
	default:
		c := other.Cols()
		return func(i int) float32 { return other.At(i/c, i%c) }
	}
}

// binary applies op against other over every logical cell, then recompacts.
func (s *Sparse) binary(method string, other Storage, op binOp) error {
	if other == nil {
		return sparseErrorf(method, ErrDimensionMismatch)
	}
	if err := SameShape(s, other); err != nil {
		return sparseErrorf(method, err)
	}
	// An aliased operand would be rebuilt under its own reader.
	if o, ok := other.(*Sparse); ok && o == s {
		other = o.Clone()
	}
	read := operandReader(other)
	s.rebuild(func(i int, a float32) float32 { return op(a, read(i)) })

	return nil
}

// scalar applies op against k over every logical cell, then recompacts.
func (s *Sparse) scalar(k float32, op binOp) {
	s.rebuild(func(_ int, a float32) float32 { return op(a, k) })
}

// IncrementBy adds other cell-wise. ErrDimensionMismatch on shape mismatch.
func (s *Sparse) IncrementBy(other Storage) error { return s.binary(opIncrement, other, opAdd) }

// DecrementBy subtracts other cell-wise. ErrDimensionMismatch on shape mismatch.
func (s *Sparse) DecrementBy(other Storage) error { return s.binary(opDecrement, other, opSub) }

// MultiplyBy multiplies by other cell-wise. ErrDimensionMismatch on shape mismatch.
func (s *Sparse) MultiplyBy(other Storage) error { return s.binary(opMultiply, other, opMul) }

// DivideBy divides by other cell-wise; zero divisors yield ±Inf or NaN, so
// dividing by a sparse operand usually fills the result.
func (s *Sparse) DivideBy(other Storage) error { return s.binary(opDivide, other, opDiv) }

// IncrementByScalar adds k to every logical cell.
func (s *Sparse) IncrementByScalar(k float32) { s.scalar(k, opAdd) }

// DecrementByScalar subtracts k from every logical cell.
func (s *Sparse) DecrementByScalar(k float32) { s.scalar(k, opSub) }

// MultiplyByScalar multiplies every logical cell by k.
func (s *Sparse) MultiplyByScalar(k float32) { s.scalar(k, opMul) }

// DivideByScalar divides every logical cell by k.
func (s *Sparse) DivideByScalar(k float32) { s.scalar(k, opDiv) }

// Apply replaces every logical cell with f(cell), zero cells included
// (Ceil(0.3) == 1 must become a stored entry).
func (s *Sparse) Apply(f CellFunc) {
	s.rebuild(func(_ int, a float32) float32 { return f(a) })
}
