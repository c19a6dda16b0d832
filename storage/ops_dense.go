// SPDX-License-Identifier: MIT
// Package: storage
//
// Purpose:
//   - Dense element-wise kernels: storage operand, scalar operand, unary map.
//   - All kernels write only inside their own flat block, so they fan out via
//     forRange without coordination.
//
// Determinism:
//   - Each cell is computed independently; results do not depend on the
//     number of workers.

package storage

// binary applies self[i] = op(self[i], other[i]) over every cell.
// Validation happens before any cell is written.
func (m *Dense) binary(method string, other Storage, op binOp) error {
	if other == nil {
		return denseErrorf(method, ErrDimensionMismatch)
	}
	if err := SameShape(m, other); err != nil {
		return denseErrorf(method, err)
	}
	// Dense operand: flat fast path. Anything else is materialized once so
	// every worker reads a plain slice.
	var src []float32
	if d, ok := other.(*Dense); ok {
		src = d.data
	} else {
		src = other.ToDense().data
	}
	dst := m.data
	forRange(len(dst), m.opts, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = op(dst[i], src[i])
		}
	})

	return nil
}

// scalar applies self[i] = op(self[i], k) over every cell.
func (m *Dense) scalar(k float32, op binOp) {
	dst := m.data
	forRange(len(dst), m.opts, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = op(dst[i], k)
		}
	})
}

// IncrementBy adds other cell-wise. ErrDimensionMismatch on shape mismatch.
func (m *Dense) IncrementBy(other Storage) error { return m.binary(opIncrement, other, opAdd) }

// DecrementBy subtracts other cell-wise. ErrDimensionMismatch on shape mismatch.
func (m *Dense) DecrementBy(other Storage) error { return m.binary(opDecrement, other, opSub) }

// MultiplyBy multiplies by other cell-wise. ErrDimensionMismatch on shape mismatch.
func (m *Dense) MultiplyBy(other Storage) error { return m.binary(opMultiply, other, opMul) }

// DivideBy divides by other cell-wise; zero divisors yield ±Inf or NaN.
func (m *Dense) DivideBy(other Storage) error { return m.binary(opDivide, other, opDiv) }

// IncrementByScalar adds k to every cell.
func (m *Dense) IncrementByScalar(k float32) { m.scalar(k, opAdd) }

// DecrementByScalar subtracts k from every cell.
func (m *Dense) DecrementByScalar(k float32) { m.scalar(k, opSub) }

// MultiplyByScalar multiplies every cell by k.
func (m *Dense) MultiplyByScalar(k float32) { m.scalar(k, opMul) }

// DivideByScalar divides every cell by k; k == 0 yields ±Inf or NaN.
func (m *Dense) DivideByScalar(k float32) { m.scalar(k, opDiv) }

// Apply replaces every cell with f(cell) in place.
func (m *Dense) Apply(f CellFunc) {
	dst := m.data
	forRange(len(dst), m.opts, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(dst[i])
		}
	})
}
