// SPDX-License-Identifier: MIT

package storage

// Vectors are single-row storages: Rows() == 1, Cols() == size, and the
// linear index of element i is i itself.

// NewDenseVector builds a 1×len(values) Dense (values are copied).
func NewDenseVector(values []float32, opts ...Option) *Dense {
	d, _ := NewDense(values, 1, len(values), opts...) // 1*len == len, cannot fail

	return d
}

// NewSparseVector adopts prebuilt values/indices for a vector of the given
// size. Trusted like NewSparse.
func NewSparseVector(values []float32, indices []int64, size int, opts ...Option) *Sparse {
	return NewSparse(values, indices, size, 1, size, opts...)
}

// NewSparseVectorFromDense extracts the non-zero elements of values.
// Returns ErrEmptyInput when values is nil or empty.
func NewSparseVectorFromDense(values []float32, opts ...Option) (*Sparse, error) {
	return NewSparseFromDense(values, 1, len(values), opts...)
}
