// SPDX-License-Identifier: MIT

package storage

import "gonum.org/v1/gonum/mat"

const ctxDeterminant = "Determinant"

// ToFloat64 exports s as a row-major float64 slice.
func ToFloat64(s Storage) []float64 {
	r, c := s.Rows(), s.Cols()
	out := make([]float64, r*c)
	switch t := s.(type) {
	case *Dense:
		for i, v := range t.data {
			out[i] = float64(v)
		}
	case *Sparse:
		for k, idx := range t.indices {
			out[idx] = float64(t.values[k])
		}
	default:
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out[i*c+j] = float64(s.At(i, j))
			}
		}
	}

	return out
}

// Determinant computes det(s) with gonum on the float64 export.
// Returns ErrNonSquare when rows != cols. The empty 0×0 storage has
// determinant 1.
// Complexity: O(n^3) (LU factorization inside gonum).
func Determinant(s Storage) (float64, error) {
	n := s.Rows()
	if n != s.Cols() {
		return 0, storageErrorf(ctxDeterminant, ErrNonSquare)
	}
	if n == 0 {
		return 1, nil
	}

	return mat.Det(mat.NewDense(n, n, ToFloat64(s))), nil
}
