// SPDX-License-Identifier: MIT

// Package value provides quantity-typed scalars, vectors and matrices on top
// of the storage package.
//
// Every vector and matrix type is generic over a phantom quantity marker
// (quantity.Length, quantity.Mass, ...), so adding a Length matrix to a Mass
// matrix does not compile. Values are held in SI units; there is no scale
// arithmetic.
//
// Immutable and mutable wrappers:
//
//   - Matrix and Vector never write their storage. Transforms (Plus, Scale,
//     Neg, ...) return new values.
//   - MutableMatrix and MutableVector change their values in place.
//   - Mutable() and Immutable() hand the same storage to a new wrapper. The
//     first write through a mutable wrapper whose storage is shared copies it
//     first (copy-on-write), so a value obtained earlier never observes the
//     change.
//
// Validation always precedes mutation: an operation that fails with
// ErrOutOfRange, ErrDimensionMismatch or ErrDegenerate leaves the receiver
// unchanged and does not detach it from shared storage.
//
// Wrappers are not safe for concurrent use. Share immutable values between
// goroutines only after no mutable wrapper holds their storage.
//
// Example:
//
//	m, _ := value.NewMatrix[quantity.Length]([][]float32{{1, 2}, {3, 4}}, storage.KindDense)
//	w := m.Mutable()
//	_ = w.SetSI(0, 0, 10) // m still reads 1 at (0,0)
package value
