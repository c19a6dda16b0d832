// SPDX-License-Identifier: MIT

// Package lvunits is a units-of-measure numeric toolkit: quantity-typed
// scalars, vectors and matrices over one dense/sparse float32 storage
// backend.
//
// Layout:
//
//	storage/   - Dense and Sparse storage, element-wise kernels, conversions
//	value/     - Matrix, Vector, Scalar wrappers with copy-on-write mutation
//	quantity/  - phantom quantity markers (Length, Mass, Force, ...)
//	snapshot/  - memory-mapped file snapshots of a storage
//	cmd/lvunits - gen, inspect and bench tooling
//
// The quantity type parameter makes dimensional agreement a compile-time
// property:
//
//	a, _ := value.NewMatrix[quantity.Length](data, storage.KindDense)
//	b, _ := value.NewMatrix[quantity.Mass](data, storage.KindDense)
//	a.Plus(b) // does not compile
//
// Values are always SI. Unit scale conversion and localized formatting are
// out of scope.
package lvunits
