// SPDX-License-Identifier: MIT

// Package storage is the numeric substrate shared by every unit-typed value:
// a row-major Dense float32 grid and a Sparse grid of sorted linear indices
// with parallel values.
//
// Both kinds implement Storage, which carries the element-wise vocabulary
// (IncrementBy, DecrementBy, MultiplyBy, DivideBy, their scalar forms, and
// Apply for unary cell functions) plus conversions (ToDense, ToSparse),
// deep copies and the Cardinality/ZSum reductions.
//
// Accessors At/Set are unchecked; bounds are validated by the value layer.
// Shape mismatches are reported as ErrDimensionMismatch before any cell is
// written. Division by zero follows IEEE-754 and never fails.
//
// A storage is not safe for concurrent mutation. Dense kernels may split
// their own work across goroutines; see WithParallelThreshold.
package storage
