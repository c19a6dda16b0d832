// SPDX-License-Identifier: MIT
// Package storage: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the storage
// package. Kernels return these sentinels (wrapped with call-site context via
// %w) and tests match them with errors.Is. No kernel panics on user-triggered
// error conditions; panics are reserved for option constructors.

package storage

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "storage: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site; callers still match with
// errors.Is.
//
// ERROR PRIORITY: construction shape -> operand shape -> index -> degenerate.

var (
	// ErrDimension is returned when construction input is malformed: a nil,
	// empty or jagged 2D array, or rows*cols != len(flat).
	ErrDimension = errors.New("storage: malformed dimensions")

	// ErrDimensionMismatch indicates a binary operation between storages of
	// different shapes. The receiver is never modified when this is returned.
	ErrDimensionMismatch = errors.New("storage: dimension mismatch")

	// ErrOutOfRange indicates a row or column outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("storage: index out of range")

	// ErrDegenerate signals an operation that has no defined result for the
	// current contents, e.g. normalizing cells whose sum is exactly zero.
	ErrDegenerate = errors.New("storage: degenerate operation")

	// ErrNonSquare signals that a square storage was required (determinant).
	ErrNonSquare = errors.New("storage: storage is not square")

	// ErrEmptyInput is returned when a sparse storage is built from a nil or
	// zero-length dense source.
	ErrEmptyInput = errors.New("storage: empty input")
)

// denseErrorf wraps an error with a uniform Dense context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// sparseErrorf wraps an error with a uniform Sparse context.
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("Sparse.%s: %w", method, err)
}

// storageErrorf wraps an error raised by a package-level function.
func storageErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
