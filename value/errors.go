// SPDX-License-Identifier: MIT

package value

import (
	"fmt"

	"github.com/katalvlaran/lvunits/storage"
)

// Sentinels are shared with the storage package so errors.Is matches either
// name.
var (
	ErrDimension         = storage.ErrDimension
	ErrDimensionMismatch = storage.ErrDimensionMismatch
	ErrOutOfRange        = storage.ErrOutOfRange
	ErrDegenerate        = storage.ErrDegenerate
	ErrNonSquare         = storage.ErrNonSquare
	ErrEmptyInput        = storage.ErrEmptyInput
)

// indexErrorf wraps ErrOutOfRange with the wrapper type, method and coordinates.
func indexErrorf(typ, method string, coords ...int) error {
	switch len(coords) {
	case 1:
		return fmt.Errorf("%s.%s(%d): %w", typ, method, coords[0], ErrOutOfRange)
	default:
		return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, coords[0], coords[1], ErrOutOfRange)
	}
}

// valueErrorf wraps an error with the wrapper type and method.
func valueErrorf(typ, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", typ, method, err)
}
