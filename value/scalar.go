// SPDX-License-Identifier: MIT

package value

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/lvunits/quantity"
)

// Scalar is a single SI value of quantity Q. It is a plain value type:
// copying a Scalar copies the number.
type Scalar[Q quantity.Quantity] struct {
	si float32
}

// NewScalar returns the Scalar holding si (already in SI units).
func NewScalar[Q quantity.Quantity](si float32) Scalar[Q] { return Scalar[Q]{si: si} }

// SI returns the value in SI units.
func (s Scalar[Q]) SI() float32 { return s.si }

// Quantity returns the quantity marker.
func (s Scalar[Q]) Quantity() Q { return quantity.Of[Q]() }

// Plus returns s + o.
func (s Scalar[Q]) Plus(o Scalar[Q]) Scalar[Q] { return Scalar[Q]{si: s.si + o.si} }

// Minus returns s - o.
func (s Scalar[Q]) Minus(o Scalar[Q]) Scalar[Q] { return Scalar[Q]{si: s.si - o.si} }

// Scale multiplies by the dimensionless k.
func (s Scalar[Q]) Scale(k float32) Scalar[Q] { return Scalar[Q]{si: s.si * k} }

// Neg returns -s.
func (s Scalar[Q]) Neg() Scalar[Q] { return Scalar[Q]{si: -s.si} }

// Abs returns |s|.
func (s Scalar[Q]) Abs() Scalar[Q] { return Scalar[Q]{si: float32(math.Abs(float64(s.si)))} }

// Compare returns -1, 0 or +1. NaN sorts before every other value, as in
// cmp.Compare.
func (s Scalar[Q]) Compare(o Scalar[Q]) int { return cmp.Compare(s.si, o.si) }

// Lt reports s < o.
func (s Scalar[Q]) Lt(o Scalar[Q]) bool { return s.si < o.si }

// Gt reports s > o.
func (s Scalar[Q]) Gt(o Scalar[Q]) bool { return s.si > o.si }

// Eq reports s == o; NaN is never equal to anything.
func (s Scalar[Q]) Eq(o Scalar[Q]) bool { return s.si == o.si }

// String renders "<value> <unit>", or the bare value for dimensionless
// quantities.
func (s Scalar[Q]) String() string {
	if u := quantity.Of[Q]().SIUnit(); u != "" {
		return fmt.Sprintf("%g %s", s.si, u)
	}

	return fmt.Sprintf("%g", s.si)
}
