// SPDX-License-Identifier: MIT

package value

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
)

// MutableVector is a vector of SI values of quantity Q that can be changed
// in place, with the same copy-on-write protocol as MutableMatrix.
// Not safe for concurrent use.
type MutableVector[Q quantity.Quantity] struct {
	vectorCore
}

func (v *MutableVector[Q]) quantityOf() Q { return quantity.Of[Q]() }

// NewMutableVector builds a MutableVector of SI values.
func NewMutableVector[Q quantity.Quantity](values []float32, kind storage.Kind, opts ...storage.Option) (*MutableVector[Q], error) {
	s, err := buildVector(values, kind, opts)
	if err != nil {
		return nil, valueErrorf(typMutableVector, "NewMutableVector", err)
	}

	return &MutableVector[Q]{vectorCore{typ: typMutableVector, cow: own(s)}}, nil
}

// Quantity returns the quantity marker of the vector.
func (v *MutableVector[Q]) Quantity() Q { return quantity.Of[Q]() }

// Shared reports whether the next write will copy the storage first.
func (v *MutableVector[Q]) Shared() bool { return v.cow.shared() }

// Immutable returns an immutable Vector sharing v's storage.
func (v *MutableVector[Q]) Immutable() *Vector[Q] {
	return &Vector[Q]{vectorCore{typ: typVector, cow: v.cow.share()}}
}

// Mutable returns a second MutableVector sharing v's storage.
func (v *MutableVector[Q]) Mutable() *MutableVector[Q] {
	return &MutableVector[Q]{vectorCore{typ: typMutableVector, cow: v.cow.share()}}
}

// MutableCopy returns an exclusively owned deep copy.
func (v *MutableVector[Q]) MutableCopy() *MutableVector[Q] {
	return &MutableVector[Q]{vectorCore{typ: typMutableVector, cow: own(v.cow.read().Copy())}}
}

// ToDense returns a dense MutableVector; shares storage when v is dense.
func (v *MutableVector[Q]) ToDense() *MutableVector[Q] {
	if v.IsDense() {
		return v.Mutable()
	}

	return &MutableVector[Q]{vectorCore{typ: typMutableVector, cow: own(v.cow.read().ToDense())}}
}

// ToSparse returns a sparse MutableVector; shares storage when v is sparse.
func (v *MutableVector[Q]) ToSparse() *MutableVector[Q] {
	if v.IsSparse() {
		return v.Mutable()
	}

	return &MutableVector[Q]{vectorCore{typ: typMutableVector, cow: own(v.cow.read().ToSparse())}}
}

// SetSI writes the SI value x at element i, or returns ErrOutOfRange.
func (v *MutableVector[Q]) SetSI(i int, x float32) error {
	if err := v.checkIndex("SetSI", i); err != nil {
		return err
	}
	v.cow.unique().Set(0, i, x)

	return nil
}

func (v *MutableVector[Q]) inPlace(method string, other storage.Storage, op inPlace) error {
	if err := v.cow.apply(other, op); err != nil {
		return valueErrorf(typMutableVector, method, err)
	}

	return nil
}

// IncrementBy adds other in place.
func (v *MutableVector[Q]) IncrementBy(other VectorOperand[Q]) error {
	return v.inPlace("IncrementBy", other.storageOf(), opIncrement)
}

// DecrementBy subtracts other in place.
func (v *MutableVector[Q]) DecrementBy(other VectorOperand[Q]) error {
	return v.inPlace("DecrementBy", other.storageOf(), opDecrement)
}

// MultiplyBy scales element-wise by a dimensionless factor vector.
func (v *MutableVector[Q]) MultiplyBy(factor VectorOperand[quantity.Dimensionless]) error {
	return v.inPlace("MultiplyBy", factor.storageOf(), opMultiply)
}

// DivideBy divides element-wise by a dimensionless vector.
func (v *MutableVector[Q]) DivideBy(divisor VectorOperand[quantity.Dimensionless]) error {
	return v.inPlace("DivideBy", divisor.storageOf(), opDivide)
}

// IncrementByScalar adds s to every element.
func (v *MutableVector[Q]) IncrementByScalar(s Scalar[Q]) { v.cow.unique().IncrementByScalar(s.SI()) }

// DecrementByScalar subtracts s from every element.
func (v *MutableVector[Q]) DecrementByScalar(s Scalar[Q]) { v.cow.unique().DecrementByScalar(s.SI()) }

// MultiplyByScalar multiplies every element by the dimensionless k.
func (v *MutableVector[Q]) MultiplyByScalar(k float32) { v.cow.unique().MultiplyByScalar(k) }

// DivideByScalar divides every element by the dimensionless k.
func (v *MutableVector[Q]) DivideByScalar(k float32) { v.cow.unique().DivideByScalar(k) }

// Assign replaces every element with f(element).
func (v *MutableVector[Q]) Assign(f storage.CellFunc) { v.cow.assign(f) }

// Ceil rounds every element up.
func (v *MutableVector[Q]) Ceil() { v.cow.assign(storage.Ceil) }

// Floor rounds every element down.
func (v *MutableVector[Q]) Floor() { v.cow.assign(storage.Floor) }

// Round rounds every element half to even.
func (v *MutableVector[Q]) Round() { v.cow.assign(storage.Round) }

// Abs replaces every element with its absolute value.
func (v *MutableVector[Q]) Abs() { v.cow.assign(storage.Abs) }

// Neg negates every element.
func (v *MutableVector[Q]) Neg() { v.cow.assign(storage.Neg) }

// Normalize divides every element by ZSum(); ErrDegenerate when it is zero.
func (v *MutableVector[Q]) Normalize() error {
	if err := v.cow.normalize(); err != nil {
		return valueErrorf(typMutableVector, "Normalize", err)
	}

	return nil
}

// Equal reports element-wise equality with another vector of quantity Q.
func (v *MutableVector[Q]) Equal(other VectorOperand[Q]) bool {
	return equalCells(v.cow.read(), other.storageOf())
}

// String renders a header line and the SI elements.
func (v *MutableVector[Q]) String() string {
	return describe(typMutableVector, quantity.Of[Q](), v.cow.read())
}

var (
	_ VectorOperand[quantity.Mass] = (*Vector[quantity.Mass])(nil)
	_ VectorOperand[quantity.Mass] = (*MutableVector[quantity.Mass])(nil)
)
