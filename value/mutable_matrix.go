// SPDX-License-Identifier: MIT

package value

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
)

// MutableMatrix is a matrix of SI values of quantity Q that can be changed in
// place. Its storage may be shared with the Matrix or MutableMatrix it was
// derived from; the first write detaches it onto a private copy.
//
// A MutableMatrix is not safe for concurrent use.
type MutableMatrix[Q quantity.Quantity] struct {
	matrixCore
}

func (m *MutableMatrix[Q]) quantityOf() Q { return quantity.Of[Q]() }

// NewMutableMatrix builds a MutableMatrix from a rectangular 2D array.
func NewMutableMatrix[Q quantity.Quantity](data [][]float32, kind storage.Kind, opts ...storage.Option) (*MutableMatrix[Q], error) {
	s, err := buildStorage(data, kind, opts)
	if err != nil {
		return nil, valueErrorf(typMutableMatrix, "NewMutableMatrix", err)
	}

	return &MutableMatrix[Q]{matrixCore{typ: typMutableMatrix, cow: own(s)}}, nil
}

// Quantity returns the quantity marker of the matrix.
func (m *MutableMatrix[Q]) Quantity() Q { return quantity.Of[Q]() }

// Shared reports whether the storage may still be referenced by another
// wrapper, i.e. whether the next write will copy it first.
func (m *MutableMatrix[Q]) Shared() bool { return m.cow.shared() }

// Immutable returns an immutable Matrix sharing m's storage. A later write to
// m detaches m; the returned Matrix keeps the values seen at this call.
func (m *MutableMatrix[Q]) Immutable() *Matrix[Q] {
	return &Matrix[Q]{matrixCore{typ: typMatrix, cow: m.cow.share()}}
}

// Mutable returns a second MutableMatrix sharing m's storage.
func (m *MutableMatrix[Q]) Mutable() *MutableMatrix[Q] {
	return &MutableMatrix[Q]{matrixCore{typ: typMutableMatrix, cow: m.cow.share()}}
}

// MutableCopy returns an exclusively owned deep copy.
func (m *MutableMatrix[Q]) MutableCopy() *MutableMatrix[Q] {
	return &MutableMatrix[Q]{matrixCore{typ: typMutableMatrix, cow: own(m.cow.read().Copy())}}
}

// ToDense returns a dense MutableMatrix holding the same values. When m is
// already dense the result shares m's storage.
func (m *MutableMatrix[Q]) ToDense() *MutableMatrix[Q] {
	if m.IsDense() {
		return m.Mutable()
	}

	return &MutableMatrix[Q]{matrixCore{typ: typMutableMatrix, cow: own(m.cow.read().ToDense())}}
}

// ToSparse returns a sparse MutableMatrix holding the same values. When m is
// already sparse the result shares m's storage.
func (m *MutableMatrix[Q]) ToSparse() *MutableMatrix[Q] {
	if m.IsSparse() {
		return m.Mutable()
	}

	return &MutableMatrix[Q]{matrixCore{typ: typMutableMatrix, cow: own(m.cow.read().ToSparse())}}
}

// SetSI writes the SI value v at (row, col), or returns ErrOutOfRange.
func (m *MutableMatrix[Q]) SetSI(row, col int, v float32) error {
	if err := m.checkIndex("SetSI", row, col); err != nil {
		return err
	}
	m.cow.unique().Set(row, col, v)

	return nil
}

// inPlace runs a binary storage operator after shape validation.
func (m *MutableMatrix[Q]) inPlace(method string, other storage.Storage, op inPlace) error {
	if err := m.cow.apply(other, op); err != nil {
		return valueErrorf(typMutableMatrix, method, err)
	}

	return nil
}

// IncrementBy adds other in place. ErrDimensionMismatch on shape mismatch.
func (m *MutableMatrix[Q]) IncrementBy(other MatrixOperand[Q]) error {
	return m.inPlace("IncrementBy", other.storageOf(), opIncrement)
}

// DecrementBy subtracts other in place. ErrDimensionMismatch on shape mismatch.
func (m *MutableMatrix[Q]) DecrementBy(other MatrixOperand[Q]) error {
	return m.inPlace("DecrementBy", other.storageOf(), opDecrement)
}

// MultiplyBy scales cell-wise by a dimensionless factor matrix.
func (m *MutableMatrix[Q]) MultiplyBy(factor MatrixOperand[quantity.Dimensionless]) error {
	return m.inPlace("MultiplyBy", factor.storageOf(), opMultiply)
}

// DivideBy divides cell-wise by a dimensionless matrix; zero divisors yield
// ±Inf or NaN.
func (m *MutableMatrix[Q]) DivideBy(divisor MatrixOperand[quantity.Dimensionless]) error {
	return m.inPlace("DivideBy", divisor.storageOf(), opDivide)
}

// IncrementByScalar adds s to every cell.
func (m *MutableMatrix[Q]) IncrementByScalar(s Scalar[Q]) { m.cow.unique().IncrementByScalar(s.SI()) }

// DecrementByScalar subtracts s from every cell.
func (m *MutableMatrix[Q]) DecrementByScalar(s Scalar[Q]) { m.cow.unique().DecrementByScalar(s.SI()) }

// MultiplyByScalar multiplies every cell by the dimensionless factor k.
func (m *MutableMatrix[Q]) MultiplyByScalar(k float32) { m.cow.unique().MultiplyByScalar(k) }

// DivideByScalar divides every cell by the dimensionless k.
func (m *MutableMatrix[Q]) DivideByScalar(k float32) { m.cow.unique().DivideByScalar(k) }

// Assign replaces every cell with f(cell).
func (m *MutableMatrix[Q]) Assign(f storage.CellFunc) { m.cow.assign(f) }

// Ceil rounds every cell up.
func (m *MutableMatrix[Q]) Ceil() { m.cow.assign(storage.Ceil) }

// Floor rounds every cell down.
func (m *MutableMatrix[Q]) Floor() { m.cow.assign(storage.Floor) }

// Round rounds every cell half to even.
func (m *MutableMatrix[Q]) Round() { m.cow.assign(storage.Round) }

// Abs replaces every cell with its absolute value.
func (m *MutableMatrix[Q]) Abs() { m.cow.assign(storage.Abs) }

// Neg negates every cell.
func (m *MutableMatrix[Q]) Neg() { m.cow.assign(storage.Neg) }

// Normalize divides every cell by ZSum(). Returns ErrDegenerate, leaving the
// values untouched, when the sum is exactly zero.
func (m *MutableMatrix[Q]) Normalize() error {
	if err := m.cow.normalize(); err != nil {
		return valueErrorf(typMutableMatrix, "Normalize", err)
	}

	return nil
}

// Equal reports cell-wise equality with another matrix of quantity Q.
func (m *MutableMatrix[Q]) Equal(other MatrixOperand[Q]) bool {
	return equalCells(m.cow.read(), other.storageOf())
}

// String renders a header line and the SI cells row by row.
func (m *MutableMatrix[Q]) String() string {
	return describe(typMutableMatrix, quantity.Of[Q](), m.cow.read())
}

// Compile-time assertions.
var (
	_ MatrixOperand[quantity.Length] = (*Matrix[quantity.Length])(nil)
	_ MatrixOperand[quantity.Length] = (*MutableMatrix[quantity.Length])(nil)
)
