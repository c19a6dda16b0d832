// SPDX-License-Identifier: MIT

package value

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
)

const (
	typVector        = "Vector"
	typMutableVector = "MutableVector"
)

// VectorOperand is any vector value of quantity Q: *Vector[Q] or
// *MutableVector[Q]. The interface is sealed.
type VectorOperand[Q quantity.Quantity] interface {
	Size() int
	storageOf() storage.Storage
	quantityOf() Q
}

// vectorCore holds the buffer handle of a 1×size storage.
type vectorCore struct {
	typ string
	cow cow
}

func (v *vectorCore) storageOf() storage.Storage { return v.cow.read() }

// Size returns the number of elements.
func (v *vectorCore) Size() int { return v.cow.read().Cols() }

// IsDense reports a dense backing storage.
func (v *vectorCore) IsDense() bool { return v.cow.read().IsDense() }

// IsSparse reports a sparse backing storage.
func (v *vectorCore) IsSparse() bool { return v.cow.read().IsSparse() }

func (v *vectorCore) checkIndex(method string, i int) error {
	if i < 0 || i >= v.Size() {
		return indexErrorf(v.typ, method, i)
	}

	return nil
}

// GetSI returns the SI value of element i, or ErrOutOfRange.
func (v *vectorCore) GetSI(i int) (float32, error) {
	if err := v.checkIndex("GetSI", i); err != nil {
		return 0, err
	}

	return v.cow.read().At(0, i), nil
}

// Cardinality counts non-zero elements.
func (v *vectorCore) Cardinality() int { return v.cow.read().Cardinality() }

// ZSum returns the sum of every element in SI units.
func (v *vectorCore) ZSum() float32 { return v.cow.read().ZSum() }

// ValuesSI returns a fresh copy of the SI values.
func (v *vectorCore) ValuesSI() []float32 { return v.cow.read().ToDense().Values() }

// Vector is an immutable vector of SI values of quantity Q.
type Vector[Q quantity.Quantity] struct {
	vectorCore
}

func (v *Vector[Q]) quantityOf() Q { return quantity.Of[Q]() }

func newVector[Q quantity.Quantity](s storage.Storage) *Vector[Q] {
	return &Vector[Q]{vectorCore{typ: typVector, cow: own(s)}}
}

// buildVector builds a 1×len(values) storage of the requested kind.
func buildVector(values []float32, kind storage.Kind, opts []storage.Option) (storage.Storage, error) {
	switch kind {
	case storage.KindDense:
		return storage.NewDenseVector(values, opts...), nil
	case storage.KindSparse:
		return storage.NewSparseVectorFromDense(values, opts...)
	default:
		return nil, unknownKind(kind)
	}
}

// NewVector builds an immutable Vector of SI values, stored densely or
// sparsely per kind. values is copied. ErrEmptyInput for empty sparse input.
func NewVector[Q quantity.Quantity](values []float32, kind storage.Kind, opts ...storage.Option) (*Vector[Q], error) {
	s, err := buildVector(values, kind, opts)
	if err != nil {
		return nil, valueErrorf(typVector, "NewVector", err)
	}

	return newVector[Q](s), nil
}

// NewSparseVector builds an immutable sparse Vector from prebuilt
// values/indices. The arrays are copied; their ordering is trusted.
func NewSparseVector[Q quantity.Quantity](values []float32, indices []int64, size int, opts ...storage.Option) *Vector[Q] {
	return newVector[Q](storage.NewSparseVector(values, indices, size, opts...).Clone())
}

// VectorFromStorage wraps a deep copy of s. ErrDimension unless s has
// exactly one row.
func VectorFromStorage[Q quantity.Quantity](s storage.Storage) (*Vector[Q], error) {
	if s == nil || s.Rows() != 1 {
		return nil, valueErrorf(typVector, "VectorFromStorage", ErrDimension)
	}

	return newVector[Q](s.Copy()), nil
}

// Quantity returns the quantity marker of the vector.
func (v *Vector[Q]) Quantity() Q { return quantity.Of[Q]() }

// ToDense returns v itself when already dense, else a dense copy.
func (v *Vector[Q]) ToDense() *Vector[Q] {
	if v.IsDense() {
		return v
	}

	return newVector[Q](v.cow.read().ToDense())
}

// ToSparse returns v itself when already sparse, else a sparse copy.
func (v *Vector[Q]) ToSparse() *Vector[Q] {
	if v.IsSparse() {
		return v
	}

	return newVector[Q](v.cow.read().ToSparse())
}

// Mutable returns a mutable vector sharing v's storage.
func (v *Vector[Q]) Mutable() *MutableVector[Q] {
	return &MutableVector[Q]{vectorCore{typ: typMutableVector, cow: v.cow.share()}}
}

func (v *Vector[Q]) binary(method string, other storage.Storage, op inPlace) (*Vector[Q], error) {
	out, err := combine(v.cow.read(), other, op)
	if err != nil {
		return nil, valueErrorf(typVector, method, err)
	}

	return newVector[Q](out), nil
}

// Plus returns v + other element-wise. ErrDimensionMismatch on size mismatch.
func (v *Vector[Q]) Plus(other VectorOperand[Q]) (*Vector[Q], error) {
	return v.binary("Plus", other.storageOf(), opIncrement)
}

// Minus returns v - other element-wise. ErrDimensionMismatch on size mismatch.
func (v *Vector[Q]) Minus(other VectorOperand[Q]) (*Vector[Q], error) {
	return v.binary("Minus", other.storageOf(), opDecrement)
}

// Times returns v scaled element-wise by a dimensionless factor vector.
func (v *Vector[Q]) Times(factor VectorOperand[quantity.Dimensionless]) (*Vector[Q], error) {
	return v.binary("Times", factor.storageOf(), opMultiply)
}

// DivideBy returns v divided element-wise by a dimensionless vector.
func (v *Vector[Q]) DivideBy(divisor VectorOperand[quantity.Dimensionless]) (*Vector[Q], error) {
	return v.binary("DivideBy", divisor.storageOf(), opDivide)
}

// Scale returns v multiplied by k.
func (v *Vector[Q]) Scale(k float32) *Vector[Q] { return newVector[Q](scaled(v.cow.read(), k)) }

// Neg returns -v.
func (v *Vector[Q]) Neg() *Vector[Q] { return newVector[Q](mapped(v.cow.read(), storage.Neg)) }

// Abs returns |v| element-wise.
func (v *Vector[Q]) Abs() *Vector[Q] { return newVector[Q](mapped(v.cow.read(), storage.Abs)) }

// Equal reports element-wise equality with another vector of quantity Q.
func (v *Vector[Q]) Equal(other VectorOperand[Q]) bool {
	return equalCells(v.cow.read(), other.storageOf())
}

// String renders a header line and the SI elements.
func (v *Vector[Q]) String() string { return describe(typVector, quantity.Of[Q](), v.cow.read()) }
