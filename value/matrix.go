// SPDX-License-Identifier: MIT

// Package value - immutable matrices and the read surface shared with the
// mutable variant.
//
// Purpose:
//   - Wrap one storage per value and expose it through bounds-checked SI
//     accessors.
//   - Every transform of an immutable Matrix returns a new Matrix around a
//     freshly computed storage; the receiver's storage is never written.

package value

import (
	"fmt"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
)

const (
	typMatrix        = "Matrix"
	typMutableMatrix = "MutableMatrix"
)

// MatrixOperand is any matrix value of quantity Q: *Matrix[Q] or
// *MutableMatrix[Q]. The interface is sealed.
type MatrixOperand[Q quantity.Quantity] interface {
	Rows() int
	Cols() int
	storageOf() storage.Storage
	quantityOf() Q
}

// matrixCore holds the buffer handle and implements every read. typ names
// the embedding wrapper in error messages.
type matrixCore struct {
	typ string
	cow cow
}

func (m *matrixCore) storageOf() storage.Storage { return m.cow.read() }

// Rows returns the row count.
func (m *matrixCore) Rows() int { return m.cow.read().Rows() }

// Cols returns the column count.
func (m *matrixCore) Cols() int { return m.cow.read().Cols() }

// IsDense reports a dense backing storage.
func (m *matrixCore) IsDense() bool { return m.cow.read().IsDense() }

// IsSparse reports a sparse backing storage.
func (m *matrixCore) IsSparse() bool { return m.cow.read().IsSparse() }

// checkIndex validates 0 ≤ row < Rows() and 0 ≤ col < Cols().
func (m *matrixCore) checkIndex(method string, row, col int) error {
	s := m.cow.read()
	if row < 0 || row >= s.Rows() || col < 0 || col >= s.Cols() {
		return indexErrorf(m.typ, method, row, col)
	}

	return nil
}

// GetSI returns the SI value at (row, col), or ErrOutOfRange.
func (m *matrixCore) GetSI(row, col int) (float32, error) {
	if err := m.checkIndex("GetSI", row, col); err != nil {
		return 0, err
	}

	return m.cow.read().At(row, col), nil
}

// Cardinality counts non-zero cells.
func (m *matrixCore) Cardinality() int { return m.cow.read().Cardinality() }

// ZSum returns the sum of every cell in SI units.
func (m *matrixCore) ZSum() float32 { return m.cow.read().ZSum() }

// Determinant returns det of the SI values; ErrNonSquare when rows != cols.
func (m *matrixCore) Determinant() (float64, error) {
	return storage.Determinant(m.cow.read())
}

// ValuesSI returns a fresh [rows][cols] copy of the SI values.
func (m *matrixCore) ValuesSI() [][]float32 {
	return m.cow.read().ToDense().Values2D()
}

// RowSI returns a copy of one row, or ErrOutOfRange.
func (m *matrixCore) RowSI(row int) ([]float32, error) {
	s := m.cow.read()
	if row < 0 || row >= s.Rows() {
		return nil, indexErrorf(m.typ, "RowSI", row)
	}
	out := make([]float32, s.Cols())
	for j := range out {
		out[j] = s.At(row, j)
	}

	return out, nil
}

// ColumnSI returns a copy of one column, or ErrOutOfRange.
func (m *matrixCore) ColumnSI(col int) ([]float32, error) {
	s := m.cow.read()
	if col < 0 || col >= s.Cols() {
		return nil, indexErrorf(m.typ, "ColumnSI", col)
	}
	out := make([]float32, s.Rows())
	for i := range out {
		out[i] = s.At(i, col)
	}

	return out, nil
}

// DiagonalSI returns the main diagonal; ErrNonSquare when rows != cols.
func (m *matrixCore) DiagonalSI() ([]float32, error) {
	s := m.cow.read()
	if s.Rows() != s.Cols() {
		return nil, valueErrorf(m.typ, "DiagonalSI", ErrNonSquare)
	}
	out := make([]float32, s.Rows())
	for i := range out {
		out[i] = s.At(i, i)
	}

	return out, nil
}

// Matrix is an immutable matrix of SI values of quantity Q.
// The zero value is not usable; build one with NewMatrix and friends.
type Matrix[Q quantity.Quantity] struct {
	matrixCore
}

func (m *Matrix[Q]) quantityOf() Q { return quantity.Of[Q]() }

// newMatrix adopts s; the caller must not keep s.
func newMatrix[Q quantity.Quantity](s storage.Storage) *Matrix[Q] {
	return &Matrix[Q]{matrixCore{typ: typMatrix, cow: own(s)}}
}

// buildStorage builds storage of the requested kind from a 2D array.
func buildStorage(data [][]float32, kind storage.Kind, opts []storage.Option) (storage.Storage, error) {
	switch kind {
	case storage.KindDense:
		return storage.NewDense2D(data, opts...)
	case storage.KindSparse:
		return storage.NewSparse2D(data, opts...)
	default:
		return nil, unknownKind(kind)
	}
}

// unknownKind wraps ErrDimension for a Kind that is neither dense nor sparse.
func unknownKind(kind storage.Kind) error {
	return fmt.Errorf("kind %d: %w", kind, ErrDimension)
}

// NewMatrix builds an immutable Matrix from a rectangular 2D array of SI
// values, stored densely or sparsely per kind. The array is copied.
// Errors: ErrDimension (jagged or empty dense input, unknown kind),
// ErrEmptyInput (empty sparse input).
func NewMatrix[Q quantity.Quantity](data [][]float32, kind storage.Kind, opts ...storage.Option) (*Matrix[Q], error) {
	s, err := buildStorage(data, kind, opts)
	if err != nil {
		return nil, valueErrorf(typMatrix, "NewMatrix", err)
	}

	return newMatrix[Q](s), nil
}

// NewMatrixFlat builds an immutable Matrix from a row-major flat slice.
func NewMatrixFlat[Q quantity.Quantity](flat []float32, rows, cols int, kind storage.Kind, opts ...storage.Option) (*Matrix[Q], error) {
	var (
		s   storage.Storage
		err error
	)
	switch kind {
	case storage.KindDense:
		s, err = storage.NewDense(flat, rows, cols, opts...)
	case storage.KindSparse:
		s, err = storage.NewSparseFromDense(flat, rows, cols, opts...)
	default:
		err = unknownKind(kind)
	}
	if err != nil {
		return nil, valueErrorf(typMatrix, "NewMatrixFlat", err)
	}

	return newMatrix[Q](s), nil
}

// NewSparseMatrix builds an immutable sparse Matrix from prebuilt
// values/indices (indices strictly ascending, row*cols+col). The arrays are
// copied; their ordering is trusted.
func NewSparseMatrix[Q quantity.Quantity](values []float32, indices []int64, rows, cols int, opts ...storage.Option) *Matrix[Q] {
	s := storage.NewSparse(values, indices, rows*cols, rows, cols, opts...)

	return newMatrix[Q](s.Clone())
}

// MatrixFromStorage wraps a deep copy of s.
func MatrixFromStorage[Q quantity.Quantity](s storage.Storage) *Matrix[Q] {
	return newMatrix[Q](s.Copy())
}

// Quantity returns the quantity marker of the matrix.
func (m *Matrix[Q]) Quantity() Q { return quantity.Of[Q]() }

// ToDense returns m itself when already dense, else a dense copy.
func (m *Matrix[Q]) ToDense() *Matrix[Q] {
	if m.IsDense() {
		return m
	}

	return newMatrix[Q](m.cow.read().ToDense())
}

// ToSparse returns m itself when already sparse, else a sparse copy.
func (m *Matrix[Q]) ToSparse() *Matrix[Q] {
	if m.IsSparse() {
		return m
	}

	return newMatrix[Q](m.cow.read().ToSparse())
}

// Mutable returns a mutable matrix sharing m's storage. Neither side copies
// until the mutable one is first written.
func (m *Matrix[Q]) Mutable() *MutableMatrix[Q] {
	return &MutableMatrix[Q]{matrixCore{typ: typMutableMatrix, cow: m.cow.share()}}
}

// binary is the shared body of Plus/Minus/Times/DivideBy.
func (m *Matrix[Q]) binary(method string, other storage.Storage, op inPlace) (*Matrix[Q], error) {
	out, err := combine(m.cow.read(), other, op)
	if err != nil {
		return nil, valueErrorf(typMatrix, method, err)
	}

	return newMatrix[Q](out), nil
}

// Plus returns m + other cell-wise. ErrDimensionMismatch on shape mismatch.
func (m *Matrix[Q]) Plus(other MatrixOperand[Q]) (*Matrix[Q], error) {
	return m.binary("Plus", other.storageOf(), opIncrement)
}

// Minus returns m - other cell-wise. ErrDimensionMismatch on shape mismatch.
func (m *Matrix[Q]) Minus(other MatrixOperand[Q]) (*Matrix[Q], error) {
	return m.binary("Minus", other.storageOf(), opDecrement)
}

// Times returns m scaled cell-wise by a dimensionless factor matrix.
func (m *Matrix[Q]) Times(factor MatrixOperand[quantity.Dimensionless]) (*Matrix[Q], error) {
	return m.binary("Times", factor.storageOf(), opMultiply)
}

// DivideBy returns m divided cell-wise by a dimensionless matrix. Zero
// divisors produce ±Inf or NaN.
func (m *Matrix[Q]) DivideBy(divisor MatrixOperand[quantity.Dimensionless]) (*Matrix[Q], error) {
	return m.binary("DivideBy", divisor.storageOf(), opDivide)
}

// Scale returns m multiplied by the dimensionless factor k.
func (m *Matrix[Q]) Scale(k float32) *Matrix[Q] { return newMatrix[Q](scaled(m.cow.read(), k)) }

// Neg returns -m.
func (m *Matrix[Q]) Neg() *Matrix[Q] { return newMatrix[Q](mapped(m.cow.read(), storage.Neg)) }

// Abs returns |m| cell-wise.
func (m *Matrix[Q]) Abs() *Matrix[Q] { return newMatrix[Q](mapped(m.cow.read(), storage.Abs)) }

// Equal reports cell-wise equality with another matrix of quantity Q.
func (m *Matrix[Q]) Equal(other MatrixOperand[Q]) bool {
	return equalCells(m.cow.read(), other.storageOf())
}

// String renders a header line and the SI cells row by row.
func (m *Matrix[Q]) String() string { return describe(typMatrix, quantity.Of[Q](), m.cow.read()) }

// equalCells compares two storages cell-wise regardless of kind.
func equalCells(a, b storage.Storage) bool {
	if storage.SameShape(a, b) != nil {
		return false
	}
	if a.IsSparse() && b.IsSparse() {
		a = a.ToDense() // explicit zeros must not break logical equality
	}

	return a.Equal(b)
}

// describe renders "<Type>[<Quantity>] RxC <kind> (<unit>)" then the cells.
func describe(typ string, q quantity.Quantity, s storage.Storage) string {
	return fmt.Sprintf("%s[%s] %dx%d %s (%s)\n%s", typ, q.Name(), s.Rows(), s.Cols(), s.Kind(), q.SIUnit(), s)
}
