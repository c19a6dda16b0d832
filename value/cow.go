// SPDX-License-Identifier: MIT

// Package value - copy-on-write buffer shared between wrappers.
//
// Purpose:
//   - Let Mutable()/Immutable() conversions hand the same storage to a new
//     wrapper without an eager deep copy.
//   - Make the aliasing window explicit: a buffer knows how many wrappers hold
//     it, and a writer clones only while it is not the sole holder.
//
// Behavior highlights:
//   - share() bumps the holder count and returns a second handle.
//   - unique() is the single entry point of every in-place mutation: with more
//     than one holder it detaches onto a private deep copy first.
//   - After a mutation the writer and every former co-holder reference
//     distinct storage.
//
// Notes:
//   - Holders never release explicitly (no destructors), so a buffer whose
//     co-holder was garbage collected still counts it; the next write then
//     clones once more than necessary. Correctness is unaffected.
//   - Handles are thread-confined: the count and the clone are not synchronized.
package value

import "github.com/katalvlaran/lvunits/storage"

// buffer is one storage plus the number of wrappers referencing it.
type buffer struct {
	data    storage.Storage
	holders int
}

// cow is the handle a wrapper keeps to its buffer.
type cow struct {
	buf *buffer
}

// own wraps s in a fresh exclusively-held buffer. The caller must not keep s.
func own(s storage.Storage) cow {
	return cow{buf: &buffer{data: s, holders: 1}}
}

// share returns a second handle to the same buffer.
func (c *cow) share() cow {
	c.buf.holders++

	return cow{buf: c.buf}
}

// shared reports whether another wrapper may observe this buffer.
func (c *cow) shared() bool { return c.buf.holders > 1 }

// read returns the storage for read-only use.
func (c *cow) read() storage.Storage { return c.buf.data }

// detach leaves the current buffer and adopts s in a private one.
func (c *cow) detach(s storage.Storage) {
	c.buf.holders--
	c.buf = &buffer{data: s, holders: 1}
}

// unique returns storage that is safe to mutate in place.
func (c *cow) unique() storage.Storage {
	if c.shared() {
		c.detach(c.buf.data.Copy())
	}

	return c.buf.data
}

// replace installs s as the storage without touching co-holders.
func (c *cow) replace(s storage.Storage) {
	if c.shared() {
		c.detach(s)
		return
	}
	c.buf.data = s
}

// inPlace is one of the storage binary operators.
type inPlace func(dst, src storage.Storage) error

var (
	opIncrement inPlace = storage.Storage.IncrementBy
	opDecrement inPlace = storage.Storage.DecrementBy
	opMultiply  inPlace = storage.Storage.MultiplyBy
	opDivide    inPlace = storage.Storage.DivideBy
)

// apply validates the operand shape, then mutates the unique storage.
// src may alias the receiver's storage; the storage kernels accept dst == src.
func (c *cow) apply(src storage.Storage, op inPlace) error {
	if err := storage.SameShape(c.read(), src); err != nil {
		return err
	}

	return op(c.unique(), src)
}

// assign maps f over every cell. Dense storage is updated in place; sparse
// storage goes through a dense round-trip because f may turn zero cells
// non-zero (Ceil(0.3) == 1) or the reverse.
func (c *cow) assign(f storage.CellFunc) {
	if s := c.read(); s.IsSparse() {
		d := s.ToDense()
		d.Apply(f)
		c.replace(d.ToSparse())
		return
	}
	c.unique().Apply(f)
}

// normalize divides every cell by the sum of all cells. ErrDegenerate when
// the sum is exactly zero; the storage is then left untouched.
func (c *cow) normalize() error {
	sum := c.read().ZSum()
	if sum == 0 {
		return ErrDegenerate
	}
	c.unique().DivideByScalar(sum)

	return nil
}

// combine returns a fresh storage holding op(a, b). The result is sparse only
// when both operands are sparse.
func combine(a, b storage.Storage, op inPlace) (storage.Storage, error) {
	if err := storage.SameShape(a, b); err != nil {
		return nil, err
	}
	var out storage.Storage
	if a.IsSparse() && b.IsSparse() {
		out = a.Copy()
	} else {
		out = a.ToDense()
	}
	if err := op(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// mapped returns a fresh storage of the same kind with f applied.
func mapped(s storage.Storage, f storage.CellFunc) storage.Storage {
	if s.IsSparse() {
		d := s.ToDense()
		d.Apply(f)
		return d.ToSparse()
	}
	out := s.Copy()
	out.Apply(f)

	return out
}

// scaled returns a fresh storage of the same kind multiplied by k.
func scaled(s storage.Storage, k float32) storage.Storage {
	out := s.Copy()
	out.MultiplyByScalar(k)

	return out
}
