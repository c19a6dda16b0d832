// SPDX-License-Identifier: MIT

// Package snapshot stores a single storage in a flat little-endian file and
// reads it back through a read-only memory map.
//
// Layout:
//
//	offset  size  field
//	0       4     magic "LVU1"
//	4       4     kind (1 dense, 2 sparse)
//	8       8     rows
//	16      8     cols
//	24      8     nnz (sparse), rows*cols (dense)
//	32      ...   dense: rows*cols float32 values
//	              sparse: nnz int64 indices, then nnz float32 values
//
// Read copies the payload out of the mapping before unmapping, so the
// returned storage never references file memory.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvunits/storage"
)

const (
	headerSize = 32
	cellSize   = 4
	indexSize  = 8

	// maxSide bounds rows and cols so rows*cols fits an int64 linear index.
	maxSide = math.MaxInt32
)

var magic = [4]byte{'L', 'V', 'U', '1'}

var (
	// ErrBadMagic indicates a file that is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrCorrupt indicates a header or payload inconsistent with the file.
	ErrCorrupt = errors.New("snapshot: corrupt file")
	// ErrUnsupportedKind indicates a storage kind the format cannot hold.
	ErrUnsupportedKind = errors.New("snapshot: unsupported storage kind")
)

var le = binary.LittleEndian

// header is the fixed prefix of every snapshot.
type header struct {
	kind       storage.Kind
	rows, cols int
	count      int
}

func (h header) fileSize() int {
	if h.kind == storage.KindSparse {
		return headerSize + h.count*(indexSize+cellSize)
	}

	return headerSize + h.count*cellSize
}

func (h header) encode(b []byte) {
	copy(b[0:4], magic[:])
	le.PutUint32(b[4:8], uint32(h.kind))
	le.PutUint64(b[8:16], uint64(h.rows))
	le.PutUint64(b[16:24], uint64(h.cols))
	le.PutUint64(b[24:32], uint64(h.count))
}

// decodeHeader validates the prefix against the file size.
func decodeHeader(b []byte) (header, error) {
	if len(b) < headerSize {
		return header{}, fmt.Errorf("snapshot: %d byte file: %w", len(b), ErrCorrupt)
	}
	if [4]byte(b[0:4]) != magic {
		return header{}, ErrBadMagic
	}
	kind := storage.Kind(le.Uint32(b[4:8]))
	if kind != storage.KindDense && kind != storage.KindSparse {
		return header{}, fmt.Errorf("snapshot: kind %d: %w", kind, ErrUnsupportedKind)
	}
	rows, cols, count := le.Uint64(b[8:16]), le.Uint64(b[16:24]), le.Uint64(b[24:32])
	if rows > maxSide || cols > maxSide || count > rows*cols || count > uint64(len(b)) {
		return header{}, fmt.Errorf("snapshot: header %dx%d/%d: %w", rows, cols, count, ErrCorrupt)
	}
	h := header{kind: kind, rows: int(rows), cols: int(cols), count: int(count)}
	if kind == storage.KindDense && h.count != h.rows*h.cols {
		return header{}, fmt.Errorf("snapshot: dense count %d for %dx%d: %w", h.count, h.rows, h.cols, ErrCorrupt)
	}
	if h.fileSize() != len(b) {
		return header{}, fmt.Errorf("snapshot: size %d, header wants %d: %w", len(b), h.fileSize(), ErrCorrupt)
	}

	return h, nil
}

// Write stores s at path, replacing any existing file. The file is sized up
// front and filled through a writable mapping.
func Write(path string, s storage.Storage) (err error) {
	if s == nil {
		return fmt.Errorf("snapshot: nil storage: %w", ErrUnsupportedKind)
	}
	h := header{kind: s.Kind(), rows: s.Rows(), cols: s.Cols()}
	var sp *storage.Sparse
	switch h.kind {
	case storage.KindDense:
		h.count = h.rows * h.cols
	case storage.KindSparse:
		sp = s.ToSparse()
		h.count = sp.NNZ()
	default:
		return fmt.Errorf("snapshot: kind %s: %w", h.kind, ErrUnsupportedKind)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	if err = f.Truncate(int64(h.fileSize())); err != nil {
		return err
	}
	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, data.Unmap()) }()

	h.encode(data[:headerSize])
	payload := data[headerSize:]
	if sp != nil {
		putSparse(payload, sp)
	} else {
		putDense(payload, s)
	}

	return data.Flush()
}

func putDense(b []byte, s storage.Storage) {
	off := 0
	for i := 0; i < s.Rows(); i++ {
		for j := 0; j < s.Cols(); j++ {
			le.PutUint32(b[off:], math.Float32bits(s.At(i, j)))
			off += cellSize
		}
	}
}

func putSparse(b []byte, s *storage.Sparse) {
	indices, values := s.Indices(), s.Values()
	vals := b[len(indices)*indexSize:]
	for k, ix := range indices {
		le.PutUint64(b[k*indexSize:], uint64(ix))
		le.PutUint32(vals[k*cellSize:], math.Float32bits(values[k]))
	}
}

// Read loads the snapshot at path.
// Errors: ErrBadMagic, ErrCorrupt, ErrUnsupportedKind, or the os error.
func Read(path string, opts ...storage.Option) (s storage.Storage, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < headerSize {
		return nil, fmt.Errorf("snapshot: %d byte file: %w", info.Size(), ErrCorrupt)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer func() { err = multierr.Append(err, data.Unmap()) }()

	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	payload := data[headerSize:]
	if h.kind == storage.KindSparse {
		return readSparse(payload, h, opts)
	}

	return readDense(payload, h, opts)
}

func readDense(b []byte, h header, opts []storage.Option) (storage.Storage, error) {
	flat := make([]float32, h.count)
	for k := range flat {
		flat[k] = math.Float32frombits(le.Uint32(b[k*cellSize:]))
	}

	return storage.NewDense(flat, h.rows, h.cols, opts...)
}

// readSparse rejects indices that are out of range or not strictly ascending,
// because NewSparse trusts its input.
func readSparse(b []byte, h header, opts []storage.Option) (storage.Storage, error) {
	indices := make([]int64, h.count)
	values := make([]float32, h.count)
	vals := b[h.count*indexSize:]
	limit := int64(h.rows) * int64(h.cols)
	for k := range indices {
		ix := int64(le.Uint64(b[k*indexSize:]))
		if ix < 0 || ix >= limit || (k > 0 && ix <= indices[k-1]) {
			return nil, fmt.Errorf("snapshot: index %d at entry %d: %w", ix, k, ErrCorrupt)
		}
		indices[k] = ix
		values[k] = math.Float32frombits(le.Uint32(vals[k*cellSize:]))
	}

	return storage.NewSparse(values, indices, h.rows*h.cols, h.rows, h.cols, opts...), nil
}
