// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package f64view provides a fixed-width (8-byte) floating-point array view
// over raw bytes with an explicitly chosen byte order.
//
// Semantics and design:
//   - Explicit byte order: every view encodes its elements as IEEE-754 doubles
//     in little- or big-endian order chosen at construction, never inferred
//     from the host. This makes the view suitable for externally defined
//     binary layouts (wire formats, foreign linear memory, file formats).
//   - Borrowed or owned storage: a view either allocates its own backing
//     Buffer or borrows a caller-supplied one. A borrowed Buffer is shared,
//     never resized or freed by the view; writes through the view are visible
//     through the Buffer and vice versa.
//   - Overlap-safe bulk writes: SetArray detects the one hazardous aliasing
//     direction (source bytes trailing into the destination's leading bytes
//     within the same Buffer) and materializes the source first. All other
//     configurations copy elementwise in ascending order.
//   - io compatibility: Array implements io.WriterTo and io.ReaderFrom over
//     its raw region bytes, and ReadAll honors iox.ErrWouldBlock with the
//     same retry policy options as other hybscloud I/O layers.
//
// All failures are immediate, synchronous sentinel errors checked with
// errors.Is; nothing is logged or swallowed internally. Reading past the end
// of a view is not an error: Get reports absence through its ok result.
package f64view

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// BytesPerElement is the fixed element width in bytes.
const BytesPerElement = 8

// Array is a float64 view over a region of a Buffer.
//
// The region identity, element count, and byte order are fixed at
// construction; only element contents are mutable, via Set and the bulk
// write methods. The zero Array is not a valid view: methods on it fail
// with ErrNotView.
type Array struct {
	buf  *Buffer
	data []byte // buf.data[off : off+byteLength]
	off  int
	bo   binary.ByteOrder
}

func (a *Array) valid() error {
	if a == nil || a.buf == nil || a.bo == nil {
		return ErrNotView
	}
	return nil
}

// Len returns the number of elements in the view.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data) / BytesPerElement
}

// ByteLength returns the length of the viewed region in bytes.
func (a *Array) ByteLength() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// ByteOffset returns the view's starting offset within its Buffer.
func (a *Array) ByteOffset() int {
	if a == nil {
		return 0
	}
	return a.off
}

// BytesPerElement returns the fixed element width. It always equals the
// package constant and exists for callers holding only an instance.
func (a *Array) BytesPerElement() int { return BytesPerElement }

// Order returns the view's byte order.
func (a *Array) Order() binary.ByteOrder {
	if a == nil {
		return nil
	}
	return a.bo
}

// Buffer returns the backing Buffer. For views constructed over a
// caller-supplied Buffer this is that same Buffer.
func (a *Array) Buffer() *Buffer {
	if a == nil {
		return nil
	}
	return a.buf
}

// Get returns the element at index i. ok reports whether i addresses an
// element; an index at or past Len is absence, not an error. A negative i
// fails with ErrInvalidIndex.
func (a *Array) Get(i int) (v float64, ok bool, err error) {
	if err := a.valid(); err != nil {
		return 0, false, err
	}
	if i < 0 {
		return 0, false, ErrInvalidIndex
	}
	if i >= a.Len() {
		return 0, false, nil
	}
	return a.decode(i), true, nil
}

// String returns every element in ascending index order as its shortest
// round-trip decimal form, joined by commas. An empty view yields "".
func (a *Array) String() string {
	if a.valid() != nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(a.decode(i), 'g', -1, 64))
	}
	return sb.String()
}
