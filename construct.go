// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

import (
	"encoding/binary"
	"iter"
	"math"
)

// Sequence is the indexed-collection capability consumed by construction
// and bulk writes: a nonnegative length plus positional element access.
type Sequence interface {
	Len() int
	At(i int) float64
}

// New returns a zero-length view. Degenerate but valid: Len, ByteLength,
// and String all behave, and SetSlice of an empty slice succeeds.
func New(order binary.ByteOrder) (*Array, error) {
	return NewLen(order, 0)
}

// NewLen returns a view over length freshly allocated, zero-initialized
// elements. A negative length fails with ErrInvalidIndex.
func NewLen(order binary.ByteOrder, length int) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, ErrInvalidIndex
	}
	buf := &Buffer{data: make([]byte, length*BytesPerElement)}
	return &Array{buf: buf, data: buf.data, off: 0, bo: order}, nil
}

// FromSlice returns a view over freshly allocated storage holding a copy of
// src, each element encoded under order.
func FromSlice(order binary.ByteOrder, src []float64) (*Array, error) {
	a, err := NewLen(order, len(src))
	if err != nil {
		return nil, err
	}
	for i, v := range src {
		a.encode(i, v)
	}
	return a, nil
}

// FromSequence is FromSlice for the abstract Sequence capability.
func FromSequence(order binary.ByteOrder, src Sequence) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrUnsupportedArgument
	}
	a, err := NewLen(order, src.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Len(); i++ {
		a.encode(i, src.At(i))
	}
	return a, nil
}

// FromSeq eagerly drains seq, in production order, then encodes the drained
// elements as FromSlice does. Finiteness is the caller's responsibility: an
// unbounded producer means unbounded memory growth, since draining has no
// cancellation.
func FromSeq(order binary.ByteOrder, seq iter.Seq[float64]) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, ErrUnsupportedArgument
	}
	var vals []float64
	for v := range seq {
		vals = append(vals, v)
	}
	return FromSlice(order, vals)
}

// ViewBuffer returns a view borrowing buf's full length. The remainder past
// byteOffset must divide into whole 8-byte elements; see ViewBufferAt.
func ViewBuffer(order binary.ByteOrder, buf *Buffer) (*Array, error) {
	return ViewBufferAt(order, buf, 0)
}

// ViewBufferAt returns a view borrowing buf from byteOffset to the buffer's
// end. A negative byteOffset fails with ErrInvalidIndex; an offset past the
// end, or a remainder that is not a whole number of elements, fails with
// ErrInsufficientMemory.
func ViewBufferAt(order binary.ByteOrder, buf *Buffer, byteOffset int) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, ErrInvalidBuffer
	}
	if byteOffset < 0 {
		return nil, ErrInvalidIndex
	}
	if byteOffset > len(buf.data) {
		return nil, ErrInsufficientMemory
	}
	rem := len(buf.data) - byteOffset
	if rem%BytesPerElement != 0 {
		return nil, ErrInsufficientMemory
	}
	return borrow(order, buf, byteOffset, rem/BytesPerElement), nil
}

// ViewBufferRegion returns a view borrowing exactly length elements of buf
// starting at byteOffset. Negative byteOffset or length fails with
// ErrInvalidIndex; a region the buffer cannot supply fails with
// ErrInsufficientMemory.
func ViewBufferRegion(order binary.ByteOrder, buf *Buffer, byteOffset, length int) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, ErrInvalidBuffer
	}
	if byteOffset < 0 || length < 0 {
		return nil, ErrInvalidIndex
	}
	if byteOffset > len(buf.data) {
		return nil, ErrInsufficientMemory
	}
	// Divide form: length*BytesPerElement can wrap for a huge length.
	if length > (len(buf.data)-byteOffset)/BytesPerElement {
		return nil, ErrInsufficientMemory
	}
	return borrow(order, buf, byteOffset, length), nil
}

func borrow(order binary.ByteOrder, buf *Buffer, byteOffset, length int) *Array {
	return &Array{
		buf:  buf,
		data: buf.data[byteOffset : byteOffset+length*BytesPerElement],
		off:  byteOffset,
		bo:   order,
	}
}

// NewAny is the polymorphic construction facade composed over the named
// constructors. With no extra argument it returns a zero-length view. With
// one argument, resolution order is: integer kinds (element count), then
// []float64 or Sequence, then *Buffer, then iter.Seq[float64]; anything
// else fails with ErrUnsupportedArgument. With two or three arguments the
// first must be a *Buffer (else ErrInvalidBuffer) followed by an integer
// byte offset and an optional integer element length.
func NewAny(order binary.ByteOrder, args ...any) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	switch len(args) {
	case 0:
		return New(order)
	case 1:
		if n, ok, err := asIndex(args[0]); ok || err != nil {
			if err != nil {
				return nil, err
			}
			return NewLen(order, n)
		}
		switch arg := args[0].(type) {
		case []float64:
			return FromSlice(order, arg)
		case Sequence:
			return FromSequence(order, arg)
		case *Buffer:
			return ViewBuffer(order, arg)
		case iter.Seq[float64]:
			return FromSeq(order, arg)
		}
		return nil, ErrUnsupportedArgument
	case 2, 3:
		buf, ok := args[0].(*Buffer)
		if !ok {
			return nil, ErrInvalidBuffer
		}
		byteOffset, ok, err := asIndex(args[1])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidIndex
		}
		if len(args) == 2 {
			return ViewBufferAt(order, buf, byteOffset)
		}
		length, ok, err := asIndex(args[2])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidIndex
		}
		return ViewBufferRegion(order, buf, byteOffset, length)
	}
	return nil, ErrUnsupportedArgument
}

// asIndex reports whether v is an integer kind and converts it. Values that
// cannot fit in an int fail with ErrInvalidIndex; non-integer kinds simply
// report ok=false so the caller can keep disambiguating.
func asIndex(v any) (n int, ok bool, err error) {
	switch x := v.(type) {
	case int:
		return x, true, nil
	case int8:
		return int(x), true, nil
	case int16:
		return int(x), true, nil
	case int32:
		return int(x), true, nil
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, true, ErrInvalidIndex
		}
		return int(x), true, nil
	case uint:
		if uint64(x) > math.MaxInt {
			return 0, true, ErrInvalidIndex
		}
		return int(x), true, nil
	case uint8:
		return int(x), true, nil
	case uint16:
		return int(x), true, nil
	case uint32:
		return int(x), true, nil
	case uint64:
		if x > math.MaxInt {
			return 0, true, ErrInvalidIndex
		}
		return int(x), true, nil
	}
	return 0, false, nil
}
