// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

import "errors"

var (
	// ErrInvalidByteOrder reports an absent or unrecognized byte order.
	// Only binary.LittleEndian and binary.BigEndian are accepted.
	ErrInvalidByteOrder = errors.New("f64view: invalid byte order")

	// ErrInvalidIndex reports an index, byte offset, or length argument
	// that is not a nonnegative integer.
	ErrInvalidIndex = errors.New("f64view: index must be a nonnegative integer")

	// ErrIndexOutOfBounds reports a scalar write at an index at or past
	// the end of the view.
	ErrIndexOutOfBounds = errors.New("f64view: index out of bounds")

	// ErrInsufficientCapacity reports a bulk write that would extend past
	// the end of the view. The view is left unmodified.
	ErrInsufficientCapacity = errors.New("f64view: insufficient capacity for bulk write")

	// ErrInsufficientMemory reports a requested view region that the
	// backing buffer cannot supply in whole 8-byte elements.
	ErrInsufficientMemory = errors.New("f64view: buffer region too small")

	// ErrInvalidBuffer reports a missing *Buffer where one is required.
	ErrInvalidBuffer = errors.New("f64view: invalid buffer argument")

	// ErrUnsupportedArgument reports a construction or write argument that
	// matches none of the recognized shapes.
	ErrUnsupportedArgument = errors.New("f64view: unsupported argument")

	// ErrUnsupportedSource reports a factory source that matches none of
	// the recognized shapes.
	ErrUnsupportedSource = errors.New("f64view: unsupported source")

	// ErrNotView reports a method call on a receiver that was not built by
	// one of the package constructors (for example a zero Array value).
	ErrNotView = errors.New("f64view: receiver is not a valid view")
)
