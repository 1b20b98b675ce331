// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

import (
	"encoding/binary"
	"io"
	"runtime"
	"time"

	"code.hybscloud.com/iox"
)

// These are provided as package-level aliases so callers can reference the
// semantic control-flow errors without importing iox directly.
var (
	// ErrWouldBlock means “no further progress without waiting”.
	//
	// It is an expected, non-failure control-flow signal for non-blocking I/O.
	// Any returned byte count still represents real progress.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means “this completion is usable and more completions will follow”.
	ErrMore = iox.ErrMore
)

// WriteTo implements io.WriterTo. It emits the view's region bytes as-is:
// elements are already laid out in the view's byte order, so the output is
// the external wire representation. Short writes are retried per the
// io.Writer contract; semantic control-flow errors (ErrWouldBlock, ErrMore)
// from w propagate with the progress count.
func (a *Array) WriteTo(w io.Writer) (int64, error) {
	if err := a.valid(); err != nil {
		return 0, err
	}
	if w == nil {
		return 0, ErrUnsupportedArgument
	}
	var total int64
	p := a.data
	for len(p) > 0 {
		n, err := w.Write(p)
		if n > 0 {
			total += int64(n)
			p = p[n:]
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			// Guard against broken Writers that violate the io.Writer
			// contract by returning (0, nil) on a non-empty buffer.
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// ReadFrom implements io.ReaderFrom. It fills the view's region bytes from
// r, stopping when the view is full or r is exhausted. A clean EOF at an
// element boundary is success; EOF inside an element returns
// io.ErrUnexpectedEOF with the bytes read so far already stored. Semantic
// control-flow errors from r propagate with the progress count; ReadFrom
// keeps no fill position across calls, so a retry starts over at byte 0.
func (a *Array) ReadFrom(r io.Reader) (int64, error) {
	if err := a.valid(); err != nil {
		return 0, err
	}
	if r == nil {
		return 0, ErrUnsupportedArgument
	}
	var total int64
	for total < int64(len(a.data)) {
		n, err := r.Read(a.data[total:])
		if n > 0 {
			total += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				if total%BytesPerElement != 0 {
					return total, io.ErrUnexpectedEOF
				}
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			// Broken io.Reader contract: (0, nil) on a non-empty buffer.
			return total, io.ErrNoProgress
		}
	}
	return total, nil
}

// ReadAll drains r to EOF and returns a view over the bytes read, decoded
// under order. The byte stream must end at an 8-byte element boundary, else
// ReadAll fails with io.ErrUnexpectedEOF.
//
// iox.ErrWouldBlock from r is handled per the configured retry policy: the
// default is nonblock (the error propagates immediately); WithBlock or a
// positive WithRetryDelay emulate cooperative blocking.
func ReadAll(order binary.ByteOrder, r io.Reader, opts ...Option) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrUnsupportedArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	var data []byte
	chunk := make([]byte, 32*BytesPerElement)
	for {
		n, err := readOnce(r, chunk, o.RetryDelay)
		if n > 0 {
			data = append(data, chunk[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}
	if len(data)%BytesPerElement != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	buf := &Buffer{data: data}
	return borrow(order, buf, 0, len(data)/BytesPerElement), nil
}

// readOnce reads from r, retrying on ErrWouldBlock per the retry policy and
// guarding against contract-violating readers.
func readOnce(r io.Reader, p []byte, retryDelay time.Duration) (int, error) {
	for {
		n, err := r.Read(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrNoProgress
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if retryDelay < 0 {
			return n, err
		}
		if retryDelay == 0 {
			runtime.Gosched()
			continue
		}
		time.Sleep(retryDelay)
	}
}
