// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

// Buffer is an allocatable fixed-size contiguous byte blob. Views are
// constructed over a Buffer or a sub-range of one; Buffer identity is what
// decides whether two views alias the same memory.
//
// A Buffer never grows or shrinks. It holds no lifetime machinery beyond
// ordinary garbage collection: a borrowed Buffer simply must stay reachable
// for as long as any view over it is used.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a zero-initialized Buffer of byteLength bytes.
// A negative byteLength fails with ErrInvalidIndex.
func NewBuffer(byteLength int) (*Buffer, error) {
	if byteLength < 0 {
		return nil, ErrInvalidIndex
	}
	return &Buffer{data: make([]byte, byteLength)}, nil
}

// ByteLength returns the total size of the buffer in bytes.
func (b *Buffer) ByteLength() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the live backing storage. Mutations through the returned
// slice are visible to every view over the buffer, and writes through any
// view are visible here.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}
