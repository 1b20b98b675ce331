// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

// Set writes v at index i.
//
// Unlike Get, writing past the end is misuse: an index at or past Len fails
// with ErrIndexOutOfBounds, a negative index with ErrInvalidIndex.
func (a *Array) Set(v float64, i int) error {
	if err := a.valid(); err != nil {
		return err
	}
	if i < 0 {
		return ErrInvalidIndex
	}
	if i >= a.Len() {
		return ErrIndexOutOfBounds
	}
	a.encode(i, v)
	return nil
}

// SetSlice writes all of src starting at index i.
//
// Capacity is checked before any write: if i+len(src) exceeds Len, SetSlice
// fails with ErrInsufficientCapacity and the view is left fully unmodified.
// A []float64 never shares storage with the view's byte region, so the copy
// is a plain ascending elementwise encode.
func (a *Array) SetSlice(src []float64, i int) error {
	if err := a.valid(); err != nil {
		return err
	}
	if i < 0 {
		return ErrInvalidIndex
	}
	// Subtract form: i+len(src) can wrap for i near the int maximum.
	if i > a.Len()-len(src) {
		return ErrInsufficientCapacity
	}
	for j, v := range src {
		a.encode(i+j, v)
	}
	return nil
}

// SetSequence writes all of src starting at index i, with the same atomic
// capacity precheck as SetSlice.
func (a *Array) SetSequence(src Sequence, i int) error {
	if err := a.valid(); err != nil {
		return err
	}
	if src == nil {
		return ErrUnsupportedArgument
	}
	if i < 0 {
		return ErrInvalidIndex
	}
	n := src.Len()
	if i > a.Len()-n {
		return ErrInsufficientCapacity
	}
	for j := 0; j < n; j++ {
		a.encode(i+j, src.At(j))
	}
	return nil
}

// SetArray writes all of src's elements starting at index i, decoding each
// under src's byte order and re-encoding under the receiver's.
//
// When src borrows the same Buffer as the receiver, the one hazardous
// aliasing direction is a forward overlap: src's bytes start strictly
// before the destination range and extend strictly past its start, so an
// ascending copy would overwrite source bytes before reading them. That
// case materializes src into a temporary slice first. Every other
// configuration (disjoint ranges, identical ranges, destination preceding
// source) copies elementwise in ascending order: each read completes before
// any write can reach it.
func (a *Array) SetArray(src *Array, i int) error {
	if err := a.valid(); err != nil {
		return err
	}
	if src.valid() != nil {
		return ErrUnsupportedArgument
	}
	if i < 0 {
		return ErrInvalidIndex
	}
	n := src.Len()
	if i > a.Len()-n {
		return ErrInsufficientCapacity
	}
	if src.buf == a.buf {
		destStart := a.off + i*BytesPerElement
		srcStart := src.off
		srcEnd := src.off + src.ByteLength()
		if srcStart < destStart && srcEnd > destStart {
			tmp := make([]float64, n)
			for j := range tmp {
				tmp[j] = src.decode(j)
			}
			for j, v := range tmp {
				a.encode(i+j, v)
			}
			return nil
		}
	}
	for j := 0; j < n; j++ {
		a.encode(i+j, src.decode(j))
	}
	return nil
}

// SetAny is the polymorphic write facade over Set, SetSlice, SetSequence,
// and SetArray. Scalar numeric kinds are converted to float64; collection
// shapes dispatch to their bulk form. Anything else fails with
// ErrUnsupportedArgument.
func (a *Array) SetAny(value any, i int) error {
	switch v := value.(type) {
	case float64:
		return a.Set(v, i)
	case float32:
		return a.Set(float64(v), i)
	case int:
		return a.Set(float64(v), i)
	case int32:
		return a.Set(float64(v), i)
	case int64:
		return a.Set(float64(v), i)
	case uint:
		return a.Set(float64(v), i)
	case uint32:
		return a.Set(float64(v), i)
	case uint64:
		return a.Set(float64(v), i)
	case []float64:
		return a.SetSlice(v, i)
	case *Array:
		return a.SetArray(v, i)
	case Sequence:
		return a.SetSequence(v, i)
	}
	if err := a.valid(); err != nil {
		return err
	}
	return ErrUnsupportedArgument
}
