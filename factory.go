// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

import (
	"encoding/binary"
	"iter"
)

// MapFunc transforms a source element before it is encoded. i is the
// element's output index. Go closures carry their own context, so there is
// no separate evaluation-context parameter.
type MapFunc func(v float64, i int) float64

// From builds a view of len(src) elements, applying fn to each source
// element and encoding the result directly into its slot. No intermediate
// mapped slice is materialized. A nil fn is the identity.
func From(order binary.ByteOrder, src []float64, fn MapFunc) (*Array, error) {
	a, err := NewLen(order, len(src))
	if err != nil {
		return nil, err
	}
	for i, v := range src {
		if fn != nil {
			v = fn(v, i)
		}
		a.encode(i, v)
	}
	return a, nil
}

// FromSequenceFunc is From for the abstract Sequence capability.
func FromSequenceFunc(order binary.ByteOrder, src Sequence, fn MapFunc) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrUnsupportedSource
	}
	a, err := NewLen(order, src.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Len(); i++ {
		v := src.At(i)
		if fn != nil {
			v = fn(v, i)
		}
		a.encode(i, v)
	}
	return a, nil
}

// FromSeqFunc drains seq eagerly, applying fn per produced element during
// draining, then encodes the drained elements. Finiteness is the caller's
// responsibility, as with FromSeq.
func FromSeqFunc(order binary.ByteOrder, seq iter.Seq[float64], fn MapFunc) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, ErrUnsupportedSource
	}
	var vals []float64
	i := 0
	for v := range seq {
		if fn != nil {
			v = fn(v, i)
		}
		vals = append(vals, v)
		i++
	}
	return FromSlice(order, vals)
}

// FromAny is the polymorphic factory facade over From, FromSequenceFunc,
// and FromSeqFunc. Unrecognized sources fail with ErrUnsupportedSource.
func FromAny(order binary.ByteOrder, src any, fn MapFunc) (*Array, error) {
	if err := resolveByteOrder(order); err != nil {
		return nil, err
	}
	switch s := src.(type) {
	case []float64:
		return From(order, s, fn)
	case Sequence:
		return FromSequenceFunc(order, s, fn)
	case iter.Seq[float64]:
		return FromSeqFunc(order, s, fn)
	}
	return nil, ErrUnsupportedSource
}

// Of builds a view from the variadic elements in call order.
func Of(order binary.ByteOrder, elems ...float64) (*Array, error) {
	return FromSlice(order, elems)
}
