// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package f64view

import "math"

// decode reads the element at index i as an IEEE-754 double under the
// view's byte order. Bit-exact, including NaN payloads and signed zero.
func (a *Array) decode(i int) float64 {
	return math.Float64frombits(a.bo.Uint64(a.data[i*BytesPerElement:]))
}

// encode writes v at index i under the view's byte order.
func (a *Array) encode(i int, v float64) {
	a.bo.PutUint64(a.data[i*BytesPerElement:], math.Float64bits(v))
}
