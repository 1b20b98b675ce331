package f64view_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	fv "code.hybscloud.com/f64view"
)

func TestRoundTrip_BitExact_BothOrders(t *testing.T) {
	values := []float64{
		0,
		math.Copysign(0, -1),
		1, -1,
		math.Pi,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.Float64frombits(0x7ff80000deadbeef), // NaN with payload
	}
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		a, err := fv.NewLen(order, len(values))
		if err != nil {
			t.Fatalf("NewLen(%v): %v", order, err)
		}
		for i, v := range values {
			if err := a.Set(v, i); err != nil {
				t.Fatalf("Set(%v, %d): %v", v, i, err)
			}
		}
		for i, want := range values {
			got, ok, err := a.Get(i)
			if err != nil || !ok {
				t.Fatalf("Get(%d): ok=%v err=%v", i, ok, err)
			}
			if math.Float64bits(got) != math.Float64bits(want) {
				t.Fatalf("order=%v Get(%d)=%#x want %#x", order, i, math.Float64bits(got), math.Float64bits(want))
			}
		}
	}
}

func TestEndiannessDivergence(t *testing.T) {
	src := []float64{1.5, -2.25, math.Pi}
	le, _ := fv.FromSlice(binary.LittleEndian, src)
	be, _ := fv.FromSlice(binary.BigEndian, src)

	lb := le.Buffer().Bytes()
	bb := be.Buffer().Bytes()
	for i := range src {
		for j := 0; j < 8; j++ {
			if lb[i*8+j] != bb[i*8+7-j] {
				t.Fatalf("element %d byte %d: %#x vs %#x, groups not byte-reversed", i, j, lb[i*8+j], bb[i*8+7-j])
			}
		}
	}

	// Decoding with the mismatched order yields different values.
	wrong, err := fv.ViewBuffer(binary.BigEndian, le.Buffer())
	if err != nil {
		t.Fatalf("ViewBuffer: %v", err)
	}
	v, _, _ := wrong.Get(0)
	if v == 1.5 {
		t.Fatalf("mismatched decode reproduced the original value")
	}
}

func TestGet_PastEnd_IsAbsenceNotError(t *testing.T) {
	a, _ := fv.NewLen(binary.LittleEndian, 10)
	v, ok, err := a.Get(100)
	if err != nil {
		t.Fatalf("Get(100) err=%v want nil", err)
	}
	if ok || v != 0 {
		t.Fatalf("Get(100)=(%v,%v) want absence", v, ok)
	}
}

func TestGet_NegativeIndex_ReturnsInvalidIndex(t *testing.T) {
	a, _ := fv.NewLen(binary.LittleEndian, 1)
	if _, _, err := a.Get(-1); !errors.Is(err, fv.ErrInvalidIndex) {
		t.Fatalf("err=%v want ErrInvalidIndex", err)
	}
}

func TestSet_PastEnd_ReturnsIndexOutOfBounds(t *testing.T) {
	a, _ := fv.NewLen(binary.LittleEndian, 10)
	if err := a.Set(1.0, 100); !errors.Is(err, fv.ErrIndexOutOfBounds) {
		t.Fatalf("err=%v want ErrIndexOutOfBounds", err)
	}
	if err := a.Set(1.0, -1); !errors.Is(err, fv.ErrInvalidIndex) {
		t.Fatalf("err=%v want ErrInvalidIndex", err)
	}
}

func TestString_CommaJoined(t *testing.T) {
	a, _ := fv.FromSlice(binary.BigEndian, []float64{1, 2.5, -3})
	if s := a.String(); s != "1,2.5,-3" {
		t.Fatalf("String()=%q want %q", s, "1,2.5,-3")
	}
}

func TestString_SpecialValues(t *testing.T) {
	a, _ := fv.FromSlice(binary.LittleEndian, []float64{math.Inf(1), math.NaN()})
	if s := a.String(); s != "+Inf,NaN" {
		t.Fatalf("String()=%q want %q", s, "+Inf,NaN")
	}
}

func TestZeroArray_MethodsReturnNotView(t *testing.T) {
	var a fv.Array
	if _, _, err := a.Get(0); !errors.Is(err, fv.ErrNotView) {
		t.Fatalf("Get: err=%v want ErrNotView", err)
	}
	if err := a.Set(1, 0); !errors.Is(err, fv.ErrNotView) {
		t.Fatalf("Set: err=%v want ErrNotView", err)
	}
	if err := a.SetSlice([]float64{1}, 0); !errors.Is(err, fv.ErrNotView) {
		t.Fatalf("SetSlice: err=%v want ErrNotView", err)
	}
	if s := a.String(); s != "" {
		t.Fatalf("String()=%q want empty", s)
	}
}

func TestInstanceConstants(t *testing.T) {
	a, _ := fv.NewLen(binary.LittleEndian, 1)
	if fv.BytesPerElement != 8 {
		t.Fatalf("BytesPerElement=%d want 8", fv.BytesPerElement)
	}
	if a.BytesPerElement() != fv.BytesPerElement {
		t.Fatalf("instance BytesPerElement=%d want %d", a.BytesPerElement(), fv.BytesPerElement)
	}
	if a.Order() != binary.LittleEndian {
		t.Fatalf("Order()=%v want LittleEndian", a.Order())
	}
}
