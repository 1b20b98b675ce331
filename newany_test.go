package f64view_test

import (
	"encoding/binary"
	"errors"
	"testing"

	fv "code.hybscloud.com/f64view"
)

func TestNewAny_NoArgs_ZeroLength(t *testing.T) {
	a, err := fv.NewAny(binary.LittleEndian)
	if err != nil {
		t.Fatalf("NewAny: %v", err)
	}
	if a.Len() != 0 {
		t.Fatalf("Len=%d want 0", a.Len())
	}
}

func TestNewAny_IntegerKinds_AllocateByLength(t *testing.T) {
	for _, arg := range []any{int(3), int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3)} {
		a, err := fv.NewAny(binary.LittleEndian, arg)
		if err != nil {
			t.Fatalf("NewAny(%T): %v", arg, err)
		}
		if a.Len() != 3 {
			t.Fatalf("NewAny(%T): Len=%d want 3", arg, a.Len())
		}
	}
}

func TestNewAny_NegativeInteger_ReturnsInvalidIndex(t *testing.T) {
	if _, err := fv.NewAny(binary.LittleEndian, -2); !errors.Is(err, fv.ErrInvalidIndex) {
		t.Fatalf("err=%v want ErrInvalidIndex", err)
	}
}

func TestNewAny_Slice_EncodesElements(t *testing.T) {
	a, err := fv.NewAny(binary.BigEndian, []float64{1, 2})
	if err != nil {
		t.Fatalf("NewAny: %v", err)
	}
	if v, _, _ := a.Get(1); v != 2 {
		t.Fatalf("Get(1)=%v want 2", v)
	}
}

func TestNewAny_Sequence(t *testing.T) {
	a, err := fv.NewAny(binary.LittleEndian, sliceSeq{5, 6, 7})
	if err != nil {
		t.Fatalf("NewAny: %v", err)
	}
	if a.Len() != 3 {
		t.Fatalf("Len=%d want 3", a.Len())
	}
	if v, _, _ := a.Get(2); v != 7 {
		t.Fatalf("Get(2)=%v want 7", v)
	}
}

func TestNewAny_Buffer_SpansFullLength(t *testing.T) {
	buf, _ := fv.NewBuffer(24)
	a, err := fv.NewAny(binary.LittleEndian, buf)
	if err != nil {
		t.Fatalf("NewAny: %v", err)
	}
	if a.Len() != 3 || a.Buffer() != buf {
		t.Fatalf("Len=%d sharesBuffer=%v want 3/true", a.Len(), a.Buffer() == buf)
	}
}

func TestNewAny_BufferWithOffsetAndLength(t *testing.T) {
	buf, _ := fv.NewBuffer(32)
	a, err := fv.NewAny(binary.LittleEndian, buf, 8)
	if err != nil {
		t.Fatalf("two args: %v", err)
	}
	if a.Len() != 3 || a.ByteOffset() != 8 {
		t.Fatalf("two args: len=%d off=%d want 3/8", a.Len(), a.ByteOffset())
	}

	a, err = fv.NewAny(binary.LittleEndian, buf, 8, 2)
	if err != nil {
		t.Fatalf("three args: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("three args: len=%d want 2", a.Len())
	}

	if _, err := fv.NewAny(binary.LittleEndian, buf, 8, 3); !errors.Is(err, fv.ErrInsufficientMemory) {
		t.Fatalf("err=%v want ErrInsufficientMemory", err)
	}
}

func TestNewAny_SecondArgNotBuffer_ReturnsInvalidBuffer(t *testing.T) {
	if _, err := fv.NewAny(binary.LittleEndian, "x", 0); !errors.Is(err, fv.ErrInvalidBuffer) {
		t.Fatalf("err=%v want ErrInvalidBuffer", err)
	}
}

func TestNewAny_NonIntegerOffset_ReturnsInvalidIndex(t *testing.T) {
	buf, _ := fv.NewBuffer(16)
	if _, err := fv.NewAny(binary.LittleEndian, buf, "zero"); !errors.Is(err, fv.ErrInvalidIndex) {
		t.Fatalf("offset: err=%v want ErrInvalidIndex", err)
	}
	if _, err := fv.NewAny(binary.LittleEndian, buf, 0, 1.5); !errors.Is(err, fv.ErrInvalidIndex) {
		t.Fatalf("length: err=%v want ErrInvalidIndex", err)
	}
}

func TestNewAny_UnrecognizedShape_ReturnsUnsupportedArgument(t *testing.T) {
	if _, err := fv.NewAny(binary.LittleEndian, struct{}{}); !errors.Is(err, fv.ErrUnsupportedArgument) {
		t.Fatalf("err=%v want ErrUnsupportedArgument", err)
	}
	if _, err := fv.NewAny(binary.LittleEndian, 1, 2, 3, 4); !errors.Is(err, fv.ErrUnsupportedArgument) {
		t.Fatalf("four args: err=%v want ErrUnsupportedArgument", err)
	}
}
