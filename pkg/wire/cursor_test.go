package wire

import (
	"errors"
	"math"
	"testing"
)

func TestReaderLittleEndian(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b})
	if v := r.Uint8(); v != 0x01 {
		t.Errorf("Uint8 = %#x, want 0x01", v)
	}
	if v := r.Uint16(); v != 0x0302 {
		t.Errorf("Uint16 = %#x, want 0x0302", v)
	}
	if v := r.Uint32(); v != 0x07060504 {
		t.Errorf("Uint32 = %#x, want 0x07060504", v)
	}
	if v := r.Remaining(); v != 4 {
		t.Errorf("Remaining = %d, want 4", v)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_ = r.Uint32()
	if !errors.Is(r.Err(), ErrTruncated) {
		t.Fatalf("Err = %v, want ErrTruncated", r.Err())
	}
	// Later reads keep returning zero values without panicking.
	if v := r.Uint64(); v != 0 {
		t.Errorf("Uint64 after error = %d, want 0", v)
	}
	if v := r.Uint8(); v != 0 {
		t.Errorf("Uint8 after error = %d, want 0", v)
	}
}

func TestWriterReaderSymmetry(t *testing.T) {
	w := NewWriter()
	w.PutUint8(7)
	w.PutBool(true)
	w.PutUint16(0xbeef)
	w.PutInt16(-2)
	w.PutUint32(0xdeadbeef)
	w.PutUint64(1 << 60)
	w.PutFloat32(1.5)
	w.PutZeros(3)

	r := NewReader(w.Bytes())
	if v := r.Uint8(); v != 7 {
		t.Errorf("Uint8 = %d", v)
	}
	if !r.Bool() {
		t.Error("Bool = false, want true")
	}
	if v := r.Uint16(); v != 0xbeef {
		t.Errorf("Uint16 = %#x", v)
	}
	if v := r.Int16(); v != -2 {
		t.Errorf("Int16 = %d", v)
	}
	if v := r.Uint32(); v != 0xdeadbeef {
		t.Errorf("Uint32 = %#x", v)
	}
	if v := r.Uint64(); v != 1<<60 {
		t.Errorf("Uint64 = %d", v)
	}
	if v := r.Float32(); v != 1.5 {
		t.Errorf("Float32 = %v", v)
	}
	r.Skip(3)
	if r.Remaining() != 0 || r.Err() != nil {
		t.Fatalf("Remaining = %d, Err = %v", r.Remaining(), r.Err())
	}
}

func TestFloat32NaNPreserved(t *testing.T) {
	bits := uint32(0x7fc00123) // a NaN with payload bits set
	w := NewWriter()
	w.PutFloat32(math.Float32frombits(bits))
	got := NewReader(w.Bytes()).Float32()
	if math.Float32bits(got) != bits {
		t.Errorf("NaN bits = %#x, want %#x", math.Float32bits(got), bits)
	}
}
