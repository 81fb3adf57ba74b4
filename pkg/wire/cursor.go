package wire

import (
	"encoding/binary"
	"math"
)

// Reader consumes a byte slice as a sequence of little-endian values.
//
// Reads never panic on short input. The first out-of-bounds read
// records ErrTruncated and every later read returns the zero value, so
// a caller can issue a run of reads and check Err once at the end.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader returns a Reader over buf. The Reader aliases buf and does
// not copy it.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns the first error encountered by a read, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf)-r.off < n {
		r.err = ErrTruncated
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Skip discards n bytes. Reserved header regions are skipped rather
// than decoded; their contents carry no meaning regardless of value.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// Uint8 reads one byte.
func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool reads one byte, treating any nonzero value as true.
func (r *Reader) Bool() bool {
	return r.Uint8() != 0
}

// Uint16 reads a little-endian 16-bit value.
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Int16 reads a little-endian 16-bit two's complement value.
func (r *Reader) Int16() int16 {
	return int16(r.Uint16())
}

// Uint32 reads a little-endian 32-bit value.
func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 reads a little-endian 64-bit value.
func (r *Reader) Uint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Float32 reads a little-endian IEEE 754 single-precision value. The
// bit pattern is carried through unchanged, NaN included.
func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

// Bytes fills dst with the next len(dst) bytes.
func (r *Reader) Bytes(dst []byte) {
	b := r.take(len(dst))
	if b != nil {
		copy(dst, b)
	}
}

// Writer appends little-endian values to a growing buffer. Writes
// always succeed.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the written bytes. The slice aliases the Writer's
// internal buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// PutUint8 appends one byte.
func (w *Writer) PutUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutBool appends one byte, 1 for true and 0 for false.
func (w *Writer) PutBool(v bool) {
	if v {
		w.PutUint8(1)
	} else {
		w.PutUint8(0)
	}
}

// PutUint16 appends a little-endian 16-bit value.
func (w *Writer) PutUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// PutInt16 appends a little-endian 16-bit two's complement value.
func (w *Writer) PutInt16(v int16) {
	w.PutUint16(uint16(v))
}

// PutUint32 appends a little-endian 32-bit value.
func (w *Writer) PutUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutUint64 appends a little-endian 64-bit value.
func (w *Writer) PutUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// PutFloat32 appends a little-endian IEEE 754 single-precision value.
func (w *Writer) PutFloat32(v float32) {
	w.PutUint32(math.Float32bits(v))
}

// PutBytes appends b verbatim.
func (w *Writer) PutBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutZeros appends n zero bytes. Reserved wire regions are always
// written as zero.
func (w *Writer) PutZeros(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}
