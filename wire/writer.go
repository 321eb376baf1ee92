// Package wire implements the append-only writer and positional reader
// that every GRAIL protocol message is built from: a big-endian buffer
// codec with length-prefixed containers and UTF-16 string helpers.
//
// This is component B of the wire layer. It is built directly on top of
// internal/netorder and knows nothing about any particular message kind;
// the proto/* packages compose it into the 26 GRAIL message encoders and
// decoders.
package wire

import (
	"math"
	"unicode/utf16"

	"github.com/grail-owl/grailnet/internal/netorder"
)

// Writer is a growable byte buffer that appends fields in network byte
// order. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns a ready-to-use Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the writer's accumulated buffer. The slice is owned by the
// Writer; callers that need an independent copy must clone it.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// AppendUint8 appends a single byte and returns the number of bytes written.
func (w *Writer) AppendUint8(v uint8) int {
	w.buf = append(w.buf, v)
	return 1
}

// AppendUint16 appends v in network byte order.
func (w *Writer) AppendUint16(v uint16) int {
	return w.appendFixed(2, func(b []byte) { netorder.Native.PutUint16(b, v) })
}

// AppendUint32 appends v in network byte order.
func (w *Writer) AppendUint32(v uint32) int {
	return w.appendFixed(4, func(b []byte) { netorder.Native.PutUint32(b, v) })
}

// AppendUint64 appends v in network byte order.
func (w *Writer) AppendUint64(v uint64) int {
	return w.appendFixed(8, func(b []byte) { netorder.Native.PutUint64(b, v) })
}

// AppendInt64 appends v, a signed 64-bit GRAIL time or similar, in network
// byte order.
func (w *Writer) AppendInt64(v int64) int {
	return w.AppendUint64(uint64(v))
}

// AppendInt32 appends v in network byte order.
func (w *Writer) AppendInt32(v int32) int {
	return w.AppendUint32(uint32(v))
}

// AppendFloat32 appends the IEEE-754 bit pattern of v in network byte order.
func (w *Writer) AppendFloat32(v float32) int {
	return w.AppendUint32(math.Float32bits(v))
}

// AppendFloat64 appends the IEEE-754 double precision bit pattern of v in
// network byte order, used by DevicePosition's latitude/longitude fields.
func (w *Writer) AppendFloat64(v float64) int {
	return w.AppendUint64(math.Float64bits(v))
}

// AppendUint128 appends the high word then the low word, each in network
// byte order, per the uint128 wire layout (§3, §4.A).
func (w *Writer) AppendUint128(hi, lo uint64) int {
	n := w.AppendUint64(hi)
	n += w.AppendUint64(lo)
	return n
}

// AppendBytes appends b verbatim with no length prefix and returns len(b).
func (w *Writer) AppendBytes(b []byte) int {
	w.buf = append(w.buf, b...)
	return len(b)
}

// AppendUTF16 appends each code unit of units in network byte order, with
// no size prefix.
func (w *Writer) AppendUTF16(units []uint16) int {
	n := 0
	for _, u := range units {
		n += w.AppendUint16(u)
	}
	return n
}

// AppendSizedUTF16 appends a u32 byte length (2 * len(units)) followed by
// the code units, in network byte order.
func (w *Writer) AppendSizedUTF16(units []uint16) int {
	n := w.AppendUint32(uint32(len(units) * 2))
	n += w.AppendUTF16(units)
	return n
}

// AppendUTF16String is a convenience wrapper that encodes a Go string as
// UTF-16 code units before appending it with no size prefix, for the
// frame-terminal string fields described in §4.E.4 and §9.
func (w *Writer) AppendUTF16String(s string) int {
	return w.AppendUTF16(utf16.Encode([]rune(s)))
}

// AppendSizedUTF16String is a convenience wrapper that encodes a Go string
// as UTF-16 code units before appending it sized.
func (w *Writer) AppendSizedUTF16String(s string) int {
	return w.AppendSizedUTF16(utf16.Encode([]rune(s)))
}

// AppendSizedBytes appends a u32 byte length followed by b verbatim.
func (w *Writer) AppendSizedBytes(b []byte) int {
	n := w.AppendUint32(uint32(len(b)))
	n += w.AppendBytes(b)
	return n
}

// OverwriteUint32 replaces the 4 bytes at offset with v in network byte
// order. It is used to back-patch the length prefix once a message body has
// been fully written.
func (w *Writer) OverwriteUint32(offset int, v uint32) {
	b := w.buf[offset : offset+4]
	netorder.Native.PutUint32(b, v)
	netorder.Swap(b)
}

// Reserve appends n zero bytes, returning their offset, for fields whose
// value is only known after the rest of the body is written (e.g. the
// length prefix).
func (w *Writer) Reserve(n int) int {
	offset := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return offset
}

func (w *Writer) appendFixed(size int, put func([]byte)) int {
	offset := len(w.buf)
	w.buf = append(w.buf, make([]byte, size)...)
	put(w.buf[offset:])
	netorder.Swap(w.buf[offset : offset+size])
	return size
}
