package wire

import (
	"math"
	"unicode/utf16"

	"github.com/grail-owl/grailnet/internal/netorder"
)

// Reader wraps an immutable byte buffer with a cursor and a sticky
// out-of-range flag. Once a read would exceed the buffer, every subsequent
// read returns its type's zero value and OutOfRange latches true — this is
// the decoder contract described in §4.B and §9: decoders read every field
// of a message and gate the final result on OutOfRange once, instead of
// checking after each individual field.
type Reader struct {
	buf        []byte
	pos        int
	outOfRange bool
}

// NewReader wraps buf for sequential reading. buf is not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// OutOfRange reports whether any read so far has exceeded the buffer.
func (r *Reader) OutOfRange() bool {
	return r.outOfRange
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes, or 0 if the cursor is
// already out of range.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// require ensures n more bytes are available, latching OutOfRange and
// returning false otherwise.
func (r *Reader) require(n int) bool {
	if r.outOfRange || r.pos+n > len(r.buf) {
		r.outOfRange = true
		return false
	}
	return true
}

func (r *Reader) readFixed(size int, get func([]byte) uint64) uint64 {
	if !r.require(size) {
		return 0
	}
	b := make([]byte, size)
	copy(b, r.buf[r.pos:r.pos+size])
	netorder.Swap(b)
	r.pos += size
	return get(b)
}

// ReadUint8 reads one byte, advancing the cursor.
func (r *Reader) ReadUint8() uint8 {
	if !r.require(1) {
		return 0
	}
	v := r.buf[r.pos]
	r.pos++
	return v
}

// ReadUint16 reads a big-endian u16.
func (r *Reader) ReadUint16() uint16 {
	return uint16(r.readFixed(2, func(b []byte) uint64 { return uint64(netorder.Native.Uint16(b)) }))
}

// ReadUint32 reads a big-endian u32.
func (r *Reader) ReadUint32() uint32 {
	return uint32(r.readFixed(4, func(b []byte) uint64 { return uint64(netorder.Native.Uint32(b)) }))
}

// ReadUint64 reads a big-endian u64.
func (r *Reader) ReadUint64() uint64 {
	return r.readFixed(8, func(b []byte) uint64 { return netorder.Native.Uint64(b) })
}

// ReadInt64 reads a big-endian i64, e.g. a GRAIL time value.
func (r *Reader) ReadInt64() int64 {
	return int64(r.ReadUint64())
}

// ReadInt32 reads a big-endian i32.
func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

// ReadFloat32 reads a big-endian IEEE-754 single precision float.
func (r *Reader) ReadFloat32() float32 {
	return math.Float32frombits(r.ReadUint32())
}

// ReadFloat64 reads a big-endian IEEE-754 double precision float.
func (r *Reader) ReadFloat64() float64 {
	return math.Float64frombits(r.ReadUint64())
}

// ReadUint128 reads the high word then the low word, each big-endian.
func (r *Reader) ReadUint128() (hi, lo uint64) {
	hi = r.ReadUint64()
	lo = r.ReadUint64()
	return
}

// ReadBytes reads exactly n bytes verbatim. If n bytes aren't available the
// sticky flag is set and a nil slice is returned.
func (r *Reader) ReadBytes(n int) []byte {
	if n < 0 || !r.require(n) {
		r.outOfRange = true
		return nil
	}
	b := make([]byte, n)
	copy(b, r.buf[r.pos:r.pos+n])
	r.pos += n
	return b
}

// ReadRestBytes reads every remaining byte in the buffer, used by
// frame-terminal fields whose length comes from the outer frame length
// rather than a size prefix (e.g. sample sense_data, uri_search's regex).
func (r *Reader) ReadRestBytes() []byte {
	return r.ReadBytes(r.Remaining())
}

// ReadUTF16 reads exactly n code units, with no size prefix.
func (r *Reader) ReadUTF16(n int) []uint16 {
	if n < 0 || !r.require(n*2) {
		r.outOfRange = true
		return nil
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = r.ReadUint16()
	}
	return units
}

// ReadSizedUTF16 reads a u32 byte length L, then L/2 code units. An odd L
// is a malformed frame: it sets OutOfRange per §9's "enforce that the
// remainder is an even number of bytes" rule.
func (r *Reader) ReadSizedUTF16() []uint16 {
	byteLen := r.ReadUint32()
	if r.outOfRange {
		return nil
	}
	if byteLen%2 != 0 {
		r.outOfRange = true
		return nil
	}
	return r.ReadUTF16(int(byteLen / 2))
}

// ReadSizedUTF16String is a convenience wrapper returning a Go string
// decoded from a length-prefixed UTF-16 field.
func (r *Reader) ReadSizedUTF16String() string {
	return string(utf16.Decode(r.ReadSizedUTF16()))
}

// ReadUTF16ToEnd decodes every remaining byte of the buffer as UTF-16 code
// units, per the "terminal string" fields described in §4.E.4 and §9. An
// odd remainder is a malformed frame.
func (r *Reader) ReadUTF16ToEnd() []uint16 {
	remaining := r.Remaining()
	if remaining%2 != 0 {
		r.outOfRange = true
		return nil
	}
	return r.ReadUTF16(remaining / 2)
}

// ReadUTF16ToEndString is the Go-string convenience form of ReadUTF16ToEnd.
func (r *Reader) ReadUTF16ToEndString() string {
	return string(utf16.Decode(r.ReadUTF16ToEnd()))
}

// ReadSizedBytes reads a u32 byte length then that many bytes verbatim.
func (r *Reader) ReadSizedBytes() []byte {
	n := r.ReadUint32()
	if r.outOfRange {
		return nil
	}
	return r.ReadBytes(int(n))
}

// SafeCount bounds a u32 element count read from the wire by how many
// elements the remaining bytes could actually encode, given the smallest
// possible wire size of one element. A corrupted count field (e.g. set to
// near 0xFFFFFFFF) therefore can't drive a preallocation far past the
// frame's real size before the per-field reads would latch OutOfRange —
// the §8 graceful-malformation invariant requires no panic, and an
// unclamped make([]T, 0, count) panics on an over-large capacity before
// any field read happens.
func (r *Reader) SafeCount(count uint32, minElementSize int) int {
	if minElementSize <= 0 {
		minElementSize = 1
	}
	if max := r.Remaining() / minElementSize; int(count) > max {
		return max
	}
	return int(count)
}

// Discard advances the cursor by n bytes, clamped at the end of the buffer.
func (r *Reader) Discard(n int) {
	if n < 0 {
		return
	}
	if r.pos+n > len(r.buf) {
		r.pos = len(r.buf)
		return
	}
	r.pos += n
}
