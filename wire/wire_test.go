package wire

import (
	"bytes"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.AppendUint8(0x7F)
	w.AppendUint16(0x1234)
	w.AppendUint32(0xDEADBEEF)
	w.AppendUint64(0x0102030405060708)
	w.AppendInt64(-1)
	w.AppendFloat32(-72.5)
	w.AppendUint128(0x1, 0x2A)
	w.AppendSizedUTF16String("hi")
	w.AppendSizedBytes([]byte{0xDE, 0xAD})

	r := NewReader(w.Bytes())
	if v := r.ReadUint8(); v != 0x7F {
		t.Fatalf("uint8 = %x", v)
	}
	if v := r.ReadUint16(); v != 0x1234 {
		t.Fatalf("uint16 = %x", v)
	}
	if v := r.ReadUint32(); v != 0xDEADBEEF {
		t.Fatalf("uint32 = %x", v)
	}
	if v := r.ReadUint64(); v != 0x0102030405060708 {
		t.Fatalf("uint64 = %x", v)
	}
	if v := r.ReadInt64(); v != -1 {
		t.Fatalf("int64 = %d", v)
	}
	if v := r.ReadFloat32(); v != -72.5 {
		t.Fatalf("float32 = %v", v)
	}
	hi, lo := r.ReadUint128()
	if hi != 0x1 || lo != 0x2A {
		t.Fatalf("uint128 = (%x, %x)", hi, lo)
	}
	if s := r.ReadSizedUTF16String(); s != "hi" {
		t.Fatalf("utf16 string = %q", s)
	}
	if b := r.ReadSizedBytes(); !bytes.Equal(b, []byte{0xDE, 0xAD}) {
		t.Fatalf("sized bytes = %x", b)
	}
	if r.OutOfRange() {
		t.Fatal("unexpected out of range")
	}
}

func TestWriterAppendsBigEndianRegardlessOfHost(t *testing.T) {
	w := NewWriter()
	w.AppendUint32(0x01020304)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x want %x", w.Bytes(), want)
	}

	w2 := NewWriter()
	w2.AppendFloat32(1.0)
	want2 := []byte{0x3F, 0x80, 0x00, 0x00}
	if !bytes.Equal(w2.Bytes(), want2) {
		t.Fatalf("got %x want %x", w2.Bytes(), want2)
	}
}

func TestReaderStickyOutOfRange(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01})
	_ = r.ReadUint32()
	if !r.OutOfRange() {
		t.Fatal("expected out of range after truncated read")
	}
	if v := r.ReadUint64(); v != 0 {
		t.Fatalf("expected zero value once out of range, got %x", v)
	}
	if b := r.ReadSizedBytes(); b != nil {
		t.Fatalf("expected nil once out of range, got %x", b)
	}
}

func TestReaderOddSizedUTF16IsMalformed(t *testing.T) {
	w := NewWriter()
	w.AppendUint32(3) // odd byte length
	w.AppendBytes([]byte{0, 'a', 0})

	r := NewReader(w.Bytes())
	r.ReadSizedUTF16()
	if !r.OutOfRange() {
		t.Fatal("expected odd UTF-16 byte length to be flagged out of range")
	}
}

func TestOverwriteUint32BackpatchesLength(t *testing.T) {
	w := NewWriter()
	offset := w.Reserve(4)
	w.AppendUint8(1)
	w.AppendUint8(2)
	w.AppendUint8(3)
	w.OverwriteUint32(offset, uint32(w.Len()-4))

	want := []byte{0x00, 0x00, 0x00, 0x03, 1, 2, 3}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x want %x", w.Bytes(), want)
	}
}

func TestUTF16ToEndConsumesRemainder(t *testing.T) {
	w := NewWriter()
	w.AppendUTF16([]uint16{'a', 'b', 'c'})

	r := NewReader(w.Bytes())
	if s := r.ReadUTF16ToEndString(); s != "abc" {
		t.Fatalf("got %q", s)
	}
}

func TestUTF16ToEndOddRemainderIsMalformed(t *testing.T) {
	r := NewReader([]byte{0x00, 'a', 0x00})
	r.ReadUTF16ToEnd()
	if !r.OutOfRange() {
		t.Fatal("expected odd remainder to be malformed")
	}
}
