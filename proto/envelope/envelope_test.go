package envelope

import (
	"bytes"
	"testing"

	"github.com/grail-owl/grailnet/wire"
)

func TestEncodeOpenRoundTrip(t *testing.T) {
	frame := Encode(0x05, func(w *wire.Writer) {
		w.AppendUint32(0xDEADBEEF)
	})

	wantLen := []byte{0x00, 0x00, 0x00, 0x05}
	if !bytes.Equal(frame[:4], wantLen) {
		t.Fatalf("length prefix = %x want %x", frame[:4], wantLen)
	}
	if frame[4] != 0x05 {
		t.Fatalf("tag = %x want 05", frame[4])
	}

	r, ok := Open(frame, 0x05)
	if !ok {
		t.Fatal("Open rejected a well-formed frame")
	}
	if got := r.ReadUint32(); got != 0xDEADBEEF {
		t.Fatalf("body = %x want deadbeef", got)
	}
}

func TestEncodeEmptyBody(t *testing.T) {
	frame := Encode(0x01, nil)
	if len(frame) != 5 {
		t.Fatalf("len(frame) = %d want 5", len(frame))
	}
	r, ok := Open(frame, 0x01)
	if !ok {
		t.Fatal("Open rejected an empty-body frame")
	}
	if r.OutOfRange() {
		t.Fatal("reader flagged out of range on an empty body")
	}
}

func TestOpenRejectsWrongTag(t *testing.T) {
	frame := Encode(0x02, func(w *wire.Writer) { w.AppendUint8(1) })
	if _, ok := Open(frame, 0x03); ok {
		t.Fatal("Open accepted a frame with the wrong expected tag")
	}
}

func TestOpenRejectsBadLengthPrefix(t *testing.T) {
	frame := Encode(0x02, func(w *wire.Writer) { w.AppendUint8(1) })
	frame[3]++ // corrupt the declared length

	if _, ok := Open(frame, 0x02); ok {
		t.Fatal("Open accepted a frame whose declared length mismatches its size")
	}
}

func TestOpenRejectsTruncatedFrame(t *testing.T) {
	frame := Encode(0x02, func(w *wire.Writer) { w.AppendUint32(1) })
	truncated := frame[:len(frame)-2]

	if _, ok := Open(truncated, 0x02); ok {
		t.Fatal("Open accepted a truncated frame")
	}
}

func TestOpenRejectsEmptyFrame(t *testing.T) {
	if _, ok := Open(nil, 0x00); ok {
		t.Fatal("Open accepted an empty buffer")
	}
}
