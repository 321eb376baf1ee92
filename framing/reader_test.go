package framing

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// frame builds a length-prefixed frame (length excludes the prefix itself).
func frame(payload []byte) []byte {
	buf := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(buf[:4], uint32(len(payload)))
	copy(buf[4:], payload)
	return buf
}

// chunkedReader yields its data in fixed-size chunks (or whole), for
// exercising arbitrary-chunking reassembly (§8 Framing invariant).
type chunkedReader struct {
	data      []byte
	chunkSize int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.chunkSize
	if n <= 0 || n > len(c.data) {
		n = len(c.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copied := copy(p, c.data[:n])
	c.data = c.data[copied:]
	return copied, nil
}

func TestNextMessageReassemblesArbitraryChunks(t *testing.T) {
	msgs := [][]byte{
		[]byte("hello"),
		{},
		bytes.Repeat([]byte{0xAB}, 4096),
		[]byte("x"),
	}

	var all []byte
	for _, m := range msgs {
		all = append(all, frame(m)...)
	}

	for _, chunkSize := range []int{1, 3, 7, 4096, 1 << 20} {
		cr := &chunkedReader{data: append([]byte(nil), all...), chunkSize: chunkSize}
		r := NewReader(cr)

		for i, want := range msgs {
			got, err := r.NextMessage(nil)
			if err != nil {
				t.Fatalf("chunkSize=%d msg=%d: unexpected error %v", chunkSize, i, err)
			}
			wantFrame := frame(want)
			if !bytes.Equal(got, wantFrame) {
				t.Fatalf("chunkSize=%d msg=%d: got %x want %x", chunkSize, i, got, wantFrame)
			}
		}
	}
}

func TestNextMessageEOFReturnsConnectionClosed(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.NextMessage(nil)
	if err != ErrConnectionClosed {
		t.Fatalf("got %v want ErrConnectionClosed", err)
	}
}

func TestNextMessageCancelReturnsEmptySentinel(t *testing.T) {
	r := NewReader(&blockingReader{})
	cancel := NewCancelFlag()
	cancel.Cancel()

	got, err := r.NextMessage(cancel)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v want empty non-nil slice", got)
	}
}

// blockingReader never returns data and reports io.EOF on every Read; the
// cancel flag is checked before any read, so the cancel-flag fast path is
// exercised without the reader ever being consulted.
type blockingReader struct{}

func (b *blockingReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func TestMessageAvailableFalseOnPartialFrame(t *testing.T) {
	payload := []byte("partial")
	full := frame(payload)
	// Feed only the length prefix and half the payload.
	cr := &chunkedReader{data: full[:4+3], chunkSize: 1024}
	r := NewReader(cr)

	ok, err := r.MessageAvailable(nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ok {
		t.Fatal("expected MessageAvailable to report false on a partial frame")
	}
}

func TestMessageAvailableTrueOnceComplete(t *testing.T) {
	full := frame([]byte("complete"))
	cr := &chunkedReader{data: full, chunkSize: 1024}
	r := NewReader(cr)

	ok, err := r.MessageAvailable(nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ok {
		t.Fatal("expected MessageAvailable to report true")
	}

	got, err := r.NextMessage(nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !bytes.Equal(got, full) {
		t.Fatalf("got %x want %x", got, full)
	}
}
