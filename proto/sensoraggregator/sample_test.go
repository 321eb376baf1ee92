package sensoraggregator

import (
	"bytes"
	"testing"

	"github.com/grail-owl/grailnet/model"
)

func exampleSample() model.Sample {
	return model.Sample{
		PhysicalLayer: 3,
		TxID:          model.UInt128{Hi: 0, Lo: 0x0123456789abcdef},
		RxID:          model.UInt128{Hi: 0, Lo: 42},
		RxTimestamp:   1700000000000,
		RSS:           -72.5,
		SenseData:     []byte{0xDE, 0xAD, 0xBE, 0xEF},
		Valid:         true,
	}
}

func TestSampleRoundTrip(t *testing.T) {
	s := exampleSample()
	frame := EncodeSample(s)

	// §8 scenario 1 body: phy(1)+tx_id(16)+rx_id(16)+rx_timestamp(8)+rss(4)
	// + sense_data(4, bytes-to-end with no size prefix) = 49 bytes.
	wantPrefix := []byte{0x00, 0x00, 0x00, 0x31}
	if !bytes.Equal(frame[:4], wantPrefix) {
		t.Fatalf("length prefix = %x want %x", frame[:4], wantPrefix)
	}

	got := DecodeSample(frame)
	if !got.Valid {
		t.Fatal("expected valid decode")
	}
	got.Valid = false
	want := s
	want.Valid = false
	if !sampleEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func sampleEqual(a, b model.Sample) bool {
	return a.PhysicalLayer == b.PhysicalLayer &&
		a.TxID == b.TxID &&
		a.RxID == b.RxID &&
		a.RxTimestamp == b.RxTimestamp &&
		a.RSS == b.RSS &&
		bytes.Equal(a.SenseData, b.SenseData)
}

func TestSampleEmptySenseData(t *testing.T) {
	s := exampleSample()
	s.SenseData = nil
	frame := EncodeSample(s)
	got := DecodeSample(frame)
	if !got.Valid {
		t.Fatal("expected valid decode with empty sense data")
	}
	if len(got.SenseData) != 0 {
		t.Fatalf("sense data = %x want empty", got.SenseData)
	}
}

func TestSampleTruncatedFrameInvalid(t *testing.T) {
	frame := EncodeSample(exampleSample())
	for k := 0; k < 4+1+16+16+8+4; k++ { // truncate within the fixed-size fields
		got := DecodeSample(frame[:k])
		if got.Valid {
			t.Fatalf("truncation to %d bytes unexpectedly valid", k)
		}
	}
}

func TestSampleBadLengthPrefixInvalid(t *testing.T) {
	frame := EncodeSample(exampleSample())
	frame[3] ^= 0xFF
	got := DecodeSample(frame)
	if got.Valid {
		t.Fatal("expected invalid decode on corrupted length prefix")
	}
}
