package aggregatorsolver

import (
	"bytes"
	"testing"

	"github.com/grail-owl/grailnet/model"
)

func TestKeepAliveAndBufferOverrunRoundTrip(t *testing.T) {
	if !DecodeKeepAlive(EncodeKeepAlive()) {
		t.Fatal("keep_alive decode failed")
	}
	if !DecodeBufferOverrun(EncodeBufferOverrun()) {
		t.Fatal("buffer_overrun decode failed")
	}
	// Tags must not cross-decode.
	if DecodeBufferOverrun(EncodeKeepAlive()) {
		t.Fatal("buffer_overrun decoder accepted a keep_alive frame")
	}
}

func TestCertificateRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	got, ok := DecodeCertificate(EncodeCertificate(payload))
	if !ok || !bytes.Equal(got, payload) {
		t.Fatalf("got %x, %v want %x, true", got, ok, payload)
	}

	gotAck, ok := DecodeAckCertificate(EncodeAckCertificate(payload))
	if !ok || !bytes.Equal(gotAck, payload) {
		t.Fatalf("got %x, %v want %x, true", gotAck, ok, payload)
	}
}

// §8 scenario 2.
func exampleSubscription() model.Subscription {
	return model.Subscription{
		{
			PhysicalLayer: 1,
			Transmitters: []model.TransmitterMask{
				{Base: model.UInt128{Lo: 10}, Mask: model.UInt128{Lo: 0xFFFF}},
				{Base: model.UInt128{Lo: 20}, Mask: model.UInt128{Lo: 0}},
			},
			UpdateIntervalMs: 500,
		},
	}
}

func TestSubscriptionRoundTrip(t *testing.T) {
	sub := exampleSubscription()

	got := DecodeSubscriptionRequest(EncodeSubscriptionRequest(sub))
	if len(got) != 1 {
		t.Fatalf("rule count = %d want 1", len(got))
	}
	if got[0].UpdateIntervalMs != 500 {
		t.Fatalf("update interval = %d want 500", got[0].UpdateIntervalMs)
	}
	if len(got[0].Transmitters) != 2 {
		t.Fatalf("transmitter count = %d want 2", len(got[0].Transmitters))
	}

	// mask matching: the partial mask 0xFFFF admits its own base 10; the
	// zero mask admits anything (§8 "Mask semantics").
	if !got[0].Matches(model.Transmitter{PhysicalLayer: 1, ID: model.UInt128{Lo: 10}}) {
		t.Fatal("expected id=10 to match base=10,mask=0xFFFF")
	}
	// id=999 only matches via the rule's second transmitter entry, whose
	// zero mask matches all ids.
	if !got[0].Matches(model.Transmitter{PhysicalLayer: 1, ID: model.UInt128{Lo: 999}}) {
		t.Fatal("expected zero-mask rule to admit any id")
	}

	respGot := DecodeSubscriptionResponse(EncodeSubscriptionResponse(sub))
	if len(respGot) != 1 || respGot[0].UpdateIntervalMs != 500 {
		t.Fatalf("subscription_response round trip mismatch: %+v", respGot)
	}
}

func TestSubscriptionEmpty(t *testing.T) {
	got := DecodeSubscriptionRequest(EncodeSubscriptionRequest(nil))
	if len(got) != 0 {
		t.Fatalf("expected empty subscription, got %+v", got)
	}
}

func TestSubscriptionTruncatedIsMalformed(t *testing.T) {
	frame := EncodeSubscriptionRequest(exampleSubscription())
	for k := 5; k < len(frame); k++ {
		got := DecodeSubscriptionRequest(frame[:k])
		if got != nil {
			t.Fatalf("truncation to %d bytes unexpectedly decoded: %+v", k, got)
		}
	}
}

// §8 scenario 1.
func TestServerSampleRoundTrip(t *testing.T) {
	s := model.Sample{
		PhysicalLayer: 3,
		TxID:          model.UInt128{Lo: 0x0123456789abcdef},
		RxID:          model.UInt128{Lo: 42},
		RxTimestamp:   1700000000000,
		RSS:           -72.5,
		SenseData:     []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	frame := EncodeServerSample(s)
	got := DecodeServerSample(frame)
	if !got.Valid {
		t.Fatal("expected valid decode")
	}
	if got.PhysicalLayer != s.PhysicalLayer || got.TxID != s.TxID || got.RxID != s.RxID ||
		got.RxTimestamp != s.RxTimestamp || got.RSS != s.RSS || !bytes.Equal(got.SenseData, s.SenseData) {
		t.Fatalf("got %+v want %+v", got, s)
	}
}

func TestDevicePositionRoundTrip(t *testing.T) {
	p := model.DevicePosition{
		RxID:      model.UInt128{Lo: 7},
		Latitude:  42.3601,
		Longitude: -71.0589,
		Altitude:  12.5,
		Timestamp: 1700000000000,
	}
	got, ok := DecodeDevicePosition(EncodeDevicePosition(p))
	if !ok {
		t.Fatal("expected valid decode")
	}
	if got != p {
		t.Fatalf("got %+v want %+v", got, p)
	}
}

func TestDevicePositionWrongTagRejected(t *testing.T) {
	_, ok := DecodeDevicePosition(EncodeKeepAlive())
	if ok {
		t.Fatal("expected decode to reject mismatched tag")
	}
}
