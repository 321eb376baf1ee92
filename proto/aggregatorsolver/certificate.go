package aggregatorsolver

import (
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// EncodeCertificate wraps an opaque certificate payload. The body format
// is unspecified by the source (§9 Open Questions); the codec treats it
// as a raw byte blob, and denial is signaled by the peer closing the
// connection rather than a reply message (§6).
func EncodeCertificate(payload []byte) []byte {
	return envelope.Encode(uint8(TagCertificate), func(w *wire.Writer) {
		w.AppendBytes(payload)
	})
}

// DecodeCertificate returns the opaque payload carried by a certificate
// frame.
func DecodeCertificate(frame []byte) (payload []byte, ok bool) {
	r, ok := envelope.Open(frame, uint8(TagCertificate))
	if !ok {
		return nil, false
	}
	payload = r.ReadRestBytes()
	if r.OutOfRange() {
		return nil, false
	}
	return payload, true
}

// EncodeAckCertificate wraps an opaque ack_certificate payload.
func EncodeAckCertificate(payload []byte) []byte {
	return envelope.Encode(uint8(TagAckCertificate), func(w *wire.Writer) {
		w.AppendBytes(payload)
	})
}

// DecodeAckCertificate returns the opaque payload carried by an
// ack_certificate frame.
func DecodeAckCertificate(frame []byte) (payload []byte, ok bool) {
	r, ok := envelope.Open(frame, uint8(TagAckCertificate))
	if !ok {
		return nil, false
	}
	payload = r.ReadRestBytes()
	if r.OutOfRange() {
		return nil, false
	}
	return payload, true
}
