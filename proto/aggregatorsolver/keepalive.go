package aggregatorsolver

import "github.com/grail-owl/grailnet/proto/envelope"

// EncodeKeepAlive returns the empty-body keep_alive frame (§4.E.4, shared
// shape across all three protocols).
func EncodeKeepAlive() []byte {
	return envelope.Encode(uint8(TagKeepAlive), nil)
}

// DecodeKeepAlive reports whether frame is a well-formed keep_alive.
func DecodeKeepAlive(frame []byte) bool {
	_, ok := envelope.Open(frame, uint8(TagKeepAlive))
	return ok
}

// EncodeBufferOverrun returns the empty-body buffer_overrun notification,
// sent by the aggregator when it has dropped samples (§4.E.3).
func EncodeBufferOverrun() []byte {
	return envelope.Encode(uint8(TagBufferOverrun), nil)
}

// DecodeBufferOverrun reports whether frame is a well-formed
// buffer_overrun notification.
func DecodeBufferOverrun(frame []byte) bool {
	_, ok := envelope.Open(frame, uint8(TagBufferOverrun))
	return ok
}
