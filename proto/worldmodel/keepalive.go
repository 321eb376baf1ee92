package worldmodel

import "github.com/grail-owl/grailnet/proto/envelope"

// EncodeClientKeepAlive returns the empty-body keep_alive frame on the
// client↔world-model connection.
func EncodeClientKeepAlive() []byte {
	return envelope.Encode(uint8(ClientKeepAlive), nil)
}

// DecodeClientKeepAlive reports whether frame is a well-formed keep_alive.
func DecodeClientKeepAlive(frame []byte) bool {
	_, ok := envelope.Open(frame, uint8(ClientKeepAlive))
	return ok
}

// EncodeSolverKeepAlive returns the empty-body keep_alive frame on the
// solver↔world-model connection.
func EncodeSolverKeepAlive() []byte {
	return envelope.Encode(uint8(SolverKeepAlive), nil)
}

// DecodeSolverKeepAlive reports whether frame is a well-formed keep_alive.
func DecodeSolverKeepAlive(frame []byte) bool {
	_, ok := envelope.Open(frame, uint8(SolverKeepAlive))
	return ok
}
