package worldmodel

import (
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// request_complete and cancel_request share the single-field body: ticket:
// u32 (§4.E.4).

// EncodeRequestComplete returns the wire bytes telling a client its
// request for ticket has finished delivering (used for snapshot and range
// requests, which terminate; streams run until canceled).
func EncodeRequestComplete(ticket uint32) []byte {
	return envelope.Encode(uint8(ClientRequestComplete), func(w *wire.Writer) { w.AppendUint32(ticket) })
}

// DecodeRequestComplete parses a request_complete frame, returning the
// ticket it names. ok is false iff the decode gate fails.
func DecodeRequestComplete(frame []byte) (ticket uint32, ok bool) {
	r, ok := envelope.Open(frame, uint8(ClientRequestComplete))
	if !ok {
		return 0, false
	}
	ticket = r.ReadUint32()
	if r.OutOfRange() {
		return 0, false
	}
	return ticket, true
}

// EncodeCancelRequest returns the wire bytes asking the world model to
// stop delivering data for ticket (§8 scenario 4: the reply is a
// request_complete for the same ticket).
func EncodeCancelRequest(ticket uint32) []byte {
	return envelope.Encode(uint8(ClientCancelRequest), func(w *wire.Writer) { w.AppendUint32(ticket) })
}

// DecodeCancelRequest parses a cancel_request frame.
func DecodeCancelRequest(frame []byte) (ticket uint32, ok bool) {
	r, ok := envelope.Open(frame, uint8(ClientCancelRequest))
	if !ok {
		return 0, false
	}
	ticket = r.ReadUint32()
	if r.OutOfRange() {
		return 0, false
	}
	return ticket, true
}
