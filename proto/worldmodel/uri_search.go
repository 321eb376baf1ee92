package worldmodel

import (
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// EncodeURISearch returns the wire bytes for a uri_search message: the
// regex string consumes the remainder of the frame with no size prefix
// (§4.E.4, §9 "UTF-16 terminal strings").
func EncodeURISearch(regex string) []byte {
	return envelope.Encode(uint8(ClientURISearch), func(w *wire.Writer) {
		w.AppendUTF16String(regex)
	})
}

// DecodeURISearch parses a uri_search frame, returning the regex pattern.
func DecodeURISearch(frame []byte) (regex string, ok bool) {
	r, ok := envelope.Open(frame, uint8(ClientURISearch))
	if !ok {
		return "", false
	}
	regex = r.ReadUTF16ToEndString()
	if r.OutOfRange() {
		return "", false
	}
	return regex, true
}

// EncodeURIResponse returns the wire bytes for a uri_response message: a
// run of sized UTF-16 strings to the end of the frame, with no explicit
// count (§4.E.4).
func EncodeURIResponse(uris []string) []byte {
	return envelope.Encode(uint8(ClientURIResponse), func(w *wire.Writer) {
		for _, u := range uris {
			w.AppendSizedUTF16String(u)
		}
	})
}

// DecodeURIResponse parses a uri_response frame, reading sized UTF-16
// strings until the frame is exhausted.
func DecodeURIResponse(frame []byte) (uris []string, ok bool) {
	r, ok := envelope.Open(frame, uint8(ClientURIResponse))
	if !ok {
		return nil, false
	}
	for r.Remaining() > 0 && !r.OutOfRange() {
		uris = append(uris, r.ReadSizedUTF16String())
	}
	if r.OutOfRange() {
		return nil, false
	}
	return uris, true
}
