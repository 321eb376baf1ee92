package worldmodel

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// EncodeOriginPreference returns the wire bytes for an origin_preference
// message: a run of (sized_utf16(origin), weight: i32) pairs to the end of
// the frame (§4.E.4). Applies to snapshot and stream requests only.
func EncodeOriginPreference(weights []model.OriginWeight) []byte {
	return envelope.Encode(uint8(ClientOriginPreference), func(w *wire.Writer) {
		for _, ow := range weights {
			w.AppendSizedUTF16String(ow.Origin)
			w.AppendInt32(ow.Weight)
		}
	})
}

// DecodeOriginPreference parses an origin_preference frame, reading pairs
// until the frame is exhausted.
func DecodeOriginPreference(frame []byte) (weights []model.OriginWeight, ok bool) {
	r, ok := envelope.Open(frame, uint8(ClientOriginPreference))
	if !ok {
		return nil, false
	}
	for r.Remaining() > 0 && !r.OutOfRange() {
		origin := r.ReadSizedUTF16String()
		weight := r.ReadInt32()
		weights = append(weights, model.OriginWeight{Origin: origin, Weight: weight})
	}
	if r.OutOfRange() {
		return nil, false
	}
	return weights, true
}
