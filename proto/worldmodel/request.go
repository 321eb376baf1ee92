package worldmodel

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// Snapshot, range and stream requests share one body exactly (§4.E.4):
// ticket: u32 | sized_utf16(object_uri) | num_attrs: u32 |
// [sized_utf16(attr)]* | start: i64 | stop_or_period: i64. Only the tag
// differs, so one encode/decode pair parameterized by tag replaces the
// source's tag-mutation trick (§9 design note).

func encodeRequestBody(w *wire.Writer, req model.Request) {
	w.AppendUint32(req.Ticket)
	w.AppendSizedUTF16String(req.ObjectURI)
	w.AppendUint32(uint32(len(req.Attributes)))
	for _, a := range req.Attributes {
		w.AppendSizedUTF16String(a)
	}
	w.AppendInt64(int64(req.Start))
	w.AppendInt64(int64(req.StopOrPeriod))
}

func decodeRequestBody(r *wire.Reader) model.Request {
	var req model.Request
	req.Ticket = r.ReadUint32()
	req.ObjectURI = r.ReadSizedUTF16String()
	numAttrs := r.ReadUint32()
	if r.OutOfRange() {
		return model.Request{}
	}
	req.Attributes = make([]string, 0, r.SafeCount(numAttrs, 4))
	for i := uint32(0); i < numAttrs && !r.OutOfRange(); i++ {
		req.Attributes = append(req.Attributes, r.ReadSizedUTF16String())
	}
	req.Start = model.GrailTime(r.ReadInt64())
	req.StopOrPeriod = model.GrailTime(r.ReadInt64())
	if r.OutOfRange() {
		return model.Request{}
	}
	return req
}

// EncodeSnapshotRequest returns the wire bytes for a snapshot request,
// whose StopOrPeriod names the timestamp to return state at.
func EncodeSnapshotRequest(req model.Request) []byte {
	return envelope.Encode(uint8(ClientSnapshotRequest), func(w *wire.Writer) { encodeRequestBody(w, req) })
}

// DecodeSnapshotRequest parses a snapshot_request frame.
func DecodeSnapshotRequest(frame []byte) model.Request {
	r, ok := envelope.Open(frame, uint8(ClientSnapshotRequest))
	if !ok {
		return model.Request{}
	}
	return decodeRequestBody(r)
}

// EncodeRangeRequest returns the wire bytes for a range request, whose
// StopOrPeriod names the end of the [Start, Stop] creation-time window.
func EncodeRangeRequest(req model.Request) []byte {
	return envelope.Encode(uint8(ClientRangeRequest), func(w *wire.Writer) { encodeRequestBody(w, req) })
}

// DecodeRangeRequest parses a range_request frame.
func DecodeRangeRequest(frame []byte) model.Request {
	r, ok := envelope.Open(frame, uint8(ClientRangeRequest))
	if !ok {
		return model.Request{}
	}
	return decodeRequestBody(r)
}

// EncodeStreamRequest returns the wire bytes for a stream request, whose
// StopOrPeriod names the update cadence in milliseconds.
func EncodeStreamRequest(req model.Request) []byte {
	return envelope.Encode(uint8(ClientStreamRequest), func(w *wire.Writer) { encodeRequestBody(w, req) })
}

// DecodeStreamRequest parses a stream_request frame.
func DecodeStreamRequest(frame []byte) model.Request {
	r, ok := envelope.Open(frame, uint8(ClientStreamRequest))
	if !ok {
		return model.Request{}
	}
	return decodeRequestBody(r)
}
