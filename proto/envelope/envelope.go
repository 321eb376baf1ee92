// Package envelope factors the [length: u32][tag: u8][body…] framing that
// every tagged message kind of the aggregator-solver and world-model
// protocols shares (§4.E, §9 "Union of record shapes over a byte-stream
// channel"). The tagless sensor-aggregator sample and the handshake frame
// build their own length prefix and do not use this package.
//
// Each tagged message kind supplies only its body encode/decode logic; this
// package owns the length back-patch and the tag/length decoder gate so
// that logic is written exactly once, per the design note that the
// original source's tag-mutation trick should instead be a single shared
// helper.
package envelope

import "github.com/grail-owl/grailnet/wire"

// Encode reserves the length prefix, appends tag, invokes body to append
// the message body, then back-patches the length (counted from tag
// onward, per §4.E) and returns the complete frame bytes.
func Encode(tag uint8, body func(w *wire.Writer)) []byte {
	w := wire.NewWriter()
	lenOffset := w.Reserve(4)
	w.AppendUint8(tag)
	if body != nil {
		body(w)
	}
	w.OverwriteUint32(lenOffset, uint32(w.Len()-4))
	return w.Bytes()
}

// Open validates a frame's decoder gate (§4.E): the buffer's declared
// length must match its actual size and its tag byte must equal the
// expected tag. On success it returns a Reader positioned just after the
// tag, ready for body fields. On failure it returns ok=false and the
// caller must produce its zero/empty record.
func Open(frame []byte, expectedTag uint8) (r *wire.Reader, ok bool) {
	r = wire.NewReader(frame)
	totalLen := r.ReadUint32()
	tag := r.ReadUint8()
	if r.OutOfRange() {
		return nil, false
	}
	if int(totalLen)+4 != len(frame) {
		return nil, false
	}
	if tag != expectedTag {
		return nil, false
	}
	return r, true
}
