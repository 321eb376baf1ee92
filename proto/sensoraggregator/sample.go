// Package sensoraggregator implements §4.E.2: the sensor-to-aggregator
// protocol, whose only steady-state message is a raw sample record with
// no type byte — the frame body is the sample directly.
package sensoraggregator

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/wire"
)

// EncodeSample returns the wire bytes for s:
// [len: u32][physical_layer: u8][tx_id: u128][rx_id: u128][rx_timestamp: i64][rss: f32][sense_data: bytes-to-end].
func EncodeSample(s model.Sample) []byte {
	w := wire.NewWriter()
	lenOffset := w.Reserve(4)
	w.AppendUint8(s.PhysicalLayer)
	w.AppendUint128(s.TxID.Hi, s.TxID.Lo)
	w.AppendUint128(s.RxID.Hi, s.RxID.Lo)
	w.AppendInt64(int64(s.RxTimestamp))
	w.AppendFloat32(s.RSS)
	w.AppendBytes(s.SenseData)
	w.OverwriteUint32(lenOffset, uint32(w.Len()-4))
	return w.Bytes()
}

// DecodeSample parses a sample frame. Valid is false iff the declared
// length does not equal the frame size minus the 4-byte prefix, or the
// frame is too short to contain the fixed-size fields that precede
// sense_data (§3, §4.E.4 decoder gate); sense_data's length is whatever
// remains in the frame, so it never itself causes a decode failure.
func DecodeSample(frame []byte) model.Sample {
	r := wire.NewReader(frame)
	totalLen := r.ReadUint32()
	if r.OutOfRange() || int(totalLen)+4 != len(frame) {
		return model.Sample{}
	}

	var s model.Sample
	s.PhysicalLayer = r.ReadUint8()
	s.TxID.Hi, s.TxID.Lo = r.ReadUint128()
	s.RxID.Hi, s.RxID.Lo = r.ReadUint128()
	s.RxTimestamp = model.GrailTime(r.ReadInt64())
	s.RSS = r.ReadFloat32()
	s.SenseData = r.ReadRestBytes()

	if r.OutOfRange() {
		return model.Sample{}
	}
	s.Valid = true
	return s
}
