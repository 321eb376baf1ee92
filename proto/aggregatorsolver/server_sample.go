package aggregatorsolver

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// EncodeServerSample returns the wire bytes for a server_sample message:
// the same field list as the sensor-aggregator sample (§4.E.2) with an
// extra leading tag byte.
func EncodeServerSample(s model.Sample) []byte {
	return envelope.Encode(uint8(TagServerSample), func(w *wire.Writer) {
		w.AppendUint8(s.PhysicalLayer)
		w.AppendUint128(s.TxID.Hi, s.TxID.Lo)
		w.AppendUint128(s.RxID.Hi, s.RxID.Lo)
		w.AppendInt64(int64(s.RxTimestamp))
		w.AppendFloat32(s.RSS)
		w.AppendBytes(s.SenseData)
	})
}

// DecodeServerSample parses a server_sample frame. Valid is false iff the
// decode gate fails, mirroring the sensor-aggregator sample decoder.
func DecodeServerSample(frame []byte) model.Sample {
	r, ok := envelope.Open(frame, uint8(TagServerSample))
	if !ok {
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
