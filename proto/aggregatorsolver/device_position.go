package aggregatorsolver

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// EncodeDevicePosition returns the wire bytes for a device_position
// message: rx_id: u128 | latitude: f64 | longitude: f64 | altitude: f32 |
// timestamp: i64. The body layout is this repository's resolution of an
// unspecified message (see model.DevicePosition and DESIGN.md).
func EncodeDevicePosition(p model.DevicePosition) []byte {
	return envelope.Encode(uint8(TagDevicePosition), func(w *wire.Writer) {
		w.AppendUint128(p.RxID.Hi, p.RxID.Lo)
		w.AppendFloat64(p.Latitude)
		w.AppendFloat64(p.Longitude)
		w.AppendFloat32(p.Altitude)
		w.AppendInt64(int64(p.Timestamp))
	})
}

// DecodeDevicePosition parses a device_position frame. ok is false iff
// the decode gate fails.
func DecodeDevicePosition(frame []byte) (p model.DevicePosition, ok bool) {
	r, ok := envelope.Open(frame, uint8(TagDevicePosition))
	if !ok {
		return model.DevicePosition{}, false
	}

	p.RxID.Hi, p.RxID.Lo = r.ReadUint128()
	p.Latitude = r.ReadFloat64()
	p.Longitude = r.ReadFloat64()
	p.Altitude = r.ReadFloat32()
	p.Timestamp = model.GrailTime(r.ReadInt64())

	if r.OutOfRange() {
		return model.DevicePosition{}, false
	}
	return p, true
}
