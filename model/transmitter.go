package model

// TransmitterID and ReceiverID are both plain 128-bit identifiers; the
// distinction is purely nominal (§3).
type TransmitterID = UInt128
type ReceiverID = UInt128

// Transmitter identifies a radio transmitter on a physical layer (§3).
// Ordering is by PhysicalLayer first, then by ID.
type Transmitter struct {
	PhysicalLayer uint8
	ID            TransmitterID
}

// Less orders Transmitters by PhysicalLayer, then ID.
func (t Transmitter) Less(o Transmitter) bool {
	if t.PhysicalLayer != o.PhysicalLayer {
		return t.PhysicalLayer < o.PhysicalLayer
	}
	return t.ID.Less(o.ID)
}

// Equal reports whether two Transmitters name the same radio.
func (t Transmitter) Equal(o Transmitter) bool {
	return t.PhysicalLayer == o.PhysicalLayer && t.ID.Equal(o.ID)
}
