package model

// Sample is a single radio-layer observation of a transmitter (§3).
// Valid is a decoder output, not part of the wire body: it is false iff
// decoding failed the length/type gate described in §4.E.
type Sample struct {
	PhysicalLayer uint8
	TxID          TransmitterID
	RxID          ReceiverID
	RxTimestamp   GrailTime
	RSS           float32
	SenseData     []byte
	Valid         bool
}

// Transmitter returns the Transmitter this sample was observed from.
func (s Sample) Transmitter() Transmitter {
	return Transmitter{PhysicalLayer: s.PhysicalLayer, ID: s.TxID}
}
