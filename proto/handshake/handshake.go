// Package handshake implements the §4.E.1 handshake frame shared by all
// three GRAIL protocols: each endpoint sends its protocol string first,
// and a mismatch closes the connection.
package handshake

import (
	"fmt"

	"github.com/grail-owl/grailnet/wire"
)

// Protocol identifies one of the four handshake strings a connection can
// open with (§4.E.1).
type Protocol string

const (
	SensorAggregator Protocol = "GRAIL sensor protocol"
	AggregatorSolver Protocol = "GRAIL solver protocol"
	WorldModelClient Protocol = "GRAIL client protocol"
	WorldModelSolver Protocol = "GRAIL world model protocol"
)

const (
	version   uint8 = 0
	extension uint8 = 0
)

// Encode returns the wire bytes for a handshake frame announcing p:
// [len: u32][ascii protocol string][version: u8 = 0][extension: u8 = 0].
// len equals len(p) + 2, per §4.E.1.
func Encode(p Protocol) []byte {
	w := wire.NewWriter()
	lenOffset := w.Reserve(4)
	w.AppendBytes([]byte(p))
	w.AppendUint8(version)
	w.AppendUint8(extension)
	w.OverwriteUint32(lenOffset, uint32(w.Len()-4))
	return w.Bytes()
}

// Decode parses a handshake frame, returning the announced protocol
// string. It does not validate the string against a known Protocol
// constant — that comparison is the caller's responsibility, since a
// mismatch is a connection-level decision (§4.E.1), not a decode failure.
func Decode(frame []byte) (p Protocol, ok bool) {
	r := wire.NewReader(frame)
	totalLen := r.ReadUint32()
	if r.OutOfRange() || int(totalLen)+4 != len(frame) || totalLen < 2 {
		return "", false
	}
	asciiLen := int(totalLen) - 2
	ascii := r.ReadBytes(asciiLen)
	r.ReadUint8() // version
	r.ReadUint8() // extension
	if r.OutOfRange() {
		return "", false
	}
	return Protocol(ascii), true
}

// Matches reports whether got is exactly the expected protocol string.
func Matches(got, want Protocol) bool {
	return got == want
}

func (p Protocol) String() string {
	return fmt.Sprintf("%q", string(p))
}
