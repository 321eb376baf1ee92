// Package netorder converts fixed-width primitives between host and
// network (big-endian) byte order.
//
// The wire format defined by the rest of this module is always big-endian,
// regardless of host architecture. Every multi-byte field that crosses the
// wire passes through Swap before being appended to or read from a buffer.
package netorder

import (
	"encoding/binary"
	"unsafe"
)

// IsLittleEndian reports whether the host stores a multi-byte integer with
// its least-significant byte at the lowest address.
func IsLittleEndian() bool {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	return b[0] == 1
}

var hostLittleEndian = IsLittleEndian()

// Native is the ByteOrder matching this host's in-memory integer layout.
// Writer/Reader store a primitive's bytes in Native order and then call
// Swap, so the two compose into a byte-exact big-endian wire value
// regardless of host architecture — the same to_network/from_network
// shape described for component A.
var Native binary.ByteOrder = func() binary.ByteOrder {
	if hostLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// Swap reverses b in place if the host is little-endian, for sizes 2, 4 and
// 8 bytes. For 16 bytes it treats b as a (high uint64, low uint64) pair and
// reverses each half independently, per the uint128 wire layout. Any other
// length is left untouched.
func Swap(b []byte) {
	if !hostLittleEndian {
		return
	}

	switch len(b) {
	case 2, 4, 8:
		reverse(b)
	case 16:
		reverse(b[:8])
		reverse(b[8:])
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
