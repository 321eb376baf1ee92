package worldmodel

import (
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// TypeAnnounceEntry is one attribute type a solver is registering a wire
// alias for, with whether it is produced only on client demand (§3, §4.E.4
// type_announce).
type TypeAnnounceEntry struct {
	Alias    uint32
	Type     string
	OnDemand bool
}

// TypeAnnounce is the body of a solver's type_announce message: num_aliases:
// u32 | [alias: u32, sized_utf16(type), on_demand: u8]* | utf16_to_end(origin).
type TypeAnnounce struct {
	Entries []TypeAnnounceEntry
	Origin  string
}

// EncodeTypeAnnounce returns the wire bytes for ta.
func EncodeTypeAnnounce(ta TypeAnnounce) []byte {
	return envelope.Encode(uint8(SolverTypeAnnounce), func(w *wire.Writer) {
		w.AppendUint32(uint32(len(ta.Entries)))
		for _, e := range ta.Entries {
			w.AppendUint32(e.Alias)
			w.AppendSizedUTF16String(e.Type)
			w.AppendUint8(boolToUint8(e.OnDemand))
		}
		w.AppendUTF16String(ta.Origin)
	})
}

// DecodeTypeAnnounce parses a type_announce frame. ok is false iff the
// decode gate fails.
func DecodeTypeAnnounce(frame []byte) (ta TypeAnnounce, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverTypeAnnounce))
	if !ok {
		return TypeAnnounce{}, false
	}

	num := r.ReadUint32()
	if r.OutOfRange() {
		return TypeAnnounce{}, false
	}
	ta.Entries = make([]TypeAnnounceEntry, 0, r.SafeCount(num, 9))
	for i := uint32(0); i < num && !r.OutOfRange(); i++ {
		var e TypeAnnounceEntry
		e.Alias = r.ReadUint32()
		e.Type = r.ReadSizedUTF16String()
		e.OnDemand = r.ReadUint8() != 0
		ta.Entries = append(ta.Entries, e)
	}
	ta.Origin = r.ReadUTF16ToEndString()

	if r.OutOfRange() {
		return TypeAnnounce{}, false
	}
	return ta, true
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
