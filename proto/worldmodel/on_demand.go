package worldmodel

import (
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// OnDemandEntry is one type alias a client wants (or no longer wants)
// attributes matching any of AttrRegexes for (§3, §4.E.4 start_on_demand /
// stop_on_demand).
type OnDemandEntry struct {
	Alias       uint32
	AttrRegexes []string
}

// start_on_demand and stop_on_demand share one body exactly (§4.E.4):
// num: u32 | [alias: u32, num_attrs: u32, [sized_utf16(attr_regex)]*]*.
// Only the tag differs.

func encodeOnDemandBody(w *wire.Writer, entries []OnDemandEntry) {
	w.AppendUint32(uint32(len(entries)))
	for _, e := range entries {
		w.AppendUint32(e.Alias)
		w.AppendUint32(uint32(len(e.AttrRegexes)))
		for _, a := range e.AttrRegexes {
			w.AppendSizedUTF16String(a)
		}
	}
}

func decodeOnDemandBody(r *wire.Reader) []OnDemandEntry {
	num := r.ReadUint32()
	if r.OutOfRange() {
		return nil
	}
	entries := make([]OnDemandEntry, 0, r.SafeCount(num, 8))
	for i := uint32(0); i < num && !r.OutOfRange(); i++ {
		var e OnDemandEntry
		e.Alias = r.ReadUint32()
		numAttrs := r.ReadUint32()
		if r.OutOfRange() {
			return nil
		}
		e.AttrRegexes = make([]string, 0, r.SafeCount(numAttrs, 4))
		for j := uint32(0); j < numAttrs && !r.OutOfRange(); j++ {
			e.AttrRegexes = append(e.AttrRegexes, r.ReadSizedUTF16String())
		}
		entries = append(entries, e)
	}
	if r.OutOfRange() {
		return nil
	}
	return entries
}

// EncodeStartOnDemand returns the wire bytes telling a solver at least one
// client now wants the named type aliases.
func EncodeStartOnDemand(entries []OnDemandEntry) []byte {
	return envelope.Encode(uint8(SolverStartOnDemand), func(w *wire.Writer) { encodeOnDemandBody(w, entries) })
}

// DecodeStartOnDemand parses a start_on_demand frame.
func DecodeStartOnDemand(frame []byte) []OnDemandEntry {
	r, ok := envelope.Open(frame, uint8(SolverStartOnDemand))
	if !ok {
		return nil
	}
	return decodeOnDemandBody(r)
}

// EncodeStopOnDemand returns the wire bytes telling a solver no client
// wants the named type aliases anymore.
func EncodeStopOnDemand(entries []OnDemandEntry) []byte {
	return envelope.Encode(uint8(SolverStopOnDemand), func(w *wire.Writer) { encodeOnDemandBody(w, entries) })
}

// DecodeStopOnDemand parses a stop_on_demand frame.
func DecodeStopOnDemand(frame []byte) []OnDemandEntry {
	r, ok := envelope.Open(frame, uint8(SolverStopOnDemand))
	if !ok {
		return nil
	}
	return decodeOnDemandBody(r)
}
