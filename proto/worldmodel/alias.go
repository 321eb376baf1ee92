package worldmodel

import (
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// AliasEntry is one (alias, string) pair announced by an attribute_alias
// or origin_alias message (§3, §4.E.4).
type AliasEntry struct {
	Alias uint32
	Name  string
}

// attribute_alias and origin_alias share one body exactly (§4.E.4): num:
// u32 | [alias: u32, sized_utf16(string)]*. Only the tag differs.

func encodeAliasBody(w *wire.Writer, entries []AliasEntry) {
	w.AppendUint32(uint32(len(entries)))
	for _, e := range entries {
		w.AppendUint32(e.Alias)
		w.AppendSizedUTF16String(e.Name)
	}
}

func decodeAliasBody(r *wire.Reader) []AliasEntry {
	num := r.ReadUint32()
	if r.OutOfRange() {
		return nil
	}
	entries := make([]AliasEntry, 0, r.SafeCount(num, 8))
	for i := uint32(0); i < num && !r.OutOfRange(); i++ {
		alias := r.ReadUint32()
		name := r.ReadSizedUTF16String()
		entries = append(entries, AliasEntry{Alias: alias, Name: name})
	}
	if r.OutOfRange() {
		return nil
	}
	return entries
}

// EncodeAttributeAlias returns the wire bytes announcing attribute-name
// aliases.
func EncodeAttributeAlias(entries []AliasEntry) []byte {
	return envelope.Encode(uint8(ClientAttributeAlias), func(w *wire.Writer) { encodeAliasBody(w, entries) })
}

// DecodeAttributeAlias parses an attribute_alias frame.
func DecodeAttributeAlias(frame []byte) []AliasEntry {
	r, ok := envelope.Open(frame, uint8(ClientAttributeAlias))
	if !ok {
		return nil
	}
	return decodeAliasBody(r)
}

// EncodeOriginAlias returns the wire bytes announcing origin-string
// aliases.
func EncodeOriginAlias(entries []AliasEntry) []byte {
	return envelope.Encode(uint8(ClientOriginAlias), func(w *wire.Writer) { encodeAliasBody(w, entries) })
}

// DecodeOriginAlias parses an origin_alias frame.
func DecodeOriginAlias(frame []byte) []AliasEntry {
	r, ok := envelope.Open(frame, uint8(ClientOriginAlias))
	if !ok {
		return nil
	}
	return decodeAliasBody(r)
}
