package worldmodel

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// DataResponse is one data_response message: an alias-compressed
// attribute batch for a single object, correlated to a client request by
// Ticket (§3, §4.E.4). The codec writes and reads Ticket verbatim and does
// not interpret the value.
type DataResponse struct {
	Ticket uint32
	Data   model.AliasedWorldData
}

// EncodeDataResponse returns the wire bytes for dr:
// sized_utf16(object_uri) | ticket: u32 | num_attrs: u32 |
// [name_alias: u32, creation: i64, expiration: i64, origin_alias: u32,
// sized_bytes(data)]* (§4.E.4).
func EncodeDataResponse(dr DataResponse) []byte {
	return envelope.Encode(uint8(ClientDataResponse), func(w *wire.Writer) {
		w.AppendSizedUTF16String(dr.Data.ObjectURI)
		w.AppendUint32(dr.Ticket)
		w.AppendUint32(uint32(len(dr.Data.Attributes)))
		for _, a := range dr.Data.Attributes {
			w.AppendUint32(a.NameAlias)
			w.AppendInt64(int64(a.CreationDate))
			w.AppendInt64(int64(a.ExpirationDate))
			w.AppendUint32(a.OriginAlias)
			w.AppendSizedBytes(a.Data)
		}
	})
}

// DecodeDataResponse parses a data_response frame. ok is false iff the
// decode gate fails (§4.E.4 decoder gate).
func DecodeDataResponse(frame []byte) (dr DataResponse, ok bool) {
	r, ok := envelope.Open(frame, uint8(ClientDataResponse))
	if !ok {
		return DataResponse{}, false
	}

	dr.Data.ObjectURI = r.ReadSizedUTF16String()
	dr.Ticket = r.ReadUint32()
	numAttrs := r.ReadUint32()
	if r.OutOfRange() {
		return DataResponse{}, false
	}

	dr.Data.Attributes = make([]model.AliasedAttribute, 0, r.SafeCount(numAttrs, 28))
	for i := uint32(0); i < numAttrs && !r.OutOfRange(); i++ {
		var a model.AliasedAttribute
		a.NameAlias = r.ReadUint32()
		a.CreationDate = model.GrailTime(r.ReadInt64())
		a.ExpirationDate = model.GrailTime(r.ReadInt64())
		a.OriginAlias = r.ReadUint32()
		a.Data = r.ReadSizedBytes()
		dr.Data.Attributes = append(dr.Data.Attributes, a)
	}

	if r.OutOfRange() {
		return DataResponse{}, false
	}
	return dr, true
}
