package worldmodel

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// CreateURI is a solver's request to add a new world-model object
// (§4.E.4 create_uri).
type CreateURI struct {
	URI      string
	Creation model.GrailTime
	Origin   string
}

// EncodeCreateURI returns the wire bytes for c: sized_utf16(new_uri) |
// creation: i64 | utf16_to_end(origin).
func EncodeCreateURI(c CreateURI) []byte {
	return envelope.Encode(uint8(SolverCreateURI), func(w *wire.Writer) {
		w.AppendSizedUTF16String(c.URI)
		w.AppendInt64(int64(c.Creation))
		w.AppendUTF16String(c.Origin)
	})
}

// DecodeCreateURI parses a create_uri frame.
func DecodeCreateURI(frame []byte) (c CreateURI, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverCreateURI))
	if !ok {
		return CreateURI{}, false
	}
	c.URI = r.ReadSizedUTF16String()
	c.Creation = model.GrailTime(r.ReadInt64())
	c.Origin = r.ReadUTF16ToEndString()
	if r.OutOfRange() {
		return CreateURI{}, false
	}
	return c, true
}

// ExpireURI marks a world-model object as expired as of Expiration
// (§4.E.4 expire_uri).
type ExpireURI struct {
	URI        string
	Expiration model.GrailTime
	Origin     string
}

// EncodeExpireURI returns the wire bytes for e: sized_utf16(uri) |
// expiration: i64 | utf16_to_end(origin).
func EncodeExpireURI(e ExpireURI) []byte {
	return envelope.Encode(uint8(SolverExpireURI), func(w *wire.Writer) {
		w.AppendSizedUTF16String(e.URI)
		w.AppendInt64(int64(e.Expiration))
		w.AppendUTF16String(e.Origin)
	})
}

// DecodeExpireURI parses an expire_uri frame.
func DecodeExpireURI(frame []byte) (e ExpireURI, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverExpireURI))
	if !ok {
		return ExpireURI{}, false
	}
	e.URI = r.ReadSizedUTF16String()
	e.Expiration = model.GrailTime(r.ReadInt64())
	e.Origin = r.ReadUTF16ToEndString()
	if r.OutOfRange() {
		return ExpireURI{}, false
	}
	return e, true
}

// DeleteURI removes a world-model object outright (§4.E.4 delete_uri).
type DeleteURI struct {
	URI    string
	Origin string
}

// EncodeDeleteURI returns the wire bytes for d: sized_utf16(uri) |
// utf16_to_end(origin).
func EncodeDeleteURI(d DeleteURI) []byte {
	return envelope.Encode(uint8(SolverDeleteURI), func(w *wire.Writer) {
		w.AppendSizedUTF16String(d.URI)
		w.AppendUTF16String(d.Origin)
	})
}

// DecodeDeleteURI parses a delete_uri frame.
func DecodeDeleteURI(frame []byte) (d DeleteURI, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverDeleteURI))
	if !ok {
		return DeleteURI{}, false
	}
	d.URI = r.ReadSizedUTF16String()
	d.Origin = r.ReadUTF16ToEndString()
	if r.OutOfRange() {
		return DeleteURI{}, false
	}
	return d, true
}

// ExpireAttribute marks a single attribute of a world-model object as
// expired (§4.E.4 expire_attribute).
type ExpireAttribute struct {
	URI        string
	Attribute  string
	Expiration model.GrailTime
	Origin     string
}

// EncodeExpireAttribute returns the wire bytes for e: sized_utf16(uri) |
// sized_utf16(attribute) | expiration: i64 | utf16_to_end(origin).
func EncodeExpireAttribute(e ExpireAttribute) []byte {
	return envelope.Encode(uint8(SolverExpireAttribute), func(w *wire.Writer) {
		w.AppendSizedUTF16String(e.URI)
		w.AppendSizedUTF16String(e.Attribute)
		w.AppendInt64(int64(e.Expiration))
		w.AppendUTF16String(e.Origin)
	})
}

// DecodeExpireAttribute parses an expire_attribute frame.
func DecodeExpireAttribute(frame []byte) (e ExpireAttribute, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverExpireAttribute))
	if !ok {
		return ExpireAttribute{}, false
	}
	e.URI = r.ReadSizedUTF16String()
	e.Attribute = r.ReadSizedUTF16String()
	e.Expiration = model.GrailTime(r.ReadInt64())
	e.Origin = r.ReadUTF16ToEndString()
	if r.OutOfRange() {
		return ExpireAttribute{}, false
	}
	return e, true
}

// DeleteAttribute removes a single attribute of a world-model object
// outright (§4.E.4 delete_attribute).
type DeleteAttribute struct {
	URI       string
	Attribute string
	Origin    string
}

// EncodeDeleteAttribute returns the wire bytes for d: sized_utf16(uri) |
// sized_utf16(attribute) | utf16_to_end(origin).
func EncodeDeleteAttribute(d DeleteAttribute) []byte {
	return envelope.Encode(uint8(SolverDeleteAttribute), func(w *wire.Writer) {
		w.AppendSizedUTF16String(d.URI)
		w.AppendSizedUTF16String(d.Attribute)
		w.AppendUTF16String(d.Origin)
	})
}

// DecodeDeleteAttribute parses a delete_attribute frame.
func DecodeDeleteAttribute(frame []byte) (d DeleteAttribute, ok bool) {
	r, ok := envelope.Open(frame, uint8(SolverDeleteAttribute))
	if !ok {
		return DeleteAttribute{}, false
	}
	d.URI = r.ReadSizedUTF16String()
	d.Attribute = r.ReadSizedUTF16String()
	d.Origin = r.ReadUTF16ToEndString()
	if r.OutOfRange() {
		return DeleteAttribute{}, false
	}
	return d, true
}
