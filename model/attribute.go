package model

// Attribute is a single named, timestamped, originated data value attached
// to a world-model object (§3). ExpirationDate == 0 means "not expired".
type Attribute struct {
	Name           string
	CreationDate   GrailTime
	ExpirationDate GrailTime
	Origin         string
	Data           []byte
}

// AliasedAttribute is the wire form of Attribute used for repeated
// transmissions: Name and Origin are replaced by u32 aliases resolved
// through a connection's AliasTable (§3).
type AliasedAttribute struct {
	NameAlias      uint32
	CreationDate   GrailTime
	ExpirationDate GrailTime
	OriginAlias    uint32
	Data           []byte
}
