package model

// WorldData is a world-model object and the attributes carried for it in a
// single message (§3). ObjectURI is a plain UTF-16 string in this form;
// see AliasedWorldData for the wire-compressed form.
type WorldData struct {
	ObjectURI  string
	Attributes []Attribute
}

// AliasedWorldData is the wire form of WorldData used on data_response
// messages, where attribute name and origin are alias-compressed (§3).
type AliasedWorldData struct {
	ObjectURI  string
	Attributes []AliasedAttribute
}

// Request is a client's snapshot/range/stream request against the world
// model (§3, §4.E.4). ObjectURI is a regex pattern over object URIs.
// StopOrPeriod is an end timestamp for snapshot/range requests, or an
// update-interval in milliseconds for stream requests.
type Request struct {
	Ticket       uint32
	ObjectURI    string
	Attributes   []string
	Start        GrailTime
	StopOrPeriod GrailTime
}

// SolutionData is a single derived-attribute value a solver publishes to
// the world model (§3, §4.E.4 solver_data).
type SolutionData struct {
	TypeAlias uint32
	Time      GrailTime
	Target    string
	Data      []byte
}
