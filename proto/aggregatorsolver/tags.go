// Package aggregatorsolver implements §4.E.3: the aggregator-solver
// protocol. A solver subscribes to a set of matching rules; the
// aggregator replies with the subscription it actually honors and then
// streams matching samples until the connection closes or a new
// subscription supersedes the old one.
package aggregatorsolver

// Tag identifies one of the eight aggregator-solver message kinds (§4.E.3).
type Tag uint8

const (
	TagKeepAlive            Tag = 0
	TagCertificate          Tag = 1
	TagAckCertificate       Tag = 2
	TagSubscriptionRequest  Tag = 3
	TagSubscriptionResponse Tag = 4
	TagDevicePosition       Tag = 5
	TagServerSample         Tag = 6
	TagBufferOverrun        Tag = 7
)
