// Package worldmodel implements §4.E.4: the two world-model sub-protocols
// — client↔world-model and solver↔world-model — which share framing and
// several body shapes but have disjoint type spaces.
package worldmodel

// ClientTag identifies one of the twelve client↔world-model message kinds.
type ClientTag uint8

const (
	ClientKeepAlive        ClientTag = 0
	ClientSnapshotRequest  ClientTag = 1
	ClientRangeRequest     ClientTag = 2
	ClientStreamRequest    ClientTag = 3
	ClientAttributeAlias   ClientTag = 4
	ClientOriginAlias      ClientTag = 5
	ClientRequestComplete  ClientTag = 6
	ClientCancelRequest    ClientTag = 7
	ClientDataResponse     ClientTag = 8
	ClientURISearch        ClientTag = 9
	ClientURIResponse      ClientTag = 10
	ClientOriginPreference ClientTag = 11
)

// SolverTag identifies one of the ten solver↔world-model message kinds.
type SolverTag uint8

const (
	SolverKeepAlive        SolverTag = 0
	SolverTypeAnnounce     SolverTag = 1
	SolverStartOnDemand    SolverTag = 2
	SolverStopOnDemand     SolverTag = 3
	SolverData             SolverTag = 4
	SolverCreateURI        SolverTag = 5
	SolverExpireURI        SolverTag = 6
	SolverDeleteURI        SolverTag = 7
	SolverExpireAttribute  SolverTag = 8
	SolverDeleteAttribute  SolverTag = 9
)
