package model

// OriginWeight ranks an origin string for snapshot/stream attribute
// selection (§4.E.4 origin_preference). Default weight is 1; a negative
// weight means "never return"; among equally-weighted origins all are
// returned, otherwise only the highest-weighted group. Applies to
// snapshot and stream requests only, not range.
type OriginWeight struct {
	Origin string
	Weight int32
}
