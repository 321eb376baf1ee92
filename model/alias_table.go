package model

// AliasTable is a per-connection helper mapping u32 aliases to UTF-16
// strings for repeated attribute-name/origin transmissions (§3). The codec
// itself never maintains this state; AliasTable is an optional convenience
// an endpoint may use to implement the allocate-or-reuse bookkeeping the
// original implementation performed inline (see SPEC_FULL.md §5).
//
// Attribute-name and origin alias tables are distinct instances: callers
// construct one AliasTable per string domain.
type AliasTable struct {
	byAlias map[uint32]string
	byName  map[string]uint32
	onDemand map[uint32]bool
	next    uint32
}

// NewAliasTable returns an empty table ready to allocate aliases starting
// at 1 (0 is reserved as "no alias" by convention of the callers above).
func NewAliasTable() *AliasTable {
	return &AliasTable{
		byAlias:  make(map[uint32]string),
		byName:   make(map[string]uint32),
		onDemand: make(map[uint32]bool),
		next:     1,
	}
}

// Lookup resolves an alias to its string, as used when decoding an
// AliasedAttribute or SolutionData payload.
func (t *AliasTable) Lookup(alias uint32) (string, bool) {
	s, ok := t.byAlias[alias]
	return s, ok
}

// Alias returns the existing alias for name, if any.
func (t *AliasTable) Alias(name string) (uint32, bool) {
	a, ok := t.byName[name]
	return a, ok
}

// Allocate returns the existing alias for name, or assigns and records the
// next free one, mirroring the reference allocate-or-lookup bookkeeping.
func (t *AliasTable) Allocate(name string) uint32 {
	if a, ok := t.byName[name]; ok {
		return a
	}
	a := t.next
	t.next++
	t.byAlias[a] = name
	t.byName[name] = a
	return a
}

// Define records an alias announced by a peer (e.g. via an attribute_alias
// or origin_alias message), overwriting any prior mapping for that alias.
func (t *AliasTable) Define(alias uint32, name string) {
	t.byAlias[alias] = name
	t.byName[name] = alias
	if alias >= t.next {
		t.next = alias + 1
	}
}

// SetOnDemand records whether alias's type should flow only while a
// matching client request is active (solver↔world-model type_announce).
func (t *AliasTable) SetOnDemand(alias uint32, onDemand bool) {
	t.onDemand[alias] = onDemand
}

// OnDemand reports the on-demand flag recorded for alias, defaulting to
// false when no type_announce has set it.
func (t *AliasTable) OnDemand(alias uint32) bool {
	return t.onDemand[alias]
}
