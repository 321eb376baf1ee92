package model

// TransmitterMask is a (base, mask) pair admitting observed ids x such
// that x & mask == base & mask (§3, glossary "Transmitter mask").
type TransmitterMask struct {
	Base UInt128
	Mask UInt128
}

// Matches reports whether id satisfies this mask.
func (m TransmitterMask) Matches(id UInt128) bool {
	return id.And(m.Mask).Equal(m.Base.And(m.Mask))
}

// SubscriptionRule matches an observed Transmitter if its physical layer
// equals PhysicalLayer and at least one of Transmitters admits its id
// (§3). UpdateIntervalMs requests a delivery cadence from the aggregator.
type SubscriptionRule struct {
	PhysicalLayer   uint8
	Transmitters    []TransmitterMask
	UpdateIntervalMs uint64
}

// Matches reports whether this rule admits the given Transmitter.
func (r SubscriptionRule) Matches(tx Transmitter) bool {
	if tx.PhysicalLayer != r.PhysicalLayer {
		return false
	}
	for _, m := range r.Transmitters {
		if m.Matches(tx.ID) {
			return true
		}
	}
	return false
}

// Subscription is an ordered list of rules with union semantics: a
// transmitter is admitted if any rule in the list admits it (§3).
type Subscription []SubscriptionRule

// Matches reports whether any rule in the subscription admits tx.
func (s Subscription) Matches(tx Transmitter) bool {
	for _, r := range s {
		if r.Matches(tx) {
			return true
		}
	}
	return false
}
