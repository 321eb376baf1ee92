package aggregatorsolver

import (
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/envelope"
	"github.com/grail-owl/grailnet/wire"
)

// encodeSubscriptionBody appends num_rules: u32 | [rule]* where each rule
// is physical_layer: u8 | num_txers: u32 | [base_id: u128, mask: u128]* |
// update_interval: u64 (§4.E.3). subscription_request and
// subscription_response share this exact body shape; only the tag
// differs.
func encodeSubscriptionBody(w *wire.Writer, sub model.Subscription) {
	w.AppendUint32(uint32(len(sub)))
	for _, rule := range sub {
		w.AppendUint8(rule.PhysicalLayer)
		w.AppendUint32(uint32(len(rule.Transmitters)))
		for _, tx := range rule.Transmitters {
			w.AppendUint128(tx.Base.Hi, tx.Base.Lo)
			w.AppendUint128(tx.Mask.Hi, tx.Mask.Lo)
		}
		w.AppendUint64(rule.UpdateIntervalMs)
	}
}

func decodeSubscriptionBody(r *wire.Reader) model.Subscription {
	numRules := r.ReadUint32()
	if r.OutOfRange() {
		return nil
	}
	sub := make(model.Subscription, 0, r.SafeCount(numRules, 13))
	for i := uint32(0); i < numRules && !r.OutOfRange(); i++ {
		var rule model.SubscriptionRule
		rule.PhysicalLayer = r.ReadUint8()
		numTxers := r.ReadUint32()
		if r.OutOfRange() {
			return nil
		}
		rule.Transmitters = make([]model.TransmitterMask, 0, r.SafeCount(numTxers, 32))
		for j := uint32(0); j < numTxers && !r.OutOfRange(); j++ {
			baseHi, baseLo := r.ReadUint128()
			maskHi, maskLo := r.ReadUint128()
			rule.Transmitters = append(rule.Transmitters, model.TransmitterMask{
				Base: model.UInt128{Hi: baseHi, Lo: baseLo},
				Mask: model.UInt128{Hi: maskHi, Lo: maskLo},
			})
		}
		rule.UpdateIntervalMs = r.ReadUint64()
		sub = append(sub, rule)
	}
	if r.OutOfRange() {
		return nil
	}
	return sub
}

// EncodeSubscriptionRequest returns the wire bytes for a solver's
// subscription request.
func EncodeSubscriptionRequest(sub model.Subscription) []byte {
	return envelope.Encode(uint8(TagSubscriptionRequest), func(w *wire.Writer) {
		encodeSubscriptionBody(w, sub)
	})
}

// DecodeSubscriptionRequest parses a subscription_request frame. A nil
// return means the frame was malformed (§4.E.4 decoder gate).
func DecodeSubscriptionRequest(frame []byte) model.Subscription {
	r, ok := envelope.Open(frame, uint8(TagSubscriptionRequest))
	if !ok {
		return nil
	}
	return decodeSubscriptionBody(r)
}

// EncodeSubscriptionResponse returns the wire bytes for the aggregator's
// echo of the subscription it is actually honoring, which may be a subset
// of what was requested (§4.E.3).
func EncodeSubscriptionResponse(sub model.Subscription) []byte {
	return envelope.Encode(uint8(TagSubscriptionResponse), func(w *wire.Writer) {
		encodeSubscriptionBody(w, sub)
	})
}

// DecodeSubscriptionResponse parses a subscription_response frame.
func DecodeSubscriptionResponse(frame []byte) model.Subscription {
	r, ok := envelope.Open(frame, uint8(TagSubscriptionResponse))
	if !ok {
		return nil
	}
	return decodeSubscriptionBody(r)
}
