package handshake

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, p := range []Protocol{SensorAggregator, AggregatorSolver, WorldModelClient, WorldModelSolver} {
		frame := Encode(p)
		got, ok := Decode(frame)
		if !ok {
			t.Fatalf("%v: decode failed", p)
		}
		if got != p {
			t.Fatalf("got %v want %v", got, p)
		}
	}
}

func TestEncodeLengthsMatchSpec(t *testing.T) {
	cases := map[Protocol]int{
		SensorAggregator: 21,
		AggregatorSolver: 21,
		WorldModelClient: 21,
		WorldModelSolver: 26,
	}
	for p, asciiLen := range cases {
		frame := Encode(p)
		wantTotal := 4 + asciiLen + 2
		if len(frame) != wantTotal {
			t.Fatalf("%v: frame len = %d want %d", p, len(frame), wantTotal)
		}
	}
}

func TestDecodeTruncatedFrame(t *testing.T) {
	frame := Encode(SensorAggregator)
	for k := 0; k < len(frame); k++ {
		if _, ok := Decode(frame[:k]); ok {
			t.Fatalf("truncation to %d bytes unexpectedly decoded", k)
		}
	}
}

func TestMatches(t *testing.T) {
	if !Matches(SensorAggregator, SensorAggregator) {
		t.Fatal("expected match")
	}
	if Matches(SensorAggregator, AggregatorSolver) {
		t.Fatal("expected mismatch")
	}
}
