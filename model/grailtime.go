package model

import "time"

// GrailTime is a signed 64-bit count of milliseconds since the Unix epoch
// (1970-01-01 UTC), the GRAIL platform's shared time representation (§3,
// §4.D). It is distinct from bpv7's DtnTime (which counts from the year
// 2000 and is unsigned): GRAIL keeps the full Unix epoch so an expiration
// of 0 can unambiguously mean "not expired" rather than a valid timestamp.
type GrailTime int64

// MaxGrailTime is the sentinel meaning "no expiration".
const MaxGrailTime GrailTime = (1 << 63) - 1

// NowGrailTime returns the current wall-clock time as a GrailTime.
func NowGrailTime() GrailTime {
	return GrailTime(time.Now().UnixMilli())
}

// Time converts t to a UTC time.Time.
func (t GrailTime) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// GrailTimeFromTime converts a time.Time to a GrailTime.
func GrailTimeFromTime(t time.Time) GrailTime {
	return GrailTime(t.UnixMilli())
}

// Expired reports whether this expiration timestamp has passed as of now.
// A zero expiration never expires, per §3's Attribute invariant.
func (t GrailTime) Expired(now GrailTime) bool {
	return t != 0 && t <= now
}

func (t GrailTime) String() string {
	if t == MaxGrailTime {
		return "never"
	}
	return t.Time().Format("2006-01-02 15:04:05.000")
}
