package framing

import "sync/atomic"

// CancelFlag is a cooperative cancellation signal shared between a caller
// and the framing Reader operations it calls (§5 "Cancellation"). The zero
// value is unset and ready to use.
type CancelFlag struct {
	set atomic.Bool
}

// NewCancelFlag returns a fresh, unset CancelFlag.
func NewCancelFlag() *CancelFlag {
	return &CancelFlag{}
}

// Cancel sets the flag. Safe to call from any goroutine, any number of
// times.
func (c *CancelFlag) Cancel() {
	c.set.Store(true)
}

// IsSet reports whether Cancel has been called.
func (c *CancelFlag) IsSet() bool {
	return c.set.Load()
}
