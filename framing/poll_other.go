//go:build !unix

package framing

import (
	"errors"
	"syscall"
	"time"
)

var errPollUnsupported = errors.New("framing: raw fd poll unsupported on this platform")

// pollRawConn is unavailable on non-unix platforms; Reader falls back to
// its read-deadline poll strategy instead.
func pollRawConn(rc syscall.RawConn, timeout time.Duration) (bool, error) {
	return false, errPollUnsupported
}
