//go:build unix

package framing

import (
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// pollRawConn reports whether rc has data ready to read within timeout, by
// polling the raw file descriptor with golang.org/x/sys/unix.Poll instead
// of round-tripping through a read deadline. Grounded on the teacher's
// TCPListener.Start accept loop (pkg/cla/tcpclv4/impl_tcp.go), which polls
// a listener on a short deadline in a loop; this does the equivalent for a
// single connection's readability using the platform poll syscall the
// pack's golang.org/x/sys dependency exists to support.
func pollRawConn(rc syscall.RawConn, timeout time.Duration) (ready bool, err error) {
	ctrlErr := rc.Control(func(fd uintptr) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, pollErr := unix.Poll(fds, int(timeout.Milliseconds()))
		if pollErr != nil {
			err = pollErr
			return
		}
		ready = n > 0 && fds[0].Revents&unix.POLLIN != 0
	})
	if ctrlErr != nil {
		return false, ctrlErr
	}
	return ready, err
}
