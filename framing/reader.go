// Package framing implements component C of the wire layer: turning a raw
// byte-stream transport into a sequence of whole, length-prefixed
// messages, tolerating partial reads and messages that span multiple
// reads (§4.C).
//
// Framing is the only part of this module that blocks or touches a real
// transport; everything in wire/ and proto/ is pure, allocate-bounded
// CPU work over byte slices (§5).
package framing

import (
	"encoding/binary"
	"io"
	"net"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	lengthPrefixSize = 4

	// scratchCapacity is the initial size of the receive buffer each read
	// is performed into, per §4.C.
	scratchCapacity = 10 * 1024

	// pollTimeout bounds how long a single read attempt waits for data,
	// both for MessageAvailable's non-blocking probe and as the polling
	// granularity NextMessage uses to stay responsive to cancellation
	// (§4.C, §5).
	pollTimeout = 10 * time.Millisecond

	// retrySleep is how long NextMessage backs off after a transient
	// would-block condition before polling again (§4.C).
	retrySleep = 1 * time.Millisecond
)

// Reader turns a byte-stream source into discrete, whole messages framed
// as [length: u32 big-endian][length bytes of payload]. It owns a carry
// buffer of bytes belonging to an unfinished message and a scratch receive
// buffer, and serializes MessageAvailable/NextMessage against each other
// with an internal mutex (§4.C, §5).
//
// The returned message bytes include the 4-byte length prefix; decoders
// expect to read the length first (§4.C).
type Reader struct {
	stream io.Reader
	mu     chan struct{} // 1-buffered: acts as a non-reentrant mutex

	carry   []byte
	scratch []byte
}

// NewReader wraps stream for framed reading. stream is typically a
// net.Conn; when it also implements syscall.Conn, MessageAvailable and
// NextMessage poll the raw file descriptor instead of juggling read
// deadlines.
func NewReader(stream io.Reader) *Reader {
	r := &Reader{
		stream:  stream,
		mu:      make(chan struct{}, 1),
		scratch: make([]byte, scratchCapacity),
	}
	r.mu <- struct{}{}
	return r
}

func (r *Reader) lock()   { <-r.mu }
func (r *Reader) unlock() { r.mu <- struct{}{} }

// completeLen returns the total frame length (prefix included) if carry
// holds a complete message, or 0 if it does not yet.
func completeLen(carry []byte) int {
	if len(carry) < lengthPrefixSize {
		return 0
	}
	length := binary.BigEndian.Uint32(carry[:lengthPrefixSize])
	total := int(length) + lengthPrefixSize
	if total <= len(carry) {
		return total
	}
	return 0
}

// MessageAvailable is a non-blocking probe: it reports whether a complete
// message is ready to be read without the caller committing to
// NextMessage's blocking wait (§4.C).
//
// If carry already holds a complete message it returns true immediately.
// Otherwise it polls the stream for at most ~10ms; no data within that
// window returns false, data received is folded into carry and the check
// repeated once.
func (r *Reader) MessageAvailable(cancel *CancelFlag) (bool, error) {
	r.lock()
	defer r.unlock()

	if completeLen(r.carry) > 0 {
		return true, nil
	}
	if cancel != nil && cancel.IsSet() {
		return false, nil
	}

	got, err := r.pollOnce(pollTimeout)
	if err != nil {
		return false, err
	}
	if !got {
		return false, nil
	}
	return completeLen(r.carry) > 0, nil
}

// NextMessage blocks until carry holds a complete message or cancel is
// set, then returns it (prefix included) and shrinks carry to whatever
// remains (§4.C). On cancellation it returns an empty, non-nil slice.
func (r *Reader) NextMessage(cancel *CancelFlag) ([]byte, error) {
	r.lock()
	defer r.unlock()

	for {
		if n := completeLen(r.carry); n > 0 {
			msg := make([]byte, n)
			copy(msg, r.carry[:n])
			r.carry = append([]byte(nil), r.carry[n:]...)
			return msg, nil
		}
		if cancel != nil && cancel.IsSet() {
			return []byte{}, nil
		}

		got, err := r.pollOnce(pollTimeout)
		if err != nil {
			return nil, err
		}
		if !got {
			time.Sleep(retrySleep)
		}
	}
}

// pollOnce waits up to timeout for the stream to become readable (or, for
// streams without a poll strategy, simply reads), appending any bytes
// received to carry. It reports whether any bytes were appended.
func (r *Reader) pollOnce(timeout time.Duration) (bool, error) {
	if sc, ok := r.stream.(syscall.Conn); ok {
		if rc, rcErr := sc.SyscallConn(); rcErr == nil {
			ready, pollErr := pollRawConn(rc, timeout)
			if pollErr == nil {
				if !ready {
					return false, nil
				}
				return r.readOnce()
			}
			// Unsupported on this platform: fall through to the deadline
			// strategy below.
		}
	}

	if dc, ok := r.stream.(interface {
		SetReadDeadline(time.Time) error
	}); ok {
		if err := dc.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return false, &StreamError{Err: err}
		}
		n, err := r.readOnceRaw()
		_ = dc.SetReadDeadline(time.Time{})
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return false, nil
			}
			if err == io.EOF {
				return false, ErrConnectionClosed
			}
			return false, &StreamError{Err: err}
		}
		r.carry = append(r.carry, r.scratch[:n]...)
		return n > 0, nil
	}

	// No poll strategy available: block on a plain read. Cancellation and
	// the 10ms granularity promised by §5 cannot be honored for a stream
	// that exposes neither syscall.Conn nor a read deadline.
	return r.readOnce()
}

func (r *Reader) readOnce() (bool, error) {
	n, err := r.readOnceRaw()
	if err != nil {
		if err == io.EOF {
			return false, ErrConnectionClosed
		}
		return false, &StreamError{Err: err}
	}
	r.carry = append(r.carry, r.scratch[:n]...)
	return n > 0, nil
}

func (r *Reader) readOnceRaw() (int, error) {
	n, err := r.stream.Read(r.scratch)
	if err != nil && n == 0 {
		return 0, err
	}
	if err != nil && err != io.EOF {
		log.WithError(err).Debug("framing: read returned data with a trailing error")
	}
	return n, nil
}
