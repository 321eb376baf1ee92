// Package conn supervises a single GRAIL connection: a raw net.Conn paired
// with a framing.Reader, a per-connection cancel flag, and a UUID used to
// correlate its log lines. Grounded on the teacher's cla.Convergence /
// tcpclv4.Client connection wrapper (pkg/cla/tcpclv4/client.go), adapted
// from a CLA-specific bundle exchanger into a protocol-agnostic frame
// pump any of the three GRAIL protocols can sit on top of.
package conn

import (
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/grail-owl/grailnet/framing"
)

// Conn is one supervised GRAIL connection. Send is not serialized by Conn
// itself — per §5, "Writers on the send side are not locked by the codec";
// callers that write from multiple goroutines must serialize their own
// sends.
type Conn struct {
	ID     uuid.UUID
	Stream net.Conn
	Reader *framing.Reader
	Cancel *framing.CancelFlag

	closeOnce sync.Once
}

// New wraps stream for framed reading, tagging it with a fresh UUID for
// log correlation (mirrors the teacher's per-CLA addressing, but with a
// collision-free key instead of a reused address string).
func New(stream net.Conn) *Conn {
	return &Conn{
		ID:     uuid.New(),
		Stream: stream,
		Reader: framing.NewReader(stream),
		Cancel: framing.NewCancelFlag(),
	}
}

// Log returns a logrus entry pre-tagged with this connection's id and
// remote address, the way the teacher's cla package fields every log line
// with its CLA's identity.
func (c *Conn) Log() *log.Entry {
	return log.WithFields(log.Fields{
		"conn":   c.ID.String(),
		"remote": c.Stream.RemoteAddr().String(),
	})
}

// Send writes frame to the underlying stream verbatim. frame is expected
// to already be a complete length-prefixed message, as produced by any
// proto/* Encode function.
func (c *Conn) Send(frame []byte) error {
	_, err := c.Stream.Write(frame)
	return err
}

// NextMessage blocks until a full frame is available or the connection's
// Cancel flag is set, delegating to the underlying framing.Reader.
func (c *Conn) NextMessage() ([]byte, error) {
	return c.Reader.NextMessage(c.Cancel)
}

// MessageAvailable is the non-blocking probe form of NextMessage.
func (c *Conn) MessageAvailable() (bool, error) {
	return c.Reader.MessageAvailable(c.Cancel)
}

// Close signals Cancel and closes the underlying stream. Safe to call more
// than once; only the first call takes effect.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.Cancel.Cancel()
		err = c.Stream.Close()
		if err != nil && err != io.ErrClosedPipe {
			c.Log().WithError(err).Debug("conn: error closing stream")
		}
	})
	return err
}
