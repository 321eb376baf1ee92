package conn

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// Manager tracks a set of live Conns and closes them together, mirroring
// the supervisory role of the teacher's pkg/cla.Manager but scoped to
// plain connections rather than full convergence layers: this package has
// no routing or retry policy of its own, only bookkeeping and aggregated
// shutdown.
type Manager struct {
	mu    sync.Mutex
	conns map[uuid.UUID]*Conn
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{conns: make(map[uuid.UUID]*Conn)}
}

// Register adds c to the supervised set.
func (m *Manager) Register(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
	c.Log().Debug("conn: registered")
}

// Unregister removes c from the supervised set without closing it.
func (m *Manager) Unregister(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, c.ID)
}

// Count returns the number of currently supervised connections.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

// Close closes every supervised connection, aggregating per-connection
// close errors with multierror.Append the way the teacher's core package
// folds multiple CLA/ApplicationAgent shutdown errors into one.
func (m *Manager) Close() error {
	m.mu.Lock()
	conns := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		conns = append(conns, c)
	}
	m.conns = make(map[uuid.UUID]*Conn)
	m.mu.Unlock()

	var result *multierror.Error
	for _, c := range conns {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		log.WithError(result).Warn("conn: manager close encountered errors")
		return result
	}
	return nil
}
