// Command grailrelaycat is a TOML-configured demo aggregator-solver relay:
// it accepts solver connections, honors whatever subscription they send,
// and streams synthetic samples matching it until the connection closes.
// It exists to exercise framing, conn, and the aggregator-solver codec
// end-to-end (§1 Non-goals), not to implement real sensor-aggregator
// semantics — grounded on the teacher's cmd/dtnd daemon shape.
package main

import (
	"math/rand"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/grail-owl/grailnet/conn"
	"github.com/grail-owl/grailnet/model"
	"github.com/grail-owl/grailnet/proto/aggregatorsolver"
	"github.com/grail-owl/grailnet/proto/handshake"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s configuration.toml", os.Args[0])
	}
	configPath := os.Args[1]

	store, err := newConfigStore(configPath)
	if err != nil {
		log.WithError(err).Fatal("grailrelaycat: failed to parse config")
	}

	watchConfig(configPath, store)

	ln, err := net.Listen("tcp", store.current().Listen.Address)
	if err != nil {
		log.WithError(err).Fatal("grailrelaycat: failed to listen")
	}
	defer ln.Close()

	manager := conn.NewManager()
	go acceptLoop(ln, manager, store)

	log.WithField("address", ln.Addr().String()).Info("grailrelaycat: listening")
	waitSigint()

	log.Info("grailrelaycat: shutting down")
	if err := manager.Close(); err != nil {
		log.WithError(err).Warn("grailrelaycat: error during shutdown")
	}
}

// watchConfig reloads store whenever configPath changes on disk, the same
// watch-and-reparse shape fsnotify enables elsewhere in the pack
// (SPEC_FULL.md §3).
func watchConfig(configPath string, store *configStore) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.WithError(err).Warn("grailrelaycat: config hot-reload disabled")
		return
	}
	if err := watcher.Add(configPath); err != nil {
		log.WithError(err).Warn("grailrelaycat: failed to watch config file")
		watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := store.reload(configPath); err != nil {
					log.WithError(err).Warn("grailrelaycat: config reload failed")
				} else {
					log.Info("grailrelaycat: config reloaded")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("grailrelaycat: config watcher error")
			}
		}
	}()
}

func acceptLoop(ln net.Listener, manager *conn.Manager, store *configStore) {
	for {
		stream, err := ln.Accept()
		if err != nil {
			log.WithError(err).Warn("grailrelaycat: accept failed")
			return
		}
		c := conn.New(stream)
		manager.Register(c)
		go serveSolver(c, manager, store)
	}
}

func serveSolver(c *conn.Conn, manager *conn.Manager, store *configStore) {
	defer manager.Unregister(c)
	defer c.Close()

	if err := c.Send(handshake.Encode(handshake.AggregatorSolver)); err != nil {
		c.Log().WithError(err).Warn("grailrelaycat: handshake send failed")
		return
	}
	hsFrame, err := c.NextMessage()
	if err != nil {
		c.Log().WithError(err).Debug("grailrelaycat: handshake read failed")
		return
	}
	peer, ok := handshake.Decode(hsFrame)
	if !ok || !handshake.Matches(peer, handshake.AggregatorSolver) {
		c.Log().WithField("peer", peer).Warn("grailrelaycat: handshake mismatch")
		return
	}

	subFrame, err := c.NextMessage()
	if err != nil {
		c.Log().WithError(err).Debug("grailrelaycat: subscription read failed")
		return
	}
	sub := aggregatorsolver.DecodeSubscriptionRequest(subFrame)
	if sub == nil {
		sub = store.current().Demo.defaultSubscription()
	}
	if err := c.Send(aggregatorsolver.EncodeSubscriptionResponse(sub)); err != nil {
		c.Log().WithError(err).Warn("grailrelaycat: subscription response send failed")
		return
	}

	streamSamples(c, sub)
}

// streamSamples generates a synthetic sample for every transmitter the
// subscription admits, at the rule's requested cadence, until the
// connection is canceled.
func streamSamples(c *conn.Conn, sub model.Subscription) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, rule := range sub {
		rule := rule
		go func() {
			interval := time.Duration(rule.UpdateIntervalMs) * time.Millisecond
			if interval <= 0 {
				interval = time.Second
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				if c.Cancel.IsSet() {
					return
				}
				for _, tx := range rule.Transmitters {
					sample := model.Sample{
						PhysicalLayer: rule.PhysicalLayer,
						TxID:          tx.Base,
						RxID:          model.NewUInt128FromUint64(1),
						RxTimestamp:   model.NowGrailTime(),
						RSS:           float32(-60 - rng.Intn(40)),
						Valid:         true,
					}
					if err := c.Send(aggregatorsolver.EncodeServerSample(sample)); err != nil {
						c.Log().WithError(err).Debug("grailrelaycat: sample send failed")
						return
					}
				}
				<-ticker.C
			}
		}()
	}

	for {
		if c.Cancel.IsSet() {
			return
		}
		if _, err := c.NextMessage(); err != nil {
			return
		}
	}
}

func waitSigint() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh
}
