package main

import (
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/grail-owl/grailnet/internal/grailog"
	"github.com/grail-owl/grailnet/model"
)

// tomlConfig describes grailrelaycat's configuration file, laid out the
// way cmd/dtnd's tomlConfig nests one struct per concern
// (cmd/dtnd/configuration.go).
type tomlConfig struct {
	Listen  listenConf
	Logging grailog.Config
	Demo    demoConf
}

// listenConf describes the aggregator-solver listener.
type listenConf struct {
	Address string
}

// demoConf describes the synthetic subscription and sample generator this
// illustrative relay uses in place of a real radio aggregator (§1
// Non-goals: "no CLI plumbing" beyond exercising the codec/framing/conn
// layers end-to-end).
type demoConf struct {
	PhysicalLayer    uint8
	TransmitterCount int    `toml:"transmitter-count"`
	UpdateIntervalMs uint64 `toml:"update-interval-ms"`
}

func (d demoConf) defaultSubscription() model.Subscription {
	count := d.TransmitterCount
	if count <= 0 {
		count = 4
	}
	interval := d.UpdateIntervalMs
	if interval == 0 {
		interval = 1000
	}
	rule := model.SubscriptionRule{
		PhysicalLayer:    d.PhysicalLayer,
		UpdateIntervalMs: interval,
	}
	for i := 0; i < count; i++ {
		rule.Transmitters = append(rule.Transmitters, model.TransmitterMask{
			Base: model.NewUInt128FromUint64(uint64(i)),
			Mask: model.NewUInt128FromUint64(^uint64(0)),
		})
	}
	return model.Subscription{rule}
}

// configStore holds the live configuration and lets fsnotify-driven
// reloads swap it atomically, mirroring the watch-and-reparse shape the
// pack's fsnotify dependency is meant to support (SPEC_FULL.md §3).
type configStore struct {
	mu  sync.RWMutex
	cfg tomlConfig
}

func newConfigStore(path string) (*configStore, error) {
	s := &configStore{}
	if err := s.reload(path); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *configStore) reload(path string) error {
	var cfg tomlConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	grailog.Configure(cfg.Logging)
	return nil
}

func (s *configStore) current() tomlConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
