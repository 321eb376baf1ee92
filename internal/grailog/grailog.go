// Package grailog centralizes the logrus setup shared by every package in
// this module, mirroring how dtnd configures its single package-level
// logger from a TOML logging block.
package grailog

import (
	log "github.com/sirupsen/logrus"
)

// Log is the package-level logger used throughout grailnet. Callers
// configure it once at startup via Configure; library code just uses
// Log.WithFields/WithError like the rest of the GRAIL stack.
var Log = log.StandardLogger()

// Config describes the logging block of a TOML configuration file.
type Config struct {
	Level        string `toml:"level"`
	ReportCaller bool   `toml:"report-caller"`
	Format       string `toml:"format"`
}

// Configure applies a Config to the shared logger. Unknown levels or
// formats are warned about and ignored rather than treated as fatal,
// matching dtnd's tolerant configuration parsing.
func Configure(c Config) {
	if c.Level != "" {
		if lvl, err := log.ParseLevel(c.Level); err != nil {
			Log.WithFields(log.Fields{
				"level":    c.Level,
				"error":    err,
				"provided": "panic,fatal,error,warn,info,debug,trace",
			}).Warn("failed to set log level")
		} else {
			Log.SetLevel(lvl)
		}
	}

	Log.SetReportCaller(c.ReportCaller)

	switch c.Format {
	case "", "text":
		Log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	case "json":
		Log.SetFormatter(&log.JSONFormatter{})
	default:
		Log.Warn("unknown logging format")
	}
}
