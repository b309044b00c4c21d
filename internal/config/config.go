// Package config handles application configuration and setup
package config

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogenie/internal/options"
	"github.com/retroenv/retrogenie/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateOutputFormat returns the result writer format for the given name.
func CreateOutputFormat(name string) (writer.Format, error) {
	switch strings.ToLower(name) {
	case options.FormatText, "":
		return writer.Text, nil
	case options.FormatPlain:
		return writer.Plain, nil
	default:
		return 0, fmt.Errorf("unsupported output format '%s'", name)
	}
}
