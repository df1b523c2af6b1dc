package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gridbelt/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProgramPath string // "-" reads stdin
	ConfigPath  string // optional HCL run file
	OutputPath  string // empty or "-" writes to the app's output writer

	MaxTicks uint64
	Trace    bool

	LogFormat       string
	LogLevel        string
	LogFile         string
	HealthcheckPort int
}

// NewConfig applies defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProgramPath == "" {
		return nil, errors.New("ProgramPath is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}

	return &cfg, nil
}

// Merge fills every field left unset in c from the run file model. Values
// given on the command line always win.
func (c Config) Merge(m *config.Model) Config {
	if m == nil {
		return c
	}
	if c.ProgramPath == "" {
		c.ProgramPath = m.Program
	}
	if c.OutputPath == "" {
		c.OutputPath = m.Output
	}
	if c.MaxTicks == 0 {
		c.MaxTicks = m.MaxTicks
	}
	c.Trace = c.Trace || m.Trace
	if c.HealthcheckPort == 0 {
		c.HealthcheckPort = m.HealthcheckPort
	}
	if c.LogLevel == "" {
		c.LogLevel = m.Log.Level
	}
	if c.LogFormat == "" {
		c.LogFormat = m.Log.Format
	}
	if c.LogFile == "" {
		c.LogFile = m.Log.File
	}
	return c
}
