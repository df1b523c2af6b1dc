package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/specialistvlad/gridbelt/internal/config"
	"github.com/specialistvlad/gridbelt/internal/ctxlog"
	"github.com/specialistvlad/gridbelt/internal/engine"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	errW    io.Writer
	stdin   io.Reader
	logger  *slog.Logger
	logFile io.Closer
	config  *Config

	httpServer *http.Server
	tick       atomic.Uint64
	halted     atomic.Bool
	result     engine.Result
}

// NewApp is the constructor for the main application. Program output goes to
// outW and logs to errW. If the configuration names a run file it is loaded
// with loader and merged underneath the explicit settings.
//
// A broken run file or log file is a fatal startup error and panics; the
// entrypoint recovers and reports it.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader) *App {
	cfg := *appConfig

	if cfg.ConfigPath != "" {
		bootLogger := newLogger(cfg.LogLevel, cfg.LogFormat, errW, nil)
		ctx := ctxlog.WithLogger(context.Background(), bootLogger)

		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		cfg = cfg.Merge(model)
	}

	merged, err := NewConfig(cfg)
	if err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	a := &App{
		outW:   outW,
		errW:   errW,
		stdin:  os.Stdin,
		config: merged,
	}

	var fileW io.Writer
	if merged.LogFile != "" {
		f, err := os.OpenFile(merged.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		a.logFile = f
		fileW = f
	}

	a.logger = newLogger(merged.LogLevel, merged.LogFormat, errW, fileW)
	a.logger.Debug("Logger configured successfully.", "config", merged)
	return a
}

// Config returns the merged configuration. This is primarily for testing.
func (a *App) Config() Config {
	return *a.config
}

// Result returns the outcome of the last Run.
func (a *App) Result() engine.Result {
	return a.result
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}
