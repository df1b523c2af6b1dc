package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/specialistvlad/gridbelt/internal/ctxlog"
	"github.com/specialistvlad/gridbelt/internal/engine"
	"github.com/specialistvlad/gridbelt/internal/fsutil"
	"github.com/specialistvlad/gridbelt/internal/grid"
)

// Run reads the configured program and executes it until it halts, the
// context is cancelled, or the tick budget is spent.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "program", a.config.ProgramPath)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer()
	}

	text, err := fsutil.ReadText(ctx, a.config.ProgramPath, a.stdin)
	if err != nil {
		return err
	}

	g, err := grid.Build(text)
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	logger.Info("Grid built.", "width", g.Width(), "height", g.Height(), "values", g.LiveValues())

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMaxTicks(a.config.MaxTicks),
		engine.WithObserver(func(p engine.Progress) {
			a.tick.Store(p.Tick)
			a.halted.Store(p.Halted)
		}),
	}
	if a.config.Trace {
		opts = append(opts, engine.WithTrace(a.errW))
	}
	machine := engine.New(g, out, opts...)

	logger.Info("🚀 Starting execution...")
	start := time.Now()
	res, err := machine.Run(ctx)
	a.result = res
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	logger.Info("🏁 Execution finished.", "ticks", res.Ticks, "halted", res.Halted, "elapsed", time.Since(start))

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) openOutput() (io.Writer, func(), error) {
	path := a.config.OutputPath
	if path == "" || path == "-" {
		return a.outW, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			a.logger.Error("Failed to close output file.", "path", path, "error", err)
		}
	}, nil
}
