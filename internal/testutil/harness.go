package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/specialistvlad/gridbelt/internal/engine"
	"github.com/specialistvlad/gridbelt/internal/grid"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcome of running a program.
type HarnessResult struct {
	Output    string
	LogOutput string
	Result    engine.Result
	Err       error
}

// RunProgram builds src and runs it for at most maxTicks ticks (0 means
// until halt). Logs are captured at debug level and dumped when
// GRIDBELT_TEST_LOGS=true.
func RunProgram(t *testing.T, src string, maxTicks uint64) *HarnessResult {
	t.Helper()

	g, err := grid.Build(src)
	require.NoError(t, err, "program must build")

	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	out := &bytes.Buffer{}

	m := engine.New(g, out, engine.WithLogger(logger), engine.WithMaxTicks(maxTicks))
	res, err := m.Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("GRIDBELT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Result:    res,
		Err:       err,
	}
}
