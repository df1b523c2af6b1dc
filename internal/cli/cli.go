package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gridbelt/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values left at their zero default are filled from the run file later.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridbelt", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Gridbelt - runs two-dimensional conveyor-belt programs.

Usage:
  gridbelt [options] [PROGRAM]

Arguments:
  PROGRAM
    Path to a program file. Files ending in .zst are decompressed; "-" reads stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	programFlag := flagSet.String("program", "", "Path to the program file.")
	pFlag := flagSet.String("p", "", "Path to the program file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL run file.")
	cFlag := flagSet.String("c", "", "Path to an HCL run file (shorthand).")
	outputFlag := flagSet.String("output", "", "Write program output to this file instead of stdout.")
	oFlag := flagSet.String("o", "", "Write program output to this file (shorthand).")
	maxTicksFlag := flagSet.Uint64("max-ticks", 0, "Stop after this many ticks. 0 runs until halt.")
	traceFlag := flagSet.Bool("trace", false, "Render the grid to stderr after every tick.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Default 'text'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Default 'info'.")
	logFileFlag := flagSet.String("log-file", "", "Also append JSON logs to this file.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*programFlag, *pFlag)
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	configPath := firstNonEmpty(*configFlag, *cFlag)
	slog.Debug("Program path determined.", "path", path, "config", configPath)

	if path == "" && configPath == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "no program file given"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one program file, got %d arguments", flagSet.NArg())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config := &app.Config{
		ProgramPath:     path,
		ConfigPath:      configPath,
		OutputPath:      firstNonEmpty(*outputFlag, *oFlag),
		MaxTicks:        *maxTicksFlag,
		Trace:           *traceFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		LogFile:         *logFileFlag,
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
