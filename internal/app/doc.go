// Package app contains the gridbelt application lifecycle: merging the run
// configuration, building the logger, reading the program, and driving the
// engine to completion. It is decoupled from any specific entrypoint like a
// CLI.
package app
