package config

// Model is the unified representation of a run file. Zero values mean the
// file did not set the field.
type Model struct {
	Program         string
	Output          string
	MaxTicks        uint64
	Trace           bool
	HealthcheckPort int
	Log             Log
}

// Log holds logging settings.
type Log struct {
	Level  string
	Format string
	File   string
}
