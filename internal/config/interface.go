package config

import "context"

// Loader is the interface for a format-specific run file loader.
type Loader interface {
	// Load reads the run file at path and translates it into the
	// format-agnostic model. Relative paths inside the file are resolved
	// against the file's directory.
	Load(ctx context.Context, path string) (*Model, error)
}
