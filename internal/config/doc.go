// Package config defines the format-agnostic run configuration for gridbelt,
// along with the Loader interface that reads it from a run file.
//
// `config.Model` is what the app merges with command-line flags. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
