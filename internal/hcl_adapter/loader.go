package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gridbelt/internal/config"
	"github.com/specialistvlad/gridbelt/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables exposed as env.NAME. Defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL run file loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses and evaluates a single HCL run file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx := newEvalContext(l.environ())

	var root runFile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model, err := l.translateRunFile(ctx, &root, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("invalid run file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	model.Program = resolvePath(baseDir, model.Program)
	model.Output = resolvePath(baseDir, model.Output)
	model.Log.File = resolvePath(baseDir, model.Log.File)

	logger.Debug("HCL loading complete.", "program", model.Program, "max_ticks", model.MaxTicks)
	return model, nil
}

func (l *Loader) environ() []string {
	if l.Environ == nil {
		return os.Environ()
	}
	return l.Environ()
}

// resolvePath anchors a relative path at the run file's directory. Empty
// paths and "-" (stdin/stdout) are left alone.
func resolvePath(baseDir, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
