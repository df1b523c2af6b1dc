package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/gridbelt/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// runFile is the top-level shape of a run file.
type runFile struct {
	Program         string         `hcl:"program,optional"`
	Output          string         `hcl:"output,optional"`
	MaxTicks        hcl.Expression `hcl:"max_ticks,optional"`
	Trace           bool           `hcl:"trace,optional"`
	HealthcheckPort int            `hcl:"healthcheck_port,optional"`
	Log             *logBlock      `hcl:"log,block"`
}

// logBlock maps the optional `log { ... }` block.
type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
	File   string `hcl:"file,optional"`
}

func (l *Loader) translateRunFile(ctx context.Context, root *runFile, evalCtx *hcl.EvalContext) (*config.Model, error) {
	model := &config.Model{
		Program:         root.Program,
		Output:          root.Output,
		Trace:           root.Trace,
		HealthcheckPort: root.HealthcheckPort,
	}

	if isExprDefined(ctx, root.MaxTicks, "max_ticks") {
		val, diags := root.MaxTicks.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("max_ticks: %w", diags)
		}
		if val.Type() == cty.Number && val.IsKnown() && !val.IsNull() && !val.AsBigFloat().IsInt() {
			return nil, fmt.Errorf("max_ticks must be a non-negative whole number, got %s", val.AsBigFloat().Text('g', -1))
		}
		if err := gocty.FromCtyValue(val, &model.MaxTicks); err != nil {
			return nil, fmt.Errorf("max_ticks must be a non-negative whole number: %w", err)
		}
	}

	if root.HealthcheckPort < 0 {
		return nil, fmt.Errorf("healthcheck_port must not be negative, got %d", root.HealthcheckPort)
	}

	if root.Log != nil {
		model.Log = config.Log{
			Level:  root.Log.Level,
			Format: root.Log.Format,
			File:   root.Log.File,
		}
	}
	return model, nil
}
