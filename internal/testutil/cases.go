package testutil

import (
	"os"
	"testing"

	"github.com/specialistvlad/gridbelt/internal/fsutil"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Case is one conformance program with its expected outcome.
type Case struct {
	Name     string `yaml:"name"`
	Program  string `yaml:"program"`
	MaxTicks uint64 `yaml:"max_ticks"`

	Output string `yaml:"output"`
	Ticks  uint64 `yaml:"ticks"`
	Halted bool   `yaml:"halted"`
	Error  string `yaml:"error"`
	Log    string `yaml:"log"`
}

// LoadCases reads every .yaml file under dir, in path order.
func LoadCases(t *testing.T, dir string) []Case {
	t.Helper()

	files, err := fsutil.FindFiles(dir, ".yaml", ".yml")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no case files under %s", dir)

	var cases []Case
	for _, file := range files {
		raw, err := os.ReadFile(file)
		require.NoError(t, err)

		var batch []Case
		require.NoError(t, yaml.Unmarshal(raw, &batch), "decoding %s", file)
		cases = append(cases, batch...)
	}
	return cases
}

// RunCase executes c and checks every expectation it declares.
func RunCase(t *testing.T, c Case) {
	t.Helper()

	res := RunProgram(t, c.Program, c.MaxTicks)
	if c.Error != "" {
		require.Error(t, res.Err)
		require.Contains(t, res.Err.Error(), c.Error)
		return
	}

	require.NoError(t, res.Err)
	require.Equal(t, c.Output, res.Output, "output")
	require.Equal(t, c.Halted, res.Result.Halted, "halted")
	if c.Ticks > 0 {
		require.Equal(t, c.Ticks, res.Result.Ticks, "ticks")
	}
	if c.Log != "" {
		require.Contains(t, res.LogOutput, c.Log, "log")
	}
}
