package fsutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/specialistvlad/gridbelt/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yaml", "nested/c.yml", "skip.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	files, err := FindFiles(dir, ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "nested", "c.yml"),
	}, files)

	_, err = FindFiles(filepath.Join(dir, "missing"), ".yaml")
	assert.Error(t, err)
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "prog.belt")
	require.NoError(t, os.WriteFile(plain, []byte("3+4\n @ "), 0644))

	got, err := ReadText(testContext(), plain, nil)
	require.NoError(t, err)
	assert.Equal(t, "3+4\n @ ", got)
}

func TestReadText_Zstd(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte("Hi;\n@@@"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	path := filepath.Join(t.TempDir(), "prog.belt.zst")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got, err := ReadText(testContext(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hi;\n@@@", got)
}

func TestReadText_Stdin(t *testing.T) {
	got, err := ReadText(testContext(), Stdin, strings.NewReader("1\n@"))
	require.NoError(t, err)
	assert.Equal(t, "1\n@", got)
}

func TestReadText_BareContext(t *testing.T) {
	got, err := ReadText(context.Background(), Stdin, strings.NewReader("5;"))
	require.NoError(t, err)
	assert.Equal(t, "5;", got)
}

func TestReadText_Errors(t *testing.T) {
	_, err := ReadText(testContext(), filepath.Join(t.TempDir(), "nope.belt"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadText(testContext(), Stdin, bytes.NewReader([]byte{0xff, 0xfe}))
	assert.ErrorContains(t, err, "not valid UTF-8")
}
