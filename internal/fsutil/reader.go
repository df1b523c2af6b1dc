package fsutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/specialistvlad/gridbelt/internal/ctxlog"
)

// Stdin is the path that makes ReadText read standard input.
const Stdin = "-"

// ReadText reads a whole program file. Files ending in .zst are zstd
// decompressed; the path "-" reads from stdin.
func ReadText(ctx context.Context, path string, stdin io.Reader) (string, error) {
	logger := ctxlog.FromContext(ctx)

	var r io.Reader
	if path == Stdin {
		logger.Debug("Reading program from stdin.")
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open program file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("failed to open zstd stream %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
		logger.Debug("Decompressing zstd program.", "path", path)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read program %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("program %s is not valid UTF-8", path)
	}

	logger.Debug("Program read.", "path", path, "bytes", len(raw))
	return string(raw), nil
}
