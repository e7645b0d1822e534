package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/ironsheep/img-to-ascii/internal/render"
)

// ErrIOWrite is wrapped by every error caused by an unwritable destination.
var ErrIOWrite = errors.New("io write error")

// Sink consumes one frame rendered from the source named name and reports
// where it went.
type Sink interface {
	Write(name string, f *render.Frame) (string, error)
}

// Destination returns the artifact path for source inside dir: the source's
// base name without its extension, followed by ext.
func Destination(source, dir, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+ext)
}

// writeFile creates path (and its directory), streams body into it and
// optionally zstd-compresses the content. On failure path is removed.
func writeFile(path string, compress bool, body func(w io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w: %w", ErrIOWrite, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w: %w", path, ErrIOWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w: %w", path, ErrIOWrite, cerr)
		}
		// No partial artifacts.
		if err != nil {
			os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	var w io.Writer = bw
	var enc *zstd.Encoder
	if compress {
		enc, err = zstd.NewWriter(bw)
		if err != nil {
			return fmt.Errorf("failed to start zstd stream: %w: %w", ErrIOWrite, err)
		}
		w = enc
	}

	if err := body(w); err != nil {
		if enc != nil {
			// Releases the encoder's goroutines; the output is discarded.
			enc.Close()
		}
		return fmt.Errorf("failed to write %s: %w: %w", path, ErrIOWrite, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to finish zstd stream: %w: %w", ErrIOWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", path, ErrIOWrite, err)
	}
	return nil
}

// compressedExt appends the zstd suffix when compress is set.
func compressedExt(ext string, compress bool) string {
	if compress {
		return ext + ".zst"
	}
	return ext
}
