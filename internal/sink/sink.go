package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/keihi-dev/keihi/internal/export"
)

// Sink makes an exported document available to the user and returns
// where it went.
type Sink interface {
	Deliver(ctx context.Context, doc export.Document) (string, error)
}

// ErrExists is returned by Dir when every candidate name is taken.
var ErrExists = errors.New("export file already exists")

// maxAttempts bounds the numbered names Dir tries for one document.
const maxAttempts = 1000

// Dir writes documents into a directory.
type Dir struct {
	Path string
}

// Deliver writes doc to Path/doc.FileName. Existing files are never
// overwritten: a taken name is retried as "name (1).csv", "name (2).csv" and
// so on, and the path actually written is returned.
func (d Dir) Deliver(ctx context.Context, doc export.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	for n := 0; n < maxAttempts; n++ {
		path := filepath.Join(d.Path, numbered(doc.FileName, n))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", path, err)
		}

		if _, err := f.Write(doc.Content); err != nil {
			f.Close()
			_ = os.Remove(path)
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("closing %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("%w: %s", ErrExists, filepath.Join(d.Path, doc.FileName))
}

// numbered inserts " (n)" before the extension. n == 0 returns name.
func numbered(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
}

// Writer copies documents to a stream such as stdout.
type Writer struct {
	W    io.Writer
	Name string
}

// Deliver writes the raw content to W and returns Name.
func (w Writer) Deliver(ctx context.Context, doc export.Document) (string, error) {
	if _, err := w.W.Write(doc.Content); err != nil {
		return "", fmt.Errorf("writing %s: %w", doc.FileName, err)
	}
	name := w.Name
	if name == "" {
		name = "stdout"
	}
	return name, nil
}
