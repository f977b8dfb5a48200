package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/keihi-dev/keihi/internal/storage/file"
	"github.com/keihi-dev/keihi/internal/storage/memory"
	"github.com/keihi-dev/keihi/internal/storage/sqlite"
)

// Store is a key/value persistence backend. Load reports ok=false when
// nothing was saved under key.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config selects and locates a backend.
type Config struct {
	Backend string
	// Path is a directory for the file backend and a database file for sqlite.
	// Relative paths are resolved against Root.
	Path string
	Root string
}

// Open returns the configured backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	path := cfg.Path
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Root, path)
	}

	switch cfg.Backend {
	case BackendFile, "":
		if path == "" {
			path = filepath.Join(cfg.Root, "data")
		}
		s, err := file.New(path)
		if err != nil {
			return nil, fmt.Errorf("opening file store: %w", err)
		}
		return s, nil
	case BackendSQLite:
		if path == "" {
			path = filepath.Join(cfg.Root, "data", "keihi.db")
		}
		s, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, nil
	case BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
