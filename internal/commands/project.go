package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/catalog"
	"github.com/keihi-dev/keihi/internal/config"
	"github.com/keihi-dev/keihi/internal/gitops"
	"github.com/keihi-dev/keihi/internal/ledger"
	"github.com/keihi-dev/keihi/internal/logger"
	"github.com/keihi-dev/keihi/internal/storage"
)

// project is an opened keihi project directory.
type project struct {
	root    string
	cfg     *config.Config
	log     zerolog.Logger
	store   storage.Store
	ledger  *ledger.Service
	catalog *catalog.Service
}

func addRepoFlag(cmd *cobra.Command, repoDir *string) {
	cmd.Flags().StringVar(repoDir, "repo", ".", "project directory")
}

// loadConfig reads .env, keihi.yaml and KEIHI_* overrides for the project at root.
func loadConfig(root string) (*config.Config, error) {
	// .env is optional.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s is not a keihi project (run keihi init)", root)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.FileName, err)
	}
	return cfg, nil
}

// openProject loads config, opens storage and loads both collections.
func openProject(cmd *cobra.Command, repoDir string) (*project, context.Context, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return nil, nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	var log zerolog.Logger
	if cfg.Log.Format == "json" {
		log = logger.NewWithWriter(cmd.ErrOrStderr(), level)
	} else {
		log = logger.New(cmd.ErrOrStderr(), level)
	}
	log = log.With().Str("cmd", cmd.Name()).Logger()
	ctx := logger.WithContext(cmd.Context(), log)

	store, err := storage.Open(ctx, storage.Config{
		Backend: cfg.Storage.Backend,
		Path:    cfg.Storage.Path,
		Root:    root,
	})
	if err != nil {
		return nil, nil, err
	}

	led, err := ledger.Open(ctx, store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Int("store_entries", len(led.StoreEntries())).
		Int("personal_entries", len(led.PersonalEntries())).
		Msg("project opened")

	return &project{
		root:    root,
		cfg:     cfg,
		log:     log,
		store:   store,
		ledger:  led,
		catalog: catalog.Default(),
	}, ctx, nil
}

func (p *project) Close() {
	if err := p.store.Close(); err != nil {
		p.log.Warn().Err(err).Msg("closing storage")
	}
}

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}

// snapshot commits the project directory when git.auto_commit is on.
// Failures are logged, not returned.
func (p *project) snapshot(ctx context.Context, message string) {
	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return
	}
	hash, err := gitops.Snapshot(ctx, p.root, message, gitAuthor(p.cfg))
	if err != nil {
		p.log.Warn().Err(err).Msg("git snapshot")
		return
	}
	if hash != "" {
		p.log.Debug().Str("commit", hash).Msg("git snapshot")
	}
}

// resolve makes a configured path absolute relative to the project root.
func (p *project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.root, path)
}
