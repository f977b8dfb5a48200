package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/config"
	"github.com/keihi-dev/keihi/internal/gitops"
	"github.com/keihi-dev/keihi/internal/storage"
)

func newInitCommand() *cobra.Command {
	var claimant string
	var backend string
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new keihi project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hash, err := runInit(cmd.Context(), absDir, claimant, backend, withGit)
			if err != nil {
				return err
			}
			if hash != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized keihi project at %s (%s)\n", absDir, hash)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized keihi project at %s\n", absDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&claimant, "claimant", config.DefaultClaimant, "label for personal-expense rows")
	cmd.Flags().StringVar(&backend, "backend", storage.BackendFile, "storage backend (file, sqlite)")
	cmd.Flags().BoolVar(&withGit, "git", false, "track the project in git and commit after every change")

	return cmd
}

// runInit lays out a project. With withGit it also initializes a repository
// and returns the hash of the initial commit.
func runInit(ctx context.Context, dir, claimant, backend string, withGit bool) (string, error) {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return "", fmt.Errorf("%s already exists", cfgPath)
	}
	if withGit && !gitops.Available() {
		return "", fmt.Errorf("--git requires a git binary on PATH")
	}

	cfg := config.Default(claimant)
	cfg.Storage.Backend = backend
	if backend == storage.BackendSQLite {
		cfg.Storage.Path = filepath.Join("data", "keihi.db")
	}
	cfg.Git.AutoCommit = withGit
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	// Create directory structure.
	for _, d := range []string{"data", "exports", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	gitignore := ".env\nexports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("writing .gitignore: %w", err)
	}

	if !withGit {
		return "", nil
	}
	if err := gitops.Init(ctx, dir); err != nil {
		return "", err
	}
	hash, err := gitops.Snapshot(ctx, dir, "init: keihi project", gitAuthor(cfg))
	if err != nil {
		return "", fmt.Errorf("initial commit: %w", err)
	}
	return hash, nil
}
