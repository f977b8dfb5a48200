package gitops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Author identifies who commits snapshots.
type Author struct {
	Name  string
	Email string
}

func (a Author) env() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+a.Name,
		"GIT_AUTHOR_EMAIL="+a.Email,
		"GIT_COMMITTER_NAME="+a.Name,
		"GIT_COMMITTER_EMAIL="+a.Email,
	)
}

func git(ctx context.Context, dir string, author Author, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = author.env()
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init initializes a new git repository at dir.
func Init(ctx context.Context, dir string) error {
	_, err := git(ctx, dir, Author{}, "init", "--quiet")
	return err
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Snapshot stages all files and commits them. It returns the short commit
// hash, or "" when the tree had no changes.
func Snapshot(ctx context.Context, dir, message string, author Author) (string, error) {
	if _, err := git(ctx, dir, author, "add", "-A"); err != nil {
		return "", err
	}

	status, err := git(ctx, dir, author, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	if status == "" {
		return "", nil
	}

	if _, err := git(ctx, dir, author, "commit", "--quiet", "-m", message); err != nil {
		return "", err
	}
	return git(ctx, dir, author, "rev-parse", "--short", "HEAD")
}
