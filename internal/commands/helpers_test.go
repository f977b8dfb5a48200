package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keihi-dev/keihi/internal/commands"
)

// runKeihi executes the CLI in-process and returns stdout and stderr.
func runKeihi(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// initProject creates a fresh project and returns its directory.
func initProject(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := runKeihi(t, append([]string{"init", dir}, extra...)...)
	require.NoError(t, err)
	return dir
}

// addEntry records an entry and fails the test on error.
func addEntry(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, _, err := runKeihi(t, append(append([]string{"add"}, args...), "--repo", dir)...)
	require.NoError(t, err)
	return out
}

// idsFromList returns the short ids printed by `keihi list`.
func idsFromList(t *testing.T, dir string, kind string) []string {
	t.Helper()
	args := []string{"list", "--repo", dir}
	if kind != "" {
		args = append(args, "--kind", kind)
	}
	out, _, err := runKeihi(t, args...)
	require.NoError(t, err)

	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ") {
			ids = append(ids, strings.Fields(line)[0])
		}
	}
	return ids
}

func exportFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "exports", "*"))
	require.NoError(t, err)
	return matches
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
