package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("山田（個人）")
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Path = "data/keihi.db"
	cfg.Export.Sink = "s3"
	cfg.Export.S3 = S3Config{Bucket: "books", Region: "ap-northeast-1", Prefix: "keihi/", PathStyle: true}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("")

	assert.Equal(t, DefaultClaimant, cfg.Ledger.Claimant)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.Path)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, "dir", cfg.Export.Sink)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "keihi", cfg.Git.AuthorName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  claimant: 佐藤（個人）\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "佐藤（個人）", cfg.Ledger.Claimant)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "csv", cfg.Export.Format)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("ledger: [unclosed"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "claimant: 西村（個人）")
	assert.Contains(t, contents, "backend: file")
	assert.Contains(t, contents, "format: csv")
	assert.Contains(t, contents, "auto_commit: false")
	assert.NotContains(t, contents, "bucket")
}

func TestValidate(t *testing.T) {
	cfg := Default("")
	cfg.Ledger.Claimant = " "
	cfg.Storage.Backend = "redis"
	cfg.Export.Format = "pdf"
	cfg.Export.Sink = "s3"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Git = GitConfig{AutoCommit: true}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"ledger.claimant", "storage.backend", "export.format", "export.s3.bucket", "log.level", "log.format", "git.author_email"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestValidate_RejectsMemoryBackend(t *testing.T) {
	cfg := Default("")
	cfg.Storage.Backend = "memory"
	assert.ErrorContains(t, cfg.Validate(), "storage.backend")

	cfg.Storage.Backend = "sqlite"
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"KEIHI_STORAGE_BACKEND": "sqlite",
		"KEIHI_EXPORT_SINK":     "s3",
		"KEIHI_S3_BUCKET":       "books",
		"KEIHI_S3_PATH_STYLE":   "true",
		"KEIHI_CLAIMANT":        "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default("")
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "s3", cfg.Export.Sink)
	assert.Equal(t, "books", cfg.Export.S3.Bucket)
	assert.True(t, cfg.Export.S3.PathStyle)
	assert.Equal(t, DefaultClaimant, cfg.Ledger.Claimant, "empty values do not override")

	env["KEIHI_S3_PATH_STYLE"] = "maybe"
	assert.ErrorContains(t, cfg.ApplyEnv(lookup), "KEIHI_S3_PATH_STYLE")
}
