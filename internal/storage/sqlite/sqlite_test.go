package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "keihi.db"))

	_, ok, err := s.Load(context.Background(), "personal_entries_v2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "keihi.db"))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "expense_entries_v2", []byte(`[{"id":"a"}]`)))
	require.NoError(t, s.Save(ctx, "expense_entries_v2", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "personal_entries_v2", []byte(`[{"id":"b"}]`)))

	got, ok, err := s.Load(ctx, "expense_entries_v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	got, ok, err = s.Load(ctx, "personal_entries_v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b"}]`, string(got))
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "keihi.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	// Migrations are idempotent on reopen.
	s2 := openTestStore(t, path)
	got, ok, err := s2.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))
}
