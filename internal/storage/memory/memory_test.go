package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	in := []byte(`[1]`)
	require.NoError(t, s.Save(ctx, "k", in))
	in[0] = 'x'

	got, ok, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(got))
}

func TestClosed(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Save(ctx, "k", nil), ErrClosed)
	_, _, err := s.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
}
