package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := New(nil, zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	buf := &bytes.Buffer{}
	log = New(buf, zerolog.InfoLevel)
	log.Info().Msg("console line")
	assert.Contains(t, buf.String(), "console line")
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.InfoLevel)

	log.Info().Str("kind", "store").Msg("entry added")
	log.Debug().Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "entry added", line["message"])
	assert.Equal(t, "store", line["kind"])
	assert.Contains(t, line, "time")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, zerolog.InfoLevel))

	log := FromContext(ctx)
	log.Info().Msg("test")
	assert.NotZero(t, buf.Len())
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
