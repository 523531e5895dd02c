package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/multislider/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestNew_TextWithContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(config.LogConfig{Level: "info", Format: "text"}, &buf)
	defer closer.Close()

	ctx := With(context.Background(), "conn", "c1")
	ctx = With(ctx, "slider", "s1")
	logger.InfoContext(ctx, "hello")
	logger.DebugContext(ctx, "hidden")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "conn=c1")
	assert.Contains(t, out, "slider=s1")
	assert.NotContains(t, out, "hidden")
}

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer
	logger, closer := New(config.LogConfig{Level: "debug", Format: "json", File: path, MaxSizeMB: 1}, &buf)

	logger.With("k", "v").Debug("written")
	require.NoError(t, closer.Close())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "written", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
}

func TestWith_Isolated(t *testing.T) {
	base := With(context.Background(), "a", 1)
	child := With(base, "b", 2)
	assert.Len(t, Attrs(base), 1)
	assert.Len(t, Attrs(child), 2)
	assert.Nil(t, Attrs(context.Background()))
	assert.Equal(t, base, With(base))
}
