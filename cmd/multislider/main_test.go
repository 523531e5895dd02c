package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/multislider/internal/config"
	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/pkg/geometry"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"observed", []string{"--left=154", "--width=876", "--page-x=933.64"}, "89"},
		{"reversed", []string{"--left=154", "--width=876", "--page-x=933.64", "--reversed"}, "11"},
		{"nested icon", []string{"--left=0", "--width=200", "--page-x=50", "--target=icon"}, "25"},
		{"flat icon", []string{"--left=0", "--width=200", "--page-x=50", "--target=icon", "--layout=flat"}, "25"},
		{"clamped", []string{"--left=0", "--width=200", "--page-x=-40"}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"resolve"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"zero width", []string{"--page-x=5"}, "E202"},
		{"bad layout", []string{"--width=10", "--layout=spiral"}, "E401"},
		{"bad target", []string{"--width=10", "--target=knob"}, "E401"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"resolve"}, tt.args...)...)
			var se *errors.SliderError
			require.True(t, stderrors.As(err, &se))
			assert.Equal(t, tt.code, se.Code)
		})
	}
}

func TestPathTo(t *testing.T) {
	roles := func(l geometry.Layout, r geometry.Role) []string {
		var out []string
		for _, p := range pathTo(l, r, 0, 10) {
			out = append(out, p.Role)
		}
		return out
	}
	assert.Equal(t, []string{"track"}, roles(geometry.NestedLayout, geometry.RoleTrack))
	assert.Equal(t, []string{"track", "fill", "handle", "icon"}, roles(geometry.NestedLayout, geometry.RoleIcon))
	assert.Equal(t, []string{"track", "handle", "icon"}, roles(geometry.FlatLayout, geometry.RoleIcon))
	assert.Equal(t, []string{"track", "zone"}, roles(geometry.NestedLayout, geometry.RoleZone))
}

func TestInitAndConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init", dir)
	require.NoError(t, err)
	path := filepath.Join(dir, config.ConfigFileName)
	assert.Contains(t, out, path)

	_, err = run(t, "init", dir)
	var se *errors.SliderError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, "E401", se.Code)

	_, err = run(t, "init", dir, "--force")
	require.NoError(t, err)

	out, err = run(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "port: 3000")
	assert.Contains(t, out, "kind: double")
}

func TestConfig_Missing(t *testing.T) {
	_, err := run(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	var se *errors.SliderError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, "E141", se.Code)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
}

func TestIconStore(t *testing.T) {
	cfg := config.New()
	store, err := iconStore(cfg)
	require.NoError(t, err)
	assert.Nil(t, store)

	cfg.Icons.Dir = t.TempDir()
	store, err = iconStore(cfg)
	require.NoError(t, err)
	assert.NotNil(t, store)

	cfg.Icons.S3.Bucket = "assets"
	cfg.Icons.S3.Region = "eu-west-1"
	store, err = iconStore(cfg)
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestErrorFormat(t *testing.T) {
	t.Cleanup(func() {
		errorOutput = errors.OutputText
		errors.SetColor(true)
	})

	_, err := run(t, "--error-format=json", "resolve", "--width=10", "--layout=spiral")
	require.Error(t, err)
	assert.Equal(t, errors.OutputJSON, errorOutput)

	var b bytes.Buffer
	errors.Print(&b, err, errorOutput)
	assert.True(t, strings.HasPrefix(b.String(), `{"code":"E401",`), b.String())
	assert.Contains(t, b.String(), `"detail":"unknown layout \"spiral\""`)

	_, err = run(t, "--error-format=compact", "--no-color", "resolve", "--page-x=5")
	require.Error(t, err)
	b.Reset()
	errors.Print(&b, err, errorOutput)
	assert.Equal(t, "E202: Track geometry unavailable (track width 0)\n", b.String())

	_, err = run(t, "--error-format=xml", "version")
	var se *errors.SliderError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, "E401", se.Code)
}
