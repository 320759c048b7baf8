package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/splitview/splitview"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if os.Getenv("APPDATA") == "" {
		assert.Equal(t, filepath.Join("/tmp/xdg", "splitview"), Dir())
		assert.Equal(t, filepath.Join("/tmp/xdg", "splitview", "splitview.toml"), File())
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", cfg.Orientation)
	assert.False(t, cfg.Observe)
	assert.Equal(t, 1.0, cfg.SplitterSize)
	assert.Equal(t, []string{"primary", "secondary"}, cfg.Panes)
	assert.Empty(t, cfg.Source)

	sv, err := cfg.SplitView()
	require.NoError(t, err)
	assert.Equal(t, splitview.Horizontal, sv.Orientation)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "splitview")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "splitview.toml"), []byte(`
orientation = "vertical"
dir = "rtl"
splitter_size = 2
panes = ["a", "b", "c"]

[logging]
level = "debug"
format = "json"
`), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "vertical", cfg.Orientation)
	assert.Equal(t, "rtl", cfg.Dir)
	assert.Equal(t, 2.0, cfg.SplitterSize)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Panes)
	assert.Contains(t, cfg.Source, "splitview.toml")

	t.Setenv("SPLITVIEW_LOGGING_LEVEL", "trace")
	cfg, err = Load(nil)
	require.NoError(t, err)
	lc, err := cfg.LogConfig()
	require.NoError(t, err)
	assert.Equal(t, zerolog.TraceLevel, lc.Level)
	assert.Equal(t, "json", lc.Format)

	cfg, err = Load(newFlags(t, "--orientation=horizontal", "--log-level=warn"))
	require.NoError(t, err)
	assert.Equal(t, "horizontal", cfg.Orientation)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	dir := isolate(t)
	_, err := Load(newFlags(t, "--config", filepath.Join(dir, "missing.toml")))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"orientation", []string{"--orientation=diagonal"}, splitview.ErrInvalidOrientation},
		{"dir", []string{"--dir=up"}, splitview.ErrInvalidDirection},
		{"splitter", []string{"--splitter-size=-1"}, splitview.ErrInvalidSplitter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlags(t, tt.args...))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Load(newFlags(t, "--log-format=xml"))
	assert.Error(t, err)
}
