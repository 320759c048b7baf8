package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplay_PrintsFrames(t *testing.T) {
	out, err := execute(t, "replay", filepath.Join("..", "..", "replay", "testdata", "gestures_tests.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "1 1 250px")
	assert.Contains(t, out, "1 1 150px")
	assert.Contains(t, out, "primary,secondary")
}

func TestReplay_ReportsFailedExpectations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scripts": [{
		"name": "wrong",
		"width": 408, "height": 10, "children": 2,
		"steps": [
			{"do": "down", "x": 204},
			{"do": "move", "x": 254, "expect": {"primary": "1 1 999px"}}
		]
	}]}`), 0o644))

	out, err := execute(t, "replay", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 expectation(s) failed")
	assert.Contains(t, out, `want "1 1 999px", got "1 1 250px"`)
}

func TestReplay_ScriptFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scripts": [
		{"name": "first", "width": 100, "height": 10, "children": 2, "steps": [{"do": "append"}]},
		{"name": "second", "width": 100, "height": 10, "children": 2, "steps": [{"do": "append"}]}
	]}`), 0o644))

	out, err := execute(t, "replay", "--script", "second", path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "first ("))
	assert.Contains(t, out, "second (horizontal, 100x10)")
}

func TestReplay_InvalidConfigFails(t *testing.T) {
	_, err := execute(t, "replay", "--orientation", "diagonal", "missing.json")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "splitview dev")
}
