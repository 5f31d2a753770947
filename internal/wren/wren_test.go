package wren

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool drops an executable shell script on a private PATH entry.
func fakeTool(t *testing.T, script string) Tool {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wren")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return Tool{Path: path}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wren"), []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	tool, err := Find("wren")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wren"), tool.Path)

	_, err = Find("no-such-tool")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestRun_ForwardsExitCode(t *testing.T) {
	tool := fakeTool(t, "exit 3\n")
	code, err := tool.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	tool = fakeTool(t, "exit 0\n")
	code, err = tool.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestCapture(t *testing.T) {
	tool := fakeTool(t, `printf -- "- one\n- two\n"`+"\n")
	out, code, err := tool.Capture([]string{"-d", "pattern"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "- one\n- two\n", out)
}

func TestCapture_NonZeroExitIsNotAnError(t *testing.T) {
	tool := fakeTool(t, `printf "partial\n"; exit 1`+"\n")
	out, code, err := tool.Capture(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "partial\n", out)
}

func TestParseCandidates(t *testing.T) {
	out := "- buy milk\n- buy milk and eggs\n\n  - trimmed  \nError - no such task\nplain line\n"
	got := ParseCandidates(out)
	assert.Equal(t, []string{"buy milk", "buy milk and eggs", "trimmed", "plain line"}, got)
}

func TestParseCandidates_Empty(t *testing.T) {
	assert.Empty(t, ParseCandidates(""))
	assert.Empty(t, ParseCandidates("\n\n"))
	assert.Empty(t, ParseCandidates("Error - no matches\n"))
}

func TestParseCandidates_OrderPreserved(t *testing.T) {
	out := "- zebra\n- apple\n- mango\n"
	assert.Equal(t, []string{"zebra", "apple", "mango"}, ParseCandidates(out))
}
