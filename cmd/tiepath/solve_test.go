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

const (
	referenceSmall = "../../tiepath/testdata/reference_small.txt"
	referenceLarge = "../../tiepath/testdata/reference_large.txt"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeMaze(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSolveCmd_Reference(t *testing.T) {
	out, _, err := execute(t, "solve", referenceSmall)
	require.NoError(t, err)
	assert.Equal(t, "7036 45\n", out)
}

func TestSolveCmd_MultipleFilesAndFlags(t *testing.T) {
	out, _, err := execute(t, "solve", "--frontier", "heap", "--storage", "sparse", referenceSmall, referenceLarge)
	require.NoError(t, err)
	assert.Equal(t, referenceSmall+": 7036 45\n"+referenceLarge+": 11048 64\n", out)
}

func TestSolveCmd_FailedFileLeavesNoPartialLine(t *testing.T) {
	wide := writeMaze(t, "#S"+strings.Repeat(".", 16381)+"E#\n")
	out, _, err := execute(t, "solve", "--storage", "sparse", referenceSmall, wide)
	require.Error(t, err)
	assert.Equal(t, referenceSmall+": 7036 45\n", out)
}

func TestSolveCmd_NoPathIsNotAnError(t *testing.T) {
	out, _, err := execute(t, "solve", writeMaze(t, "#S#E#\n"))
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)
}

func TestSolveCmd_NoReverseStart(t *testing.T) {
	path := writeMaze(t, "#E.S.#\n")

	out, _, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "2002 3\n", out)

	out, _, err = execute(t, "solve", "--no-reverse-start", path)
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)
}

func TestSolveCmd_Overlay(t *testing.T) {
	out, _, err := execute(t, "solve", "--overlay", writeMaze(t, "#S..E#\n"))
	require.NoError(t, err)
	assert.Equal(t, "3 4\n#OOOO#\n", out)
}

func TestSolveCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = execute(t, "solve", writeMaze(t, "#S?E#\n"))
	assert.Error(t, err)

	_, _, err = execute(t, "solve", "--frontier", "fibonacci", referenceSmall)
	assert.Error(t, err)

	_, _, err = execute(t, "solve")
	assert.Error(t, err, "at least one maze is required")
}

func TestSolveCmd_LogsAndMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "tiepath.prom")
	_, stderr, err := execute(t, "solve", "--log-level", "debug", "--metrics-out", metricsPath, referenceSmall)
	require.NoError(t, err)
	assert.Contains(t, stderr, "search start")
	assert.Contains(t, stderr, "msg=solved")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tiepath_optimal_tiles 45")
	assert.Contains(t, string(data), "tiepath_min_cost 7036")
}

func TestSolveCmd_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "tiepath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reverse_start: false\n"), 0o600))

	out, _, err := execute(t, "solve", "--config", cfgPath, writeMaze(t, "#E.S.#\n"))
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)
}
