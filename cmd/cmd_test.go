package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/surge-downloader/dlhist/internal/config"
	"github.com/surge-downloader/dlhist/internal/state"
	"github.com/surge-downloader/dlhist/internal/utils"
)

// execute runs the CLI with its config dir in a fresh temp dir
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

// executeIn runs the CLI with home as its config dir
func executeIn(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("APPDATA", home)
	t.Cleanup(func() {
		state.CloseDB()
		utils.CloseLog()
	})

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dlhist "+Version)
	assert.Contains(t, out, BuildTime)
}

func TestSimulate_PrintsSummary(t *testing.T) {
	out, err := execute(t, "simulate", "--duration", "2s", "--fps", "30", "--seed", "7", "--preset", "compact")
	require.NoError(t, err)

	assert.Contains(t, out, "compact")
	assert.Contains(t, out, "2s at 30 fps")
	assert.Contains(t, out, "created per second")

	logs, err := os.ReadDir(config.GetLogsDir())
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestSimulate_Deterministic(t *testing.T) {
	args := []string{"simulate", "--duration", "1s", "--fps", "20", "--seed", "99"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)

	// the session line differs, everything after it matches
	strip := func(s string) string {
		_, rest, _ := strings.Cut(s, "\n")
		return rest
	}
	assert.Equal(t, strip(a), strip(b))
}

func TestSimulate_PresetFromEnv(t *testing.T) {
	t.Setenv("DLHIST_PRESET", "compact")
	out, err := execute(t, "simulate", "--duration", "1s")
	require.NoError(t, err)
	assert.Contains(t, out, "compact")
	assert.Contains(t, out, "of 2,000")
}

func TestSimulate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  total_cap: 300\n"), 0o644))

	out, err := execute(t, "simulate", "--config", path, "--duration", "3s")
	require.NoError(t, err)
	assert.Contains(t, out, "300 of 300")
}

func TestRuns_JournalsSimulations(t *testing.T) {
	home := t.TempDir()
	run := func(args ...string) string {
		t.Helper()
		out, err := executeIn(t, home, args...)
		require.NoError(t, err)
		return out
	}

	assert.Contains(t, run("runs"), "No runs recorded.")
	assert.Equal(t, "[]\n", run("runs", "--json"))

	run("simulate", "--duration", "1s", "--seed", "3")
	run("simulate", "--duration", "2s", "--preset", "compact")

	var runs []state.Run
	require.NoError(t, json.Unmarshal([]byte(run("runs", "--json")), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, "compact", runs[0].Preset)
	assert.Equal(t, state.ModeHeadless, runs[0].Mode)
	assert.Equal(t, 2.0, runs[0].Simulated)
	assert.Equal(t, uint64(3), runs[1].Seed)
	assert.Positive(t, runs[1].Frames)

	table := run("runs", "--limit", "1")
	assert.Contains(t, table, "SESSION")
	assert.Contains(t, table, runs[0].ID[:8])
	assert.NotContains(t, table, runs[1].ID[:8])

	assert.Contains(t, run("runs", "--clear"), "Removed 2 runs.")
	assert.Contains(t, run("runs"), "No runs recorded.")
}

func TestRuns_Retention(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run_retention: 1\n"), 0o644))

	for i := 0; i < 3; i++ {
		_, err := executeIn(t, home, "simulate", "--config", path, "--duration", "1s")
		require.NoError(t, err)
	}
	out, err := executeIn(t, home, "runs", "--json", "--config", path)
	require.NoError(t, err)

	var runs []state.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	assert.Len(t, runs, 1)
}

func TestCommandErrors(t *testing.T) {
	badPalette := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(badPalette, []byte("palette:\n  card: not-a-colour\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown preset", []string{"simulate", "--preset", "neon"}, "unknown preset"},
		{"zero fps", []string{"simulate", "--fps", "0"}, "must be positive"},
		{"huge fps", []string{"simulate", "--fps", "2000000000"}, "--fps must be at most 1000"},
		{"zero width", []string{"simulate", "--width", "0"}, "window size"},
		{"bad log level", []string{"simulate", "--log-level", "loud"}, "log_level"},
		{"bad palette", []string{"simulate", "--config", badPalette}, "card"},
		{"extra args", []string{"simulate", "now"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotContains(t, out, "Error:", "errors are printed once, by Execute")
		})
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	for _, args := range [][]string{nil, {"run"}} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, errNotTerminal)
	}
}
