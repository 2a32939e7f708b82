package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSeedCheckBuiltIn(t *testing.T) {
	out, err := runCommand(t, "seed", "check")
	require.NoError(t, err)
	require.Contains(t, out, "Chess Club")
	require.True(t, strings.HasSuffix(out, "9 activities, 15 participants\n"), out)
}

func TestSeedCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("activities:\n  - name: Robotics\n    max_participants: 4\n    participants: [ada@mergington.edu]\n"), 0o600))
	out, err := runCommand(t, "seed", "check", good)
	require.NoError(t, err)
	require.Contains(t, out, "1 activities, 1 participants")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("activities:\n  - name: A\n    participants: [a@x, a@x]\n"), 0o600))
	_, err = runCommand(t, "seed", "check", bad)
	require.ErrorContains(t, err, "duplicate participant email")
}
