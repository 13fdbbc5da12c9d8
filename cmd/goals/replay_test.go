package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
)

const sampleScript = `
steps:
  - {action: open}
  - {action: type, text: Learn Go}
  - {action: commit}
  - {action: open}
  - {action: type, text: Walk the dog}
  - {action: commit}
  - {action: toggle, goal: 1}
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReplay_Text(t *testing.T) {
	var buf bytes.Buffer
	err := replay(&buf, writeScript(t, sampleScript), config.Default(), replayOptions{IDStrategy: "counter"})
	require.NoError(t, err)
	assert.Equal(t, "[x] Learn Go  (1)\n[ ] Walk the dog  (2)\n", buf.String())
}

func TestReplay_JSONWithMatch(t *testing.T) {
	var buf bytes.Buffer
	err := replay(&buf, writeScript(t, sampleScript), config.Default(), replayOptions{
		JSON:       true,
		Match:      "walk*",
		IDStrategy: "counter",
	})
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	require.Len(t, snap.Goals, 1)
	assert.Equal(t, "Walk the dog", snap.Goals[0].Text)
	assert.False(t, snap.AddMode)
}

func TestReplay_NoMatchIsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	err := replay(&buf, writeScript(t, sampleScript), config.Default(), replayOptions{JSON: true, Match: "nothing*"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"goals": []`)
}

func TestReplay_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := replay(&buf, writeScript(t, "steps:\n  - {action: fly}\n"), config.Default(), replayOptions{})
	assert.Error(t, err)

	err = replay(&buf, writeScript(t, sampleScript), config.Default(), replayOptions{Match: "["})
	assert.ErrorIs(t, err, core.ErrBadPattern)

	err = replay(&buf, writeScript(t, sampleScript), config.Default(), replayOptions{IDStrategy: "dice"})
	assert.ErrorIs(t, err, config.ErrInvalidIDStrategy)
}

func TestBuildStateTree(t *testing.T) {
	tree := buildStateTree(core.ControllerState{Goals: 3, Completed: 1, AddMode: true, PendingRemovals: 1})
	assert.Equal(t, "Controller", tree.Name)
	require.Len(t, tree.Children, 4)
	assert.Equal(t, "3", tree.Children[0].Metadata["total"])
	assert.Equal(t, "running", tree.Children[1].Status)
	assert.Equal(t, "pending", tree.Children[2].Status)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, buf.String(), "goals version 0.1.0")
}
