// Package script replays a recorded sequence of user interactions against a
// goal list controller without a terminal.
//
// A script is YAML:
//
//	goals:                # optional seed
//	  - {id: a, text: X}
//	steps:
//	  - action: open
//	  - action: type
//	    text: Learn Go
//	  - action: commit
//	  - action: toggle
//	    goal: 1           # 1-based position in the list at that moment
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/goals/pkg/core"
)

// Action names a single user interaction.
type Action string

const (
	ActionOpen    Action = "open"
	ActionType    Action = "type"
	ActionCommit  Action = "commit"
	ActionCancel  Action = "cancel"
	ActionToggle  Action = "toggle"
	ActionRemove  Action = "remove"
	ActionRequest Action = "request"
	ActionConfirm Action = "confirm"
	ActionDecline Action = "decline"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingGoal   = errors.New("step needs a goal position")
)

// targets reports whether the action addresses a goal.
func (a Action) targets() bool {
	switch a {
	case ActionToggle, ActionRemove, ActionRequest, ActionConfirm, ActionDecline:
		return true
	}
	return false
}

func (a Action) valid() bool {
	switch a {
	case ActionOpen, ActionType, ActionCommit, ActionCancel:
		return true
	}
	return a.targets()
}

// Step is one interaction. Text is used by "type", Goal by the goal actions.
type Step struct {
	Action Action `yaml:"action"`
	Text   string `yaml:"text,omitempty"`
	Goal   int    `yaml:"goal,omitempty"`
}

// Script is a seed list plus the steps to replay.
type Script struct {
	Goals []core.Goal `yaml:"goals,omitempty"`
	Steps []Step      `yaml:"steps"`
}

// Load reads a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}

	for i, st := range s.Steps {
		if !st.Action.valid() {
			return Script{}, fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, st.Action)
		}
		if st.Action.targets() && st.Goal < 1 {
			return Script{}, fmt.Errorf("step %d (%s): %w", i+1, st.Action, ErrMissingGoal)
		}
	}
	return s, nil
}
