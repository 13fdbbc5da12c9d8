// Package core holds the goal list domain: the goal entity, the two state
// containers (goal list and add form) and the controller that mutates them.
package core

import "fmt"

// Goal is the central entity of the domain.
// It represents a single user-entered to-do item identified by an ID.
type Goal struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// EventType represents the type of change in the controller.
type EventType string

const (
	EventGoalAdded        EventType = "GOAL_ADDED"
	EventGoalToggled      EventType = "GOAL_TOGGLED"
	EventGoalRemoved      EventType = "GOAL_REMOVED"
	EventRemovalRequested EventType = "REMOVAL_REQUESTED"
	EventRemovalDeclined  EventType = "REMOVAL_DECLINED"
	EventFormOpened       EventType = "FORM_OPENED"
	EventFormClosed       EventType = "FORM_CLOSED"
)

// Event represents a change in the controller state.
// ID is empty for form events.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}

// Snapshot is a copy of the controller state handed to renderers.
type Snapshot struct {
	Goals           []Goal   `json:"goals"`
	AddMode         bool     `json:"add_mode"`
	EnteredText     string   `json:"entered_text"`
	PendingRemovals []string `json:"pending_removals,omitempty"`
}
