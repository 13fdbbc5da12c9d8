package script

import (
	"github.com/aretw0/goals/pkg/core"
)

// Result reports what a replay did.
type Result struct {
	Snapshot core.Snapshot
	// Changed holds, per step, whether the controller state changed.
	// "type" and "open" always count as changed.
	Changed []bool
}

// Run replays the steps of s against ctrl. Seed goals are not applied here;
// pass them to the controller at construction.
func Run(ctrl *core.Controller, s Script) Result {
	res := Result{Changed: make([]bool, 0, len(s.Steps))}
	for _, st := range s.Steps {
		res.Changed = append(res.Changed, apply(ctrl, st))
	}
	res.Snapshot = ctrl.Snapshot()
	return res
}

func apply(ctrl *core.Controller, st Step) bool {
	switch st.Action {
	case ActionOpen:
		ctrl.OpenAddForm()
		return true
	case ActionType:
		ctrl.UpdateEnteredText(st.Text)
		return true
	case ActionCommit:
		_, ok := ctrl.CommitGoal()
		return ok
	case ActionCancel:
		ctrl.CancelAddForm()
		return true
	}

	id := resolve(ctrl, st.Goal)
	switch st.Action {
	case ActionToggle:
		return ctrl.ToggleCompletion(id)
	case ActionRemove:
		return ctrl.RemoveGoal(id)
	case ActionRequest:
		return ctrl.RequestRemoval(id)
	case ActionConfirm:
		return ctrl.ConfirmRemoval(id)
	case ActionDecline:
		return ctrl.DeclineRemoval(id)
	}
	return false
}

// resolve maps a 1-based position to the id of the goal currently there.
// Out of range positions resolve to an id no goal has.
func resolve(ctrl *core.Controller, pos int) string {
	goals := ctrl.Goals()
	if pos < 1 || pos > len(goals) {
		return ""
	}
	return goals[pos-1].ID
}
