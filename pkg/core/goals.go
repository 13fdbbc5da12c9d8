package core

// GoalList is the domain state container: an ordered sequence of goals,
// insertion order preserved. It is not safe for concurrent use on its own;
// the Controller serializes access.
type GoalList struct {
	items []Goal
}

// NewGoalList returns a list holding copies of the given goals.
func NewGoalList(goals ...Goal) *GoalList {
	l := &GoalList{}
	l.items = append(l.items, goals...)
	return l
}

// Append adds a goal at the tail.
func (l *GoalList) Append(g Goal) {
	l.items = append(l.items, g)
}

func (l *GoalList) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the goal with the given id.
func (l *GoalList) Get(id string) (Goal, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Goal{}, false
	}
	return l.items[i], true
}

// Contains reports whether a goal with the given id exists.
func (l *GoalList) Contains(id string) bool {
	return l.indexOf(id) >= 0
}

// Toggle flips the completion flag of the matching goal.
// It reports false, changing nothing, when the id is unknown.
func (l *GoalList) Toggle(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items[i].Completed = !l.items[i].Completed
	return true
}

// Remove deletes the matching goal, preserving the order of the rest.
// It reports false, changing nothing, when the id is unknown.
func (l *GoalList) Remove(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return true
}

// Goals returns a copy of the list.
func (l *GoalList) Goals() []Goal {
	out := make([]Goal, len(l.items))
	copy(out, l.items)
	return out
}

func (l *GoalList) Len() int { return len(l.items) }

// Counts returns the number of goals and how many of them are completed.
func (l *GoalList) Counts() (total, completed int) {
	for _, g := range l.items {
		if g.Completed {
			completed++
		}
	}
	return len(l.items), completed
}
