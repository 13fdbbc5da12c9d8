package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// maxIDAttempts bounds the redraws on an id collision.
const maxIDAttempts = 16

// Config holds the settings for a Controller.
type Config struct {
	// IDs generates goal identifiers. Defaults to UUIDGenerator.
	IDs IDGenerator
	// ConfirmRemoval makes the view layer go through RequestRemoval before removing.
	ConfirmRemoval bool
	// EventBuffer is the per-subscriber event buffer. Zero means default (100).
	EventBuffer int
	Logger      *slog.Logger
	// Goals seeds the list. Their ids are reserved.
	Goals []Goal
}

// Controller owns the goal list, the add form and the pending removals.
// Every operation is synchronous and total: failure paths are no-ops
// reported through the boolean results.
type Controller struct {
	mu      sync.RWMutex
	goals   *GoalList
	form    Form
	pending map[string]struct{}
	issued  map[string]struct{}

	ids     IDGenerator
	confirm bool
	logger  *slog.Logger
	events  *broker
	now     func() time.Time
}

// NewController creates a Controller.
func NewController(cfg Config) *Controller {
	if cfg.IDs == nil {
		cfg.IDs = UUIDGenerator{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		goals:   NewGoalList(),
		pending: make(map[string]struct{}),
		issued:  make(map[string]struct{}),
		ids:     cfg.IDs,
		confirm: cfg.ConfirmRemoval,
		logger:  cfg.Logger,
		events:  newBroker(cfg.EventBuffer),
		now:     time.Now,
	}
	for _, g := range cfg.Goals {
		if g.ID == "" || c.goals.Contains(g.ID) {
			continue
		}
		c.goals.Append(g)
		c.issued[g.ID] = struct{}{}
	}
	return c
}

// OpenAddForm shows the entry form. Idempotent.
func (c *Controller) OpenAddForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form.IsOpen() {
		return
	}
	c.form.Open()
	c.emit(EventFormOpened, "")
}

// UpdateEnteredText replaces the form buffer.
func (c *Controller) UpdateEnteredText(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.SetText(value)
}

// CommitGoal turns the form buffer into a new goal appended at the tail and
// resets the form. A blank buffer is ignored and leaves the form as it is.
func (c *Controller) CommitGoal() (Goal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.form.Committable() {
		c.logger.Debug("ignoring blank goal")
		return Goal{}, false
	}

	g := Goal{
		ID:   c.newID(),
		Text: c.form.Text(),
	}
	c.goals.Append(g)
	wasOpen := c.form.IsOpen()
	c.form.Reset()

	c.logger.Debug("goal added", "id", g.ID)
	c.emit(EventGoalAdded, g.ID)
	if wasOpen {
		c.emit(EventFormClosed, "")
	}
	return g, true
}

// CancelAddForm closes the form and discards the buffer.
func (c *Controller) CancelAddForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	wasOpen := c.form.IsOpen()
	c.form.Reset()
	if wasOpen {
		c.emit(EventFormClosed, "")
	}
}

// ToggleCompletion flips the completion flag of the goal with the given id.
func (c *Controller) ToggleCompletion(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.goals.Toggle(id) {
		c.logger.Debug("toggle on unknown goal", "id", id)
		return false
	}
	c.emit(EventGoalToggled, id)
	return true
}

// RemoveGoal removes the goal with the given id without asking.
// Any pending request for it is dropped.
func (c *Controller) RemoveGoal(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(id)
}

func (c *Controller) removeLocked(id string) bool {
	delete(c.pending, id)
	if !c.goals.Remove(id) {
		c.logger.Debug("remove on unknown goal", "id", id)
		return false
	}
	c.logger.Debug("goal removed", "id", id)
	c.emit(EventGoalRemoved, id)
	return true
}

// RequestRemoval records that the user asked to remove a goal and must
// confirm it. It reports false for unknown ids.
func (c *Controller) RequestRemoval(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.goals.Contains(id) {
		return false
	}
	if _, ok := c.pending[id]; ok {
		return true
	}
	c.pending[id] = struct{}{}
	c.emit(EventRemovalRequested, id)
	return true
}

// ConfirmRemoval removes a goal whose removal was requested.
// Without a pending request it does nothing.
func (c *Controller) ConfirmRemoval(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pending[id]; !ok {
		c.logger.Debug("confirm without request", "id", id)
		return false
	}
	return c.removeLocked(id)
}

// DeclineRemoval drops a pending request. The list is never changed.
func (c *Controller) DeclineRemoval(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pending[id]; !ok {
		return false
	}
	delete(c.pending, id)
	c.emit(EventRemovalDeclined, id)
	return true
}

// PendingRemoval reports whether a removal of id awaits confirmation.
func (c *Controller) PendingRemoval(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.pending[id]
	return ok
}

// PendingRemovals returns the ids awaiting confirmation, sorted.
func (c *Controller) PendingRemovals() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pendingLocked()
}

func (c *Controller) pendingLocked() []string {
	if len(c.pending) == 0 {
		return nil
	}
	ids := make([]string, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RequiresConfirmation reports whether removals should be confirmed first.
func (c *Controller) RequiresConfirmation() bool {
	return c.confirm
}

// Goals returns a copy of the goal list.
func (c *Controller) Goals() []Goal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.goals.Goals()
}

// Goal returns the goal with the given id.
func (c *Controller) Goal(id string) (Goal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.goals.Get(id)
}

// Counts returns the number of goals and how many are completed.
func (c *Controller) Counts() (total, completed int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.goals.Counts()
}

// Snapshot copies the full state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Goals:           c.goals.Goals(),
		AddMode:         c.form.IsOpen(),
		EnteredText:     c.form.Text(),
		PendingRemovals: c.pendingLocked(),
	}
}

// matchText replaces '/' so doublestar does not treat goal
// text as a path: '*' must be able to span a slash in "Read 1/2".
var matchText = strings.NewReplacer("/", "\u2215")

// Match returns the goals whose text matches a glob pattern, ignoring case.
// Patterns follow doublestar syntax (*, ?, [class], {alt,ernatives}); '/' is
// an ordinary character in both pattern and text.
func (c *Controller) Match(pattern string) ([]Goal, error) {
	pattern = matchText.Replace(strings.ToLower(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Goal
	for _, g := range c.goals.Goals() {
		ok, err := doublestar.Match(pattern, matchText.Replace(strings.ToLower(g.Text)))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
		}
		if ok {
			out = append(out, g)
		}
	}
	return out, nil
}

// Subscribe streams change events until ctx is done or the controller closes.
func (c *Controller) Subscribe(ctx context.Context) (<-chan Event, error) {
	return c.events.subscribe(ctx)
}

// Close ends all subscriptions.
func (c *Controller) Close() error {
	c.events.close()
	return nil
}

// newID draws a fresh id, redrawing on collision with any id issued before.
func (c *Controller) newID() string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = c.ids.NewID()
		if _, seen := c.issued[id]; !seen {
			break
		}
		c.logger.Warn("goal id collision, redrawing", "id", id, "strategy", c.ids.Strategy())
	}
	// A generator that keeps colliding is broken; suffix to keep ids unique.
	for base, n := id, 1; ; n++ {
		if _, seen := c.issued[id]; !seen {
			break
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
	c.issued[id] = struct{}{}
	return id
}

func (c *Controller) emit(t EventType, id string) {
	c.events.publish(Event{Type: t, ID: id, Timestamp: c.now().Unix()})
}
