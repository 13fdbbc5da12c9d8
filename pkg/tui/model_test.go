package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func setup(t *testing.T, variant config.Variant, confirm bool) (*core.Controller, tea.Model) {
	t.Helper()
	ctrl := core.NewController(core.Config{IDs: &core.CounterGenerator{}, ConfirmRemoval: confirm})
	t.Cleanup(func() { _ = ctrl.Close() })

	cfg := config.Default()
	cfg.Variant = variant
	return ctrl, New(ctrl, cfg)
}

func addGoal(m tea.Model, text string) tea.Model {
	m = press(m, "a")
	m = typeText(m, text)
	return press(m, "enter")
}

func TestModel_AddGoal(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)

	m = press(m, "a")
	assert.True(t, ctrl.Snapshot().AddMode)

	m = typeText(m, "Learn TS")
	assert.Equal(t, "Learn TS", ctrl.Snapshot().EnteredText)
	assert.Contains(t, m.View(), labelAddGoal)

	m = press(m, "enter")
	snap := ctrl.Snapshot()
	require.Len(t, snap.Goals, 1)
	assert.Equal(t, "Learn TS", snap.Goals[0].Text)
	assert.False(t, snap.AddMode)
	assert.Empty(t, snap.EnteredText)
	assert.Contains(t, m.View(), "Learn TS")
}

func TestModel_TypingShortcutsGoToInput(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)
	m = addGoal(m, "quit a day")
	require.Len(t, ctrl.Goals(), 1)
	assert.Equal(t, "quit a day", ctrl.Goals()[0].Text)
}

func TestModel_LongTextIsNotTruncated(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)
	long := strings.Repeat("x", 300)

	m = addGoal(m, long)
	goals := ctrl.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, long, goals[0].Text)
}

func TestModel_BlankCommitKeepsModal(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)

	m = press(m, "a")
	m = typeText(m, "   ")
	m = press(m, "enter")

	snap := ctrl.Snapshot()
	assert.Empty(t, snap.Goals)
	assert.True(t, snap.AddMode)
	assert.Contains(t, m.View(), labelAddGoal)
}

func TestModel_CancelDiscardsText(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)

	m = press(m, "a")
	m = typeText(m, "draft")
	m = press(m, "esc")

	snap := ctrl.Snapshot()
	assert.False(t, snap.AddMode)
	assert.Empty(t, snap.EnteredText)
	assert.Empty(t, snap.Goals)

	// Reopening starts from an empty buffer.
	m = press(m, "a")
	m = typeText(m, "x")
	assert.Equal(t, "x", ctrl.Snapshot().EnteredText)
}

func TestModel_ToggleAndNavigate(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)
	m = addGoal(m, "one")
	m = addGoal(m, "two")

	// The cursor follows the newest goal.
	m = press(m, "space")
	goals := ctrl.Goals()
	assert.False(t, goals[0].Completed)
	assert.True(t, goals[1].Completed)

	m = press(m, "up", "space")
	assert.True(t, ctrl.Goals()[0].Completed)
	assert.Contains(t, m.View(), "[x] one")

	m = press(m, "up", "up", "space")
	assert.False(t, ctrl.Goals()[0].Completed)
}

func TestModel_RemoveWithoutConfirmation(t *testing.T) {
	ctrl, m := setup(t, config.VariantPlain, false)
	m = addGoal(m, "one")
	m = addGoal(m, "two")

	m = press(m, "d")
	goals := ctrl.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "one", goals[0].Text)

	m = press(m, "d", "d")
	assert.Empty(t, ctrl.Goals())
	assert.Contains(t, m.View(), labelEmpty)
}

func TestModel_RemoveWithConfirmation(t *testing.T) {
	ctrl, m := setup(t, config.VariantStyled, true)
	m = addGoal(m, "keep me")

	m = press(m, "d")
	id := ctrl.Goals()[0].ID
	assert.True(t, ctrl.PendingRemoval(id))
	assert.Contains(t, m.View(), `Delete "keep me"?`)

	// Other keys are ignored while the dialog is open.
	m = press(m, "a")
	assert.False(t, ctrl.Snapshot().AddMode)

	m = press(m, "n")
	assert.Len(t, ctrl.Goals(), 1)
	assert.False(t, ctrl.PendingRemoval(id))

	m = press(m, "d", "y")
	assert.Empty(t, ctrl.Goals())
	assert.NotContains(t, m.View(), "Delete")
}

func TestModel_QuitKeys(t *testing.T) {
	_, m := setup(t, config.VariantPlain, false)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	// ctrl+c quits even inside the form.
	m = press(m, "a")
	_, cmd = m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	_, ok = cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_FadeIn(t *testing.T) {
	_, plain := setup(t, config.VariantPlain, false)
	assert.Nil(t, plain.Init())

	_, styled := setup(t, config.VariantStyled, true)
	require.NotNil(t, styled.Init())

	m := styled
	for i := 0; i < fadeSteps; i++ {
		m, _ = m.Update(fadeMsg{})
	}
	assert.Equal(t, fadeSteps, m.(Model).fade)

	// Extra ticks are harmless.
	_, cmd := m.Update(fadeMsg{})
	assert.Nil(t, cmd)
}

func TestModel_ConfigReload(t *testing.T) {
	ctrl, m := setup(t, config.VariantStyled, false)
	m = addGoal(m, "themed")

	cfg := config.Default()
	cfg.Variant = config.VariantPlain
	m, _ = m.Update(ConfigMsg{Config: cfg})

	model := m.(Model)
	assert.Equal(t, config.VariantPlain, model.theme.Variant)
	assert.Equal(t, fadeSteps, model.fade)
	assert.Len(t, ctrl.Goals(), 1)
	assert.Contains(t, m.View(), "[ ] themed")
}

func TestModel_OpensOnExistingForm(t *testing.T) {
	ctrl := core.NewController(core.Config{})
	defer ctrl.Close()
	ctrl.OpenAddForm()
	ctrl.UpdateEnteredText("half")

	cfg := config.Default()
	cfg.FadeIn = 0
	var m tea.Model = New(ctrl, cfg)
	m = typeText(m, "way")
	assert.Equal(t, "halfway", ctrl.Snapshot().EnteredText)
}

func TestFadeTickInterval(t *testing.T) {
	cfg := config.Default()
	cfg.FadeIn = time.Duration(fadeSteps) * 10 * time.Millisecond
	m := New(core.NewController(core.Config{}), cfg)
	assert.True(t, m.animates())
	assert.Equal(t, 0, m.fade)
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(5, 0))
	assert.Equal(t, 0, clampCursor(-1, 3))
	assert.Equal(t, 2, clampCursor(9, 3))
	assert.Equal(t, 1, clampCursor(1, 3))
}
