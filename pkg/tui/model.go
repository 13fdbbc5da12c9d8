// Package tui is the terminal view layer of the goal list. It renders the
// controller snapshot and turns key presses into controller operations; it
// never edits goals itself.
package tui

import (
	"context"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
)

const fadeSteps = len(fadeRamp)

// ConfigMsg swaps the theme and fade settings at runtime.
type ConfigMsg struct {
	Config config.Config
}

type fadeMsg struct{}

// Model is the bubbletea model over a controller.
type Model struct {
	ctrl   *core.Controller
	cfg    config.Config
	theme  Theme
	keys   keyMap
	input  textinput.Model
	cursor int
	// confirming is the goal id shown in the delete dialog.
	confirming string
	fade       int
	width      int
}

// New creates the model. The controller decides whether removals need
// confirmation; cfg only drives presentation.
func New(ctrl *core.Controller, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = labelPlaceholder
	ti.CharLimit = 0 // goals keep exactly what was typed
	ti.Width = 40

	m := Model{
		ctrl:  ctrl,
		cfg:   cfg,
		theme: NewTheme(cfg.Variant),
		keys:  defaultKeys(),
		input: ti,
		fade:  fadeSteps,
	}
	if m.animates() {
		m.fade = 0
	}
	if ctrl.Snapshot().AddMode {
		m.input.SetValue(ctrl.Snapshot().EnteredText)
		m.input.CursorEnd()
		m.input.Focus()
	}
	return m
}

// Run starts an interactive program and blocks until the user quits or ctx ends.
// Values received on reloads are applied as ConfigMsg.
func Run(ctx context.Context, m Model, reloads <-chan config.Config) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if reloads != nil {
		lifecycle.Go(ctx, func(ctx context.Context) error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case cfg, ok := <-reloads:
					if !ok {
						return nil
					}
					p.Send(ConfigMsg{Config: cfg})
				}
			}
		})
	}
	_, err := p.Run()
	return err
}

func (m Model) animates() bool {
	return m.cfg.Variant == config.VariantStyled && m.cfg.FadeIn > 0
}

func (m Model) fadeTick() tea.Cmd {
	interval := m.cfg.FadeIn / time.Duration(fadeSteps)
	return tea.Tick(interval, func(time.Time) tea.Msg { return fadeMsg{} })
}

func (m Model) Init() tea.Cmd {
	if m.fade < fadeSteps {
		return m.fadeTick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
		return m, nil

	case fadeMsg:
		if m.fade >= fadeSteps {
			return m, nil
		}
		m.fade++
		if m.fade < fadeSteps {
			return m, m.fadeTick()
		}
		return m, nil

	case ConfigMsg:
		m.cfg = msg.Config
		m.theme = NewTheme(msg.Config.Variant)
		if !m.animates() {
			m.fade = fadeSteps
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirming != "" {
			return m.updateConfirm(msg)
		}
		if m.ctrl.Snapshot().AddMode {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg)
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if _, ok := m.ctrl.CommitGoal(); !ok {
			// Blank text: the form stays open.
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.cursor = clampCursor(len(m.ctrl.Goals())-1, len(m.ctrl.Goals()))
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelAddForm()
		m.input.Reset()
		m.input.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.UpdateEnteredText(m.input.Value())
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := m.ctrl.Goals()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.ctrl.OpenAddForm()
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(goals))

	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(goals))

	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selected(goals); ok {
			m.toggle(id)
		}

	case key.Matches(msg, m.keys.Remove):
		if id, ok := m.selected(goals); ok {
			m.remove(id)
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.ctrl.ConfirmRemoval(m.confirming)
	case key.Matches(msg, m.keys.Decline):
		m.ctrl.DeclineRemoval(m.confirming)
	default:
		return m, nil
	}
	m.confirming = ""
	m.cursor = clampCursor(m.cursor, len(m.ctrl.Goals()))
	return m, nil
}

func (m *Model) toggle(id string) {
	m.ctrl.ToggleCompletion(id)
}

func (m *Model) remove(id string) {
	if m.ctrl.RequiresConfirmation() {
		if m.ctrl.RequestRemoval(id) {
			m.confirming = id
		}
		return
	}
	m.ctrl.RemoveGoal(id)
	m.cursor = clampCursor(m.cursor, len(m.ctrl.Goals()))
}

func (m Model) selected(goals []core.Goal) (string, bool) {
	if m.cursor < 0 || m.cursor >= len(goals) {
		return "", false
	}
	return goals[m.cursor].ID, true
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
