package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/goals/pkg/core"
)

func (m Model) View() string {
	snap := m.ctrl.Snapshot()

	if snap.AddMode {
		return m.viewModal()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader(snap))
	b.WriteString("\n")
	b.WriteString(m.viewList(snap.Goals))

	if m.confirming != "" {
		if g, ok := m.ctrl.Goal(m.confirming); ok {
			b.WriteString("\n")
			b.WriteString(m.viewDialog(g))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m Model) viewHeader(snap core.Snapshot) string {
	title := m.theme.Title.Render(labelTitle)
	if !m.theme.ShowCount {
		return title
	}
	done := 0
	for _, g := range snap.Goals {
		if g.Completed {
			done++
		}
	}
	return title + m.theme.Help.Render(fmt.Sprintf("  %d/%d done", done, len(snap.Goals)))
}

func (m Model) viewList(goals []core.Goal) string {
	if len(goals) == 0 {
		return faded(m.theme.Help.Render(labelEmpty), m.fade)
	}

	rows := make([]string, 0, len(goals))
	for i, g := range goals {
		rows = append(rows, m.viewItem(g, i == m.cursor))
	}
	return faded(lipgloss.JoinVertical(lipgloss.Left, rows...), m.fade)
}

func (m Model) viewItem(g core.Goal, selected bool) string {
	icon := m.theme.IconOpen
	text := g.Text
	if g.Completed {
		icon = m.theme.IconDone
		text = m.theme.Done.Render(text)
	}
	line := icon + " " + text

	prefix := m.theme.NoCursor
	style := m.theme.Item
	if selected {
		prefix = m.theme.Cursor
		style = m.theme.Selected
	}
	return prefix + style.Render(line)
}

func (m Model) viewModal() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(labelAddGoal),
		m.input.View(),
		"",
		m.theme.Danger.Render("esc "+labelCancel)+"   "+m.theme.Button.Render("enter "+labelAdd),
	)
	return m.theme.Modal.Render(body)
}

func (m Model) viewDialog(g core.Goal) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf(labelConfirm, g.Text),
		m.theme.Danger.Render(labelYes)+"   "+m.theme.Button.Render(labelNo),
	)
	return m.theme.Dialog.Render(body)
}

func (m Model) viewHelp() string {
	parts := make([]string, 0, len(m.keys.listHelp()))
	for _, b := range m.keys.listHelp() {
		parts = append(parts, helpEntry(b))
	}
	return m.theme.Help.Render(strings.Join(parts, " · "))
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
