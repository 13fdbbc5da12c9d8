package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/goals/pkg/config"
)

// User-facing strings. Not configurable.
const (
	labelTitle       = "Goals"
	labelAddGoal     = "Add new goal"
	labelPlaceholder = "Enter your goal"
	labelAdd         = "ADD"
	labelCancel      = "CANCEL"
	labelEmpty       = "No goals yet. Press 'a' to add one."
	labelConfirm     = "Delete %q?"
	labelYes         = "y delete"
	labelNo          = "n keep"
)

// fadeRamp is the foreground progression of the styled fade-in.
var fadeRamp = [...]lipgloss.Color{"236", "239", "243", "247", "251"}

// Theme holds the lipgloss styles of one variant.
type Theme struct {
	Variant   config.Variant
	Title     lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	Modal     lipgloss.Style
	Dialog    lipgloss.Style
	Help      lipgloss.Style
	Button    lipgloss.Style
	Danger    lipgloss.Style
	IconDone  string
	IconOpen  string
	Cursor    string
	NoCursor  string
	ShowCount bool
}

// NewTheme returns the styles for a variant. Unknown variants render plain.
func NewTheme(v config.Variant) Theme {
	if v == config.VariantStyled {
		return styledTheme()
	}
	return plainTheme()
}

func plainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Variant:  config.VariantPlain,
		Title:    plain.Bold(true),
		Item:     plain,
		Selected: plain.Reverse(true),
		Done:     plain.Faint(true),
		Modal:    plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Dialog:   plain,
		Help:     plain.Faint(true),
		Button:   plain,
		Danger:   plain,
		IconDone: "[x]",
		IconOpen: "[ ]",
		Cursor:   "> ",
		NoCursor: "  ",
	}
}

func styledTheme() Theme {
	accent := lipgloss.Color("39")
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(40)

	return Theme{
		Variant:  config.VariantStyled,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Item:     card,
		Selected: card.BorderForeground(accent),
		Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("243")),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Danger:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		IconDone:  "✔",
		IconOpen:  "○",
		Cursor:    "",
		NoCursor:  "",
		ShowCount: true,
	}
}

// faded returns s dimmed to the given fade step. Steps past the ramp are s.
func faded(s string, step int) string {
	if step < 0 || step >= len(fadeRamp) {
		return s
	}
	return lipgloss.NewStyle().Foreground(fadeRamp[step]).Render(s)
}
