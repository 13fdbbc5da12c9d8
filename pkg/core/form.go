package core

import "strings"

// Form is the transient add-form state: whether the entry modal is visible
// and the uncommitted text buffer. It never touches goals.
type Form struct {
	open bool
	text string
}

func (f *Form) Open() { f.open = true }

// SetText replaces the buffer unconditionally. Validation happens on commit.
func (f *Form) SetText(value string) { f.text = value }

// Reset closes the form and clears the buffer.
func (f *Form) Reset() {
	f.open = false
	f.text = ""
}

func (f *Form) IsOpen() bool { return f.open }

func (f *Form) Text() string { return f.text }

// Committable reports whether the buffer holds something besides whitespace.
func (f *Form) Committable() bool {
	return strings.TrimSpace(f.text) != ""
}
