package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/avelasco/dialecto/internal/ui/theme"
)

// TranscriptInput wraps bubbles/textinput for entering a spoken-response
// transcript by hand when no speech recognizer is attached.
type TranscriptInput struct {
	Model textinput.Model
}

// NewTranscriptInput creates a focused, styled transcript input.
func NewTranscriptInput(placeholder string) TranscriptInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Focus()
	return TranscriptInput{Model: ti}
}

// Init returns the initial command.
func (t TranscriptInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TranscriptInput) Update(msg tea.Msg) (TranscriptInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a dim prompt.
func (t TranscriptInput) View() string {
	return theme.Hint.Render("Transcript: ") + t.Model.View()
}

// Value returns the typed transcript.
func (t TranscriptInput) Value() string {
	return t.Model.Value()
}
