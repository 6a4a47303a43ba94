package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/dialecto/internal/ui/theme"
)

// OptionList is a cursor-driven selector over a list of option texts. It is
// purely presentational: correctness lives in the evaluator, and the screen
// feeds the graded state back in through MarkSubmitted.
type OptionList struct {
	Options      []string
	Cursor       int
	Submitted    bool
	ChosenIndex  int
	CorrectIndex int // -1 when unknown
}

// NewOptionList creates a selector positioned on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Update handles keyboard navigation.
func (o OptionList) Update(msg tea.Msg) OptionList {
	if o.Submitted {
		return o
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o
	}
	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o
}

// MarkSubmitted freezes the list and records which option was chosen and
// which was correct, for the graded rendering.
func (o OptionList) MarkSubmitted(chosen, correct int) OptionList {
	o.Submitted = true
	o.ChosenIndex = chosen
	o.CorrectIndex = correct
	return o
}

// Clear returns the list to its pre-submission state.
func (o OptionList) Clear() OptionList {
	o.Submitted = false
	o.ChosenIndex = -1
	o.CorrectIndex = -1
	return o
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s", prefix, opt)

		switch {
		case o.Submitted && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Submitted && i == o.ChosenIndex:
			s += theme.Wrong.Render(line) + "\n"
		case o.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}
	return s
}
