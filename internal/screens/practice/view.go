package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/dialecto/internal/content"
	"github.com/avelasco/dialecto/internal/exercise"
	"github.com/avelasco/dialecto/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var body string
	switch m.phase {
	case phaseExercise:
		body = m.viewExercise()
	case phaseSpeaking:
		body = m.viewSpeaking()
	case phaseSummary:
		body = m.viewSummary()
	}

	title := m.run.Lesson.Title.Localized
	if title == "" {
		title = m.run.Lesson.LessonID
	}
	header := theme.Title.Render(title) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("[%s]", m.run.Lesson.Dialect))

	v.SetContent(header + "\n\n" + body)
	return v
}

func (m Model) viewExercise() string {
	ev := m.current()
	if ev == nil {
		return theme.Hint.Render("No exercises in this lesson.")
	}

	progress := theme.Subtitle.Render(
		fmt.Sprintf("Exercise %d of %d", m.idx+1, len(m.run.Evaluators())))

	var b strings.Builder
	b.WriteString(progress + "\n\n")

	switch e := ev.(type) {
	case *exercise.MultipleChoice:
		b.WriteString(m.viewMultipleChoice(e))
	case *exercise.Matching:
		b.WriteString(m.viewMatching(e))
	case *exercise.FillInBlanks:
		b.WriteString(m.viewFillInBlanks(e))
	}

	b.WriteString("\n" + m.viewVerdict(ev))
	return b.String()
}

func (m Model) viewMultipleChoice(e *exercise.MultipleChoice) string {
	var b strings.Builder
	if e.Instruction() != "" {
		b.WriteString(theme.Body.Render(e.Instruction()) + "\n")
	}
	if e.Question() != "" {
		b.WriteString(theme.Body.Bold(true).Render(e.Question()) + "\n")
	}
	b.WriteString("\n" + m.options.View())
	return b.String()
}

func (m Model) viewMatching(e *exercise.Matching) string {
	var b strings.Builder
	if e.Instruction() != "" {
		b.WriteString(theme.Body.Render(e.Instruction()) + "\n\n")
	}

	sources := e.Sources()
	targets := e.Targets()
	selected, hasSelected := e.SelectedSource()

	var left, right strings.Builder
	for i, s := range sources {
		line := "  " + s
		if !m.onTargets && i == m.sourceCursor && !e.Terminal() {
			line = "▸ " + s
		}
		switch {
		case e.Matched(s):
			left.WriteString(theme.Correct.Render(line))
		case hasSelected && s == selected:
			left.WriteString(theme.Selected.Render(line))
		default:
			left.WriteString(theme.Body.Render(line))
		}
		left.WriteString("\n")
	}
	for i, t := range targets {
		line := "  " + t
		if m.onTargets && i == m.targetCursor && !e.Terminal() {
			line = "▸ " + t
		}
		if e.MatchedTarget(t) {
			right.WriteString(theme.Correct.Render(line))
		} else {
			right.WriteString(theme.Body.Render(line))
		}
		right.WriteString("\n")
	}

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		left.String(),
		strings.Repeat(" ", 6),
		right.String())
	b.WriteString(cols)

	if m.rejected != "" {
		b.WriteString("\n" + theme.Wrong.Render("Not a match: "+m.rejected))
	}
	return b.String()
}

func (m Model) viewFillInBlanks(e *exercise.FillInBlanks) string {
	var b strings.Builder
	if e.Instruction() != "" {
		b.WriteString(theme.Body.Render(e.Instruction()) + "\n\n")
	}

	rack := e.Rack()

	// Dialogue with the blank markers replaced by the placed tiles, in
	// blank order across all lines.
	slot := 0
	for _, line := range e.Dialogue() {
		text := line.Text
		for strings.Contains(text, content.BlankMarker) {
			word, filled := rack.WordAt(slot)
			cell := "______"
			if filled {
				cell = word
			}
			style := theme.Body
			if m.fillFocus == focusSlots && slot == m.slotCursor && !e.Terminal() {
				style = theme.Selected
			} else if e.Terminal() {
				if e.BlankCorrect(slot) {
					style = theme.Correct
				} else {
					style = theme.Wrong
				}
			}
			text = strings.Replace(text, content.BlankMarker, style.Render("["+cell+"]"), 1)
			slot++
		}
		speaker := ""
		if line.Speaker != "" {
			speaker = theme.Subtitle.Render(line.Speaker + ": ")
		}
		b.WriteString(speaker + text + "\n")
	}

	b.WriteString("\n" + theme.Subtitle.Render("Word bank") + "\n")
	for i, tile := range rack.Tiles() {
		label := " " + tile.Word + " "
		switch {
		case rack.Placed(tile.ID):
			b.WriteString(theme.Hint.Render("(" + tile.Word + ")"))
		case m.fillFocus == focusBank && i == m.bankCursor && !e.Terminal():
			b.WriteString(theme.Selected.Render("[" + tile.Word + "]"))
		default:
			b.WriteString(theme.Body.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	if e.CanSubmit() {
		b.WriteString("\n" + theme.Hint.Render("Press s to check your answer"))
	}
	return b.String()
}

// viewVerdict renders the attempt state and the key hints below an exercise.
func (m Model) viewVerdict(ev exercise.Evaluator) string {
	if ev.Terminal() {
		res := m.run.Results()[ev.ExerciseID()]
		if res.IsCorrect {
			return theme.Correct.Render("Correct!") + "  " +
				theme.Hint.Render("Enter to continue")
		}
		return theme.Wrong.Render(fmt.Sprintf("Out of attempts (%d).", res.Attempts)) + "  " +
			theme.Hint.Render("Enter to continue")
	}
	if ev.Phase() == exercise.PhaseSubmitted {
		left := exercise.MaxAttempts - ev.Attempts()
		return theme.Wrong.Render("Not quite.") + "  " +
			theme.Hint.Render(fmt.Sprintf("%d attempt(s) left. Press r to try again", left))
	}
	return theme.Hint.Render(fmt.Sprintf("Attempt %d of %d", ev.Attempts()+1, exercise.MaxAttempts))
}

func (m Model) viewSpeaking() string {
	rubric := m.run.Lesson.SpeakingRubric
	var b strings.Builder
	b.WriteString(theme.Title.Render("Speaking practice") + "\n\n")
	b.WriteString(theme.Body.Render(rubric.Prompt) + "\n")
	if rubric.SampleResponse != nil {
		b.WriteString(theme.Subtitle.Render("Model answer: "+rubric.SampleResponse.Text) + "\n")
	}
	b.WriteString("\n")

	if m.assessment == nil {
		b.WriteString(m.transcript.View() + "\n\n")
		b.WriteString(theme.Hint.Render("Say the phrase aloud, type what you said, then press Enter"))
		return b.String()
	}

	a := m.assessment
	b.WriteString(theme.Body.Render(fmt.Sprintf("Match score: %.2f   Intelligibility: %.2f",
		a.MatchScore, a.IntelligibilityScore)) + "\n\n")
	for _, f := range a.Feedback {
		b.WriteString(theme.Body.Render(f) + "\n")
	}
	for _, s := range a.Suggestions {
		b.WriteString(theme.Body.Render("  • "+s) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("Enter to continue"))
	return b.String()
}

func (m Model) viewSummary() string {
	s := m.run.Summary()
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Exercises:  %d", s.Exercises)) + "\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct:    %d", s.Correct)) + "\n")
	if wrong := s.Completed - s.Correct; wrong > 0 {
		b.WriteString(theme.Wrong.Render(fmt.Sprintf("Missed:     %d", wrong)) + "\n")
	}
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Attempts:   %d", s.TotalAttempts)) + "\n")
	if m.assessment != nil {
		b.WriteString(theme.Subtitle.Render(
			fmt.Sprintf("Speaking:   %.2f", m.assessment.MatchScore)) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("Enter to exit"))
	return b.String()
}
