package exercise

import "github.com/avelasco/dialecto/internal/content"

// MultipleChoice evaluates a single-answer option exercise. The learner
// selects one option text and submits; correctness is exact equality with
// the text of the option flagged correct.
type MultipleChoice struct {
	tracker
	instruction string
	question    string
	options     []content.ExerciseOption

	// expected is the text of the first option flagged correct. When no
	// option carries the flag the exercise can never be answered correctly;
	// the data contract leaves that case undefined and grading degrades to
	// "always incorrect" rather than failing.
	expected    string
	hasExpected bool

	selected     string
	hasSelection bool
}

// NewMultipleChoice creates the evaluator for a multiple_choice exercise.
func NewMultipleChoice(ex content.Exercise) *MultipleChoice {
	m := &MultipleChoice{
		tracker:     newTracker(ex.ExerciseID),
		instruction: ex.Instruction,
		question:    ex.Question,
		options:     ex.Options,
	}
	for _, o := range ex.Options {
		if o.Correct {
			m.expected = o.Text
			m.hasExpected = true
			break
		}
	}
	return m
}

func (m *MultipleChoice) Type() content.ExerciseType { return content.TypeMultipleChoice }

// Instruction returns the exercise instruction text.
func (m *MultipleChoice) Instruction() string { return m.instruction }

// Question returns the question text.
func (m *MultipleChoice) Question() string { return m.question }

// Options returns the options in document order.
func (m *MultipleChoice) Options() []content.ExerciseOption { return m.options }

// Select records the learner's choice. Selection is rejected while a
// submission is pending or after finalization.
func (m *MultipleChoice) Select(text string) bool {
	if m.phase != PhaseUnanswered || m.Terminal() {
		return false
	}
	for _, o := range m.options {
		if o.Text == text {
			m.selected = text
			m.hasSelection = true
			return true
		}
	}
	return false
}

// Selected returns the current selection.
func (m *MultipleChoice) Selected() (string, bool) { return m.selected, m.hasSelection }

// CorrectOption returns the text the submission is graded against.
func (m *MultipleChoice) CorrectOption() (string, bool) { return m.expected, m.hasExpected }

func (m *MultipleChoice) CanSubmit() bool {
	return m.phase == PhaseUnanswered && !m.Terminal() && m.hasSelection
}

func (m *MultipleChoice) Submit() (*Result, bool) {
	if !m.CanSubmit() {
		return nil, false
	}
	correct := m.hasExpected && m.selected == m.expected
	return m.record(correct, m.selected), true
}

func (m *MultipleChoice) Reset() bool {
	if !m.retry() {
		return false
	}
	m.selected = ""
	m.hasSelection = false
	return true
}
