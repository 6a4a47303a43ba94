package exercise

import (
	"math/rand"
	"strings"

	"github.com/avelasco/dialecto/internal/content"
)

// FillInBlanks evaluates a word-bank exercise. The learner places tiles into
// ordered blank slots; submission is enabled once every slot is filled,
// independent of correctness. A blank is correct when its tile's text
// matches the expected answer for that position, or one of the answer's
// registered acceptable variants, case-insensitively after trimming.
type FillInBlanks struct {
	tracker
	instruction string
	dialogue    []content.DialogueLine
	answers     []string
	variants    map[string][]string
	rack        *Rack
}

// NewFillInBlanks creates the evaluator for a fill_in_blanks exercise. The
// word bank holds one tile per expected answer, shuffled by rng.
func NewFillInBlanks(ex content.Exercise, rng *rand.Rand) *FillInBlanks {
	return &FillInBlanks{
		tracker:     newTracker(ex.ExerciseID),
		instruction: ex.Instruction,
		dialogue:    ex.Dialogue,
		answers:     ex.Answers,
		variants:    ex.AcceptableVariants,
		rack:        NewRack(ex.Answers, rng),
	}
}

func (f *FillInBlanks) Type() content.ExerciseType { return content.TypeFillInBlanks }

// Instruction returns the exercise instruction text.
func (f *FillInBlanks) Instruction() string { return f.instruction }

// Dialogue returns the transcript lines containing the blank markers.
func (f *FillInBlanks) Dialogue() []content.DialogueLine { return f.dialogue }

// Rack exposes the tile bank and slot occupancy for rendering.
func (f *FillInBlanks) Rack() *Rack { return f.rack }

// Blanks returns the number of blank slots.
func (f *FillInBlanks) Blanks() int { return len(f.answers) }

// Place puts a tile into a blank slot. Rejected while a submission is
// pending or after finalization.
func (f *FillInBlanks) Place(tileID, slot int) bool {
	if f.Terminal() || f.phase != PhaseUnanswered {
		return false
	}
	return f.rack.Place(tileID, slot)
}

// Vacate returns the tile in the slot to the bank.
func (f *FillInBlanks) Vacate(slot int) bool {
	if f.Terminal() || f.phase != PhaseUnanswered {
		return false
	}
	_, ok := f.rack.Vacate(slot)
	return ok
}

// BlankCorrect reports whether the slot holds a tile matching its expected
// answer.
func (f *FillInBlanks) BlankCorrect(slot int) bool {
	word, ok := f.rack.WordAt(slot)
	if !ok || slot >= len(f.answers) {
		return false
	}
	return f.matches(word, f.answers[slot])
}

// CorrectCount returns the number of correctly filled blanks.
func (f *FillInBlanks) CorrectCount() int {
	n := 0
	for slot := range f.answers {
		if f.BlankCorrect(slot) {
			n++
		}
	}
	return n
}

// matches compares a placed word against an expected answer: a direct match,
// or a match with one of the answer's acceptable variants. Comparison is
// case-insensitive after trimming; punctuation is significant, so tiles
// differing only in punctuation stay distinct.
func (f *FillInBlanks) matches(word, expected string) bool {
	w := strings.TrimSpace(word)
	if strings.EqualFold(w, strings.TrimSpace(expected)) {
		return true
	}
	for _, v := range f.variants[expected] {
		if strings.EqualFold(w, strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

func (f *FillInBlanks) CanSubmit() bool {
	return f.phase == PhaseUnanswered && !f.Terminal() && f.rack.Filled()
}

func (f *FillInBlanks) Submit() (*Result, bool) {
	if !f.CanSubmit() {
		return nil, false
	}
	correct := f.CorrectCount() == len(f.answers)

	words := make([]string, len(f.answers))
	for slot := range f.answers {
		words[slot], _ = f.rack.WordAt(slot)
	}
	return f.record(correct, strings.Join(words, ",")), true
}

// Reset returns all tiles to the bank and re-enables interaction after an
// incorrect, non-final submission.
func (f *FillInBlanks) Reset() bool {
	if !f.retry() {
		return false
	}
	f.rack.Clear()
	return true
}
