package exercise

import (
	"encoding/json"
	"math/rand"

	"github.com/avelasco/dialecto/internal/content"
)

// Matching evaluates a pair-matching exercise. The learner builds the
// mapping incrementally: pick a source, then pick a target. A wrong pairing
// is rejected on the spot and costs nothing; only the final submission
// counts as an attempt. Submission is gated on every source having an
// accepted pairing, so a submitted matching exercise is correct by
// construction.
type Matching struct {
	tracker
	instruction string
	pairs       []content.MatchingPair
	targetOf    map[string]string // source -> correct target
	targets     []string          // target column, shuffled once at construction

	accepted       map[string]string // source -> accepted target
	selectedSource string
	hasSelection   bool
}

// NewMatching creates the evaluator for a matching exercise. The target
// column order is shuffled once using rng.
func NewMatching(ex content.Exercise, rng *rand.Rand) *Matching {
	targetOf := make(map[string]string, len(ex.Pairs))
	targets := make([]string, len(ex.Pairs))
	for i, p := range ex.Pairs {
		targetOf[p.Source] = p.Target
		targets[i] = p.Target
	}
	return &Matching{
		tracker:     newTracker(ex.ExerciseID),
		instruction: ex.Instruction,
		pairs:       ex.Pairs,
		targetOf:    targetOf,
		targets:     Shuffle(targets, rng),
		accepted:    make(map[string]string, len(ex.Pairs)),
	}
}

func (m *Matching) Type() content.ExerciseType { return content.TypeMatching }

// Instruction returns the exercise instruction text.
func (m *Matching) Instruction() string { return m.instruction }

// Sources returns the source column in document order.
func (m *Matching) Sources() []string {
	out := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.Source
	}
	return out
}

// Targets returns the target column in its shuffled display order.
func (m *Matching) Targets() []string { return m.targets }

// PickSource selects a source item, or clears the selection when the same
// source is picked again. Sources with an accepted pairing are inert.
func (m *Matching) PickSource(source string) bool {
	if m.Terminal() || m.phase != PhaseUnanswered {
		return false
	}
	if _, done := m.accepted[source]; done {
		return false
	}
	if _, known := m.targetOf[source]; !known {
		return false
	}
	if m.hasSelection && m.selectedSource == source {
		m.selectedSource = ""
		m.hasSelection = false
		return true
	}
	m.selectedSource = source
	m.hasSelection = true
	return true
}

// PickTarget attempts to pair the selected source with a target. A correct
// pairing is accepted into the mapping; an incorrect one clears the
// selection and reports false without counting toward the attempt cap.
func (m *Matching) PickTarget(target string) bool {
	if m.Terminal() || m.phase != PhaseUnanswered || !m.hasSelection {
		return false
	}
	if m.targetUsed(target) {
		return false
	}

	source := m.selectedSource
	m.selectedSource = ""
	m.hasSelection = false

	if m.targetOf[source] != target {
		return false
	}
	m.accepted[source] = target
	return true
}

func (m *Matching) targetUsed(target string) bool {
	for _, t := range m.accepted {
		if t == target {
			return true
		}
	}
	return false
}

// Matched reports whether the source already has an accepted pairing.
func (m *Matching) Matched(source string) bool {
	_, ok := m.accepted[source]
	return ok
}

// MatchedTarget reports whether the target is part of an accepted pairing.
func (m *Matching) MatchedTarget(target string) bool { return m.targetUsed(target) }

// SelectedSource returns the currently selected source item.
func (m *Matching) SelectedSource() (string, bool) { return m.selectedSource, m.hasSelection }

// AcceptedCount returns the number of accepted pairings.
func (m *Matching) AcceptedCount() int { return len(m.accepted) }

// Complete reports whether every source has an accepted pairing.
func (m *Matching) Complete() bool { return len(m.accepted) == len(m.pairs) }

func (m *Matching) CanSubmit() bool {
	return m.phase == PhaseUnanswered && !m.Terminal() && m.Complete()
}

func (m *Matching) Submit() (*Result, bool) {
	if !m.CanSubmit() {
		return nil, false
	}
	answer, _ := json.Marshal(m.accepted)
	return m.record(true, string(answer)), true
}

// Reset clears all accepted pairings and the selection. It is a no-op once
// the exercise is terminal.
func (m *Matching) Reset() bool {
	if m.Terminal() {
		return false
	}
	m.accepted = make(map[string]string, len(m.pairs))
	m.selectedSource = ""
	m.hasSelection = false
	m.phase = PhaseUnanswered
	return true
}
