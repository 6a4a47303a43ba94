// Package exercise implements the per-type interaction state machines that
// accept learner input, determine correctness, and emit a normalized result.
package exercise

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/avelasco/dialecto/internal/content"
)

// MaxAttempts is the number of submissions allowed per exercise. The third
// submission always finalizes the exercise, correct or not.
const MaxAttempts = 3

// ErrUnsupportedType is returned by New for exercise variants this engine
// does not evaluate.
var ErrUnsupportedType = errors.New("unsupported exercise type")

// Phase is the coarse interaction state of an evaluator instance.
type Phase string

const (
	// PhaseUnanswered accepts interaction and a submission.
	PhaseUnanswered Phase = "unanswered"
	// PhaseSubmitted follows a submission. The instance either finalized
	// (Terminal) or is waiting for a Reset to retry.
	PhaseSubmitted Phase = "submitted"
)

// Result is the normalized output record of a finalized exercise.
type Result struct {
	ExerciseID string `json:"exerciseId"`
	IsCorrect  bool   `json:"isCorrect"`
	UserAnswer string `json:"userAnswer"`
	Attempts   int    `json:"attempts"`
}

// Evaluator is the capability set shared by all exercise variants. The
// concrete type is selected once at construction; callers never branch on
// the exercise type afterwards.
//
// Submit returns (result, true) when a submission is accepted and finalizes
// the instance, (nil, true) when it is accepted but a retry remains, and
// (nil, false) when it is rejected (terminal instance, or the variant's
// submission gate is not satisfied). A rejected call never mutates state or
// emits a second result.
type Evaluator interface {
	ExerciseID() string
	Type() content.ExerciseType
	Phase() Phase
	Attempts() int
	// Terminal reports whether a final result has been emitted.
	Terminal() bool
	// LastCorrect reports the correctness of the most recent submission.
	LastCorrect() bool
	// CanSubmit reports whether a submission would currently be accepted.
	CanSubmit() bool
	Submit() (*Result, bool)
	// Reset returns the instance to PhaseUnanswered after an incorrect,
	// non-final submission. It reports whether the reset was applied.
	Reset() bool
	// Result returns the final result, or nil while not terminal.
	Result() *Result
}

// New constructs the evaluator for an exercise. The randomness source seeds
// the one-time shuffle of word banks and matching columns; pass a fixed-seed
// source for reproducible ordering.
func New(ex content.Exercise, rng *rand.Rand) (Evaluator, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch ex.Type {
	case content.TypeMultipleChoice:
		return NewMultipleChoice(ex), nil
	case content.TypeMatching:
		return NewMatching(ex, rng), nil
	case content.TypeFillInBlanks:
		return NewFillInBlanks(ex, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ex.Type)
	}
}

// tracker holds the attempt bookkeeping shared by all variants.
type tracker struct {
	id          string
	phase       Phase
	attempts    int
	lastCorrect bool
	final       *Result
}

func newTracker(id string) tracker {
	return tracker{id: id, phase: PhaseUnanswered}
}

func (t *tracker) ExerciseID() string { return t.id }
func (t *tracker) Phase() Phase       { return t.phase }
func (t *tracker) Attempts() int      { return t.attempts }
func (t *tracker) Terminal() bool     { return t.final != nil }
func (t *tracker) LastCorrect() bool  { return t.lastCorrect }
func (t *tracker) Result() *Result    { return t.final }

// record counts a submission and finalizes the instance when the answer is
// correct or the attempt cap is reached. It returns the final result, nil
// while a retry remains.
func (t *tracker) record(correct bool, userAnswer string) *Result {
	t.attempts++
	t.lastCorrect = correct
	t.phase = PhaseSubmitted
	if correct || t.attempts >= MaxAttempts {
		t.final = &Result{
			ExerciseID: t.id,
			IsCorrect:  correct,
			UserAnswer: userAnswer,
			Attempts:   t.attempts,
		}
	}
	return t.final
}

// retry returns the instance to PhaseUnanswered if a retry is permitted.
func (t *tracker) retry() bool {
	if t.final != nil || t.phase != PhaseSubmitted {
		return false
	}
	t.phase = PhaseUnanswered
	return true
}
