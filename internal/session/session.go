// Package session drives one learner pass over a resolved lesson: it owns
// the evaluator instances for the lesson's exercises, collects their results,
// and reports aggregate progress. Persistence of results is the caller's
// concern.
package session

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/avelasco/dialecto/internal/content"
	"github.com/avelasco/dialecto/internal/exercise"
)

// ResultFunc receives each finalized exercise result. A re-run after a reset
// supersedes the prior result for the same exercise.
type ResultFunc func(exercise.Result)

// Run is the interaction state for one lesson session. Evaluator instances
// are created once at start and discarded with the run; nothing outlives it.
type Run struct {
	ID     string
	Lesson *content.Lesson

	evaluators []exercise.Evaluator
	results    map[string]exercise.Result
	onResult   ResultFunc
}

// NewRun builds evaluator instances for every supported exercise in the
// lesson. Exercises of unsupported types are skipped; imperfect content
// degrades the session rather than failing it. onResult may be nil.
func NewRun(lesson *content.Lesson, rng *rand.Rand, onResult ResultFunc) *Run {
	run := &Run{
		ID:       uuid.New().String(),
		Lesson:   lesson,
		results:  make(map[string]exercise.Result),
		onResult: onResult,
	}
	for _, ex := range lesson.Exercises {
		ev, err := exercise.New(ex, rng)
		if err != nil {
			continue
		}
		run.evaluators = append(run.evaluators, ev)
	}
	return run
}

// Evaluators returns the run's evaluator instances in lesson order.
func (r *Run) Evaluators() []exercise.Evaluator { return r.evaluators }

// Evaluator returns the instance for an exercise ID.
func (r *Run) Evaluator(exerciseID string) (exercise.Evaluator, bool) {
	for _, ev := range r.evaluators {
		if ev.ExerciseID() == exerciseID {
			return ev, true
		}
	}
	return nil, false
}

// Record stores a finalized result and forwards it to the result callback.
// A result for an already-recorded exercise replaces the earlier one.
func (r *Run) Record(res exercise.Result) {
	r.results[res.ExerciseID] = res
	if r.onResult != nil {
		r.onResult(res)
	}
}

// Completed reports whether the exercise has a recorded result.
func (r *Run) Completed(exerciseID string) bool {
	_, ok := r.results[exerciseID]
	return ok
}

// Results returns the recorded results keyed by exercise ID.
func (r *Run) Results() map[string]exercise.Result {
	out := make(map[string]exercise.Result, len(r.results))
	for k, v := range r.results {
		out[k] = v
	}
	return out
}

// Summary aggregates the run's recorded results.
type Summary struct {
	Exercises     int
	Completed     int
	Correct       int
	TotalAttempts int
}

// Summary returns the aggregate state of the run.
func (r *Run) Summary() Summary {
	s := Summary{Exercises: len(r.evaluators)}
	for _, res := range r.results {
		s.Completed++
		s.TotalAttempts += res.Attempts
		if res.IsCorrect {
			s.Correct++
		}
	}
	return s
}

// Done reports whether every evaluator has a recorded result.
func (r *Run) Done() bool {
	return len(r.results) >= len(r.evaluators)
}
