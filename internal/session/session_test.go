package session

import (
	"math/rand"
	"testing"

	"github.com/avelasco/dialecto/internal/content"
	"github.com/avelasco/dialecto/internal/exercise"
)

func sessionLesson() *content.Lesson {
	return &content.Lesson{
		LessonID: "lesson-001",
		Dialect:  "es-MX",
		Exercises: []content.Exercise{
			{
				ExerciseID: "ex-1",
				Type:       content.TypeMultipleChoice,
				Options: []content.ExerciseOption{
					{Text: "Hola", Correct: true},
					{Text: "Adiós", Correct: false},
				},
			},
			{
				ExerciseID: "ex-2",
				Type:       content.TypeMatching,
				Pairs: []content.MatchingPair{
					{Source: "gracias", Target: "thank you"},
				},
			},
			// Unsupported variant: skipped, not fatal.
			{ExerciseID: "ex-3", Type: "ordering"},
		},
	}
}

func TestNewRun_SkipsUnsupportedTypes(t *testing.T) {
	run := NewRun(sessionLesson(), rand.New(rand.NewSource(1)), nil)

	if len(run.Evaluators()) != 2 {
		t.Fatalf("evaluators = %d, want 2", len(run.Evaluators()))
	}
	if _, ok := run.Evaluator("ex-3"); ok {
		t.Error("unsupported exercise got an evaluator")
	}
	if run.ID == "" {
		t.Error("run has no id")
	}
}

func TestRun_RecordAndSummary(t *testing.T) {
	var emitted []exercise.Result
	run := NewRun(sessionLesson(), rand.New(rand.NewSource(1)), func(res exercise.Result) {
		emitted = append(emitted, res)
	})

	mc, _ := run.Evaluator("ex-1")
	m := mc.(*exercise.MultipleChoice)
	m.Select("Hola")
	res, _ := m.Submit()
	run.Record(*res)

	if !run.Completed("ex-1") {
		t.Error("ex-1 not marked completed")
	}
	if run.Done() {
		t.Error("run done with one of two results")
	}

	match, _ := run.Evaluator("ex-2")
	mt := match.(*exercise.Matching)
	mt.PickSource("gracias")
	mt.PickTarget("thank you")
	res2, _ := mt.Submit()
	run.Record(*res2)

	if !run.Done() {
		t.Error("run not done with all results recorded")
	}

	s := run.Summary()
	if s.Exercises != 2 || s.Completed != 2 || s.Correct != 2 || s.TotalAttempts != 2 {
		t.Errorf("summary = %+v", s)
	}
	if len(emitted) != 2 {
		t.Errorf("callback received %d results, want 2", len(emitted))
	}
}

func TestRun_SupersedingResult(t *testing.T) {
	run := NewRun(sessionLesson(), rand.New(rand.NewSource(1)), nil)

	run.Record(exercise.Result{ExerciseID: "ex-1", IsCorrect: false, Attempts: 3})
	run.Record(exercise.Result{ExerciseID: "ex-1", IsCorrect: true, Attempts: 1})

	res := run.Results()["ex-1"]
	if !res.IsCorrect || res.Attempts != 1 {
		t.Errorf("result = %+v, want the superseding one", res)
	}
	if s := run.Summary(); s.Completed != 1 {
		t.Errorf("summary counts duplicates: %+v", s)
	}
}
