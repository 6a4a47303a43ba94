package exercise

import (
	"testing"

	"github.com/avelasco/dialecto/internal/content"
)

func mcExercise() content.Exercise {
	return content.Exercise{
		ExerciseID:  "ex-mc",
		Type:        content.TypeMultipleChoice,
		Instruction: "Pick the greeting",
		Question:    "Which one is a greeting?",
		Options: []content.ExerciseOption{
			{Text: "Hola", Correct: true},
			{Text: "Adiós", Correct: false},
		},
	}
}

func TestMultipleChoice_CorrectFirstTry(t *testing.T) {
	m := NewMultipleChoice(mcExercise())

	if !m.Select("Hola") {
		t.Fatal("Select rejected a valid option")
	}
	res, ok := m.Submit()
	if !ok {
		t.Fatal("Submit rejected")
	}
	if res == nil {
		t.Fatal("correct submission must finalize")
	}
	if !res.IsCorrect || res.Attempts != 1 || res.UserAnswer != "Hola" || res.ExerciseID != "ex-mc" {
		t.Errorf("result = %+v", res)
	}
	if !m.Terminal() {
		t.Error("instance should be terminal after a correct answer")
	}
}

func TestMultipleChoice_WrongThreeTimes(t *testing.T) {
	m := NewMultipleChoice(mcExercise())

	for i := 1; i <= 2; i++ {
		m.Select("Adiós")
		res, ok := m.Submit()
		if !ok {
			t.Fatalf("attempt %d rejected", i)
		}
		if res != nil {
			t.Fatalf("attempt %d finalized early: %+v", i, res)
		}
		if m.Terminal() {
			t.Fatalf("terminal after attempt %d", i)
		}
		if !m.Reset() {
			t.Fatalf("Reset rejected after wrong attempt %d", i)
		}
	}

	m.Select("Adiós")
	res, ok := m.Submit()
	if !ok || res == nil {
		t.Fatal("third submission must finalize")
	}
	if res.IsCorrect || res.Attempts != 3 {
		t.Errorf("result = %+v, want incorrect with 3 attempts", res)
	}

	// Terminal: further submissions and resets are no-ops.
	if _, ok := m.Submit(); ok {
		t.Error("Submit accepted after the attempt cap")
	}
	if m.Reset() {
		t.Error("Reset accepted after the attempt cap")
	}
	if m.Select("Hola") {
		t.Error("Select accepted after the attempt cap")
	}
	if got := m.Result(); got == nil || got.Attempts != 3 {
		t.Error("final result changed after terminal no-ops")
	}
}

func TestMultipleChoice_ResubmitWhileSubmitted(t *testing.T) {
	m := NewMultipleChoice(mcExercise())
	m.Select("Adiós")
	if _, ok := m.Submit(); !ok {
		t.Fatal("first submit rejected")
	}
	// Still in the submitted phase; another submit without a reset is a no-op.
	if _, ok := m.Submit(); ok {
		t.Error("Submit accepted while already submitted")
	}
	if m.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", m.Attempts())
	}
}

func TestMultipleChoice_SubmitWithoutSelection(t *testing.T) {
	m := NewMultipleChoice(mcExercise())
	if _, ok := m.Submit(); ok {
		t.Error("Submit accepted without a selection")
	}
	if m.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0", m.Attempts())
	}
}

func TestMultipleChoice_SelectUnknownOption(t *testing.T) {
	m := NewMultipleChoice(mcExercise())
	if m.Select("No existe") {
		t.Error("Select accepted text that is not an option")
	}
}

func TestMultipleChoice_NoCorrectOption(t *testing.T) {
	ex := mcExercise()
	ex.Options = []content.ExerciseOption{
		{Text: "Hola", Correct: false},
		{Text: "Adiós", Correct: false},
	}
	m := NewMultipleChoice(ex)

	if _, ok := m.CorrectOption(); ok {
		t.Error("CorrectOption reported a correct option that does not exist")
	}

	// Every submission grades incorrect; the cap still finalizes.
	for i := 0; i < 3; i++ {
		m.Select("Hola")
		m.Submit()
		m.Reset()
	}
	res := m.Result()
	if res == nil || res.IsCorrect {
		t.Errorf("result = %+v, want finalized incorrect", res)
	}
}

func TestMultipleChoice_MultipleCorrectFlags(t *testing.T) {
	ex := mcExercise()
	ex.Options = []content.ExerciseOption{
		{Text: "Hola", Correct: true},
		{Text: "Buenas", Correct: true},
	}
	m := NewMultipleChoice(ex)

	// First flagged option wins.
	expected, ok := m.CorrectOption()
	if !ok || expected != "Hola" {
		t.Errorf("CorrectOption = %q, %v; want Hola", expected, ok)
	}
	m.Select("Buenas")
	res, _ := m.Submit()
	if res != nil && res.IsCorrect {
		t.Error("second flagged option graded correct; first-match semantics expected")
	}
}
