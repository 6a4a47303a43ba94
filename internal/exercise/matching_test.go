package exercise

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/avelasco/dialecto/internal/content"
)

func matchingExercise() content.Exercise {
	return content.Exercise{
		ExerciseID:  "ex-match",
		Type:        content.TypeMatching,
		Instruction: "Match the phrases",
		Pairs: []content.MatchingPair{
			{Source: "buenos días", Target: "good morning"},
			{Source: "buenas noches", Target: "good night"},
			{Source: "hasta luego", Target: "see you later"},
		},
	}
}

func testRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestMatching_ShuffleDeterministic(t *testing.T) {
	a := NewMatching(matchingExercise(), rand.New(rand.NewSource(7)))
	b := NewMatching(matchingExercise(), rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a.Targets(), b.Targets()) {
		t.Error("same seed produced different target orderings")
	}
}

func TestMatching_SubmitGatedOnCompletion(t *testing.T) {
	m := NewMatching(matchingExercise(), testRNG())

	if m.CanSubmit() {
		t.Error("submission enabled with no accepted pairs")
	}
	if _, ok := m.Submit(); ok {
		t.Error("Submit accepted before completion")
	}

	m.PickSource("buenos días")
	if !m.PickTarget("good morning") {
		t.Fatal("correct pairing rejected")
	}
	m.PickSource("buenas noches")
	m.PickTarget("good night")

	if m.CanSubmit() {
		t.Error("submission enabled with 2 of 3 pairs accepted")
	}

	m.PickSource("hasta luego")
	m.PickTarget("see you later")

	if !m.CanSubmit() {
		t.Fatal("submission disabled after full completion")
	}
	res, ok := m.Submit()
	if !ok || res == nil {
		t.Fatal("Submit rejected after completion")
	}
	if !res.IsCorrect || res.Attempts != 1 {
		t.Errorf("result = %+v, want correct with 1 attempt", res)
	}
	if !m.Terminal() {
		t.Error("matching should be terminal after submit")
	}
}

func TestMatching_WrongPairingIsCostFree(t *testing.T) {
	m := NewMatching(matchingExercise(), testRNG())

	m.PickSource("buenos días")
	if m.PickTarget("good night") {
		t.Fatal("wrong pairing accepted")
	}
	// Both selections clear after a rejection.
	if _, sel := m.SelectedSource(); sel {
		t.Error("selection survived a rejected pairing")
	}
	if m.AcceptedCount() != 0 {
		t.Error("rejected pairing entered the mapping")
	}
	if m.Attempts() != 0 {
		t.Error("rejected pairing counted as an attempt")
	}

	// The pair can be retried immediately.
	m.PickSource("buenos días")
	if !m.PickTarget("good morning") {
		t.Error("retry of the correct pairing rejected")
	}
}

func TestMatching_UsedItemsAreInert(t *testing.T) {
	m := NewMatching(matchingExercise(), testRNG())
	m.PickSource("buenos días")
	m.PickTarget("good morning")

	if m.PickSource("buenos días") {
		t.Error("matched source could be re-selected")
	}
	m.PickSource("buenas noches")
	if m.PickTarget("good morning") {
		t.Error("matched target could be re-used")
	}
}

func TestMatching_PickSourceToggle(t *testing.T) {
	m := NewMatching(matchingExercise(), testRNG())
	m.PickSource("buenos días")
	m.PickSource("buenos días")
	if _, sel := m.SelectedSource(); sel {
		t.Error("picking the same source twice should clear the selection")
	}
}

func TestMatching_AnswerSerialization(t *testing.T) {
	m := NewMatching(matchingExercise(), testRNG())
	for _, p := range matchingExercise().Pairs {
		m.PickSource(p.Source)
		m.PickTarget(p.Target)
	}
	res, _ := m.Submit()
	want := `{"buenas noches":"good night","buenos días":"good morning","hasta luego":"see you later"}`
	if res.UserAnswer != want {
		t.Errorf("userAnswer = %s, want %s", res.UserAnswer, want)
	}
}

func TestMatching_TerminalIdempotence(t *testing.T) {
	m := NewMatching(matchingExercise(), testRNG())
	for _, p := range matchingExercise().Pairs {
		m.PickSource(p.Source)
		m.PickTarget(p.Target)
	}
	first, _ := m.Submit()

	if _, ok := m.Submit(); ok {
		t.Error("Submit accepted on a terminal instance")
	}
	if m.Reset() {
		t.Error("Reset accepted on a terminal instance")
	}
	if m.PickSource("buenos días") {
		t.Error("PickSource accepted on a terminal instance")
	}
	if got := m.Result(); got != first {
		t.Error("terminal result changed")
	}
}
