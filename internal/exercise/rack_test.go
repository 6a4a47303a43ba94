package exercise

import (
	"math/rand"
	"sort"
	"testing"
)

func TestRack_PlaceAndVacate(t *testing.T) {
	r := NewRack([]string{"soy", "de", "México"}, testRNG())

	if !r.Place(0, 1) {
		t.Fatal("Place rejected")
	}
	if w, ok := r.WordAt(1); !ok || w != "soy" {
		t.Errorf("WordAt(1) = %q, %v", w, ok)
	}
	if !r.Placed(0) {
		t.Error("Placed(0) = false after placing")
	}

	id, ok := r.Vacate(1)
	if !ok || id != 0 {
		t.Errorf("Vacate(1) = %d, %v", id, ok)
	}
	if r.Placed(0) {
		t.Error("tile still placed after Vacate")
	}
	if _, ok := r.WordAt(1); ok {
		t.Error("slot still occupied after Vacate")
	}
}

func TestRack_MovingTileVacatesOldSlot(t *testing.T) {
	r := NewRack([]string{"soy", "de"}, testRNG())
	r.Place(0, 0)
	r.Place(0, 1)

	if _, ok := r.WordAt(0); ok {
		t.Error("old slot still occupied after moving the tile")
	}
	if w, _ := r.WordAt(1); w != "soy" {
		t.Error("tile not in new slot")
	}
}

func TestRack_PlacingOverOccupantReturnsIt(t *testing.T) {
	r := NewRack([]string{"soy", "de"}, testRNG())
	r.Place(0, 0)
	r.Place(1, 0)

	if r.Placed(0) {
		t.Error("displaced tile should be back in the bank")
	}
	if w, _ := r.WordAt(0); w != "de" {
		t.Error("slot does not hold the new tile")
	}
}

func TestRack_TileIdentityWithDuplicateWords(t *testing.T) {
	// Two tiles with the same text stay independent.
	r := NewRack([]string{"soy", "soy"}, testRNG())
	r.Place(0, 0)
	r.Place(1, 1)

	if !r.Filled() {
		t.Fatal("both duplicate tiles should be placeable at once")
	}
	// Moving one duplicate does not disturb the other.
	r.Vacate(0)
	if r.Placed(0) || !r.Placed(1) {
		t.Error("duplicate tiles do not track identity independently")
	}
}

func TestRack_TileInAtMostOneSlot(t *testing.T) {
	r := NewRack([]string{"a", "b", "c"}, testRNG())
	r.Place(0, 0)
	r.Place(0, 1)
	r.Place(0, 2)

	occupied := 0
	for slot := 0; slot < r.Slots(); slot++ {
		if _, ok := r.WordAt(slot); ok {
			occupied++
		}
	}
	if occupied != 1 {
		t.Errorf("tile occupies %d slots, want 1", occupied)
	}
}

func TestRack_ShuffleKeepsAllTiles(t *testing.T) {
	words := []string{"uno", "dos", "tres", "cuatro"}
	r := NewRack(words, rand.New(rand.NewSource(99)))

	got := make([]string, 0, len(words))
	for _, tile := range r.Tiles() {
		got = append(got, tile.Word)
	}
	sort.Strings(got)
	want := []string{"cuatro", "dos", "tres", "uno"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bank contents = %v, want permutation of %v", got, words)
		}
	}
}

func TestRack_OutOfRange(t *testing.T) {
	r := NewRack([]string{"a"}, testRNG())
	if r.Place(0, 5) || r.Place(5, 0) || r.Place(-1, 0) {
		t.Error("out-of-range Place accepted")
	}
	if _, ok := r.Vacate(5); ok {
		t.Error("out-of-range Vacate accepted")
	}
}
