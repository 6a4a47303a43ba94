package exercise

import "math/rand"

// Tile is one word-bank entry. ID is the tile's stable identity, independent
// of its text: when the same word appears twice in the bank, the two tiles
// remain distinguishable.
type Tile struct {
	ID   int
	Word string
}

// Rack is the bidirectional mapping between blank slots and tiles for a
// fill-in-blanks exercise. Invariant: each tile occupies at most one slot.
// The mapping changes only through Place and Vacate.
type Rack struct {
	words  []string
	tiles  []Tile      // bank display order, shuffled once
	slotOf map[int]int // tile ID -> occupied slot
	tileAt []int       // slot -> tile ID, -1 when empty
}

// NewRack builds a rack with one tile per word and one slot per word, in a
// bank order shuffled by rng. Tile IDs are the word's original index.
func NewRack(words []string, rng *rand.Rand) *Rack {
	tiles := make([]Tile, len(words))
	for i, w := range words {
		tiles[i] = Tile{ID: i, Word: w}
	}
	tileAt := make([]int, len(words))
	for i := range tileAt {
		tileAt[i] = -1
	}
	return &Rack{
		words:  append([]string(nil), words...),
		tiles:  Shuffle(tiles, rng),
		slotOf: make(map[int]int, len(words)),
		tileAt: tileAt,
	}
}

// Slots returns the number of blank slots.
func (r *Rack) Slots() int { return len(r.tileAt) }

// Tiles returns the bank in display order.
func (r *Rack) Tiles() []Tile { return r.tiles }

// Place puts the tile into the slot. A tile already placed elsewhere is
// moved (its previous slot becomes empty); a tile already occupying the
// target slot is returned to the bank.
func (r *Rack) Place(tileID, slot int) bool {
	if slot < 0 || slot >= len(r.tileAt) || tileID < 0 || tileID >= len(r.words) {
		return false
	}
	if prev, placed := r.slotOf[tileID]; placed {
		if prev == slot {
			return true
		}
		r.tileAt[prev] = -1
	}
	if occupant := r.tileAt[slot]; occupant >= 0 {
		delete(r.slotOf, occupant)
	}
	r.tileAt[slot] = tileID
	r.slotOf[tileID] = slot
	return true
}

// Vacate empties the slot and returns the removed tile's ID.
func (r *Rack) Vacate(slot int) (int, bool) {
	if slot < 0 || slot >= len(r.tileAt) || r.tileAt[slot] < 0 {
		return 0, false
	}
	tileID := r.tileAt[slot]
	r.tileAt[slot] = -1
	delete(r.slotOf, tileID)
	return tileID, true
}

// WordAt returns the text of the tile occupying the slot.
func (r *Rack) WordAt(slot int) (string, bool) {
	if slot < 0 || slot >= len(r.tileAt) || r.tileAt[slot] < 0 {
		return "", false
	}
	return r.words[r.tileAt[slot]], true
}

// Placed reports whether the tile currently occupies a slot.
func (r *Rack) Placed(tileID int) bool {
	_, ok := r.slotOf[tileID]
	return ok
}

// Filled reports whether every slot holds a tile.
func (r *Rack) Filled() bool {
	for _, id := range r.tileAt {
		if id < 0 {
			return false
		}
	}
	return true
}

// Clear returns every tile to the bank.
func (r *Rack) Clear() {
	for i := range r.tileAt {
		r.tileAt[i] = -1
	}
	r.slotOf = make(map[int]int, len(r.words))
}
