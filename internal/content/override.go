package content

// DialectOverride is a sparse patch document describing how one dialect
// diverges from the base lesson. Each category is optional and independently
// applicable; a nil/empty category leaves the corresponding base content
// untouched.
type DialectOverride struct {
	LessonID  string      `json:"lesson_id,omitempty"`
	Dialect   string      `json:"dialect,omitempty"`
	Overrides OverrideSet `json:"overrides"`
}

// OverrideSet holds the four recognized override categories.
type OverrideSet struct {
	VocabularyReplacements   []VocabularyReplacement   `json:"vocabulary_replacements,omitempty"`
	DialogueLineReplacements []DialogueLineReplacement `json:"dialogue_line_replacements,omitempty"`
	CulturalNotes            *CulturalNotesOverride    `json:"cultural_notes_overrides,omitempty"`
	PhonemeTolerance         map[string]bool           `json:"phoneme_tolerance_adjustments,omitempty"`
}

// VocabularyReplacement swaps a single vocabulary word for its dialect form.
// Only the word itself changes; every other field of the entry is kept.
type VocabularyReplacement struct {
	Base    string `json:"base"`
	Dialect string `json:"dialect"`
}

// DialogueLineReplacement rewrites the dialogue block at LineIndex.
// Translation always overwrites the base translation, with nil when omitted,
// so a stale base-dialect translation never survives alongside new text.
type DialogueLineReplacement struct {
	LineIndex   int     `json:"line_index"`
	Text        string  `json:"text"`
	Translation *string `json:"translation,omitempty"`
}

// CulturalNotesOverride is a partial cultural-notes patch. A present field
// replaces the base field wholesale; a nil field inherits the base value.
// Confidence and review metadata always come from the base.
type CulturalNotesOverride struct {
	Formality          *string `json:"formality,omitempty"`
	Gestures           *string `json:"gestures,omitempty"`
	RegionalVariations *string `json:"regional_variations,omitempty"`
}
