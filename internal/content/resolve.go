package content

// Resolve produces the dialect-specific lesson for targetDialect by applying
// the override document on top of a deep copy of base. The base lesson is
// never mutated.
//
// Override categories are applied in a fixed order for reproducible output:
// vocabulary, dialogue lines, cultural notes, phoneme tolerance. The
// categories address disjoint fields, so the order is a determinism choice
// rather than a correctness requirement.
//
// A nil override returns a copy of base with only the dialect field changed.
// References to content that does not exist in the base (an unknown
// vocabulary word, an out-of-range line index) are silently skipped: lesson
// content evolves independently of overrides, and a missing target means
// there is nothing to patch.
func Resolve(base *Lesson, override *DialectOverride, targetDialect string) *Lesson {
	resolved := base.Clone()
	resolved.Dialect = targetDialect
	if override == nil {
		return resolved
	}

	applyVocabulary(resolved, override.Overrides.VocabularyReplacements)
	applyDialogueLines(resolved, override.Overrides.DialogueLineReplacements)
	applyCulturalNotes(resolved, override.Overrides.CulturalNotes)
	applyPhonemeTolerance(resolved, override.Overrides.PhonemeTolerance)

	return resolved
}

// applyVocabulary replaces the word of the first vocabulary entry matching
// each replacement's base form, leaving all other entry fields untouched.
func applyVocabulary(l *Lesson, replacements []VocabularyReplacement) {
	for _, r := range replacements {
		for i := range l.Vocabulary {
			if l.Vocabulary[i].Word == r.Base {
				l.Vocabulary[i].Word = r.Dialect
				break
			}
		}
	}
}

// applyDialogueLines rewrites the text of the addressed dialogue blocks. The
// translation is always overwritten with the replacement's value, nil when
// omitted, so the resolved block never carries a stale base translation.
func applyDialogueLines(l *Lesson, replacements []DialogueLineReplacement) {
	for _, r := range replacements {
		if r.LineIndex < 0 || r.LineIndex >= len(l.DialogueBlocks) {
			continue
		}
		block := &l.DialogueBlocks[r.LineIndex]
		block.Text = r.Text
		block.Translation = cloneStringPtr(r.Translation)
	}
}

// applyCulturalNotes replaces the display fields present in the override
// wholesale. Everything else, including confidence and review metadata, is
// inherited from the base. A base lesson without cultural notes has nothing
// to patch.
func applyCulturalNotes(l *Lesson, o *CulturalNotesOverride) {
	if o == nil || l.CulturalNotes == nil {
		return
	}
	if o.Formality != nil {
		l.CulturalNotes.Formality = *o.Formality
	}
	if o.Gestures != nil {
		l.CulturalNotes.Gestures = *o.Gestures
	}
	if o.RegionalVariations != nil {
		l.CulturalNotes.RegionalVariations = *o.RegionalVariations
	}
}

// applyPhonemeTolerance merges the adjustment map into the base rubric's
// tolerance settings with shallow key overwrite.
func applyPhonemeTolerance(l *Lesson, adjustments map[string]bool) {
	if len(adjustments) == 0 || l.SpeakingRubric == nil {
		return
	}
	if l.SpeakingRubric.PhonemeTolerance == nil {
		l.SpeakingRubric.PhonemeTolerance = make(map[string]bool, len(adjustments))
	}
	for k, v := range adjustments {
		l.SpeakingRubric.PhonemeTolerance[k] = v
	}
}
