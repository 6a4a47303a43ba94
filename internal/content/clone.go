package content

// Clone returns a deep copy of the lesson. Resolution always operates on a
// clone so the base lesson is never mutated.
func (l *Lesson) Clone() *Lesson {
	if l == nil {
		return nil
	}

	out := *l
	out.Objectives = cloneStrings(l.Objectives)
	out.PrerequisiteIDs = cloneStrings(l.PrerequisiteIDs)

	if l.Vocabulary != nil {
		out.Vocabulary = make([]VocabularyEntry, len(l.Vocabulary))
		copy(out.Vocabulary, l.Vocabulary)
	}

	if l.DialogueBlocks != nil {
		out.DialogueBlocks = make([]DialogueBlock, len(l.DialogueBlocks))
		for i, b := range l.DialogueBlocks {
			out.DialogueBlocks[i] = b.clone()
		}
	}

	if l.SRSFlashcards != nil {
		out.SRSFlashcards = make([]SRSFlashcard, len(l.SRSFlashcards))
		copy(out.SRSFlashcards, l.SRSFlashcards)
	}

	if l.Exercises != nil {
		out.Exercises = make([]Exercise, len(l.Exercises))
		for i, e := range l.Exercises {
			out.Exercises[i] = e.clone()
		}
	}

	if l.CulturalNotes != nil {
		cn := *l.CulturalNotes
		out.CulturalNotes = &cn
	}

	out.SpeakingRubric = l.SpeakingRubric.clone()

	return &out
}

func (b DialogueBlock) clone() DialogueBlock {
	out := b
	out.Translation = cloneStringPtr(b.Translation)
	if b.AlternatePhrasing != nil {
		out.AlternatePhrasing = make([]AlternatePhrasing, len(b.AlternatePhrasing))
		copy(out.AlternatePhrasing, b.AlternatePhrasing)
	}
	return out
}

func (e Exercise) clone() Exercise {
	out := e
	if e.Options != nil {
		out.Options = make([]ExerciseOption, len(e.Options))
		copy(out.Options, e.Options)
	}
	if e.Pairs != nil {
		out.Pairs = make([]MatchingPair, len(e.Pairs))
		copy(out.Pairs, e.Pairs)
	}
	if e.Dialogue != nil {
		out.Dialogue = make([]DialogueLine, len(e.Dialogue))
		copy(out.Dialogue, e.Dialogue)
	}
	out.Answers = cloneStrings(e.Answers)
	if e.AcceptableVariants != nil {
		out.AcceptableVariants = make(map[string][]string, len(e.AcceptableVariants))
		for k, v := range e.AcceptableVariants {
			out.AcceptableVariants[k] = cloneStrings(v)
		}
	}
	if e.Feedback != nil {
		fb := *e.Feedback
		out.Feedback = &fb
	}
	return out
}

func (r *SpeakingRubric) clone() *SpeakingRubric {
	if r == nil {
		return nil
	}
	out := *r
	out.ExpectedElements = cloneStrings(r.ExpectedElements)
	out.PhonemeFocus = cloneStrings(r.PhonemeFocus)
	if r.ScoringCriteria != nil {
		out.ScoringCriteria = make([]ScoringCriterion, len(r.ScoringCriteria))
		copy(out.ScoringCriteria, r.ScoringCriteria)
	}
	if r.SampleResponse != nil {
		sr := *r.SampleResponse
		out.SampleResponse = &sr
	}
	if r.PhonemeTolerance != nil {
		out.PhonemeTolerance = make(map[string]bool, len(r.PhonemeTolerance))
		for k, v := range r.PhonemeTolerance {
			out.PhonemeTolerance[k] = v
		}
	}
	return &out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
