// Package content defines the lesson data model and resolves dialect-specific
// lessons by overlaying sparse regional edits onto a canonical base lesson.
package content

// Lesson is the canonical content unit for a single (lesson, dialect) pair.
// After resolution, Dialect always reflects the resolved output, never the
// base document.
type Lesson struct {
	LessonID         string            `json:"lesson_id"`
	Level            string            `json:"level"`
	Dialect          string            `json:"dialect"`
	Title            Title             `json:"title"`
	Objectives       []string          `json:"objectives"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	PrerequisiteIDs  []string          `json:"prerequisite_ids,omitempty"`
	Vocabulary       []VocabularyEntry `json:"vocabulary,omitempty"`
	DialogueBlocks   []DialogueBlock   `json:"dialogue_blocks"`
	SRSFlashcards    []SRSFlashcard    `json:"srs_flashcards"`
	Exercises        []Exercise        `json:"exercises"`
	CulturalNotes    *CulturalNotes    `json:"cultural_notes,omitempty"`
	SpeakingRubric   *SpeakingRubric   `json:"speaking_rubric,omitempty"`
	ConfidenceScore  float64           `json:"confidence_score,omitempty"`
	HumanReview      bool              `json:"human_review,omitempty"`
}

// Title is the lesson title in both the source and the learner's language.
type Title struct {
	Native    string `json:"native"`
	Localized string `json:"localized"`
}

// DialogueBlock is one line of a lesson dialogue.
//
// Translation is a pointer because absence is meaningful: nil means "no
// translation available", which is distinct from an empty string.
type DialogueBlock struct {
	Speaker           string              `json:"speaker"`
	Text              string              `json:"text"`
	Translation       *string             `json:"translation"`
	IPA               string              `json:"ipa"`
	Dialect           string              `json:"dialect"`
	AudioAssetID      string              `json:"audio_asset_id,omitempty"`
	AlternatePhrasing []AlternatePhrasing `json:"alternate_phrasing,omitempty"`
	Context           string              `json:"context,omitempty"`
}

// AlternatePhrasing is a regional variant of a dialogue line.
type AlternatePhrasing struct {
	Dialect         string  `json:"dialect"`
	Text            string  `json:"text"`
	IPA             string  `json:"ipa"`
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
}

// VocabularyEntry is one word in the lesson vocabulary list.
type VocabularyEntry struct {
	Word          string  `json:"word"`
	Translation   string  `json:"translation"`
	IPA           string  `json:"ipa"`
	FrequencyRank int     `json:"frequency_rank,omitempty"`
	CEFR          string  `json:"cefr,omitempty"`
	Register      string  `json:"register,omitempty"`
	Dialect       string  `json:"dialect,omitempty"`
	POS           string  `json:"pos,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
	HumanReview   bool    `json:"human_review,omitempty"`
}

// SRSFlashcard carries precomputed spaced-repetition scheduling fields. The
// app displays these; it never computes them.
type SRSFlashcard struct {
	CardID          string  `json:"card_id"`
	Front           string  `json:"front"`
	Back            string  `json:"back"`
	IPA             string  `json:"ipa"`
	NextReviewDays  int     `json:"next_review_days"`
	EaseFactor      float64 `json:"ease_factor"`
	Interval        int     `json:"interval"`
	Repetitions     int     `json:"repetitions"`
	Dialect         string  `json:"dialect"`
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	HumanReview     bool    `json:"human_review,omitempty"`
}

// ExerciseType discriminates the Exercise tagged union.
type ExerciseType string

const (
	TypeMultipleChoice ExerciseType = "multiple_choice"
	TypeMatching       ExerciseType = "matching"
	TypeFillInBlanks   ExerciseType = "fill_in_blanks"
)

// BlankMarker is the literal placeholder for a blank inside a fill-in-blanks
// dialogue line.
const BlankMarker = "_____"

// Exercise is a tagged union over the three interaction variants. Only the
// fields for the variant named by Type are populated.
type Exercise struct {
	ExerciseID  string       `json:"exercise_id"`
	Type        ExerciseType `json:"type"`
	Instruction string       `json:"instruction"`

	// multiple_choice
	Question string           `json:"question,omitempty"`
	Options  []ExerciseOption `json:"options,omitempty"`

	// matching
	Pairs []MatchingPair `json:"pairs,omitempty"`

	// fill_in_blanks
	Dialogue           []DialogueLine      `json:"dialogue,omitempty"`
	Answers            []string            `json:"answers,omitempty"`
	AcceptableVariants map[string][]string `json:"acceptable_variants,omitempty"`

	Feedback *Feedback `json:"feedback,omitempty"`
}

// ExerciseOption is one multiple-choice option.
type ExerciseOption struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// MatchingPair is one source/target pairing in a matching exercise.
type MatchingPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// DialogueLine is a transcript line inside a fill-in-blanks exercise. Text
// may contain BlankMarker placeholders.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Feedback holds the per-exercise messages shown after submission.
type Feedback struct {
	Correct   string `json:"correct"`
	Incorrect string `json:"incorrect"`
}

// CulturalNotes is the optional cultural context block of a lesson.
type CulturalNotes struct {
	Formality             string  `json:"formality"`
	Gestures              string  `json:"gestures,omitempty"`
	RegionalVariations    string  `json:"regional_variations,omitempty"`
	Distincion            string  `json:"distincion,omitempty"`
	VocabularyDifferences string  `json:"vocabulary_differences,omitempty"`
	LlYe                  string  `json:"ll_ye,omitempty"`
	ConfidenceScore       float64 `json:"confidence_score,omitempty"`
	HumanReview           bool    `json:"human_review,omitempty"`
}

// SpeakingRubric describes the free-form speaking activity of a lesson.
type SpeakingRubric struct {
	ActivityID               string             `json:"activity_id"`
	Type                     string             `json:"type"`
	Title                    string             `json:"title"`
	Scenario                 string             `json:"scenario"`
	Prompt                   string             `json:"prompt"`
	ExpectedElements         []string           `json:"expected_elements"`
	PhonemeThreshold         float64            `json:"phoneme_confidence_threshold,omitempty"`
	IntelligibilityThreshold float64            `json:"intelligibility_threshold,omitempty"`
	ScoringCriteria          []ScoringCriterion `json:"scoring_criteria,omitempty"`
	SampleResponse           *SampleResponse    `json:"sample_response,omitempty"`
	PhonemeFocus             []string           `json:"phoneme_focus,omitempty"`
	PhonemeTolerance         map[string]bool    `json:"phoneme_tolerance,omitempty"`
}

// ScoringCriterion is one weighted rubric criterion.
type ScoringCriterion struct {
	Criterion   string  `json:"criterion"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// SampleResponse is the model answer for a speaking activity.
type SampleResponse struct {
	Text string `json:"text"`
	IPA  string `json:"ipa"`
}

// ExpectedSpeech returns the phrase a spoken response is scored against:
// the sample response text when present, else the rubric prompt.
func (r *SpeakingRubric) ExpectedSpeech() string {
	if r.SampleResponse != nil && r.SampleResponse.Text != "" {
		return r.SampleResponse.Text
	}
	return r.Prompt
}
