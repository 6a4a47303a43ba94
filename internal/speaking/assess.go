// Package speaking scores a free-form spoken-response transcript against the
// expected phrase and required lexical elements of a lesson's rubric.
package speaking

import (
	"fmt"
	"math"
	"strings"

	"github.com/avelasco/dialecto/internal/content"
	"github.com/avelasco/dialecto/internal/textmatch"
)

// Feedback tier thresholds on the raw similarity score. These are part of
// the scoring contract, not tunable heuristics.
const (
	positiveThreshold = 0.85
	neutralThreshold  = 0.65
)

// calibration is the fixed offset separating the reported match score from
// the intelligibility score. Both derive from one similarity measurement;
// there is no independent intelligibility model.
const calibration = 0.05

// noSpeechPlaceholder is reported as the transcript when speech capture
// produced nothing.
const noSpeechPlaceholder = "(no speech detected)"

// Assessment is the scored record for one spoken response.
type Assessment struct {
	Transcript           string   `json:"transcript"`
	MatchScore           float64  `json:"match_score"`
	IntelligibilityScore float64  `json:"intelligibility_score"`
	Feedback             []string `json:"feedback"`
	Suggestions          []string `json:"suggestions"`
	Expected             string   `json:"expected"`
}

// Assess scores a transcript against the expected phrase and the required
// lexical elements. An empty transcript is valid input (speech capture can
// fail) and scores as maximally dissimilar from the expected text.
func Assess(transcript, expectedText string, expectedElements []string) Assessment {
	similarity := textmatch.Similarity(transcript, expectedText)

	feedback, suggestions := buildFeedback(transcript, expectedElements, similarity)

	reported := transcript
	if reported == "" {
		reported = noSpeechPlaceholder
	}

	return Assessment{
		Transcript:           reported,
		MatchScore:           round2(clamp01(similarity + calibration)),
		IntelligibilityScore: round2(clamp01(similarity - calibration)),
		Feedback:             feedback,
		Suggestions:          suggestions,
		Expected:             expectedText,
	}
}

// AssessRubric scores a transcript against a speaking rubric, using the
// rubric's sample response (or prompt) as the expected phrase.
func AssessRubric(transcript string, rubric *content.SpeakingRubric) Assessment {
	return Assess(transcript, rubric.ExpectedSpeech(), rubric.ExpectedElements)
}

func buildFeedback(transcript string, elements []string, similarity float64) (feedback, suggestions []string) {
	switch {
	case similarity >= positiveThreshold:
		feedback = append(feedback, "Excellent! Your pronunciation was very clear.")
	case similarity >= neutralThreshold:
		feedback = append(feedback, "Good attempt — the overall phrase was understandable.")
	default:
		feedback = append(feedback, "Keep practicing — the phrase needs more work.")
	}

	lower := strings.ToLower(transcript)
	for _, el := range elements {
		if strings.Contains(lower, strings.ToLower(el)) {
			feedback = append(feedback, fmt.Sprintf("✓ %q was recognized correctly.", el))
		} else {
			suggestions = append(suggestions, fmt.Sprintf("Try emphasising %q — it wasn't clearly detected.", el))
		}
	}

	if similarity < positiveThreshold {
		suggestions = append(suggestions,
			"Try speaking more slowly and clearly.",
			"Listen to the model answer, then try again.")
	}

	return feedback, suggestions
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
