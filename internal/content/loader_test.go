package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLessonJSON = `{
	"lesson_id": "lesson-001",
	"level": "A1",
	"dialect": "es-MX",
	"title": {"native": "Saludos", "localized": "Greetings"},
	"objectives": ["Greet people"],
	"estimated_minutes": 15,
	"vocabulary": [
		{"word": "papá", "translation": "dad", "ipa": "/paˈpa/"}
	],
	"dialogue_blocks": [
		{"speaker": "Ana", "text": "¡Hola!", "translation": "Hi!", "ipa": "/ˈola/", "dialect": "es-MX"},
		{"speaker": "Luis", "text": "Buenas.", "translation": null, "ipa": "", "dialect": "es-MX"}
	],
	"srs_flashcards": [],
	"exercises": [
		{
			"exercise_id": "ex-1",
			"type": "multiple_choice",
			"instruction": "Pick the greeting",
			"question": "Which one is a greeting?",
			"options": [
				{"text": "Hola", "correct": true},
				{"text": "Adiós", "correct": false}
			]
		}
	]
}`

const validOverrideJSON = `{
	"lesson_id": "lesson-001",
	"dialect": "es-PR",
	"overrides": {
		"vocabulary_replacements": [
			{"base": "papá", "dialect": "pai"}
		],
		"dialogue_line_replacements": [
			{"line_index": 0, "text": "¡Wepa!", "translation": "Hey!"}
		],
		"phoneme_tolerance_adjustments": {"s_aspiration": true}
	}
}`

func TestParseLesson_Valid(t *testing.T) {
	lesson, err := ParseLesson([]byte(validLessonJSON))
	require.NoError(t, err)

	assert.Equal(t, "lesson-001", lesson.LessonID)
	assert.Equal(t, "es-MX", lesson.Dialect)
	require.Len(t, lesson.DialogueBlocks, 2)

	// Null translation and string translation are distinct after parsing.
	require.NotNil(t, lesson.DialogueBlocks[0].Translation)
	assert.Equal(t, "Hi!", *lesson.DialogueBlocks[0].Translation)
	assert.Nil(t, lesson.DialogueBlocks[1].Translation)

	require.Len(t, lesson.Exercises, 1)
	assert.Equal(t, TypeMultipleChoice, lesson.Exercises[0].Type)
}

func TestParseLesson_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not JSON", `{`},
		{"missing lesson_id", `{"level":"A1","dialect":"es-MX","title":{"native":"a","localized":"b"},"dialogue_blocks":[],"exercises":[]}`},
		{"bad exercise type", `{"lesson_id":"x","level":"A1","dialect":"es-MX","title":{"native":"a","localized":"b"},"dialogue_blocks":[],"exercises":[{"exercise_id":"e","type":"essay","instruction":"i"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLesson([]byte(tc.json))
			assert.Error(t, err)
		})
	}
}

func TestParseOverride_Valid(t *testing.T) {
	override, err := ParseOverride([]byte(validOverrideJSON))
	require.NoError(t, err)

	assert.Equal(t, "es-PR", override.Dialect)
	require.Len(t, override.Overrides.VocabularyReplacements, 1)
	assert.Equal(t, "pai", override.Overrides.VocabularyReplacements[0].Dialect)
	require.Len(t, override.Overrides.DialogueLineReplacements, 1)
	require.NotNil(t, override.Overrides.DialogueLineReplacements[0].Translation)
	assert.True(t, override.Overrides.PhonemeTolerance["s_aspiration"])
}

func TestParseOverride_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing overrides", `{"dialect":"es-PR"}`},
		{"unknown category", `{"overrides":{"grammar_overrides":[]}}`},
		{"negative line index", `{"overrides":{"dialogue_line_replacements":[{"line_index":-1,"text":"x"}]}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOverride([]byte(tc.json))
			assert.Error(t, err)
		})
	}
}

func TestParseOverride_OmittedTranslationIsNil(t *testing.T) {
	override, err := ParseOverride([]byte(`{"overrides":{"dialogue_line_replacements":[{"line_index":0,"text":"x"}]}}`))
	require.NoError(t, err)
	assert.Nil(t, override.Overrides.DialogueLineReplacements[0].Translation)
}
