package content

// docSchema pairs a schema name with its JSON Schema definition.
type docSchema struct {
	Name       string
	Definition map[string]any
}

// lessonSchema validates base lesson documents before unmarshalling. It pins
// down the fields the resolver and evaluators depend on; unknown extra fields
// are tolerated since lesson content evolves faster than this app.
var lessonSchema = &docSchema{
	Name: "lesson",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"lesson_id", "level", "dialect", "title", "dialogue_blocks", "exercises"},
		"properties": map[string]any{
			"lesson_id": map[string]any{"type": "string", "minLength": 1},
			"level":     map[string]any{"type": "string"},
			"dialect":   map[string]any{"type": "string"},
			"title": map[string]any{
				"type":     "object",
				"required": []any{"native", "localized"},
				"properties": map[string]any{
					"native":    map[string]any{"type": "string"},
					"localized": map[string]any{"type": "string"},
				},
			},
			"objectives":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"estimated_minutes": map[string]any{"type": "integer", "minimum": 0},
			"vocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"word", "translation"},
					"properties": map[string]any{
						"word":        map[string]any{"type": "string"},
						"translation": map[string]any{"type": "string"},
					},
				},
			},
			"dialogue_blocks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"speaker", "text"},
					"properties": map[string]any{
						"speaker":     map[string]any{"type": "string"},
						"text":        map[string]any{"type": "string"},
						"translation": map[string]any{"type": []any{"string", "null"}},
						"ipa":         map[string]any{"type": "string"},
					},
				},
			},
			"exercises": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"exercise_id", "type", "instruction"},
					"properties": map[string]any{
						"exercise_id": map[string]any{"type": "string", "minLength": 1},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "matching", "fill_in_blanks", "ordering", "speaking"},
						},
						"instruction": map[string]any{"type": "string"},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"text", "correct"},
								"properties": map[string]any{
									"text":    map[string]any{"type": "string"},
									"correct": map[string]any{"type": "boolean"},
								},
							},
						},
						"pairs": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"source", "target"},
								"properties": map[string]any{
									"source": map[string]any{"type": "string"},
									"target": map[string]any{"type": "string"},
								},
							},
						},
						"answers": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"acceptable_variants": map[string]any{
							"type":                 "object",
							"additionalProperties": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
					},
				},
			},
			"speaking_rubric": map[string]any{
				"type":     "object",
				"required": []any{"prompt", "expected_elements"},
				"properties": map[string]any{
					"prompt":            map[string]any{"type": "string"},
					"expected_elements": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"phoneme_tolerance": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "boolean"},
					},
				},
			},
		},
	},
}

// overrideSchema validates dialect override documents. All four categories
// are optional; the overrides object itself must be present so an empty
// override is an explicit authoring decision rather than a typo.
var overrideSchema = &docSchema{
	Name: "dialect-override",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"overrides"},
		"properties": map[string]any{
			"lesson_id": map[string]any{"type": "string"},
			"dialect":   map[string]any{"type": "string"},
			"overrides": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"vocabulary_replacements": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"base", "dialect"},
							"properties": map[string]any{
								"base":    map[string]any{"type": "string"},
								"dialect": map[string]any{"type": "string"},
							},
						},
					},
					"dialogue_line_replacements": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"line_index", "text"},
							"properties": map[string]any{
								"line_index":  map[string]any{"type": "integer", "minimum": 0},
								"text":        map[string]any{"type": "string"},
								"translation": map[string]any{"type": []any{"string", "null"}},
							},
						},
					},
					"cultural_notes_overrides": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"formality":           map[string]any{"type": "string"},
							"gestures":            map[string]any{"type": "string"},
							"regional_variations": map[string]any{"type": "string"},
						},
					},
					"phoneme_tolerance_adjustments": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "boolean"},
					},
				},
				"additionalProperties": false,
			},
		},
	},
}
