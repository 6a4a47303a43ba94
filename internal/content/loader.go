package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseLesson validates and unmarshals a base lesson document.
func ParseLesson(data []byte) (*Lesson, error) {
	if err := validateDocument(lessonSchema, data); err != nil {
		return nil, fmt.Errorf("lesson document: %w", err)
	}
	var lesson Lesson
	if err := json.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("parse lesson: %w", err)
	}
	return &lesson, nil
}

// ParseOverride validates and unmarshals a dialect override document.
func ParseOverride(data []byte) (*DialectOverride, error) {
	if err := validateDocument(overrideSchema, data); err != nil {
		return nil, fmt.Errorf("override document: %w", err)
	}
	var override DialectOverride
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse override: %w", err)
	}
	return &override, nil
}

// LoadLessonFile reads and parses a base lesson from disk.
func LoadLessonFile(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson %s: %w", path, err)
	}
	return ParseLesson(data)
}

// LoadOverrideFile reads and parses a dialect override from disk.
func LoadOverrideFile(path string) (*DialectOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read override %s: %w", path, err)
	}
	return ParseOverride(data)
}
