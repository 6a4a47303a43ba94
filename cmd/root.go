package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelasco/dialecto/internal/content"
)

var rootCmd = &cobra.Command{
	Use:   "dialecto",
	Short: "Dialect-aware Spanish practice in the terminal",
	Long:  "Dialecto — terminal app for practicing Spanish lessons with regional dialect variants, interactive exercises, and speaking feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(versionCmd)
}

// addLessonFlags registers the lesson-loading flags shared by the commands
// that operate on a resolved lesson.
func addLessonFlags(cmd *cobra.Command) {
	cmd.Flags().String("lesson", "", "Path to the base lesson JSON file (required)")
	cmd.Flags().String("override", "", "Path to a dialect override JSON file")
	cmd.Flags().String("dialect", "", "Target dialect code (defaults to the override's dialect)")
	_ = cmd.MarkFlagRequired("lesson")
}

// loadResolvedLesson loads the base lesson named by --lesson, applies the
// --override file when given, and returns the resolved lesson.
func loadResolvedLesson(cmd *cobra.Command) (*content.Lesson, error) {
	lessonPath, _ := cmd.Flags().GetString("lesson")
	overridePath, _ := cmd.Flags().GetString("override")
	dialect, _ := cmd.Flags().GetString("dialect")

	base, err := content.LoadLessonFile(lessonPath)
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}

	var override *content.DialectOverride
	if overridePath != "" {
		override, err = content.LoadOverrideFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("load override: %w", err)
		}
		if override.LessonID != base.LessonID {
			return nil, fmt.Errorf("override targets lesson %q, not %q", override.LessonID, base.LessonID)
		}
	}

	if dialect == "" {
		if override != nil {
			dialect = override.Dialect
		} else {
			dialect = base.Dialect
		}
	}

	return content.Resolve(base, override, dialect), nil
}
