package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avelasco/dialecto/internal/screens/practice"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a lesson interactively",
	Long:  "Work through a lesson's exercises in the terminal, followed by the speaking activity when the lesson has one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lesson, err := loadResolvedLesson(cmd)
		if err != nil {
			return err
		}
		return practice.Run(lesson)
	},
}

func init() {
	addLessonFlags(practiceCmd)
}
