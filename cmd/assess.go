package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelasco/dialecto/internal/speaking"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a spoken-response transcript against a lesson's rubric",
	Long: `Score a transcript as if it came from the speaking activity.

The transcript is compared against the rubric's sample response (or prompt
when there is none), and checked for the rubric's expected elements.`,
	RunE: runAssess,
}

func init() {
	addLessonFlags(assessCmd)
	assessCmd.Flags().String("transcript", "", "The transcript to score (empty means no speech detected)")
	assessCmd.Flags().Bool("json", false, "Print the assessment as JSON")
}

func runAssess(cmd *cobra.Command, args []string) error {
	lesson, err := loadResolvedLesson(cmd)
	if err != nil {
		return err
	}
	if lesson.SpeakingRubric == nil {
		return fmt.Errorf("lesson %s has no speaking activity", lesson.LessonID)
	}

	transcript, _ := cmd.Flags().GetString("transcript")
	a := speaking.AssessRubric(transcript, lesson.SpeakingRubric)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Expected:   %s\n", a.Expected)
	fmt.Fprintf(out, "Transcript: %s\n", a.Transcript)
	fmt.Fprintf(out, "Match score: %.2f   Intelligibility: %.2f\n\n", a.MatchScore, a.IntelligibilityScore)
	for _, f := range a.Feedback {
		fmt.Fprintln(out, f)
	}
	for _, s := range a.Suggestions {
		fmt.Fprintf(out, "  • %s\n", s)
	}
	return nil
}
