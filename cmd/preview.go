package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/avelasco/dialecto/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a resolved lesson (no interaction)",
	Long: `Resolve a lesson against an optional dialect override and print it.

This is a stateless content tool — no session, no grading. Useful for
checking what an override actually changes before shipping it.`,
	RunE: runPreview,
}

func init() {
	addLessonFlags(previewCmd)
	previewCmd.Flags().Bool("full", false, "Include flashcards and exercises, not just the dialogue")
}

func runPreview(cmd *cobra.Command, args []string) error {
	lesson, err := loadResolvedLesson(cmd)
	if err != nil {
		return err
	}
	full, _ := cmd.Flags().GetBool("full")

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, theme.Title.Render(lesson.Title.Localized))
	fmt.Fprintf(out, "%s · %s · ~%d min\n\n",
		lesson.LessonID, lesson.Dialect, lesson.EstimatedMinutes)

	if len(lesson.Objectives) > 0 {
		fmt.Fprintln(out, theme.Subtitle.Render("Objectives"))
		for _, o := range lesson.Objectives {
			fmt.Fprintf(out, "  • %s\n", o)
		}
		fmt.Fprintln(out)
	}

	if len(lesson.Vocabulary) > 0 {
		fmt.Fprintln(out, theme.Subtitle.Render("Vocabulary"))
		for _, v := range lesson.Vocabulary {
			fmt.Fprintf(out, "  %-20s %s\n", v.Word, v.Translation)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, theme.Subtitle.Render("Dialogue"))
	for _, line := range lesson.DialogueBlocks {
		fmt.Fprintf(out, "  %s: %s\n", line.Speaker, line.Text)
		if line.Translation != nil {
			fmt.Fprintf(out, "  %s\n", theme.Hint.Render(*line.Translation))
		}
	}
	fmt.Fprintln(out)

	if lesson.CulturalNotes != nil {
		fmt.Fprintln(out, theme.Subtitle.Render("Cultural notes"))
		printNote(out, "Formality", lesson.CulturalNotes.Formality)
		printNote(out, "Gestures", lesson.CulturalNotes.Gestures)
		printNote(out, "Regional variations", lesson.CulturalNotes.RegionalVariations)
		fmt.Fprintln(out)
	}

	if !full {
		return nil
	}

	if len(lesson.Exercises) > 0 {
		fmt.Fprintln(out, theme.Subtitle.Render("Exercises"))
		for _, ex := range lesson.Exercises {
			fmt.Fprintf(out, "  %s (%s)\n", ex.ExerciseID, ex.Type)
		}
		fmt.Fprintln(out)
	}

	if len(lesson.SRSFlashcards) > 0 {
		fmt.Fprintln(out, theme.Subtitle.Render("Flashcards"))
		for _, c := range lesson.SRSFlashcards {
			fmt.Fprintf(out, "  %s → %s\n", c.Front, c.Back)
		}
		fmt.Fprintln(out)
	}

	if lesson.SpeakingRubric != nil {
		fmt.Fprintln(out, theme.Subtitle.Render("Speaking"))
		fmt.Fprintf(out, "  %s\n", lesson.SpeakingRubric.Prompt)
		if len(lesson.SpeakingRubric.ExpectedElements) > 0 {
			fmt.Fprintf(out, "  Expected elements: %s\n",
				strings.Join(lesson.SpeakingRubric.ExpectedElements, ", "))
		}
	}

	return nil
}

func printNote(out io.Writer, label, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", lipgloss.NewStyle().Bold(true).Render(label), text)
}
