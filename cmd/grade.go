package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelasco/dialecto/internal/exercise"
	"github.com/avelasco/dialecto/internal/session"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Answer a lesson's exercises on stdin (no TUI)",
	Long: `Work through a lesson's exercises as a plain prompt/answer loop.

Useful over ssh or in terminals where the full-screen runner misbehaves,
and for scripted checks of exercise content.`,
	RunE: runGrade,
}

func init() {
	addLessonFlags(gradeCmd)
	gradeCmd.Flags().Int64("seed", 0, "Shuffle seed (0 means time-based)")
}

func runGrade(cmd *cobra.Command, args []string) error {
	lesson, err := loadResolvedLesson(cmd)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	run := session.NewRun(lesson, rand.New(rand.NewSource(seed)), nil)
	if len(run.Evaluators()) == 0 {
		return fmt.Errorf("lesson %s has no supported exercises", lesson.LessonID)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for i, ev := range run.Evaluators() {
		fmt.Printf("── Exercise %d/%d ──\n", i+1, len(run.Evaluators()))
		gradeOne(ev, scanner, run)
		fmt.Println()
	}

	s := run.Summary()
	fmt.Printf("── Summary: %d/%d correct, %d attempts ──\n", s.Correct, s.Exercises, s.TotalAttempts)
	return nil
}

func gradeOne(ev exercise.Evaluator, scanner *bufio.Scanner, run *session.Run) {
	switch e := ev.(type) {
	case *exercise.MultipleChoice:
		gradeMultipleChoice(e, scanner, run)
	case *exercise.Matching:
		gradeMatching(e, scanner, run)
	case *exercise.FillInBlanks:
		gradeFillInBlanks(e, scanner, run)
	}
}

func gradeMultipleChoice(e *exercise.MultipleChoice, scanner *bufio.Scanner, run *session.Run) {
	if e.Instruction() != "" {
		fmt.Println(e.Instruction())
	}
	if e.Question() != "" {
		fmt.Println(e.Question())
	}
	for j, o := range e.Options() {
		fmt.Printf("  %d) %s\n", j+1, o.Text)
	}

	for !e.Terminal() {
		choice, ok := readInt(scanner, "Your answer: ", 1, len(e.Options()))
		if !ok {
			return
		}
		e.Select(e.Options()[choice-1].Text)
		res, _ := e.Submit()
		if res != nil {
			run.Record(*res)
			printVerdict(res)
			return
		}
		fmt.Printf("✗ Not quite, %d attempt(s) left.\n", exercise.MaxAttempts-e.Attempts())
		e.Reset()
	}
}

func gradeMatching(e *exercise.Matching, scanner *bufio.Scanner, run *session.Run) {
	if e.Instruction() != "" {
		fmt.Println(e.Instruction())
	}
	targets := e.Targets()
	for j, t := range targets {
		fmt.Printf("  %d) %s\n", j+1, t)
	}

	for !e.Complete() {
		for _, source := range e.Sources() {
			if e.Matched(source) {
				continue
			}
			choice, ok := readInt(scanner, fmt.Sprintf("Match for %q: ", source), 1, len(targets))
			if !ok {
				return
			}
			e.PickSource(source)
			if !e.PickTarget(targets[choice-1]) {
				fmt.Println("✗ Not a match, try again later.")
			}
		}
	}

	if res, ok := e.Submit(); ok && res != nil {
		run.Record(*res)
		printVerdict(res)
	}
}

func gradeFillInBlanks(e *exercise.FillInBlanks, scanner *bufio.Scanner, run *session.Run) {
	if e.Instruction() != "" {
		fmt.Println(e.Instruction())
	}
	for _, line := range e.Dialogue() {
		fmt.Printf("  %s: %s\n", line.Speaker, line.Text)
	}
	rack := e.Rack()
	var words []string
	for _, t := range rack.Tiles() {
		words = append(words, t.Word)
	}
	fmt.Printf("Word bank: %s\n", strings.Join(words, ", "))

	for !e.Terminal() {
		for slot := 0; slot < rack.Slots(); slot++ {
			placeBlank(e, scanner, slot)
		}
		res, ok := e.Submit()
		if !ok {
			return
		}
		if res != nil {
			run.Record(*res)
			printVerdict(res)
			return
		}
		fmt.Printf("✗ %d/%d blanks correct, %d attempt(s) left.\n",
			e.CorrectCount(), e.Blanks(), exercise.MaxAttempts-e.Attempts())
		e.Reset()
	}
}

// placeBlank prompts for a bank tile until one is placed into the slot.
func placeBlank(e *exercise.FillInBlanks, scanner *bufio.Scanner, slot int) {
	tiles := e.Rack().Tiles()
	for {
		choice, ok := readInt(scanner, fmt.Sprintf("Blank %d (tile 1-%d): ", slot+1, len(tiles)), 1, len(tiles))
		if !ok {
			return
		}
		if e.Place(tiles[choice-1].ID, slot) {
			return
		}
	}
}

func printVerdict(res *exercise.Result) {
	if res.IsCorrect {
		fmt.Println("✓ Correct!")
	} else {
		fmt.Printf("✗ Wrong after %d attempts.\n", res.Attempts)
	}
}

// readInt prompts until it reads an integer in [lo, hi]. ok is false once
// stdin is closed.
func readInt(scanner *bufio.Scanner, prompt string, lo, hi int) (int, bool) {
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= lo && n <= hi {
			return n, true
		}
		fmt.Printf("Enter a number between %d and %d.\n", lo, hi)
	}
}
