// Package practice is the interactive lesson runner: one Bubble Tea model
// that walks a learner through a session's exercises, an optional speaking
// round, and a closing summary. All grading decisions live in the evaluator
// and assessment packages; this screen only translates keys into calls.
package practice

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avelasco/dialecto/internal/content"
	"github.com/avelasco/dialecto/internal/exercise"
	"github.com/avelasco/dialecto/internal/session"
	"github.com/avelasco/dialecto/internal/speaking"
	"github.com/avelasco/dialecto/internal/ui/components"
)

type phase int

const (
	phaseExercise phase = iota
	phaseSpeaking
	phaseSummary
)

type fillFocus int

const (
	focusBank fillFocus = iota
	focusSlots
)

// Model is the practice screen state.
type Model struct {
	run   *session.Run
	phase phase
	idx   int // current evaluator index

	// multiple choice
	options components.OptionList

	// matching
	onTargets    bool
	sourceCursor int
	targetCursor int
	rejected     string // last rejected pairing, shown inline

	// fill in blanks
	fillFocus  fillFocus
	bankCursor int
	slotCursor int

	// speaking
	transcript components.TranscriptInput
	assessment *speaking.Assessment

	width  int
	height int
}

// New creates the practice screen for a resolved lesson.
func New(lesson *content.Lesson) Model {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := Model{
		run: session.NewRun(lesson, rng, nil),
	}
	if len(m.run.Evaluators()) == 0 {
		if lesson.SpeakingRubric != nil {
			m.phase = phaseSpeaking
			m.transcript = components.NewTranscriptInput("type what you said aloud")
		} else {
			m.phase = phaseSummary
		}
	}
	m.prepareExercise()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseSpeaking {
		return m.transcript.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseExercise:
			return m.updateExercise(msg)
		case phaseSpeaking:
			return m.updateSpeaking(msg)
		case phaseSummary:
			if msg.String() == "enter" || msg.String() == "q" {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// current returns the evaluator under the cursor.
func (m *Model) current() exercise.Evaluator {
	evs := m.run.Evaluators()
	if m.idx >= len(evs) {
		return nil
	}
	return evs[m.idx]
}

// prepareExercise resets the per-type interaction state for the current
// evaluator.
func (m *Model) prepareExercise() {
	m.rejected = ""
	m.onTargets = false
	m.sourceCursor = 0
	m.targetCursor = 0
	m.fillFocus = focusBank
	m.bankCursor = 0
	m.slotCursor = 0

	ev := m.current()
	if ev == nil {
		return
	}
	if mc, ok := ev.(*exercise.MultipleChoice); ok {
		texts := make([]string, 0, len(mc.Options()))
		for _, o := range mc.Options() {
			texts = append(texts, o.Text)
		}
		m.options = components.NewOptionList(texts)
	}
}

// advance moves to the next exercise, or into the speaking round and the
// summary once the exercises are exhausted.
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.idx++
	if m.idx < len(m.run.Evaluators()) {
		m.prepareExercise()
		return m, nil
	}
	if m.run.Lesson.SpeakingRubric != nil {
		m.phase = phaseSpeaking
		m.transcript = components.NewTranscriptInput("type what you said aloud")
		return m, m.transcript.Init()
	}
	m.phase = phaseSummary
	return m, nil
}

func (m Model) updateExercise(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.current()
	if ev == nil {
		return m.advance()
	}

	// Terminal exercises only accept the advance key.
	if ev.Terminal() {
		if msg.String() == "enter" || msg.String() == "n" {
			return m.advance()
		}
		return m, nil
	}

	// A wrong, non-final submission waits for an explicit retry.
	if ev.Phase() == exercise.PhaseSubmitted {
		if msg.String() == "r" {
			ev.Reset()
			if _, ok := ev.(*exercise.MultipleChoice); ok {
				m.options = m.options.Clear()
			}
		}
		return m, nil
	}

	switch e := ev.(type) {
	case *exercise.MultipleChoice:
		return m.updateMultipleChoice(e, msg)
	case *exercise.Matching:
		return m.updateMatching(e, msg)
	case *exercise.FillInBlanks:
		return m.updateFillInBlanks(e, msg)
	}
	return m, nil
}

func (m Model) updateMultipleChoice(e *exercise.MultipleChoice, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		opts := e.Options()
		if m.options.Cursor >= len(opts) {
			return m, nil
		}
		e.Select(opts[m.options.Cursor].Text)
		res, ok := e.Submit()
		if !ok {
			return m, nil
		}
		correctIdx := -1
		if text, has := e.CorrectOption(); has {
			for i, o := range opts {
				if o.Text == text {
					correctIdx = i
					break
				}
			}
		}
		if res != nil {
			m.run.Record(*res)
			m.options = m.options.MarkSubmitted(m.options.Cursor, correctIdx)
		} else {
			// Wrong but not final: show the miss without revealing the answer.
			m.options = m.options.MarkSubmitted(m.options.Cursor, -1)
		}
		return m, nil
	default:
		m.options = m.options.Update(msg)
	}
	return m, nil
}

func (m Model) updateMatching(e *exercise.Matching, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sources := e.Sources()
	targets := e.Targets()

	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		m.onTargets = !m.onTargets
	case "up", "k":
		if m.onTargets && m.targetCursor > 0 {
			m.targetCursor--
		} else if !m.onTargets && m.sourceCursor > 0 {
			m.sourceCursor--
		}
	case "down", "j":
		if m.onTargets && m.targetCursor < len(targets)-1 {
			m.targetCursor++
		} else if !m.onTargets && m.sourceCursor < len(sources)-1 {
			m.sourceCursor++
		}
	case "enter":
		m.rejected = ""
		if m.onTargets {
			source, has := e.SelectedSource()
			if !has {
				return m, nil
			}
			target := targets[m.targetCursor]
			if !e.PickTarget(target) && !e.MatchedTarget(target) {
				m.rejected = fmt.Sprintf("%s ↔ %s", source, target)
			}
			m.onTargets = false
			if res, ok := e.Submit(); ok && res != nil {
				m.run.Record(*res)
			}
		} else {
			if e.PickSource(sources[m.sourceCursor]) {
				if _, has := e.SelectedSource(); has {
					m.onTargets = true
				}
			}
		}
	}
	return m, nil
}

func (m Model) updateFillInBlanks(e *exercise.FillInBlanks, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rack := e.Rack()
	tiles := rack.Tiles()

	switch msg.String() {
	case "tab":
		if m.fillFocus == focusBank {
			m.fillFocus = focusSlots
		} else {
			m.fillFocus = focusBank
		}
	case "left", "h":
		if m.fillFocus == focusBank && m.bankCursor > 0 {
			m.bankCursor--
		} else if m.fillFocus == focusSlots && m.slotCursor > 0 {
			m.slotCursor--
		}
	case "right", "l":
		if m.fillFocus == focusBank && m.bankCursor < len(tiles)-1 {
			m.bankCursor++
		} else if m.fillFocus == focusSlots && m.slotCursor < rack.Slots()-1 {
			m.slotCursor++
		}
	case "enter":
		if m.fillFocus == focusBank {
			e.Place(tiles[m.bankCursor].ID, m.slotCursor)
			if m.slotCursor < rack.Slots()-1 {
				m.slotCursor++
			}
		} else {
			e.Vacate(m.slotCursor)
		}
	case "s":
		if res, ok := e.Submit(); ok && res != nil {
			m.run.Record(*res)
		}
	}
	return m, nil
}

func (m Model) updateSpeaking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.assessment != nil {
		if msg.String() == "enter" {
			m.phase = phaseSummary
		}
		return m, nil
	}
	if msg.String() == "enter" {
		a := speaking.AssessRubric(m.transcript.Value(), m.run.Lesson.SpeakingRubric)
		m.assessment = &a
		return m, nil
	}
	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	return m, cmd
}

// Run starts the practice program over a resolved lesson.
func Run(lesson *content.Lesson) error {
	p := tea.NewProgram(New(lesson))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
