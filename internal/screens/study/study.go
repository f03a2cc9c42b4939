package study

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/parlo/internal/remote"
	"github.com/abhisek/parlo/internal/screen"
	"github.com/abhisek/parlo/internal/session"
	"github.com/abhisek/parlo/internal/ui/components"
	"github.com/abhisek/parlo/internal/ui/layout"
)

const (
	answerPlaceholder = "Type your answer..."
	answerCharLimit   = 120
)

// StudyScreen hosts one study session. All session logic lives in the
// pure reducer (internal/session); this screen translates key events
// into reducer messages, executes the commands the reducer returns as
// bubbletea commands, and renders the resulting state. Each command
// feeds exactly one completion message back into Update.
type StudyScreen struct {
	svc        remote.Service
	log        *zap.Logger
	learnerID  int
	batchLimit int
	sessionID  string

	state session.State
	input components.TextInput
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen for a fresh session.
func New(svc remote.Service, log *zap.Logger, learnerID, batchLimit int) *StudyScreen {
	return &StudyScreen{
		svc:        svc,
		log:        log,
		learnerID:  learnerID,
		batchLimit: batchLimit,
		sessionID:  uuid.New().String(),
		state:      session.NewState(),
		input:      components.NewTextInput(answerPlaceholder, answerCharLimit),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	s.log.Info("study session started",
		zap.String("session_id", s.sessionID),
		zap.Int("learner_id", s.learnerID),
		zap.Int("batch_limit", s.batchLimit),
	)
	return tea.Batch(
		s.run(session.InitCommand()),
		s.input.Init(),
	)
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.state.Phase {
	case session.PhasePresenting:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
		}
		if s.state.Hints.More() {
			hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Hint"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	case session.PhaseShowingOutcome:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Home"},
		}
	case session.PhaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "R", Description: "Resubmit"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchFetchedMsg:
		cmd := s.apply(session.BatchFetched{Challenges: msg.challenges})
		return s, tea.Batch(cmd, s.syncInput())

	case verdictMsg:
		return s, s.apply(session.VerdictReceived{Verdict: msg.verdict})

	case opFailedMsg:
		s.log.Warn("remote operation failed",
			zap.String("session_id", s.sessionID),
			zap.Error(msg.err),
		)
		return s, s.apply(session.OperationFailed{Message: msg.err.Error()})

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Everything else (cursor blinks etc.) belongs to the input.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.state.Phase {
	case session.PhasePresenting:
		switch key {
		case "enter":
			return s, s.apply(session.SubmitRequested{})
		case "tab":
			return s, s.apply(session.HintRequested{})
		}
		// Every other key edits the draft through the text input; the
		// reducer keeps the authoritative copy.
		var inputCmd tea.Cmd
		s.input, inputCmd = s.input.Update(msg)
		applyCmd := s.apply(session.DraftAnswerChanged{Text: s.input.Value()})
		return s, tea.Batch(inputCmd, applyCmd)

	case session.PhaseShowingOutcome, session.PhaseFailed:
		switch key {
		case "enter":
			cmd := s.apply(session.AdvanceRequested{})
			return s, tea.Batch(cmd, s.syncInput())
		case "r", "R":
			if s.state.Phase == session.PhaseFailed {
				return s, s.apply(session.SubmitRequested{})
			}
		}
	}

	return s, nil
}

// apply runs one message through the reducer and turns any resulting
// command into a bubbletea command.
func (s *StudyScreen) apply(msg session.Msg) tea.Cmd {
	next, cmd := session.Reduce(s.state, msg)
	s.state = next
	if cmd == nil {
		return nil
	}
	return s.run(cmd)
}

// run executes a reducer command off the UI loop. Each command
// delivers exactly one follow-up message, success or failure.
func (s *StudyScreen) run(cmd session.Command) tea.Cmd {
	switch cmd := cmd.(type) {
	case session.FetchBatch:
		learnerID, limit := s.learnerID, s.batchLimit
		return func() tea.Msg {
			batch, err := s.svc.FetchBatch(context.Background(), learnerID, limit)
			if err != nil {
				return opFailedMsg{err: err}
			}
			return batchFetchedMsg{challenges: batch}
		}

	case session.SubmitAnswer:
		return func() tea.Msg {
			verdict, err := s.svc.SubmitAnswer(context.Background(), cmd.Challenge, cmd.Answer)
			if err != nil {
				return opFailedMsg{err: err}
			}
			return verdictMsg{verdict: verdict}
		}
	}
	return nil
}

// syncInput resets the text input whenever the reducer cleared the
// draft, i.e. a new challenge became current.
func (s *StudyScreen) syncInput() tea.Cmd {
	if s.state.Draft == "" && s.input.Value() != "" {
		s.input = components.NewTextInput(answerPlaceholder, answerCharLimit)
		return s.input.Init()
	}
	return nil
}
