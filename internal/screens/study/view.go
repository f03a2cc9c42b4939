package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/parlo/internal/session"
	"github.com/abhisek/parlo/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch s.state.Phase {
	case session.PhaseLoading:
		return s.viewLoading()
	case session.PhasePresenting:
		return s.viewPresenting()
	case session.PhaseShowingOutcome:
		return s.viewOutcome()
	case session.PhaseFailed:
		return s.viewFailed()
	}
	return ""
}

func (s *StudyScreen) viewLoading() string {
	return "\n\n" + theme.Subtitle.Render("Fetching challenges...")
}

func (s *StudyScreen) viewPresenting() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.viewPrompt())
	b.WriteString("\n\n")

	for _, hint := range s.state.Hints.Revealed() {
		b.WriteString("  " + theme.Hint.Render(hint) + "\n")
	}
	if len(s.state.Hints.Revealed()) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("  " + theme.Body.Render("Answer: ") + s.input.View() + "\n")

	if s.state.Hints.More() {
		b.WriteString("\n  " + theme.Hint.Render("[Tab] give me a hint") + "\n")
	}

	return b.String()
}

func (s *StudyScreen) viewOutcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.viewPrompt())
	b.WriteString("\n\n")

	b.WriteString("  " + theme.Body.Render("You answered: ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(s.state.Draft) + "\n\n")

	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render(s.state.Verdict) + "\n\n")

	b.WriteString("  " + theme.Hint.Render("[Enter] next challenge") + "\n")

	return b.String()
}

func (s *StudyScreen) viewFailed() string {
	var b strings.Builder

	b.WriteString("\n  " + lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong") + "\n\n")

	b.WriteString("  " + theme.Body.Render(s.state.ErrText) + "\n\n")

	if !s.state.Current.IsZero() {
		b.WriteString("  " + theme.Hint.Render("[R] resubmit your answer") + "\n")
	}
	b.WriteString("  " + theme.Hint.Render("[Enter] try the next challenge") + "\n")

	return b.String()
}

func (s *StudyScreen) viewPrompt() string {
	ch := s.state.Current

	var b strings.Builder
	b.WriteString("  " + theme.Title.Render(ch.Prompt) + "\n")
	b.WriteString("  " + theme.Body.Render("Translate: "+ch.FirstLang))

	if ch.NumLearningWords > 1 {
		b.WriteString("\n  " + theme.Subtitle.Render(
			fmt.Sprintf("(%d words in this phrase)", ch.NumLearningWords)))
	}

	return b.String()
}
