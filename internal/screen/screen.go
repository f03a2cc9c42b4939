package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/parlo/internal/ui/layout"
)

// Screen is one full-content view of the application. The router owns
// exactly one active screen at a time.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus a
	// command to run.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that want
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
