package about

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/parlo/internal/screen"
	"github.com/abhisek/parlo/internal/ui/theme"
)

// AboutScreen describes the application.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates a new AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	body := theme.Title.Render("About Parlo") + "\n\n" +
		theme.Body.Render("Parlo is a vocabulary trainer. It pulls study\n"+
			"words from your word list, asks you to translate\n"+
			"them, and grades your answers as you go.") + "\n\n" +
		theme.Hint.Render("Stuck on a word? Press Tab for a hint.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (a *AboutScreen) Title() string {
	return "About"
}
