package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/parlo/internal/router"
	"github.com/abhisek/parlo/internal/screen"
	"github.com/abhisek/parlo/internal/ui/components"
	"github.com/abhisek/parlo/internal/ui/layout"
	"github.com/abhisek/parlo/internal/ui/theme"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	goTo := func(route router.Route) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.GoToMsg{Route: route}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "STUDY", Action: goTo(router.RouteStudy)},
		{Label: "ABOUT", Action: goTo(router.RouteAbout)},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("P A R L O"),
		theme.Subtitle.Width(width).Render("learn a language, one word at a time"),
		"",
		h.menu.View(),
	)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}
