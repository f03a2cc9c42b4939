package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/parlo/internal/remote"
	"github.com/abhisek/parlo/internal/router"
	"github.com/abhisek/parlo/internal/screen"
	"github.com/abhisek/parlo/internal/screens/about"
	"github.com/abhisek/parlo/internal/screens/home"
	"github.com/abhisek/parlo/internal/screens/placeholder"
	"github.com/abhisek/parlo/internal/screens/study"
	"github.com/abhisek/parlo/internal/ui/layout"
)

// Options carries everything the TUI needs to run.
type Options struct {
	Service    remote.Service
	Logger     *zap.Logger
	LearnerID  int
	BatchLimit int

	// StartRoute is where the app lands on launch. Zero value is home.
	StartRoute router.Route
}

// AppModel is the root Bubble Tea model. It owns the window size and
// the router; screens own everything else.
type AppModel struct {
	router *router.Router
	start  router.Route
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	factories := map[router.Route]router.Factory{
		router.RouteHome: func() screen.Screen {
			return home.New()
		},
		router.RouteStudy: func() screen.Screen {
			return study.New(opts.Service, opts.Logger, opts.LearnerID, opts.BatchLimit)
		},
		router.RouteAbout: func() screen.Screen {
			return about.New()
		},
		router.RouteNotFound: func() screen.Screen {
			return placeholder.New("Not Found")
		},
	}

	return AppModel{
		router: router.New(factories),
		start:  opts.StartRoute,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Go(m.start)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Route() != router.RouteHome {
				return m, m.router.Go(router.RouteHome)
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
