package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/parlo/internal/screen"
)

// stubScreen is a minimal screen that counts constructions.
type stubScreen struct {
	title string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestRouter() (*Router, map[Route]*int) {
	counts := map[Route]*int{
		RouteHome:     new(int),
		RouteStudy:    new(int),
		RouteNotFound: new(int),
	}
	factory := func(route Route, title string) Factory {
		return func() screen.Screen {
			*counts[route]++
			return &stubScreen{title: title}
		}
	}
	r := New(map[Route]Factory{
		RouteHome:     factory(RouteHome, "Home"),
		RouteStudy:    factory(RouteStudy, "Study"),
		RouteNotFound: factory(RouteNotFound, "Not Found"),
	})
	return r, counts
}

func TestRouter_GoSwitchesScreens(t *testing.T) {
	r, _ := newTestRouter()

	r.Go(RouteHome)
	if r.Route() != RouteHome || r.Active().Title() != "Home" {
		t.Fatalf("route = %v, title = %q", r.Route(), r.Active().Title())
	}

	r.Update(GoToMsg{Route: RouteStudy})
	if r.Route() != RouteStudy || r.Active().Title() != "Study" {
		t.Errorf("route = %v, title = %q, want study", r.Route(), r.Active().Title())
	}
}

func TestRouter_UnknownRouteLandsOnNotFound(t *testing.T) {
	r, _ := newTestRouter()

	r.Go(RouteAbout) // no factory registered
	if r.Route() != RouteNotFound {
		t.Errorf("route = %v, want RouteNotFound", r.Route())
	}
	if r.Active().Title() != "Not Found" {
		t.Errorf("title = %q, want Not Found", r.Active().Title())
	}
}

func TestRouter_ScreensAreFreshPerVisit(t *testing.T) {
	r, counts := newTestRouter()

	r.Go(RouteStudy)
	r.Go(RouteHome)
	r.Go(RouteStudy)

	if *counts[RouteStudy] != 2 {
		t.Errorf("study screen constructed %d times, want 2", *counts[RouteStudy])
	}
}

func TestRouter_ViewBeforeFirstGo(t *testing.T) {
	r, _ := newTestRouter()
	if v := r.View(80, 24); v != "" {
		t.Errorf("View() = %q before navigation, want empty", v)
	}
}
