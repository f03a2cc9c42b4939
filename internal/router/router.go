package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/parlo/internal/screen"
)

// Route identifies a navigable destination.
type Route int

const (
	RouteHome Route = iota
	RouteStudy
	RouteAbout
	RouteNotFound
)

// GoToMsg asks the router to switch to the given route.
type GoToMsg struct {
	Route Route
}

// Factory constructs a fresh screen for a route. Screens are rebuilt
// on every visit, so entering the study route always starts a new
// session with a clear creation point.
type Factory func() screen.Screen

// Router maps routes to screen factories and tracks the active
// screen. Routes without a registered factory land on RouteNotFound.
type Router struct {
	factories map[Route]Factory
	route     Route
	active    screen.Screen
}

// New creates a Router over the given factories. The caller is
// expected to navigate somewhere (normally RouteHome) before the
// first render.
func New(factories map[Route]Factory) *Router {
	return &Router{factories: factories}
}

// Go switches to route, constructing its screen fresh, and returns
// the new screen's Init command.
func (r *Router) Go(route Route) tea.Cmd {
	f, ok := r.factories[route]
	if !ok {
		route = RouteNotFound
		if f, ok = r.factories[route]; !ok {
			return nil
		}
	}
	r.route = route
	r.active = f()
	return r.active.Init()
}

// Route returns the active route.
func (r *Router) Route() Route {
	return r.route
}

// Active returns the active screen, or nil before the first Go.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen and handles
// navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(GoToMsg); ok {
		return r.Go(m.Route)
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
