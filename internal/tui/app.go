// Package tui provides the terminal user interface for Vibe OS.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/config"
	"github.com/vibeos/vibe-os/internal/tui/logic"
	"github.com/vibeos/vibe-os/internal/tui/state"
	"github.com/vibeos/vibe-os/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
// Update goes through the logic handler, View through the renderer; both
// share one state.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App. initialTab overrides the configured start tab
// when set ("tasks", "habits" or "focus").
func NewApp(cfg *config.Config, deps state.Deps, initialTab string) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if initialTab != "" {
		cfg.UI.StartTab = initialTab
	}

	s := state.New(cfg, deps)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// State exposes the shared state, mainly for tests.
func (a *App) State() *state.State {
	return a.state
}
