package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/tui/state"
)

// ViewHandler defines the contract for a TUI view.
// Each tab (Tasks, Habits, Focus) implements this interface.
type ViewHandler interface {
	// Name returns the view identifier.
	Name() string

	// HandleKey processes keyboard input for this view.
	// Returns the command to execute and whether the key was consumed.
	HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, consumed bool)

	// HandleSelect processes Enter/selection for this view.
	HandleSelect() tea.Cmd

	// HandleBack processes Escape for this view.
	// Returns the command to execute and whether the view should be exited.
	HandleBack() (cmd tea.Cmd, shouldExit bool)

	// OnEnter is called when switching to this view.
	OnEnter() tea.Cmd

	// OnExit is called when leaving this view.
	OnExit()
}

// SwitchTabMsg asks the handler to activate another tab.
type SwitchTabMsg struct {
	Tab state.Tab
}
