package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/store"
)

// Init starts the spinner, the initial load and the day-change check.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.LoadInitialData(),
		checkDayCmd(),
		h.coordinator.SwitchToTab(h.CurrentTab),
	)
}

// LoadInitialData reads every list from the repository once.
func (h *Handler) LoadInitialData() tea.Cmd {
	repo := h.Repo
	today := h.Today
	return func() tea.Msg {
		if repo == nil {
			return dataLoadedMsg{snapshot: store.Snapshot{}}
		}
		snap, err := repo.Load(today)
		if err != nil {
			return dataLoadFailedMsg{err: err}
		}
		return dataLoadedMsg{snapshot: snap}
	}
}

// Message types
type dataLoadedMsg struct {
	snapshot store.Snapshot
}

type dataLoadFailedMsg struct {
	err error
}
