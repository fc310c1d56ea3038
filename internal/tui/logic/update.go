package logic

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/tui/components"
	"github.com/vibeos/vibe-os/internal/tui/state"
	"github.com/vibeos/vibe-os/internal/tui/styles"
	"github.com/vibeos/vibe-os/internal/tui/views"
)

// Handler owns the update loop. Every mutation of the state happens here.
type Handler struct {
	*state.State
	coordinator *views.Coordinator
}

// NewHandler creates a handler over s.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:       s,
		coordinator: views.NewCoordinator(s),
	}
}

// Update processes one message and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		if !h.Loading {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case dataLoadedMsg:
		return h.handleDataLoaded(msg)

	case dataLoadFailedMsg:
		return h.handleDataLoadFailed(msg)

	case checkDayMsg:
		return h.handleCheckDay(msg.at)

	case components.TimerTickMsg:
		return h.handleTimerTick(msg)

	case components.MusicStoppedMsg:
		return h.handleMusicStopped(msg)

	case components.DaySelectedMsg:
		h.coordinator.Actions().SelectDate(msg.Date)
		h.closeOverlay()
		return h.coordinator.SwitchToTab(state.TabTasks)

	case components.CloseOverlayMsg:
		h.closeOverlay()
		return nil

	case views.SwitchTabMsg:
		return h.coordinator.SwitchToTab(msg.Tab)

	case components.ErrMsg:
		h.StatusMsg = ""
		h.Err = msg.Err
		return nil

	case components.StatusMsg:
		h.Err = nil
		h.StatusMsg = msg.Text
		return nil
	}

	// Forward non-key messages (like blink) to active inputs
	if h.CurrentView == state.ViewInput && h.InputForm != nil {
		return h.InputForm.Update(msg)
	}
	if h.CommandLine.Active {
		var cmd tea.Cmd
		h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
		return cmd
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	// Reserve space for tab bar (~3 lines), header (2 lines), status bar (1 line)
	vpHeight := msg.Height - 8
	if vpHeight < 5 {
		vpHeight = 5
	}
	vpWidth := msg.Width - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	h.ListViewport.Width = vpWidth
	h.ListViewport.Height = vpHeight

	h.HelpComp.SetSize(msg.Width, msg.Height)
	h.CalendarComp.SetSize(msg.Width, msg.Height)
	h.CommandLine.Input.Width = max(20, msg.Width-6)
	if h.InputForm != nil {
		h.InputForm.SetWidth(msg.Width)
	}
	return nil
}

func (h *Handler) handleDataLoaded(msg dataLoadedMsg) tea.Cmd {
	h.Loading = false
	h.Loaded = true
	h.Err = nil

	snap := msg.snapshot
	h.Tasks = snap.Tasks
	h.Habits = snap.Habits
	h.Sessions = snap.Sessions
	h.Theme = snap.Theme
	if !model.IsTheme(h.Theme) {
		h.Theme = h.ConfiguredTheme()
	}
	styles.Apply(h.Theme)
	h.CachedTabBar = ""

	h.IDs.SeedTasks(h.Tasks)
	h.IDs.SeedHabits(h.Habits)
	h.ClampCursors()

	h.Log.WithFields(logrus.Fields{
		"tasks":  len(h.Tasks),
		"habits": len(h.Habits),
		"theme":  h.Theme,
	}).Info("data loaded")

	if n := len(openTasksDueOn(h.Tasks, h.Today)); n > 0 {
		h.StatusMsg = dueTodayMessage(n)
	}
	return nil
}

// handleDataLoadFailed keeps the app read-only. Writing the empty in-memory
// lists now would replace whatever is stored.
func (h *Handler) handleDataLoadFailed(msg dataLoadFailedMsg) tea.Cmd {
	h.Loading = false
	h.StatusMsg = ""
	h.Err = fmt.Errorf("failed to load data, changes are disabled (:reload to retry): %w", msg.err)
	h.Log.WithError(msg.err).Error("load failed")
	return nil
}

// reload retries the initial load after a failure.
func (h *Handler) reload() tea.Cmd {
	if h.Loaded {
		h.StatusMsg = "Data already loaded"
		return nil
	}
	if h.Loading {
		return nil
	}
	h.Loading = true
	h.Err = nil
	h.StatusMsg = ""
	return tea.Batch(h.Spinner.Tick, h.LoadInitialData())
}

// handleMusicStopped flips the music flag off when the player exits on its
// own. Exits of superseded playbacks are ignored.
func (h *Handler) handleMusicStopped(msg components.MusicStoppedMsg) tea.Cmd {
	if msg.Gen != h.MusicGen || !h.MusicOn {
		return nil
	}
	h.MusicOn = false
	if msg.Err != nil {
		h.Log.WithError(msg.Err).Warn("music player exited")
		h.StatusMsg = ""
		h.Err = msg.Err
		return nil
	}
	h.StatusMsg = "Music stopped"
	return nil
}

func (h *Handler) openOverlay(v state.View) {
	h.PreviousView = h.CurrentView
	h.CurrentView = v
	h.KeyState.Reset()
}

func (h *Handler) closeOverlay() {
	h.CalendarComp.Blur()
	h.CurrentView = state.ViewMain
}

func (h *Handler) quit() tea.Cmd {
	if h.MusicOn {
		if err := h.Player.Stop(); err != nil {
			h.Log.WithError(err).Warn("failed to stop music")
		}
		h.MusicOn = false
	}
	return tea.Quit
}

func openTasksDueOn(tasks []model.Task, date string) []model.Task {
	var out []model.Task
	for _, t := range model.TasksDueOn(tasks, date) {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
