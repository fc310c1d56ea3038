package logic

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/tui/state"
)

// handleKeyMsg processes keyboard input.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return h.quit()
	}

	// Route key messages based on current view - BEFORE global keys
	// This allows the input bar to capture letters for text input
	switch h.CurrentView {
	case state.ViewInput:
		return h.handleInputKeyMsg(msg)
	case state.ViewHelp:
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	case state.ViewCalendar:
		_, cmd := h.CalendarComp.Update(msg)
		return cmd
	case state.ViewStats:
		switch msg.String() {
		case "esc", "enter", "q", "S":
			h.closeOverlay()
		}
		return nil
	}

	if h.CommandLine.Active {
		return h.handleCommandLineKeyMsg(msg)
	}

	km := h.keymap()
	if action, ok := km.GlobalAction(msg); ok {
		h.KeyState.Reset()
		return h.handleGlobalAction(action)
	}

	if msg.String() == "esc" {
		h.KeyState.Reset()
		h.Err = nil
		cmd, _ := h.coordinator.HandleBack()
		return cmd
	}

	cmd, _ := h.coordinator.HandleKey(msg)
	return cmd
}

func (h *Handler) keymap() state.KeymapData {
	if km, ok := h.Keymap.(state.KeymapData); ok {
		return km
	}
	return state.DefaultKeymap()
}

func (h *Handler) handleGlobalAction(action string) tea.Cmd {
	actions := h.coordinator.Actions()
	switch action {
	case "quit":
		return h.quit()
	case "next_tab":
		return h.coordinator.CycleTab(1)
	case "prev_tab":
		return h.coordinator.CycleTab(-1)
	case "focus_tab":
		return h.coordinator.SwitchToTab(state.TabFocus)
	case "help":
		h.openOverlay(state.ViewHelp)
	case "stats":
		h.openOverlay(state.ViewStats)
	case "calendar":
		h.openCalendar()
	case "theme":
		return actions.NextTheme()
	case "music":
		return actions.SetMusic(!h.MusicOn)
	case "command":
		h.CommandLine.Open()
		return nil
	}
	return nil
}

func (h *Handler) openCalendar() {
	h.CalendarComp.SetTasks(h.Tasks)
	h.CalendarComp.SetDate(h.SelectedDate)
	h.CalendarComp.Focus()
	h.openOverlay(state.ViewCalendar)
}

// handleInputKeyMsg handles keys while the input bar is open.
func (h *Handler) handleInputKeyMsg(msg tea.KeyMsg) tea.Cmd {
	f := h.InputForm
	if f == nil {
		h.CurrentView = state.ViewMain
		return nil
	}

	switch msg.String() {
	case "esc":
		h.closeInput()
		return nil
	case "enter":
		actions := h.coordinator.Actions()
		var cmd tea.Cmd
		if f.Kind == state.FormHabit {
			cmd = actions.AddHabit(f.NewHabit())
		} else {
			cmd = actions.AddTask(f.NewTask(h.SelectedDate))
		}
		h.closeInput()
		return cmd
	}
	return f.Update(msg)
}

func (h *Handler) closeInput() {
	h.InputForm = nil
	h.CurrentView = state.ViewMain
}

// handleCommandLineKeyMsg handles keys while the ":" prompt is open.
func (h *Handler) handleCommandLineKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.CommandLine.Close()
		return nil
	case "enter":
		return h.executeCommand(strings.TrimSpace(h.CommandLine.Input.Value()))
	case "tab":
		return h.autocompleteCommand()
	case "up":
		return h.commandHistoryPrev()
	case "down":
		return h.commandHistoryNext()
	}

	var cmd tea.Cmd
	h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
	h.updateSuggestions()
	return cmd
}
