package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/store"
	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/components"
)

// handleTimerTick advances the countdown. Ticks from a cancelled schedule
// are dropped, which is what stops the tick chain.
func (h *Handler) handleTimerTick(msg components.TimerTickMsg) tea.Cmd {
	switch h.Timer.Tick(msg.Gen) {
	case timer.Ticked:
		return components.TimerTick(msg.Gen)
	case timer.Expired:
		return h.handleTimerExpired()
	}
	return nil
}

// handleTimerExpired plays the completion sound, turns the music off,
// notifies and records finished focus sessions.
func (h *Handler) handleTimerExpired() tea.Cmd {
	mode := h.Timer.Mode()
	actions := h.coordinator.Actions()

	h.Effects.Success()
	cmds := []tea.Cmd{actions.SetMusic(false)}

	text := fmt.Sprintf("%s complete!", mode)
	if mode == timer.ModeFocus && h.FocusTask != "" {
		text = fmt.Sprintf("%s complete: %s", mode, h.FocusTask)
	}
	h.StatusMsg = text
	h.Log.WithField("mode", string(mode)).Info("countdown finished")
	cmds = append(cmds, h.notify("Vibe OS", text))

	if mode == timer.ModeFocus {
		h.Sessions = append(h.Sessions, store.NewSession(string(mode), h.FocusTask, h.Now()))
		cmds = append(cmds, actions.SaveSessions())
	}
	return tea.Batch(cmds...)
}
