package logic

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/model"
)

type checkDayMsg struct{ at time.Time }

func checkDayCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDayMsg{at: t}
	})
}

// handleCheckDay applies the habit reset when the local date changes and
// tells the user how many tasks are due on the new day.
func (h *Handler) handleCheckDay(t time.Time) tea.Cmd {
	// Always schedule the next check
	cmds := []tea.Cmd{checkDayCmd()}

	today := model.FormatDate(t)
	if today == h.Today {
		return tea.Batch(cmds...)
	}

	previous := h.Today
	h.Today = today
	h.Log.WithField("previous", previous).WithField("today", today).Info("day changed")

	// Keep following "today" unless the user picked another date
	if h.SelectedDate == previous {
		h.SelectedDate = today
		h.TaskCursor = 0
	}

	if habits, changed := model.ResetHabitsForDay(h.Habits, today); changed {
		h.Habits = habits
		cmds = append(cmds, h.coordinator.Actions().SaveHabits())
	}
	h.ClampCursors()

	if n := len(openTasksDueOn(h.Tasks, today)); n > 0 {
		msg := dueTodayMessage(n)
		h.StatusMsg = msg
		cmds = append(cmds, h.notify("Vibe OS", msg))
	}

	return tea.Batch(cmds...)
}

func dueTodayMessage(n int) string {
	if n == 1 {
		return "1 task due today"
	}
	return fmt.Sprintf("%d tasks due today", n)
}

// notify sends a desktop notification off the update loop.
func (h *Handler) notify(title, message string) tea.Cmd {
	notifier := h.Notifier
	log := h.Log
	return func() tea.Msg {
		if err := notifier.Notify(title, message); err != nil {
			log.WithError(err).Warn("failed to send notification")
		}
		return nil
	}
}
