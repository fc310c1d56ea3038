package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/components"
	"github.com/vibeos/vibe-os/internal/tui/styles"
)

// renderFocus renders the Focus tab.
func (r *Renderer) renderFocus(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	t := r.Timer

	var content strings.Builder

	// 1. Mode row
	var modes []string
	for _, m := range timer.Modes {
		if m == t.Mode() {
			modes = append(modes, styles.TimerModeActive.Render(string(m)))
		} else {
			modes = append(modes, styles.TimerMode.Render(string(m)))
		}
	}
	content.WriteString(center.Render(lipgloss.JoinHorizontal(lipgloss.Top, modes...)) + "\n\n")

	// 2. Timer
	timeStr := timerText(t.Remaining())
	if width >= 40 && height >= 12 {
		content.WriteString(center.Render(styles.TimerDigits.Render(components.RenderLargeTime(timeStr))) + "\n\n")
	} else {
		content.WriteString(center.Render(styles.TimerDigits.Render(timeStr)) + "\n\n")
	}

	// 3. Progress Bar
	filled, empty := progressBar(t.Progress(), width/2)
	content.WriteString(center.Render(filled+empty) + "\n")

	status := "Paused"
	if t.Running() {
		status = "Running"
	} else if t.Remaining() == t.Total() {
		status = "Ready"
	}
	if r.MusicOn {
		status += " · ♫ lofi on"
	}
	content.WriteString(center.Render(styles.Subtitle.Render(status)) + "\n\n")

	// 4. Associated Task
	content.WriteString(r.renderFocusTask(width) + "\n\n")

	// 5. Key Hints
	hints := []string{"[Space] Start/Pause", "[r] Reset", "[1/2/3] Mode", "[n] Next mode", "[c] Clear task", "[M] Music"}
	content.WriteString(center.Render(styles.HelpDesc.Render(strings.Join(hints, "  "))))

	return lipgloss.NewStyle().MaxHeight(height).Render(content.String())
}

func (r *Renderer) renderFocusTask(width int) string {
	box := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Center).
		Padding(0, 1)

	if r.FocusTask == "" {
		return box.BorderForeground(styles.Subtle).
			Render(styles.HelpDesc.Render("No task bound. Press 'f' on a task to focus on it."))
	}
	text := truncateString(r.FocusTask, width-20)
	return box.BorderForeground(styles.Highlight).
		Render(styles.Subtitle.Render("Current focus: ") + styles.Title.Render(text))
}

func timerText(seconds int) string {
	return timer.Format(seconds)
}

// progressBar renders a themed bar of width cells.
func progressBar(ratio float64, width int) (string, string) {
	filled, empty := components.ProgressBar(ratio, width)
	return styles.ProgressFull.Render(filled), styles.ProgressEmpty.Render(empty)
}
