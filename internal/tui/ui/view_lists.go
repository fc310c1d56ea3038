package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/tui/styles"
)

// renderTasks renders the Tasks tab: a header for the selected date and
// the filtered list.
func (r *Renderer) renderTasks(width, height int) string {
	var b strings.Builder

	b.WriteString(r.renderTasksHeader(width))
	b.WriteString("\n\n")

	if r.Loading {
		b.WriteString(styles.Spinner.Render(r.Spinner.View()))
		b.WriteString(" Loading...")
		return b.String()
	}

	visible := r.VisibleTasks()
	if len(visible) == 0 {
		msg := "Nothing due this day."
		if r.ShowAllTasks {
			msg = "No tasks yet."
		} else if r.SelectedDate == r.Today {
			msg = "All clear for today ✨"
		}
		b.WriteString(msg + "\n" + styles.HelpDesc.Render("Press 'a' to add one."))
		return b.String()
	}

	lines := make([]string, len(visible))
	for i, t := range visible {
		lines[i] = r.renderTaskRow(t, i == r.TaskCursor, width)
	}
	b.WriteString(r.renderScrollableLines(lines, r.TaskCursor, width, height-2))
	return b.String()
}

func (r *Renderer) renderTasksHeader(width int) string {
	if r.ShowAllTasks {
		done := model.CountCompleted(r.Tasks)
		meta := fmt.Sprintf("%d/%d done", done, len(r.Tasks))
		return styles.Title.Render("All tasks") + styles.TaskMeta.Render(meta)
	}

	title := r.SelectedDate
	if t, err := model.ParseDate(r.SelectedDate); err == nil {
		title = t.Format("Monday 2 Jan 2006")
	}
	if r.SelectedDate == r.Today {
		title += " · today"
	}

	percent := model.DayCompletionPercent(r.Tasks, r.SelectedDate)
	barWidth := min(20, max(5, width/4))
	filled, empty := progressBar(float64(percent)/100, barWidth)
	meta := fmt.Sprintf(" %d%% done", percent)

	return styles.Title.Render(title) + "  " + filled + empty + styles.TaskMeta.Render(meta)
}

func (r *Renderer) renderTaskRow(t model.Task, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	checkbox := styles.CheckboxUnchecked
	if t.Completed {
		checkbox = styles.CheckboxChecked
	}

	meta := string(t.Category)
	if r.ShowAllTasks && t.DueDate != "" {
		meta += " · " + t.DueDate
	}

	prefix := fmt.Sprintf("%s%s %s ", cursor, checkbox, t.Emoji)
	textWidth := width - lipgloss.Width(prefix) - lipgloss.Width(meta) - 6
	text := truncateString(t.Text, textWidth)

	var line string
	switch {
	case t.Completed:
		line = styles.TaskCompleted.Render(prefix + text)
	case selected:
		line = styles.TaskSelected.Render(prefix + text)
	default:
		line = styles.TaskItem.Render(prefix + styles.GetPriorityStyle(t.Priority).Render(text))
	}
	return line + styles.TaskMeta.Render(meta)
}

// renderHabits renders the Habits tab.
func (r *Renderer) renderHabits(width, height int) string {
	var b strings.Builder

	done := 0
	for _, h := range r.Habits {
		if h.CompletedToday {
			done++
		}
	}
	b.WriteString(styles.Title.Render("Daily habits"))
	b.WriteString(styles.TaskMeta.Render(fmt.Sprintf("%d/%d today", done, len(r.Habits))))
	b.WriteString("\n\n")

	if r.Loading {
		b.WriteString(styles.Spinner.Render(r.Spinner.View()))
		b.WriteString(" Loading...")
		return b.String()
	}

	if len(r.Habits) == 0 {
		b.WriteString("No habits yet.\n" + styles.HelpDesc.Render("Press 'a' to start one."))
		return b.String()
	}

	lines := make([]string, len(r.Habits))
	for i, h := range r.Habits {
		lines[i] = r.renderHabitRow(h, i == r.HabitCursor, width)
	}
	b.WriteString(r.renderScrollableLines(lines, r.HabitCursor, width, height-2))
	return b.String()
}

func (r *Renderer) renderHabitRow(h model.Habit, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	checkbox := styles.CheckboxUnchecked
	if h.CompletedToday {
		checkbox = styles.CheckboxChecked
	}

	streak := fmt.Sprintf("🔥 %d", h.Streak)
	prefix := fmt.Sprintf("%s%s %s ", cursor, checkbox, h.Emoji)
	text := truncateString(h.Text, width-lipgloss.Width(prefix)-lipgloss.Width(streak)-6)

	style := styles.TaskItem
	if selected {
		style = styles.TaskSelected
	}
	return style.Render(prefix+text) + " " + styles.HabitStreak.Render(streak)
}

// renderScrollableLines puts the rows into the list viewport and scrolls it
// so the cursor row stays visible.
func (r *Renderer) renderScrollableLines(lines []string, cursor, width, height int) string {
	if height < 1 {
		height = 1
	}
	if len(lines) <= height {
		r.ListViewport.SetYOffset(0)
		return strings.Join(lines, "\n")
	}

	r.ListViewport.Width = width
	r.ListViewport.Height = height
	r.ListViewport.SetContent(strings.Join(lines, "\n"))

	if cursor < r.ListViewport.YOffset {
		r.ListViewport.SetYOffset(cursor)
	} else if cursor >= r.ListViewport.YOffset+height {
		r.ListViewport.SetYOffset(cursor - height + 1)
	}
	return r.ListViewport.View()
}
