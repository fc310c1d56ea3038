package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/tui/state"
	"github.com/vibeos/vibe-os/internal/tui/styles"
)

// renderStats renders the stats dialog.
func (r *Renderer) renderStats() string {
	s := model.Summarize(r.Tasks, r.Habits, r.Sessions, r.Today)

	card := func(value, label string) string {
		return styles.StatCard.Width(18).Render(styles.StatValue.Render(value) + "\n" + styles.StatLabel.Render(label))
	}

	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		card(fmt.Sprintf("%d/%d", s.CompletedTasks, s.TotalTasks), "tasks done"),
		" ",
		card(fmt.Sprintf("%d%%", s.CompletionRate), "completion"),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		card(fmt.Sprintf("🔥 %d", s.BestStreak), "best streak"),
		" ",
		card(fmt.Sprintf("%d/%d", s.HabitsDoneToday, s.TotalHabits), "habits today"),
	)

	filled, empty := progressBar(float64(s.CompletionRate)/100, 38)

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("📊 Stats"))
	b.WriteString("\n")
	b.WriteString(row1 + "\n" + row2 + "\n\n")
	b.WriteString(filled + empty + "\n\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Focus sessions today: %d", s.FocusToday)))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Esc: close"))

	return styles.Dialog.Render(b.String())
}

// renderInputBar renders the add task / add habit dialog.
func (r *Renderer) renderInputBar() string {
	f := r.InputForm
	if f == nil {
		return ""
	}

	dialogWidth := 64
	if r.Width < 72 {
		dialogWidth = r.Width - 8
	}
	if dialogWidth < 36 {
		dialogWidth = 36
	}

	title := "✨ New task"
	if f.Kind == state.FormHabit {
		title = "🔥 New habit"
	} else if r.SelectedDate != "" {
		title += styles.TaskMeta.Render("due " + r.SelectedDate)
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(title))
	b.WriteString("\n")

	inputStyle := styles.Input
	if f.Focused() == state.FieldText {
		inputStyle = styles.InputFocused
	}
	b.WriteString(inputStyle.Width(dialogWidth - 8).Render(f.Input.View()))
	b.WriteString("\n")

	var pickers []string
	for _, field := range f.Fields() {
		var label string
		switch field {
		case state.FieldCategory:
			label = string(f.Category)
		case state.FieldPriority:
			label = string(f.Priority)
		case state.FieldEmoji:
			label = f.Emoji
		default:
			continue
		}
		style := styles.PickerInactive
		if f.Focused() == field {
			style = styles.PickerActive
		}
		pickers = append(pickers, style.Render("‹ "+label+" ›"))
	}
	b.WriteString(strings.Join(pickers, " "))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Enter: add  •  Tab: next field  •  ←/→: change  •  Esc: cancel"))

	return styles.Dialog.Width(dialogWidth).Render(b.String())
}
