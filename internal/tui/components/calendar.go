package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/tui/styles"
)

// CalendarViewModeType represents the calendar display mode.
type CalendarViewModeType int

const (
	CalendarViewModeCompact  CalendarViewModeType = iota // Small grid view
	CalendarViewModeExpanded                             // Grid with task names in cells
)

// ParseCalendarViewMode maps a config value to a view mode.
func ParseCalendarViewMode(s string) CalendarViewModeType {
	if s == "expanded" {
		return CalendarViewModeExpanded
	}
	return CalendarViewModeCompact
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CalendarModel is the month grid used to pick the task date filter.
// Days with an open task are marked.
type CalendarModel struct {
	month         time.Time // first of the displayed month
	day           int
	viewMode      CalendarViewModeType
	tasks         []model.Task
	now           func() time.Time
	width, height int
	focused       bool
}

// NewCalendar creates a calendar showing the current month.
// A nil clock means time.Now.
func NewCalendar(now func() time.Time) *CalendarModel {
	if now == nil {
		now = time.Now
	}
	c := &CalendarModel{now: now, viewMode: CalendarViewModeCompact}
	c.jumpTo(now())
	return c
}

// Init implements Component.
func (c *CalendarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (c *CalendarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKeyMsg(msg)
	}
	return c, nil
}

// handleKeyMsg processes keyboard input for calendar navigation.
func (c *CalendarModel) handleKeyMsg(msg tea.KeyMsg) (Component, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		c.moveDays(-1)
	case "l", "right":
		c.moveDays(1)
	case "k", "up":
		c.moveDays(-7)
	case "j", "down":
		c.moveDays(7)
	case "[":
		c.moveMonths(-1)
	case "]":
		c.moveMonths(1)
	case "t":
		c.jumpTo(c.now())
	case "v":
		if c.viewMode == CalendarViewModeCompact {
			c.viewMode = CalendarViewModeExpanded
		} else {
			c.viewMode = CalendarViewModeCompact
		}
	case "enter":
		date := c.SelectedDate()
		return c, func() tea.Msg {
			return DaySelectedMsg{Date: date}
		}
	case "esc", "q", "C":
		return c, func() tea.Msg {
			return CloseOverlayMsg{}
		}
	}
	return c, nil
}

func (c *CalendarModel) selected() time.Time {
	return time.Date(c.month.Year(), c.month.Month(), c.day, 0, 0, 0, 0, time.Local)
}

func (c *CalendarModel) jumpTo(t time.Time) {
	c.month = model.FirstOfMonth(t)
	c.day = t.Day()
}

func (c *CalendarModel) moveDays(delta int) {
	c.jumpTo(c.selected().AddDate(0, 0, delta))
}

func (c *CalendarModel) moveMonths(delta int) {
	c.month = model.ShiftMonth(c.month, delta)
	if days := model.DaysIn(c.month.Year(), c.month.Month()); c.day > days {
		c.day = days
	}
}

// View implements Component.
func (c *CalendarModel) View() string {
	if c.viewMode == CalendarViewModeExpanded {
		return c.renderExpanded()
	}
	return c.renderCompact()
}

// SetSize implements Component.
func (c *CalendarModel) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Focus sets focus on the calendar.
func (c *CalendarModel) Focus() {
	c.focused = true
}

// Blur removes focus.
func (c *CalendarModel) Blur() {
	c.focused = false
}

// Focused returns focus state.
func (c *CalendarModel) Focused() bool {
	return c.focused
}

// SetTasks updates the tasks for the calendar.
func (c *CalendarModel) SetTasks(tasks []model.Task) {
	c.tasks = tasks
}

// SetDate moves the selection to a YYYY-MM-DD date; invalid dates are ignored.
func (c *CalendarModel) SetDate(date string) {
	if t, err := model.ParseDate(date); err == nil {
		c.jumpTo(t)
	}
}

// SelectedDate returns the selected day as YYYY-MM-DD.
func (c *CalendarModel) SelectedDate() string {
	return model.FormatDate(c.selected())
}

// Month returns the first day of the displayed month.
func (c *CalendarModel) Month() time.Time {
	return c.month
}

// Day returns the selected day.
func (c *CalendarModel) Day() int {
	return c.day
}

// ViewMode returns the current view mode.
func (c *CalendarModel) ViewMode() CalendarViewModeType {
	return c.viewMode
}

// SetViewMode sets the view mode.
func (c *CalendarModel) SetViewMode(mode CalendarViewModeType) {
	c.viewMode = mode
}

func (c *CalendarModel) dayStyle(grid model.MonthGrid, day, weekday int, today string) (string, bool) {
	date := grid.Date(day)
	hasTasks := model.HasOpenTaskOn(c.tasks, date)
	isSelected := day == c.day && c.focused

	switch {
	case isSelected:
		return "selected", hasTasks
	case date == today:
		return "today", hasTasks
	case hasTasks:
		return "tasks", hasTasks
	case weekday == 0 || weekday == 6:
		return "weekend", hasTasks
	}
	return "", hasTasks
}

func renderDay(kind, s string) string {
	switch kind {
	case "selected":
		return styles.CalendarDaySelected.Render(s)
	case "today":
		return styles.CalendarDayToday.Render(s)
	case "tasks":
		return styles.CalendarDayWithTasks.Render(s)
	case "weekend":
		return styles.CalendarDayWeekend.Render(s)
	}
	return styles.CalendarDay.Render(s)
}

// renderCompact renders the compact calendar view.
func (c *CalendarModel) renderCompact() string {
	var b strings.Builder
	grid := model.GridFor(c.month)
	today := model.FormatDate(c.now())

	b.WriteString(styles.Title.Render(c.month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("[ ] month | h l day | j k week | t today | v view | enter pick"))
	b.WriteString("\n\n")

	for _, wd := range weekdays {
		b.WriteString(styles.CalendarWeekday.Render(fmt.Sprintf(" %s ", wd)))
	}
	b.WriteString("\n")

	day := 1
	for week := 0; week < grid.Weeks(); week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if (week == 0 && weekday < grid.StartWeekday) || day > grid.DaysInMonth {
				b.WriteString("     ")
				continue
			}

			kind, hasTasks := c.dayStyle(grid, day, weekday, today)
			dayStr := fmt.Sprintf(" %2d ", day)
			if hasTasks && kind != "selected" {
				dayStr = fmt.Sprintf(" %2d•", day)
			}
			b.WriteString(renderDay(kind, dayStr))
			b.WriteString(" ")
			day++
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(c.renderSelectedSummary())
	return b.String()
}

func (c *CalendarModel) renderSelectedSummary() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(c.selected().Format("Monday, January 2")))
	b.WriteString("\n")

	due := model.TasksDueOn(c.tasks, c.SelectedDate())
	if len(due) == 0 {
		b.WriteString(styles.HelpDesc.Render("No tasks for this day"))
	} else {
		b.WriteString(styles.HelpDesc.Render(fmt.Sprintf("%d task(s), %d%% done - press Enter to filter",
			len(due), model.CompletionPercent(due))))
	}
	return b.String()
}

// renderExpanded renders the expanded calendar view with task names.
func (c *CalendarModel) renderExpanded() string {
	var b strings.Builder
	grid := model.GridFor(c.month)
	today := model.FormatDate(c.now())

	b.WriteString(styles.Title.Render(c.month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("[ ] month | h l day | j k week | t today | v view | enter pick"))
	b.WriteString("\n\n")

	// Calculate cell dimensions
	availableWidth := c.width - 8
	if availableWidth < 35 {
		availableWidth = 35
	}
	cellWidth := availableWidth / 7
	if cellWidth < 5 {
		cellWidth = 5
	}
	if cellWidth > 20 {
		cellWidth = 20
	}
	rule := func(left, mid, right string) string {
		return left + strings.Repeat(strings.Repeat("─", cellWidth)+mid, 6) + strings.Repeat("─", cellWidth) + right + "\n"
	}
	blank := strings.Repeat(" ", cellWidth)

	headerLine := "│"
	for _, wd := range weekdays {
		headerLine += styles.CalendarWeekday.Render(fmt.Sprintf(" %-*s", cellWidth-1, wd)) + "│"
	}
	b.WriteString(headerLine)
	b.WriteString("\n")
	b.WriteString(rule("├", "┼", "┤"))

	tasksByDay := make(map[int][]model.Task)
	for d := 1; d <= grid.DaysInMonth; d++ {
		if due := model.TasksDueOn(c.tasks, grid.Date(d)); len(due) > 0 {
			tasksByDay[d] = due
		}
	}

	maxTasksPerCell := 2
	cellDay := func(week, weekday int) int {
		return week*7 + weekday - grid.StartWeekday + 1
	}

	for week := 0; week < grid.Weeks(); week++ {
		dayNumLine := "│"
		for weekday := 0; weekday < 7; weekday++ {
			day := cellDay(week, weekday)
			if day < 1 || day > grid.DaysInMonth {
				dayNumLine += blank + "│"
				continue
			}
			kind, _ := c.dayStyle(grid, day, weekday, today)
			dayNumLine += renderDay(kind, fmt.Sprintf("%-*s", cellWidth, fmt.Sprintf(" %2d", day))) + "│"
		}
		b.WriteString(dayNumLine)
		b.WriteString("\n")

		for line := 0; line < maxTasksPerCell; line++ {
			taskRow := "│"
			for weekday := 0; weekday < 7; weekday++ {
				day := cellDay(week, weekday)
				tasks := tasksByDay[day]
				switch {
				case day < 1 || day > grid.DaysInMonth:
					taskRow += blank
				case line == maxTasksPerCell-1 && len(tasks) > maxTasksPerCell:
					more := fmt.Sprintf(" +%d more", len(tasks)-line)
					taskRow += styles.CalendarMoreTasks.Render(runewidth.FillRight(runewidth.Truncate(more, cellWidth, "…"), cellWidth))
				case line < len(tasks):
					t := tasks[line]
					name := " " + runewidth.Truncate(t.Text, cellWidth-2, "…")
					style := styles.GetPriorityStyle(t.Priority)
					if t.Completed {
						style = styles.CalendarMoreTasks
					}
					taskRow += style.Render(runewidth.FillRight(name, cellWidth))
				default:
					taskRow += blank
				}
				taskRow += "│"
			}
			b.WriteString(taskRow)
			b.WriteString("\n")
		}

		if week < grid.Weeks()-1 {
			b.WriteString(rule("├", "┼", "┤"))
		}
	}

	b.WriteString(rule("└", "┴", "┘"))
	b.WriteString(c.renderSelectedSummary())
	return b.String()
}
