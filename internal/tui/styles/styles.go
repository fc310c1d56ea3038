// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vibeos/vibe-os/internal/model"
)

// Palette is the accent pair of a theme.
type Palette struct {
	Highlight lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
}

// Palettes maps theme names to their colors.
var Palettes = map[string]Palette{
	model.ThemePurple: {
		Highlight: lipgloss.AdaptiveColor{Light: "#7B2FF7", Dark: "#B48EFF"},
		Secondary: lipgloss.AdaptiveColor{Light: "#C026D3", Dark: "#F0ABFC"},
	},
	model.ThemeOcean: {
		Highlight: lipgloss.AdaptiveColor{Light: "#0077B6", Dark: "#48CAE4"},
		Secondary: lipgloss.AdaptiveColor{Light: "#0096C7", Dark: "#90E0EF"},
	},
	model.ThemeForest: {
		Highlight: lipgloss.AdaptiveColor{Light: "#2D6A4F", Dark: "#74C69D"},
		Secondary: lipgloss.AdaptiveColor{Light: "#40916C", Dark: "#B7E4C7"},
	},
	model.ThemeSunset: {
		Highlight: lipgloss.AdaptiveColor{Light: "#E76F51", Dark: "#F4A261"},
		Secondary: lipgloss.AdaptiveColor{Light: "#D62828", Dark: "#FFB703"},
	},
	model.ThemeRose: {
		Highlight: lipgloss.AdaptiveColor{Light: "#C9184A", Dark: "#FF8FA3"},
		Secondary: lipgloss.AdaptiveColor{Light: "#A4133C", Dark: "#FFCCD5"},
	},
}

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color of the active theme
	Highlight = Palettes[model.DefaultTheme].Highlight

	// Secondary is the second accent of the active theme
	Secondary = Palettes[model.DefaultTheme].Secondary

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	barBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Priority colors
var (
	PriorityHighColor   = lipgloss.Color("#D0473D")
	PriorityMediumColor = lipgloss.Color("#EA8811")
	PriorityLowColor    = lipgloss.Color("#296FDF")
)

// Styles that do not depend on the theme.
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Subtitle is for secondary headings
	// NOTE: No margins - they break viewport scroll sync line counting
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// TaskItem is the base style for a list row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskCompleted is the style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true).
			Strikethrough(true)

	// TaskMeta is for category and due date display
	TaskMeta = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingLeft(1)

	TaskPriorityHigh   = lipgloss.NewStyle().Foreground(PriorityHighColor)
	TaskPriorityMedium = lipgloss.NewStyle().Foreground(PriorityMediumColor)
	TaskPriorityLow    = lipgloss.NewStyle().Foreground(PriorityLowColor)

	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(barBackground).
			Padding(0, 1)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(barBackground)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(barBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(barBackground).
				Bold(true)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// Input is the style for unfocused inputs
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// PickerInactive is for input bar pickers without focus
	PickerInactive = lipgloss.NewStyle().
			Foreground(Subtle).
			Padding(0, 1)

	// SectionHeader is for help and stats sections
	// NOTE: No margins here - they add extra lines that break viewport scroll sync.
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)

	// CalendarWeekday is for day-of-week headers
	CalendarWeekday = lipgloss.NewStyle().
			Foreground(Subtle)

	// CalendarDay is for regular days
	CalendarDay = lipgloss.NewStyle()

	// CalendarDayToday is for today's date
	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(SuccessColor)

	// CalendarDayWithTasks is for days that have open tasks
	CalendarDayWithTasks = lipgloss.NewStyle().
				Foreground(WarningColor)

	// CalendarDayWeekend is for Saturday and Sunday
	CalendarDayWeekend = lipgloss.NewStyle().
				Foreground(Subtle)

	// CalendarMoreTasks is for "+N more" indicator in cells
	CalendarMoreTasks = lipgloss.NewStyle().
				Foreground(Subtle).
				Italic(true)

	// Tab is for inactive tabs
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// ProgressEmpty is the unfilled part of a progress bar
	ProgressEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#3A3A3A"})

	// StatLabel is the caption under a stats number
	StatLabel = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Styles derived from the theme colors. Apply rebuilds them.
var (
	Title               lipgloss.Style
	TaskSelected        lipgloss.Style
	StatusBarKey        lipgloss.Style
	HelpKey             lipgloss.Style
	InputFocused        lipgloss.Style
	PickerActive        lipgloss.Style
	Dialog              lipgloss.Style
	DialogTitle         lipgloss.Style
	Spinner             lipgloss.Style
	CalendarHeader      lipgloss.Style
	CalendarDaySelected lipgloss.Style
	TabBar              lipgloss.Style
	TabActive           lipgloss.Style
	HabitStreak         lipgloss.Style
	TimerDigits         lipgloss.Style
	TimerMode           lipgloss.Style
	TimerModeActive     lipgloss.Style
	ProgressFull        lipgloss.Style
	StatValue           lipgloss.Style
	StatCard            lipgloss.Style
)

func init() {
	build()
}

// Apply switches the accent colors to the named theme.
// Unknown names fall back to the default theme.
func Apply(theme string) {
	p, ok := Palettes[theme]
	if !ok {
		p = Palettes[model.DefaultTheme]
	}
	Highlight = p.Highlight
	Secondary = p.Secondary
	build()
}

func build() {
	// NOTE: No margins - they break viewport scroll sync line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	TaskSelected = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeftForeground(Highlight).
		Bold(true).
		Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	StatusBarKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		Background(barBackground)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	InputFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(0, 1)

	PickerActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Highlight).
		Padding(0, 1)

	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		MarginBottom(1)

	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)

	CalendarHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		Align(lipgloss.Center)

	CalendarDaySelected = lipgloss.NewStyle().
		Bold(true).
		Background(Highlight).
		Foreground(lipgloss.Color("#ffffff"))

	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Secondary).
		PaddingLeft(1).
		PaddingRight(1)

	TabActive = lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Highlight)

	HabitStreak = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	TimerDigits = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	TimerMode = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Subtle)

	TimerModeActive = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(Highlight).
		Underline(true)

	ProgressFull = lipgloss.NewStyle().
		Foreground(Highlight)

	StatValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	StatCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 2).
		Align(lipgloss.Center)

	buildCommand()
}

// GetPriorityStyle returns the appropriate style for a task priority.
func GetPriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return TaskPriorityHigh
	case model.PriorityMedium:
		return TaskPriorityMedium
	default:
		return TaskPriorityLow
	}
}

// Checkbox styles
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)
