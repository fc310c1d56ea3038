package styles

import "github.com/charmbracelet/lipgloss"

// Command line styles. The prompt and the selected suggestion follow the
// active theme.
var (
	CommandPrompt             lipgloss.Style
	CommandSuggestion         lipgloss.Style
	CommandSuggestionSelected lipgloss.Style
	CommandLineContainer      lipgloss.Style
)

func buildCommand() {
	CommandPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	CommandSuggestion = lipgloss.NewStyle().
		Foreground(Subtle)

	CommandSuggestionSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Secondary)

	CommandLineContainer = lipgloss.NewStyle().
		Padding(0, 1).
		Background(barBackground)
}
