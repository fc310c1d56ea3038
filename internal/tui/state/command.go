package state

import "github.com/charmbracelet/bubbles/textinput"

// CommandLine holds the state for the vim-style command line.
type CommandLine struct {
	Input            textinput.Model
	Active           bool
	History          []string
	HistoryCursor    int
	Suggestions      []string
	SuggestionCursor int
}

// NewCommandLine initializes a new CommandLine state.
func NewCommandLine() *CommandLine {
	input := textinput.New()
	input.Prompt = "" // rendered externally
	input.CharLimit = 200
	input.Width = 50

	return &CommandLine{
		Input:         input,
		History:       []string{},
		HistoryCursor: -1,
		Suggestions:   []string{},
	}
}

// Open activates and focuses the command line.
func (c *CommandLine) Open() {
	c.Active = true
	c.Input.Reset()
	c.Input.Focus()
	c.Suggestions = nil
	c.HistoryCursor = -1
}

// Close deactivates the command line.
func (c *CommandLine) Close() {
	c.Active = false
	c.Input.Blur()
	c.Input.Reset()
	c.Suggestions = nil
}
