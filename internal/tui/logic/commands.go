package logic

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/state"
)

// CommandHandlerFunc handles a command execution.
type CommandHandlerFunc func(h *Handler, args []string) tea.Cmd

// CommandDef defines a command.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	Handler     CommandHandlerFunc
}

// CommandRegistry holds all available commands.
var CommandRegistry = map[string]CommandDef{}

func init() {
	registerCommands()
}

func registerCommands() {
	commands := []CommandDef{
		{
			Name:        "goto",
			Aliases:     []string{"g", "view"},
			Description: "Go to a tab (tasks, habits, focus)",
			Handler:     handleGoto,
		},
		{
			Name:        "date",
			Aliases:     []string{"d", "day"},
			Description: "Filter tasks by date (YYYY-MM-DD, today, all)",
			Handler:     handleDateCommand,
		},
		{
			Name:        "theme",
			Aliases:     []string{"t"},
			Description: "Switch theme (Purple, Ocean, Forest, Sunset, Rose)",
			Handler:     handleThemeCommand,
		},
		{
			Name:        "mode",
			Aliases:     []string{"m"},
			Description: "Set timer mode (focus, short, long)",
			Handler:     handleModeCommand,
		},
		{
			Name:        "add",
			Aliases:     []string{"a", "new"},
			Description: "Add a task for the selected date",
			Handler:     handleAddCommand,
		},
		{
			Name:        "habit",
			Aliases:     []string{"hb"},
			Description: "Add a habit",
			Handler:     handleHabitCommand,
		},
		{
			Name:        "music",
			Aliases:     []string{"mu"},
			Description: "Turn music on or off",
			Handler:     handleMusicCommand,
		},
		{
			Name:        "stats",
			Aliases:     []string{"s"},
			Description: "Show statistics",
			Handler:     handleStatsCommand,
		},
		{
			Name:        "reload",
			Aliases:     []string{"retry"},
			Description: "Retry loading stored data after a failure",
			Handler:     handleReloadCommand,
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit application",
			Handler:     handleQuitCommand,
		},
		{
			Name:        "help",
			Aliases:     []string{"h", "?"},
			Description: "Show help",
			Handler:     handleHelpCommand,
		},
		{
			Name:        "commands",
			Aliases:     []string{"list", "ls"},
			Description: "List all available commands",
			Handler:     handleCommandsCommand,
		},
	}

	for _, cmd := range commands {
		CommandRegistry[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			CommandRegistry[alias] = cmd
		}
	}
}

// Core Handlers

func handleGoto(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Usage: :goto <tasks|habits|focus>"
		return nil
	}

	target := strings.ToLower(args[0])
	switch target {
	case "tasks", "t":
		return h.coordinator.SwitchToTab(state.TabTasks)
	case "habits", "h":
		return h.coordinator.SwitchToTab(state.TabHabits)
	case "focus", "f", "timer":
		return h.coordinator.SwitchToTab(state.TabFocus)
	default:
		h.StatusMsg = fmt.Sprintf("Unknown view: %s", target)
		return nil
	}
}

func handleDateCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Usage: :date <YYYY-MM-DD|today|all>"
		return nil
	}

	actions := h.coordinator.Actions()
	switch arg := strings.ToLower(args[0]); arg {
	case "all":
		h.ShowAllTasks = true
		h.TaskCursor = 0
	case "today":
		actions.SelectDate(h.Today)
	default:
		t, err := model.ParseDate(arg)
		if err != nil {
			h.StatusMsg = fmt.Sprintf("Invalid date: %s", arg)
			return nil
		}
		actions.SelectDate(model.FormatDate(t))
	}
	return h.coordinator.SwitchToTab(state.TabTasks)
}

func handleThemeCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Themes: " + strings.Join(model.Themes, ", ")
		return nil
	}
	for _, name := range model.Themes {
		if strings.EqualFold(name, args[0]) {
			return h.coordinator.Actions().SetTheme(name)
		}
	}
	h.StatusMsg = fmt.Sprintf("Unknown theme: %s", args[0])
	return nil
}

func handleModeCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Usage: :mode <focus|short|long>"
		return nil
	}

	mode, err := timer.ParseMode(strings.Join(args, " "))
	if err != nil {
		h.StatusMsg = fmt.Sprintf("Unknown mode: %s", strings.Join(args, " "))
		return nil
	}
	h.coordinator.Actions().SetMode(mode)
	return h.coordinator.SwitchToTab(state.TabFocus)
}

func handleAddCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		return h.coordinator.SwitchToTab(state.TabTasks)
	}
	return h.coordinator.Actions().AddTask(model.NewTask{
		Text:    strings.Join(args, " "),
		DueDate: h.SelectedDate,
	})
}

func handleReloadCommand(h *Handler, args []string) tea.Cmd {
	return h.reload()
}

func handleHabitCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		return h.coordinator.SwitchToTab(state.TabHabits)
	}
	return h.coordinator.Actions().AddHabit(model.NewHabit{Text: strings.Join(args, " ")})
}

func handleMusicCommand(h *Handler, args []string) tea.Cmd {
	on := !h.MusicOn
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on":
			on = true
		case "off":
			on = false
		default:
			h.StatusMsg = "Usage: :music <on|off>"
			return nil
		}
	}
	return h.coordinator.Actions().SetMusic(on)
}

func handleStatsCommand(h *Handler, args []string) tea.Cmd {
	h.openOverlay(state.ViewStats)
	return nil
}

func handleQuitCommand(h *Handler, args []string) tea.Cmd {
	return h.quit()
}

func handleHelpCommand(h *Handler, args []string) tea.Cmd {
	h.openOverlay(state.ViewHelp)
	return nil
}

func handleCommandsCommand(h *Handler, args []string) tea.Cmd {
	h.StatusMsg = "Commands: " + strings.Join(commandNames(), ", ")
	return nil
}

// Helpers

func commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range CommandRegistry {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (h *Handler) executeCommand(input string) tea.Cmd {
	h.CommandLine.Close()

	if input == "" {
		return nil
	}

	// Add to history
	if len(h.CommandLine.History) == 0 || h.CommandLine.History[len(h.CommandLine.History)-1] != input {
		h.CommandLine.History = append(h.CommandLine.History, input)
	}
	h.CommandLine.HistoryCursor = -1

	parts := strings.Fields(input)
	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	if cmdDef, ok := CommandRegistry[cmdName]; ok {
		h.Err = nil
		return cmdDef.Handler(h, args)
	}

	h.Err = fmt.Errorf("unknown command: %s", cmdName)
	return nil
}

func (h *Handler) autocompleteCommand() tea.Cmd {
	input := h.CommandLine.Input.Value()
	if input == "" || strings.Contains(input, " ") {
		return nil
	}

	// Complete to the shortest full command name with this prefix
	var match string
	for _, name := range commandNames() {
		if strings.HasPrefix(name, input) && (match == "" || len(name) < len(match)) {
			match = name
		}
	}
	if match != "" {
		h.CommandLine.Input.SetValue(match + " ")
		h.CommandLine.Input.SetCursor(len(match) + 1)
		h.CommandLine.Suggestions = nil
	}
	return nil
}

func (h *Handler) commandHistoryPrev() tea.Cmd {
	if len(h.CommandLine.History) == 0 {
		return nil
	}

	if h.CommandLine.HistoryCursor == -1 {
		h.CommandLine.HistoryCursor = len(h.CommandLine.History) - 1
	} else if h.CommandLine.HistoryCursor > 0 {
		h.CommandLine.HistoryCursor--
	}

	h.CommandLine.Input.SetValue(h.CommandLine.History[h.CommandLine.HistoryCursor])
	h.CommandLine.Input.SetCursor(len(h.CommandLine.Input.Value()))
	return nil
}

func (h *Handler) commandHistoryNext() tea.Cmd {
	if len(h.CommandLine.History) == 0 || h.CommandLine.HistoryCursor == -1 {
		return nil
	}

	if h.CommandLine.HistoryCursor < len(h.CommandLine.History)-1 {
		h.CommandLine.HistoryCursor++
		h.CommandLine.Input.SetValue(h.CommandLine.History[h.CommandLine.HistoryCursor])
		h.CommandLine.Input.SetCursor(len(h.CommandLine.Input.Value()))
	} else {
		h.CommandLine.HistoryCursor = -1
		h.CommandLine.Input.SetValue("")
	}
	return nil
}

func (h *Handler) updateSuggestions() {
	input := h.CommandLine.Input.Value()
	if input == "" || strings.Contains(input, " ") {
		h.CommandLine.Suggestions = nil
		return
	}

	var matches []string
	for _, name := range commandNames() {
		if strings.HasPrefix(name, input) {
			matches = append(matches, name)
		}
	}
	// Limit suggestions
	if len(matches) > 5 {
		matches = matches[:5]
	}
	h.CommandLine.Suggestions = matches
}
