package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Global
	NextTab  Key
	PrevTab  Key
	Help     Key
	Stats    Key
	Calendar Key
	Theme    Key
	Music    Key
	FocusTab Key
	Command  Key
	Quit     Key

	// List actions
	Add     Key
	Toggle  Key
	Delete  Key
	Yank    Key
	FocusOn Key

	// Date filter
	ShowAll Key
	PrevDay Key
	NextDay Key
	Today   Key

	// Focus timer
	StartPause Key
	Reset      Key
	NextMode   Key
	ClearTask  Key

	// VimMode enables j/k and the gg/dd/yy sequences.
	VimMode bool
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		NextTab:  Key{Key: "tab", Help: "next tab"},
		PrevTab:  Key{Key: "shift+tab", Help: "previous tab"},
		Help:     Key{Key: "?", Help: "help"},
		Stats:    Key{Key: "S", Help: "stats"},
		Calendar: Key{Key: "C", Help: "calendar"},
		Theme:    Key{Key: "T", Help: "next theme"},
		Music:    Key{Key: "M", Help: "music on/off"},
		FocusTab: Key{Key: "F", Help: "focus timer"},
		Command:  Key{Key: ":", Help: "command line"},
		Quit:     Key{Key: "q", Help: "quit"},

		Add:     Key{Key: "a", Help: "add"},
		Toggle:  Key{Key: "x", Help: "complete/uncomplete"},
		Delete:  Key{Key: "d", Help: "delete (dd)"},
		Yank:    Key{Key: "y", Help: "copy text (yy)"},
		FocusOn: Key{Key: "f", Help: "focus on task"},

		ShowAll: Key{Key: "A", Help: "all tasks / selected date"},
		PrevDay: Key{Key: "[", Help: "previous day"},
		NextDay: Key{Key: "]", Help: "next day"},
		Today:   Key{Key: "t", Help: "today"},

		StartPause: Key{Key: " ", Help: "start/pause"},
		Reset:      Key{Key: "r", Help: "reset"},
		NextMode:   Key{Key: "n", Help: "next mode"},
		ClearTask:  Key{Key: "c", Help: "clear task"},

		VimMode: true,
	}
}

// GlobalAction maps keys that work on every tab.
func (k KeymapData) GlobalAction(msg tea.KeyMsg) (string, bool) {
	switch msg.String() {
	case k.NextTab.Key:
		return "next_tab", true
	case k.PrevTab.Key:
		return "prev_tab", true
	case k.Help.Key:
		return "help", true
	case k.Stats.Key:
		return "stats", true
	case k.Calendar.Key:
		return "calendar", true
	case k.Theme.Key:
		return "theme", true
	case k.Music.Key:
		return "music", true
	case k.FocusTab.Key:
		return "focus_tab", true
	case k.Command.Key:
		return "command", true
	case k.Quit.Key:
		return "quit", true
	}
	return "", false
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press on a list tab and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if keymap.VimMode {
		if ks.WaitingG {
			ks.WaitingG = false
			if key == keymap.Top.Key {
				return "top", true
			}
		}
		if ks.WaitingD {
			ks.WaitingD = false
			if key == keymap.Delete.Key {
				return "delete", true
			}
		}
		if ks.WaitingY {
			ks.WaitingY = false
			if key == keymap.Yank.Key {
				return "copy", true
			}
		}

		switch key {
		case keymap.Top.Key:
			ks.WaitingG = true
			ks.LastKey = key
			return "", true
		case keymap.Delete.Key:
			ks.WaitingD = true
			ks.LastKey = key
			return "", true
		case keymap.Yank.Key:
			ks.WaitingY = true
			ks.LastKey = key
			return "", true
		case keymap.Up.Key:
			return "up", true
		case keymap.Down.Key:
			return "down", true
		case keymap.Bottom.Key:
			return "bottom", true
		}
	}

	switch key {
	case "up":
		return "up", true
	case "down":
		return "down", true
	case "home":
		return "top", true
	case "end":
		return "bottom", true
	case "delete":
		return "delete", true
	case "ctrl+y":
		return "copy", true
	case keymap.Add.Key:
		return "add", true
	case keymap.Toggle.Key, " ", "enter":
		return "toggle", true
	case keymap.FocusOn.Key:
		return "focus_on", true
	case keymap.ShowAll.Key:
		return "show_all", true
	case keymap.PrevDay.Key:
		return "prev_day", true
	case keymap.NextDay.Key:
		return "next_day", true
	case keymap.Today.Key:
		return "today", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/G", "Go to top/bottom"},
		{k.NextTab.Key + "/" + k.PrevTab.Key, "Switch tab"},
		{"", ""},
		{"Tasks & Habits", ""},
		{k.Add.Key, "Add task / habit"},
		{k.Toggle.Key + "/space", "Complete/uncomplete"},
		{"dd", "Delete"},
		{"yy", "Copy text to clipboard"},
		{k.FocusOn.Key, "Focus on selected task"},
		{"", ""},
		{"Date Filter", ""},
		{k.PrevDay.Key + "/" + k.NextDay.Key, "Previous/next day"},
		{k.Today.Key, "Jump to today"},
		{k.ShowAll.Key, "All tasks / selected date"},
		{k.Calendar.Key, "Calendar"},
		{"", ""},
		{"Focus Timer", ""},
		{"space", "Start/pause"},
		{k.Reset.Key, "Reset"},
		{"1/2/3", "Focus / Short / Long break"},
		{k.NextMode.Key, "Next mode"},
		{k.ClearTask.Key, "Clear focus task"},
		{"", ""},
		{"General", ""},
		{k.Stats.Key, "Stats"},
		{k.Theme.Key, "Next theme"},
		{k.Music.Key, "Music on/off"},
		{k.FocusTab.Key, "Focus tab"},
		{k.Command.Key, "Command line"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
