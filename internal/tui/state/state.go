package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sirupsen/logrus"

	"github.com/vibeos/vibe-os/internal/audio"
	"github.com/vibeos/vibe-os/internal/config"
	"github.com/vibeos/vibe-os/internal/logging"
	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/store"
	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/components"
)

// View represents the current view/screen.
type View int

const (
	ViewMain View = iota
	ViewHelp
	ViewStats
	ViewCalendar
	ViewInput
)

// Tab represents a top-level tab.
type Tab int

const (
	TabTasks Tab = iota
	TabHabits
	TabFocus
)

// ParseTab maps a config or flag value to a tab.
func ParseTab(s string) Tab {
	switch s {
	case "habits":
		return TabHabits
	case "focus":
		return TabFocus
	default:
		return TabTasks
	}
}

// Keymap defines keybindings.
type Keymap interface {
	HelpItems() [][]string
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Config   *config.Config
	Repo     *store.Repository
	Log      *logrus.Entry
	Player   audio.Player
	Effects  audio.Effects
	Notifier audio.Notifier
	IDs      *model.IDGenerator
	Now      func() time.Time

	// View state
	CurrentView  View
	PreviousView View
	CurrentTab   Tab

	// Data
	Tasks    []model.Task
	Habits   []model.Habit
	Sessions []model.FocusSession
	Theme    string

	// Write versions handed to store.Repository.Commit
	SaveVersion uint64

	// Date filter
	Today        string
	SelectedDate string
	ShowAllTasks bool

	// List state
	TaskCursor  int
	HabitCursor int

	// Focus timer
	Timer     *timer.Countdown
	FocusTask string

	// Music
	MusicOn  bool
	MusicGen int

	// UI state
	Loading bool
	// Loaded is set once the stored lists have been read. Until then no
	// list is mutated and nothing is written.
	Loaded    bool
	Err       error
	StatusMsg string
	Width     int
	Height    int

	// Components
	Spinner      spinner.Model
	Keymap       Keymap
	KeyState     *KeyState
	HelpComp     *components.HelpModel
	CalendarComp *components.CalendarModel
	ListViewport viewport.Model

	// Input bar and command line
	InputForm   *InputForm
	CommandLine *CommandLine

	// Tab bar cache
	CachedTabBar      string
	CachedTabBarTab   Tab
	CachedTabBarWidth int
	CachedTabBarTheme string
}

// Deps are the collaborators the TUI works with. Nil fields get
// quiet defaults so tests only set what they exercise.
type Deps struct {
	Repo     *store.Repository
	Log      *logrus.Entry
	Player   audio.Player
	Effects  audio.Effects
	Notifier audio.Notifier
	Now      func() time.Time
}

// New builds the initial state from the config. Lists are empty until the
// repository load completes.
func New(cfg *config.Config, d Deps) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if d.Player == nil {
		d.Player = &audio.NoopPlayer{}
	}
	if d.Effects == nil {
		d.Effects = audio.Silent{}
	}
	if d.Notifier == nil {
		d.Notifier = audio.Silent{}
	}

	s := &State{
		Config:   cfg,
		Repo:     d.Repo,
		Log:      d.Log,
		Player:   d.Player,
		Effects:  d.Effects,
		Notifier: d.Notifier,
		IDs:      model.NewIDGenerator(d.Now),
		Now:      d.Now,

		CurrentView: ViewMain,
		CurrentTab:  ParseTab(cfg.UI.StartTab),
		Tasks:       []model.Task{},
		Habits:      []model.Habit{},
		Sessions:    []model.FocusSession{},
		Loading:     true,
	}
	s.Theme = s.ConfiguredTheme()
	s.Today = s.TodayString()
	s.SelectedDate = s.Today

	s.Timer = timer.New(timer.Durations{
		timer.ModeFocus:      cfg.Timer.FocusDuration(),
		timer.ModeShortBreak: cfg.Timer.ShortBreakDuration(),
		timer.ModeLongBreak:  cfg.Timer.LongBreakDuration(),
	})

	km := DefaultKeymap()
	km.VimMode = cfg.UI.VimMode
	s.Keymap = km
	s.KeyState = &KeyState{}

	s.Spinner = spinner.New()
	s.Spinner.Spinner = spinner.Dot

	s.HelpComp = components.NewHelp()
	s.HelpComp.SetKeymap(km.HelpItems())
	s.CalendarComp = components.NewCalendar(d.Now)
	s.CalendarComp.SetViewMode(components.ParseCalendarViewMode(cfg.UI.CalendarDefaultView))
	s.ListViewport = viewport.New(80, 20)
	s.CommandLine = NewCommandLine()

	return s
}

// TabInfo holds tab metadata.
type TabInfo struct {
	Tab       Tab
	Icon      string
	Name      string
	ShortName string
}

// GetTabDefinitions returns the tab definitions.
func GetTabDefinitions() []TabInfo {
	return []TabInfo{
		{TabTasks, "✅", "Tasks", "Tsk"},
		{TabHabits, "🔥", "Habits", "Hab"},
		{TabFocus, "⏱️", "Focus", "Foc"},
	}
}

// TodayString returns the current local date.
func (s *State) TodayString() string {
	return model.FormatDate(s.Now())
}

// VisibleTasks returns the tasks shown on the Tasks tab: every task, or only
// those due on the selected date.
func (s *State) VisibleTasks() []model.Task {
	if s.ShowAllTasks {
		return s.Tasks
	}
	return model.TasksDueOn(s.Tasks, s.SelectedDate)
}

// SelectedTask returns the task under the cursor.
func (s *State) SelectedTask() (model.Task, bool) {
	visible := s.VisibleTasks()
	if s.TaskCursor < 0 || s.TaskCursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[s.TaskCursor], true
}

// SelectedHabit returns the habit under the cursor.
func (s *State) SelectedHabit() (model.Habit, bool) {
	if s.HabitCursor < 0 || s.HabitCursor >= len(s.Habits) {
		return model.Habit{}, false
	}
	return s.Habits[s.HabitCursor], true
}

// ClampCursors keeps both cursors inside their lists.
func (s *State) ClampCursors() {
	s.TaskCursor = clamp(s.TaskCursor, len(s.VisibleTasks()))
	s.HabitCursor = clamp(s.HabitCursor, len(s.Habits))
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// NextVersion returns a fresh write version.
func (s *State) NextVersion() uint64 {
	s.SaveVersion++
	return s.SaveVersion
}

// ConfiguredTheme is the theme from the config, or the default theme when
// the config names none or an unknown one.
func (s *State) ConfiguredTheme() string {
	if model.IsTheme(s.Config.UI.Theme) {
		return s.Config.UI.Theme
	}
	return model.DefaultTheme
}
