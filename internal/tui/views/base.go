package views

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/store"
	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/components"
	"github.com/vibeos/vibe-os/internal/tui/state"
	"github.com/vibeos/vibe-os/internal/tui/styles"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// BaseView provides the operations shared by every tab and the command line.
// Each mutation updates the in-memory lists first and returns the command
// that persists them.
type BaseView struct {
	State *state.State
}

// NewBaseView creates a new BaseView with the given state.
func NewBaseView(s *state.State) *BaseView {
	return &BaseView{State: s}
}

// --- Common Helpers ---

// SetStatus sets a status message.
func (b *BaseView) SetStatus(msg string) {
	b.State.StatusMsg = msg
}

// MoveCursor moves a cursor by delta inside a list of n items.
func MoveCursor(cursor *int, delta, n int) {
	*cursor += delta
	if *cursor >= n {
		*cursor = n - 1
	}
	if *cursor < 0 {
		*cursor = 0
	}
}

// ready reports whether the stored lists are in memory. List edits made
// before that would overwrite the stored data, so they are refused.
func (b *BaseView) ready() bool {
	if b.State.Loaded {
		return true
	}
	if b.State.Loading {
		b.SetStatus("Still loading...")
	} else {
		b.SetStatus("Data not loaded, changes are disabled (:reload to retry)")
	}
	return false
}

// persist writes a snapshot under key as a command. Versions make sure a
// slow older write never lands after a newer one. Nothing is written before
// the initial load succeeded.
func (b *BaseView) persist(key string, v any) tea.Cmd {
	repo := b.State.Repo
	if repo == nil || !b.State.Loaded {
		return nil
	}
	version := b.State.NextVersion()
	log := b.State.Log
	return func() tea.Msg {
		if _, err := repo.Commit(key, version, v); err != nil {
			log.WithError(err).WithField("key", key).Error("save failed")
			return components.ErrMsg{Err: fmt.Errorf("failed to save: %w", err)}
		}
		return nil
	}
}

// SaveTasks persists a copy of the task list.
func (b *BaseView) SaveTasks() tea.Cmd {
	return b.persist(store.KeyTasks, append([]model.Task{}, b.State.Tasks...))
}

// SaveHabits persists a copy of the habit list.
func (b *BaseView) SaveHabits() tea.Cmd {
	return b.persist(store.KeyHabits, append([]model.Habit{}, b.State.Habits...))
}

// SaveSessions persists a copy of the focus sessions.
func (b *BaseView) SaveSessions() tea.Cmd {
	return b.persist(store.KeySessions, append([]model.FocusSession{}, b.State.Sessions...))
}

// SaveTheme persists the active theme name.
func (b *BaseView) SaveTheme() tea.Cmd {
	return b.persist(store.KeyTheme, b.State.Theme)
}

// --- Tasks ---

// AddTask prepends a task. Empty text is ignored.
func (b *BaseView) AddTask(in model.NewTask) tea.Cmd {
	if !b.ready() {
		return nil
	}
	tasks, err := model.AddTask(b.State.Tasks, in, b.State.IDs.Next())
	if errors.Is(err, model.ErrEmptyText) {
		return nil
	}
	b.State.Tasks = tasks
	b.State.TaskCursor = 0
	b.State.Effects.Pop()
	b.SetStatus("Added: " + in.Text)
	return b.SaveTasks()
}

// ToggleTask flips a task's completion.
func (b *BaseView) ToggleTask(id int64) tea.Cmd {
	if !b.ready() {
		return nil
	}
	tasks, err := model.ToggleTask(b.State.Tasks, id)
	if err != nil {
		return nil
	}
	b.State.Tasks = tasks
	if t, ok := model.FindTask(tasks, id); ok && t.Completed {
		b.State.Effects.Success()
		b.SetStatus("Completed: " + t.Text)
	} else {
		b.SetStatus("Reopened: " + t.Text)
	}
	return b.SaveTasks()
}

// DeleteTask removes a task.
func (b *BaseView) DeleteTask(id int64) tea.Cmd {
	if !b.ready() {
		return nil
	}
	tasks, err := model.DeleteTask(b.State.Tasks, id)
	if err != nil {
		return nil
	}
	b.State.Tasks = tasks
	b.State.ClampCursors()
	b.SetStatus("Task deleted")
	return b.SaveTasks()
}

// --- Habits ---

// AddHabit prepends a habit. Empty text is ignored.
func (b *BaseView) AddHabit(in model.NewHabit) tea.Cmd {
	if !b.ready() {
		return nil
	}
	habits, err := model.AddHabit(b.State.Habits, in, b.State.IDs.Next())
	if errors.Is(err, model.ErrEmptyText) {
		return nil
	}
	b.State.Habits = habits
	b.State.HabitCursor = 0
	b.State.Effects.Pop()
	b.SetStatus("Added habit: " + in.Text)
	return b.SaveHabits()
}

// ToggleHabit marks a habit done for today or undoes it.
func (b *BaseView) ToggleHabit(id int64) tea.Cmd {
	if !b.ready() {
		return nil
	}
	habits, err := model.ToggleHabit(b.State.Habits, id, b.State.Today)
	if err != nil {
		return nil
	}
	b.State.Habits = habits
	if h, ok := model.FindHabit(habits, id); ok && h.CompletedToday {
		b.State.Effects.Success()
		b.SetStatus(fmt.Sprintf("%s streak: %d 🔥", h.Text, h.Streak))
	}
	return b.SaveHabits()
}

// DeleteHabit removes a habit.
func (b *BaseView) DeleteHabit(id int64) tea.Cmd {
	if !b.ready() {
		return nil
	}
	habits, err := model.DeleteHabit(b.State.Habits, id)
	if err != nil {
		return nil
	}
	b.State.Habits = habits
	b.State.ClampCursors()
	b.SetStatus("Habit deleted")
	return b.SaveHabits()
}

// --- Date filter ---

// SelectDate filters the task list to date.
func (b *BaseView) SelectDate(date string) {
	b.State.SelectedDate = date
	b.State.ShowAllTasks = false
	b.State.TaskCursor = 0
}

// ShiftDay moves the selected date by delta days.
func (b *BaseView) ShiftDay(delta int) {
	b.SelectDate(model.ShiftDate(b.State.SelectedDate, delta))
}

// ToggleShowAll switches between all tasks and the selected date.
func (b *BaseView) ToggleShowAll() {
	b.State.ShowAllTasks = !b.State.ShowAllTasks
	b.State.TaskCursor = 0
}

// --- Theme ---

// SetTheme activates a theme; unknown names fall back to the default.
func (b *BaseView) SetTheme(name string) tea.Cmd {
	if !model.IsTheme(name) {
		name = model.DefaultTheme
	}
	b.State.Theme = name
	styles.Apply(name)
	b.State.CachedTabBar = ""
	b.SetStatus("Theme: " + name)
	return b.SaveTheme()
}

// NextTheme cycles to the following theme.
func (b *BaseView) NextTheme() tea.Cmd {
	return b.SetTheme(model.NextTheme(b.State.Theme, 1))
}

// --- Music ---

// SetMusic turns the background stream on or off. A player that fails to
// start leaves the flag off.
func (b *BaseView) SetMusic(on bool) tea.Cmd {
	s := b.State
	if on == s.MusicOn {
		return nil
	}
	s.MusicGen++
	if !on {
		s.MusicOn = false
		if err := s.Player.Stop(); err != nil {
			s.Log.WithError(err).Warn("failed to stop music")
		}
		b.SetStatus("Music off")
		return nil
	}

	done, err := s.Player.Play()
	if err != nil {
		s.MusicOn = false
		s.Log.WithError(err).Warn("music playback failed")
		s.StatusMsg = ""
		s.Err = fmt.Errorf("music unavailable: %w", err)
		return nil
	}
	s.MusicOn = true
	b.SetStatus("Music on 🎵")
	return waitForMusic(s.MusicGen, done)
}

// waitForMusic reports the end of a playback as a message.
func waitForMusic(gen int, done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return components.MusicStoppedMsg{Gen: gen, Err: <-done}
	}
}

// --- Focus timer ---

// ToggleTimer starts or pauses the countdown. Starting turns music on
// unless it is disabled in the config.
func (b *BaseView) ToggleTimer() tea.Cmd {
	t := b.State.Timer
	if t.Running() {
		t.Pause()
		b.SetStatus("Paused")
		return nil
	}
	gen := t.Start()
	b.SetStatus(string(t.Mode()) + " started")
	var music tea.Cmd
	if b.State.Config.Audio.Music {
		music = b.SetMusic(true)
	}
	return tea.Batch(components.TimerTick(gen), music)
}

// ResetTimer restores the current mode's duration and stops.
func (b *BaseView) ResetTimer() {
	b.State.Timer.Reset()
	b.SetStatus("Timer reset")
}

// SetMode switches the timer preset.
func (b *BaseView) SetMode(m timer.Mode) {
	b.State.Timer.SetMode(m)
	b.SetStatus("Mode: " + string(m))
}

// FocusOn binds the focus timer to a task.
func (b *BaseView) FocusOn(text string) {
	b.State.FocusTask = text
	b.SetStatus("Focusing on: " + text)
}

// --- Clipboard ---

// Copy puts text on the system clipboard.
func (b *BaseView) Copy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return components.ErrMsg{Err: fmt.Errorf("failed to copy: %w", err)}
		}
		return components.StatusMsg{Text: "Copied: " + text}
	}
}
