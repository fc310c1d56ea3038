package logic

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/audio"
	"github.com/vibeos/vibe-os/internal/config"
	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/store"
	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/components"
	"github.com/vibeos/vibe-os/internal/tui/state"
)

var testNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.Local)

type testEnv struct {
	h       *Handler
	repo    *store.Repository
	effects *audio.Recorder
	notes   *audio.Recorder
	player  *audio.NoopPlayer
}

func newTestHandler(t *testing.T, snap store.Snapshot) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:    store.NewRepository(store.NewMemory(), nil),
		effects: &audio.Recorder{},
		notes:   &audio.Recorder{},
		player:  &audio.NoopPlayer{},
	}
	s := state.New(config.DefaultConfig(), state.Deps{
		Repo:     env.repo,
		Player:   env.player,
		Effects:  env.effects,
		Notifier: env.notes,
		Now:      func() time.Time { return testNow },
	})
	env.h = NewHandler(s)
	env.h.Update(dataLoadedMsg{snapshot: snap})
	return env
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func (e *testEnv) sendKey(key string) []tea.Msg {
	return drain(e.h.Update(keyMsg(key)))
}

func (e *testEnv) typeText(text string) {
	for _, r := range text {
		e.sendKey(string(r))
	}
}

// drain runs cmd and any batched children, feeding nothing back.
// Commands that block (ticks, playback waits) are skipped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func hasEvent(events []string, prefix string) bool {
	for _, e := range events {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

func TestAddTaskThroughInputBar(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	env.sendKey("a")
	if h.CurrentView != state.ViewInput || h.InputForm == nil {
		t.Fatalf("expected the input bar to open, got view %v", h.CurrentView)
	}

	// Letters that are global keys elsewhere must reach the input
	env.typeText("Ship TMS?")
	env.sendKey("tab")
	env.sendKey("right") // Life -> Code
	env.sendKey("enter")

	if h.CurrentView != state.ViewMain {
		t.Errorf("input bar should close after submit")
	}
	if len(h.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(h.Tasks))
	}
	task := h.Tasks[0]
	if task.Text != "Ship TMS?" || task.DueDate != "2026-10-16" {
		t.Errorf("unexpected task %+v", task)
	}
	if task.Category != model.CategoryCode {
		t.Errorf("expected Code category, got %s", task.Category)
	}
	if !hasEvent(env.effects.Events, "pop") {
		t.Error("adding a task should play the pop effect")
	}

	saved, err := env.repo.LoadTasks()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != task.ID {
		t.Errorf("task was not persisted: %+v", saved)
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})

	env.sendKey("a")
	env.typeText("   ")
	env.sendKey("enter")

	if len(env.h.Tasks) != 0 {
		t.Errorf("blank text should not add a task, got %d", len(env.h.Tasks))
	}
	if len(env.effects.Events) != 0 {
		t.Errorf("no effect expected, got %v", env.effects.Events)
	}
}

func TestEscapeCancelsInput(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})

	env.sendKey("a")
	env.typeText("draft")
	env.sendKey("esc")

	if env.h.CurrentView != state.ViewMain || env.h.InputForm != nil {
		t.Error("esc should close the input bar")
	}
	if len(env.h.Tasks) != 0 {
		t.Error("cancelled input should not add a task")
	}
}

func TestToggleAndDeleteTask(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{Tasks: []model.Task{
		{ID: 1, Text: "Write", DueDate: "2026-10-16"},
		{ID: 2, Text: "Read", DueDate: "2026-10-16"},
		{ID: 3, Text: "Tomorrow", DueDate: "2026-10-17"},
	}})
	h := env.h

	env.sendKey("j")
	env.sendKey("x")
	if !h.Tasks[1].Completed {
		t.Fatalf("second task should be completed: %+v", h.Tasks)
	}
	if !hasEvent(env.effects.Events, "success") {
		t.Error("completing a task should play the success effect")
	}

	env.sendKey("d")
	if len(h.Tasks) != 3 {
		t.Fatal("a single d must not delete")
	}
	env.sendKey("d")
	if len(h.Tasks) != 2 {
		t.Fatalf("dd should delete, got %d tasks", len(h.Tasks))
	}
	for _, task := range h.Tasks {
		if task.ID == 2 {
			t.Error("wrong task deleted")
		}
	}
	if h.TaskCursor != 0 {
		t.Errorf("cursor should clamp to the remaining task, got %d", h.TaskCursor)
	}

	saved, _ := env.repo.LoadTasks()
	if len(saved) != 2 {
		t.Errorf("expected 2 persisted tasks, got %d", len(saved))
	}
}

func TestDateFilterKeys(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{Tasks: []model.Task{
		{ID: 1, Text: "Today", DueDate: "2026-10-16"},
		{ID: 2, Text: "Tomorrow", DueDate: "2026-10-17"},
	}})
	h := env.h

	env.sendKey("]")
	if h.SelectedDate != "2026-10-17" {
		t.Errorf("expected next day, got %s", h.SelectedDate)
	}
	if got := h.VisibleTasks(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only tomorrow's task, got %+v", got)
	}

	env.sendKey("A")
	if len(h.VisibleTasks()) != 2 {
		t.Error("A should show every task")
	}
	env.sendKey("esc")
	if h.ShowAllTasks {
		t.Error("esc should leave the all-tasks mode")
	}

	env.sendKey("t")
	if h.SelectedDate != "2026-10-16" {
		t.Errorf("t should jump back to today, got %s", h.SelectedDate)
	}
}

func TestTabSwitching(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	tests := []struct {
		key  string
		want state.Tab
	}{
		{"tab", state.TabHabits},
		{"tab", state.TabFocus},
		{"tab", state.TabTasks},
		{"shift+tab", state.TabFocus},
		{"F", state.TabFocus},
	}
	for _, tt := range tests {
		env.sendKey(tt.key)
		if h.CurrentTab != tt.want {
			t.Errorf("after %q: expected tab %v, got %v", tt.key, tt.want, h.CurrentTab)
		}
	}
}

func TestHabitToggleBuildsStreak(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{Habits: []model.Habit{
		{ID: 5, Text: "Read", Emoji: "📚", Streak: 2},
	}})
	h := env.h

	env.sendKey("tab")
	env.sendKey("x")
	if !h.Habits[0].CompletedToday || h.Habits[0].Streak != 3 {
		t.Fatalf("expected completed with streak 3, got %+v", h.Habits[0])
	}
	if !strings.Contains(h.StatusMsg, "streak: 3") {
		t.Errorf("unexpected status %q", h.StatusMsg)
	}

	env.sendKey("x")
	if h.Habits[0].CompletedToday || h.Habits[0].Streak != 2 {
		t.Errorf("undo should restore streak 2, got %+v", h.Habits[0])
	}

	saved, _ := env.repo.LoadHabits("2026-10-16")
	if len(saved) != 1 || saved[0].Streak != 2 {
		t.Errorf("habit not persisted: %+v", saved)
	}
}

func TestThemeCycles(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{Theme: model.ThemeRose})
	h := env.h

	if h.Theme != model.ThemeRose {
		t.Fatalf("loaded theme should be Rose, got %s", h.Theme)
	}
	env.sendKey("T")
	if h.Theme != model.ThemePurple {
		t.Errorf("expected wrap to Purple, got %s", h.Theme)
	}
	saved, _ := env.repo.LoadTheme()
	if saved != model.ThemePurple {
		t.Errorf("theme not persisted, got %q", saved)
	}
}

func TestUnknownStoredThemeFallsBack(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{Theme: "Neon"})
	if env.h.Theme != model.DefaultTheme {
		t.Errorf("expected default theme, got %s", env.h.Theme)
	}
}

func TestOverlays(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	env.sendKey("?")
	if h.CurrentView != state.ViewHelp {
		t.Fatal("? should open help")
	}
	// q closes the overlay instead of quitting
	if msgs := env.sendKey("q"); len(msgs) != 1 {
		t.Fatalf("expected a close message, got %v", msgs)
	} else {
		h.Update(msgs[0])
	}
	if h.CurrentView != state.ViewMain {
		t.Error("help should close")
	}

	env.sendKey("S")
	if h.CurrentView != state.ViewStats {
		t.Fatal("S should open stats")
	}
	env.sendKey("esc")
	if h.CurrentView != state.ViewMain {
		t.Error("esc should close stats")
	}
}

func TestCalendarSelectsDate(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h
	env.sendKey("F")

	env.sendKey("C")
	if h.CurrentView != state.ViewCalendar {
		t.Fatal("C should open the calendar")
	}
	env.sendKey("l")
	msgs := env.sendKey("enter")
	if len(msgs) != 1 {
		t.Fatalf("expected a day selection, got %v", msgs)
	}
	h.Update(msgs[0])

	if h.SelectedDate != "2026-10-17" {
		t.Errorf("expected 2026-10-17, got %s", h.SelectedDate)
	}
	if h.CurrentView != state.ViewMain || h.CurrentTab != state.TabTasks {
		t.Error("selecting a day should show the task list")
	}
}

func TestTimerExpiryRecordsSession(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h
	h.Timer = timer.New(timer.Durations{timer.ModeFocus: 2 * time.Second})
	h.FocusTask = "Ship release"

	env.sendKey("F")
	env.sendKey(" ")
	if !h.Timer.Running() {
		t.Fatal("space should start the countdown")
	}
	if !h.MusicOn || !env.player.Playing() {
		t.Error("starting the countdown should start music")
	}

	gen := h.Timer.Generation()
	if cmd := h.Update(components.TimerTickMsg{Gen: gen}); cmd == nil {
		t.Error("a running countdown should schedule the next tick")
	}
	if h.Timer.Remaining() != 1 {
		t.Errorf("expected 1 second left, got %d", h.Timer.Remaining())
	}

	drain(h.Update(components.TimerTickMsg{Gen: gen}))
	if h.Timer.Running() || h.Timer.Remaining() != 0 {
		t.Error("countdown should stop at zero")
	}
	if h.MusicOn || env.player.Playing() {
		t.Error("music should stop on expiry")
	}
	if !hasEvent(env.effects.Events, "success") {
		t.Error("expiry should play the success effect")
	}
	if !hasEvent(env.notes.Events, "notify:Vibe OS: Focus complete: Ship release") {
		t.Errorf("expected a notification, got %v", env.notes.Events)
	}
	if len(h.Sessions) != 1 || h.Sessions[0].Task != "Ship release" {
		t.Fatalf("expected one focus session, got %+v", h.Sessions)
	}
	saved, _ := env.repo.LoadSessions()
	if len(saved) != 1 {
		t.Errorf("session not persisted: %+v", saved)
	}
}

func TestBreakExpiryRecordsNothing(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h
	h.Timer = timer.New(timer.Durations{timer.ModeShortBreak: time.Second})
	h.Timer.SetMode(timer.ModeShortBreak)

	gen := h.Timer.Start()
	drain(h.Update(components.TimerTickMsg{Gen: gen}))

	if h.Timer.Running() {
		t.Error("break should have expired")
	}
	if len(h.Sessions) != 0 {
		t.Errorf("breaks are not focus sessions, got %+v", h.Sessions)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	env.sendKey("F")
	env.sendKey(" ")
	gen := h.Timer.Generation()
	env.sendKey(" ") // pause
	env.sendKey(" ") // resume with a new schedule

	before := h.Timer.Remaining()
	if cmd := h.Update(components.TimerTickMsg{Gen: gen}); cmd != nil {
		t.Error("stale tick should not re-arm")
	}
	if h.Timer.Remaining() != before {
		t.Error("stale tick should not consume time")
	}

	env.sendKey("r")
	if h.Timer.Running() || h.Timer.Remaining() != 1500 {
		t.Errorf("reset should stop at full length, got %d", h.Timer.Remaining())
	}
}

func TestModeKeys(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h
	env.sendKey("F")

	env.sendKey("2")
	if h.Timer.Mode() != timer.ModeShortBreak || h.Timer.Remaining() != 300 {
		t.Errorf("expected short break, got %s %d", h.Timer.Mode(), h.Timer.Remaining())
	}
	env.sendKey("n")
	if h.Timer.Mode() != timer.ModeLongBreak || h.Timer.Remaining() != 900 {
		t.Errorf("expected long break, got %s %d", h.Timer.Mode(), h.Timer.Remaining())
	}
}

func TestFocusOnTask(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{Tasks: []model.Task{
		{ID: 1, Text: "Refactor parser", DueDate: "2026-10-16"},
	}})
	h := env.h

	for _, msg := range env.sendKey("f") {
		h.Update(msg)
	}
	if h.FocusTask != "Refactor parser" {
		t.Errorf("expected focus task, got %q", h.FocusTask)
	}
	if h.CurrentTab != state.TabFocus {
		t.Error("f should switch to the focus tab")
	}
}

func TestMusicFailureLeavesFlagOff(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	env.player.Err = errors.New("mpv not found")

	env.sendKey("M")
	if env.h.MusicOn {
		t.Error("music flag should stay off when the player fails")
	}
	if env.h.Err == nil || !strings.Contains(env.h.Err.Error(), "music unavailable") {
		t.Errorf("expected a music error, got %v", env.h.Err)
	}
}

func TestMusicToggleAndStaleStop(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	env.sendKey("M")
	if !h.MusicOn {
		t.Fatal("M should turn music on")
	}
	oldGen := h.MusicGen

	env.sendKey("M")
	env.sendKey("M")
	if !h.MusicOn {
		t.Fatal("music should be back on")
	}

	// The first playback ending must not turn the new one off
	h.Update(components.MusicStoppedMsg{Gen: oldGen})
	if !h.MusicOn {
		t.Error("stale stop message should be ignored")
	}

	h.Update(components.MusicStoppedMsg{Gen: h.MusicGen})
	if h.MusicOn {
		t.Error("current playback ending should turn music off")
	}
}

func TestDayRolloverResetsHabits(t *testing.T) {
	today := "2026-10-16"
	env := newTestHandler(t, store.Snapshot{
		Habits: []model.Habit{{ID: 1, Text: "Run", Streak: 4, CompletedToday: true, LastCompleted: &today}},
		Tasks:  []model.Task{{ID: 2, Text: "Dentist", DueDate: "2026-10-17"}},
	})
	h := env.h

	drain(h.Update(checkDayMsg{at: testNow}))
	if !h.Habits[0].CompletedToday {
		t.Fatal("same day check must not reset habits")
	}

	drain(h.Update(checkDayMsg{at: testNow.AddDate(0, 0, 1)}))
	if h.Today != "2026-10-17" || h.SelectedDate != "2026-10-17" {
		t.Errorf("expected the date to follow the day, got %s / %s", h.Today, h.SelectedDate)
	}
	if h.Habits[0].CompletedToday || h.Habits[0].Streak != 4 {
		t.Errorf("habit should reset and keep its streak, got %+v", h.Habits[0])
	}
	if h.StatusMsg != "1 task due today" {
		t.Errorf("unexpected status %q", h.StatusMsg)
	}
	if !hasEvent(env.notes.Events, "notify:Vibe OS: 1 task due today") {
		t.Errorf("expected a due notification, got %v", env.notes.Events)
	}

	saved, _ := env.repo.LoadHabits("2026-10-17")
	if len(saved) != 1 || saved[0].CompletedToday {
		t.Errorf("reset not persisted: %+v", saved)
	}
}

func TestSaveFailureSurfacesError(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	msgs := drain(h.coordinator.Actions().AddTask(model.NewTask{Text: "ok"}))
	if len(msgs) != 0 {
		t.Fatalf("expected a clean save, got %v", msgs)
	}

	h.Update(components.ErrMsg{Err: errors.New("failed to save: disk full")})
	if h.Err == nil {
		t.Error("error should be shown")
	}
	h.Update(keyMsg("esc"))
	if h.Err != nil {
		t.Error("esc should dismiss the error")
	}
}

func TestQuitStopsMusic(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	env.sendKey("M")

	cmd := env.h.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if env.player.Playing() {
		t.Error("quitting should stop the music")
	}
}

// lockedKV fails the first reads, then behaves like memory.
type lockedKV struct {
	*store.MemoryKV
	failures int
}

func (l *lockedKV) Get(key string) (string, bool, error) {
	if l.failures > 0 {
		l.failures--
		return "", false, errors.New("database is locked")
	}
	return l.MemoryKV.Get(key)
}

// newUnloadedHandler builds a handler over kv without delivering the
// initial load.
func newUnloadedHandler(t *testing.T, kv store.KV) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:    store.NewRepository(kv, nil),
		effects: &audio.Recorder{},
		notes:   &audio.Recorder{},
		player:  &audio.NoopPlayer{},
	}
	s := state.New(config.DefaultConfig(), state.Deps{
		Repo:     env.repo,
		Player:   env.player,
		Effects:  env.effects,
		Notifier: env.notes,
		Now:      func() time.Time { return testNow },
	})
	env.h = NewHandler(s)
	return env
}

func seedTwoTasks(t *testing.T, kv store.KV) {
	t.Helper()
	repo := store.NewRepository(kv, nil)
	err := repo.SaveTasks([]model.Task{
		{ID: 1, Text: "Ship release", DueDate: "2026-10-16"},
		{ID: 2, Text: "Groceries", DueDate: "2026-10-16"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func storedTasks(t *testing.T, kv store.KV) []model.Task {
	t.Helper()
	tasks, err := store.NewRepository(kv, nil).LoadTasks()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return tasks
}

func TestEditsBeforeLoadAreRefused(t *testing.T) {
	kv := store.NewMemory()
	seedTwoTasks(t, kv)
	env := newUnloadedHandler(t, kv)
	h := env.h

	env.sendKey("a")
	env.typeText("new")
	for _, msg := range env.sendKey("enter") {
		h.Update(msg)
	}

	if len(h.Tasks) != 0 {
		t.Errorf("list must not change while loading, got %d tasks", len(h.Tasks))
	}
	if h.StatusMsg != "Still loading..." {
		t.Errorf("expected a loading notice, got %q", h.StatusMsg)
	}
	if got := storedTasks(t, kv); len(got) != 2 {
		t.Fatalf("stored tasks overwritten: %+v", got)
	}

	h.Update(h.LoadInitialData()())
	if !h.Loaded || len(h.Tasks) != 2 {
		t.Fatalf("expected 2 loaded tasks, got %d (loaded=%v)", len(h.Tasks), h.Loaded)
	}

	env.sendKey("a")
	env.typeText("new")
	for _, msg := range env.sendKey("enter") {
		h.Update(msg)
	}
	if got := storedTasks(t, kv); len(got) != 3 {
		t.Errorf("expected 3 stored tasks after load, got %d", len(got))
	}
}

func TestFailedLoadIsReadOnlyUntilReload(t *testing.T) {
	kv := &lockedKV{MemoryKV: store.NewMemory(), failures: 1}
	seedTwoTasks(t, kv.MemoryKV)
	env := newUnloadedHandler(t, kv)
	h := env.h

	h.Update(h.LoadInitialData()())
	if h.Loading || h.Loaded {
		t.Fatalf("expected a finished, failed load: loading=%v loaded=%v", h.Loading, h.Loaded)
	}
	if h.Err == nil || !strings.Contains(h.Err.Error(), "database is locked") {
		t.Fatalf("expected the load error to be shown, got %v", h.Err)
	}

	env.sendKey("a")
	env.typeText("new")
	for _, msg := range env.sendKey("enter") {
		h.Update(msg)
	}
	for _, msg := range env.sendKey("T") {
		h.Update(msg)
	}
	if len(h.Tasks) != 0 {
		t.Errorf("list must not change after a failed load, got %d tasks", len(h.Tasks))
	}
	if got := storedTasks(t, kv.MemoryKV); len(got) != 2 {
		t.Fatalf("stored tasks overwritten: %+v", got)
	}
	if _, ok, _ := kv.MemoryKV.Get(store.KeyTheme); ok {
		t.Error("theme must not be written after a failed load")
	}

	env.runCommand("reload")
	if !h.Loaded || len(h.Tasks) != 2 {
		t.Fatalf("reload should bring back 2 tasks, got %d (loaded=%v)", len(h.Tasks), h.Loaded)
	}
	if h.Err != nil {
		t.Errorf("reload should clear the error, got %v", h.Err)
	}
}

func TestConfiguredThemeUsedWhenNoneStored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = model.ThemeForest
	h := NewHandler(state.New(cfg, state.Deps{Now: func() time.Time { return testNow }}))

	if h.Theme != model.ThemeForest {
		t.Errorf("expected the configured theme before load, got %s", h.Theme)
	}
	h.Update(dataLoadedMsg{snapshot: store.Snapshot{Theme: "Neon"}})
	if h.Theme != model.ThemeForest {
		t.Errorf("expected the configured theme as fallback, got %s", h.Theme)
	}
}

func TestMusicExitErrorClearsStatus(t *testing.T) {
	env := newTestHandler(t, store.Snapshot{})
	h := env.h

	env.sendKey("M")
	if !h.MusicOn || h.StatusMsg == "" {
		t.Fatalf("expected music on with a status, got on=%v %q", h.MusicOn, h.StatusMsg)
	}
	h.Update(components.MusicStoppedMsg{Gen: h.MusicGen, Err: errors.New("mpv: exit status 2")})

	if h.MusicOn {
		t.Error("music flag should be off")
	}
	if h.StatusMsg != "" {
		t.Errorf("stale status should be cleared, got %q", h.StatusMsg)
	}
	if h.Err == nil {
		t.Error("player error should be shown")
	}
}
