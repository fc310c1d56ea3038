package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vibeos/vibe-os/internal/config"
	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/tui/state"
)

func newTestRenderer() *Renderer {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.Local)
	s := state.New(config.DefaultConfig(), state.Deps{Now: func() time.Time { return now }})
	s.Loading = false
	s.Width = 100
	s.Height = 30
	s.Tasks = []model.Task{
		{ID: 1, Text: "Ship release", Category: model.CategoryCode, Priority: model.PriorityHigh, Emoji: "💻", DueDate: "2026-10-16"},
		{ID: 2, Text: "Buy plants", Category: model.CategoryLife, Priority: model.PriorityLow, Emoji: "🛒", DueDate: "2026-10-16", Completed: true},
		{ID: 3, Text: "Sketch logo", Category: model.CategoryDesign, Priority: model.PriorityMedium, Emoji: "🎨", DueDate: "2026-10-20"},
	}
	s.Habits = []model.Habit{{ID: 4, Text: "Read", Emoji: "📚", Streak: 7, CompletedToday: true}}
	return NewRenderer(s)
}

func TestViewBeforeSize(t *testing.T) {
	r := newTestRenderer()
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", got)
	}
}

func TestRenderTasksForSelectedDate(t *testing.T) {
	r := newTestRenderer()
	out := r.View()

	for _, want := range []string{"Ship release", "50% done", "Friday 16 Oct 2026", "Tasks"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Contains(out, "Sketch logo") {
		t.Error("task due another day should be hidden")
	}
}

func TestRenderAllTasks(t *testing.T) {
	r := newTestRenderer()
	r.ShowAllTasks = true
	out := r.View()

	if !strings.Contains(out, "All tasks") || !strings.Contains(out, "Sketch logo") {
		t.Error("all-tasks mode should list every task")
	}
	if !strings.Contains(out, "2026-10-20") {
		t.Error("all-tasks mode should show due dates")
	}
}

func TestRenderEmptyDay(t *testing.T) {
	r := newTestRenderer()
	r.SelectedDate = "2026-11-01"
	if out := r.View(); !strings.Contains(out, "Nothing due this day") {
		t.Error("expected an empty-day message")
	}
}

func TestRenderHabits(t *testing.T) {
	r := newTestRenderer()
	r.CurrentTab = state.TabHabits
	out := r.View()

	if !strings.Contains(out, "Read") || !strings.Contains(out, "🔥 7") {
		t.Error("expected habit with its streak")
	}
	if !strings.Contains(out, "1/1 today") {
		t.Error("expected today's habit count")
	}
}

func TestRenderFocus(t *testing.T) {
	r := newTestRenderer()
	r.CurrentTab = state.TabFocus
	r.FocusTask = "Ship release"
	out := r.View()

	for _, want := range []string{"Focus", "Short Break", "Long Break", "Current focus:", "Ship release", "Ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in focus view", want)
		}
	}

	r.Height = 10
	if out := r.View(); !strings.Contains(out, "25:00") {
		t.Error("small terminals should show the plain time")
	}
}

func TestRenderStatusBar(t *testing.T) {
	r := newTestRenderer()
	r.StatusMsg = "Added: Ship release"
	r.MusicOn = true
	out := r.renderStatusBar()
	if !strings.Contains(out, "Added: Ship release") || !strings.Contains(out, "♫ on") {
		t.Errorf("unexpected status bar %q", out)
	}

	r.Err = errors.New("failed to save: disk full")
	if out := r.renderStatusBar(); !strings.Contains(out, "Error: failed to save") {
		t.Errorf("error should win over status, got %q", out)
	}
}

func TestRenderOverlays(t *testing.T) {
	r := newTestRenderer()

	r.CurrentView = state.ViewStats
	out := r.View()
	if !strings.Contains(out, "Stats") || !strings.Contains(out, "1/3") || !strings.Contains(out, "33%") {
		t.Error("stats overlay should show task totals")
	}

	r.CurrentView = state.ViewInput
	r.InputForm = state.NewInputForm(state.FormTask)
	out = r.View()
	if !strings.Contains(out, "New task") || !strings.Contains(out, string(model.DefaultCategory)) {
		t.Error("input bar should show the category picker")
	}

	r.InputForm = state.NewInputForm(state.FormHabit)
	out = r.View()
	if !strings.Contains(out, "New habit") || strings.Contains(out, string(model.DefaultPriority)) {
		t.Error("habit input should not offer a priority")
	}
}

func TestRenderCommandLine(t *testing.T) {
	r := newTestRenderer()
	r.CommandLine.Open()
	r.CommandLine.Suggestions = []string{"theme"}
	out := r.View()
	if !strings.Contains(out, ":") || !strings.Contains(out, "theme") {
		t.Error("command line should replace the status bar")
	}
}

func TestTabBarCacheFollowsTheme(t *testing.T) {
	r := newTestRenderer()
	first := r.renderTabBar()
	if r.CachedTabBar != first {
		t.Fatal("tab bar should be cached")
	}
	r.Theme = model.ThemeOcean
	r.renderTabBar()
	if r.CachedTabBarTheme != model.ThemeOcean {
		t.Error("theme change should rebuild the tab bar")
	}
}

func TestLongListScrollsToCursor(t *testing.T) {
	r := newTestRenderer()
	r.Tasks = nil
	for i := 0; i < 60; i++ {
		r.Tasks = append(r.Tasks, model.Task{ID: int64(i + 1), Text: "item", DueDate: "2026-10-16", Emoji: "⚡"})
	}
	r.Tasks[59].Text = "last one"
	r.TaskCursor = 59

	if out := r.View(); !strings.Contains(out, "last one") {
		t.Error("cursor row should be scrolled into view")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"🔥🔥🔥", 4, "🔥…"},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d): expected %q, got %q", tt.in, tt.max, tt.want, got)
		}
	}
}
