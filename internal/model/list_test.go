package model

import (
	"errors"
	"testing"
	"time"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "Ship release", Category: CategoryCode, Priority: PriorityHigh, DueDate: "2026-10-16"},
		{ID: 2, Text: "Sketch logo", Category: CategoryDesign, Priority: PriorityLow, DueDate: "2026-10-17"},
		{ID: 3, Text: "Groceries", Category: CategoryLife, Priority: PriorityMedium, DueDate: "2026-10-16"},
	}
}

func TestAddTask(t *testing.T) {
	tasks := sampleTasks()

	got, err := AddTask(tasks, NewTask{Text: "Write docs", DueDate: "2026-10-18"}, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(tasks)+1 {
		t.Fatalf("expected %d tasks, got %d", len(tasks)+1, len(got))
	}
	first := got[0]
	if first.ID != 42 || first.Text != "Write docs" {
		t.Errorf("new task should be prepended, got %+v", first)
	}
	if first.Category != DefaultCategory || first.Priority != DefaultPriority || first.Emoji != DefaultEmoji {
		t.Errorf("defaults not applied: %+v", first)
	}
	if first.Completed {
		t.Error("new task should not be completed")
	}
	if got[1].ID != 1 {
		t.Errorf("existing tasks should follow the new one, got id %d", got[1].ID)
	}
}

func TestAddTaskIgnoresEmptyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := sampleTasks()
			got, err := AddTask(tasks, NewTask{Text: tt.text}, 99)
			if !errors.Is(err, ErrEmptyText) {
				t.Errorf("expected ErrEmptyText, got %v", err)
			}
			if len(got) != len(tasks) {
				t.Errorf("list length changed: %d -> %d", len(tasks), len(got))
			}
		})
	}

	habits, err := AddHabit(nil, NewHabit{Text: " "}, 1)
	if !errors.Is(err, ErrEmptyText) || len(habits) != 0 {
		t.Errorf("empty habit should be ignored, got %v %v", habits, err)
	}
}

func TestToggleTaskTwiceRestoresState(t *testing.T) {
	tasks := sampleTasks()

	once, err := ToggleTask(tasks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !once[1].Completed {
		t.Error("task 2 should be completed after one toggle")
	}
	if tasks[1].Completed {
		t.Error("toggle must not mutate the input slice")
	}

	twice, err := ToggleTask(once, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range tasks {
		if twice[i] != tasks[i] {
			t.Errorf("index %d: expected %+v, got %+v", i, tasks[i], twice[i])
		}
	}
}

func TestToggleTaskUnknownID(t *testing.T) {
	if _, err := ToggleTask(sampleTasks(), 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTaskKeepsOrder(t *testing.T) {
	tasks := sampleTasks()

	got, err := DeleteTask(tasks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("expected ids [1 3], got [%d %d]", got[0].ID, got[1].ID)
	}

	if _, err := DeleteTask(tasks, 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesExactlyOneMatch(t *testing.T) {
	// Duplicate ids can only appear through hand-edited storage.
	habits := []Habit{{ID: 7, Text: "a"}, {ID: 7, Text: "b"}, {ID: 8, Text: "c"}}

	got, err := DeleteHabit(habits, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Text != "b" || got[1].Text != "c" {
		t.Errorf("expected [b c], got %+v", got)
	}
}

func TestToggleHabit(t *testing.T) {
	today := "2026-10-16"
	habits, err := AddHabit(nil, NewHabit{Text: "Read", Emoji: "📚"}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	habits[0].Streak = 4

	on, err := ToggleHabit(habits, 10, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := on[0]
	if !h.CompletedToday || h.Streak != 5 {
		t.Errorf("expected completed with streak 5, got %+v", h)
	}
	if h.LastCompleted == nil || *h.LastCompleted != today {
		t.Errorf("expected lastCompleted %s, got %v", today, h.LastCompleted)
	}

	off, err := ToggleHabit(on, 10, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h = off[0]
	if h.CompletedToday || h.Streak != 4 || h.LastCompleted != nil {
		t.Errorf("expected undone with streak 4, got %+v", h)
	}
}

func TestToggleHabitStreakFloor(t *testing.T) {
	habits := []Habit{{ID: 1, Text: "Run", CompletedToday: true, Streak: 0}}

	got, err := ToggleHabit(habits, 1, "2026-10-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Streak != 0 {
		t.Errorf("streak should be floored at 0, got %d", got[0].Streak)
	}
	if got[0].CompletedToday {
		t.Error("habit should be undone")
	}
}

func TestResetHabitsForDay(t *testing.T) {
	yesterday := "2026-10-15"
	today := "2026-10-16"
	habits := []Habit{
		{ID: 1, CompletedToday: true, LastCompleted: &yesterday, Streak: 3},
		{ID: 2, CompletedToday: true, LastCompleted: &today, Streak: 1},
		{ID: 3},
	}

	got, changed := ResetHabitsForDay(habits, today)
	if !changed {
		t.Error("expected a change")
	}
	if got[0].CompletedToday {
		t.Error("habit 1 was done yesterday and should be reset")
	}
	if got[0].Streak != 3 {
		t.Error("reset must not touch the streak")
	}
	if !got[1].CompletedToday {
		t.Error("habit 2 was done today and should stay completed")
	}

	if _, changed := ResetHabitsForDay(got, today); changed {
		t.Error("second reset should be a no-op")
	}
}

func TestIDGeneratorIsStrictlyIncreasing(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	g := NewIDGenerator(func() time.Time { return fixed })

	a, b, c := g.Next(), g.Next(), g.Next()
	if a != fixed.UnixMilli() {
		t.Errorf("first id should be the timestamp, got %d", a)
	}
	if !(a < b && b < c) {
		t.Errorf("ids not increasing: %d %d %d", a, b, c)
	}

	g.Seed(fixed.UnixMilli() + 1000)
	if id := g.Next(); id != fixed.UnixMilli()+1001 {
		t.Errorf("seeded generator should continue after seed, got %d", id)
	}
}

func TestCycleHelpers(t *testing.T) {
	if got := NextCategory(CategoryLife, 1); got != CategoryCode {
		t.Errorf("expected wrap to Code, got %s", got)
	}
	if got := NextPriority(PriorityHigh, -1); got != PriorityLow {
		t.Errorf("expected wrap to Low, got %s", got)
	}
	if got := NextEmoji("✈️", 1); got != "⚡" {
		t.Errorf("expected wrap to ⚡, got %s", got)
	}
	if got := NextTheme(ThemeRose, 1); got != ThemePurple {
		t.Errorf("expected wrap to Purple, got %s", got)
	}
}
