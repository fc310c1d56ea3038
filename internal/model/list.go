package model

import "strings"

type identified interface {
	Task | Habit
}

func idOf[T identified](item T) int64 {
	switch v := any(item).(type) {
	case Task:
		return v.ID
	case Habit:
		return v.ID
	}
	return 0
}

// deleteByID returns a new slice without the first element matching id.
func deleteByID[T identified](items []T, id int64) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if !removed && idOf(item) == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

// AddTask prepends a new task built from in.
// Empty text leaves the list unchanged and returns ErrEmptyText.
func AddTask(tasks []Task, in NewTask, id int64) ([]Task, error) {
	if strings.TrimSpace(in.Text) == "" {
		return tasks, ErrEmptyText
	}

	t := Task{
		ID:       id,
		Text:     in.Text,
		Category: in.Category,
		Priority: in.Priority,
		Emoji:    in.Emoji,
		DueDate:  in.DueDate,
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Priority == "" {
		t.Priority = DefaultPriority
	}
	if t.Emoji == "" {
		t.Emoji = DefaultEmoji
	}

	out := make([]Task, 0, len(tasks)+1)
	out = append(out, t)
	return append(out, tasks...), nil
}

// ToggleTask flips the completion flag of the task with the given id.
func ToggleTask(tasks []Task, id int64) ([]Task, error) {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			return out, nil
		}
	}
	return tasks, ErrNotFound
}

// DeleteTask removes the task with the given id, keeping the others in order.
func DeleteTask(tasks []Task, id int64) ([]Task, error) {
	out, ok := deleteByID(tasks, id)
	if !ok {
		return tasks, ErrNotFound
	}
	return out, nil
}

// FindTask returns the task with the given id.
func FindTask(tasks []Task, id int64) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// AddHabit prepends a new habit with a zero streak.
// Empty text leaves the list unchanged and returns ErrEmptyText.
func AddHabit(habits []Habit, in NewHabit, id int64) ([]Habit, error) {
	if strings.TrimSpace(in.Text) == "" {
		return habits, ErrEmptyText
	}

	emoji := in.Emoji
	if emoji == "" {
		emoji = DefaultEmoji
	}

	out := make([]Habit, 0, len(habits)+1)
	out = append(out, Habit{ID: id, Text: in.Text, Emoji: emoji})
	return append(out, habits...), nil
}

// ToggleHabit marks the habit done for today, or undoes today's mark.
// Marking adds one to the streak and records today; undoing subtracts one
// (never below zero) and clears the last-completed date.
func ToggleHabit(habits []Habit, id int64, today string) ([]Habit, error) {
	out := make([]Habit, len(habits))
	copy(out, habits)
	for i := range out {
		h := &out[i]
		if h.ID != id {
			continue
		}
		if !h.CompletedToday {
			day := today
			h.CompletedToday = true
			h.Streak++
			h.LastCompleted = &day
		} else {
			h.CompletedToday = false
			h.Streak = max(0, h.Streak-1)
			h.LastCompleted = nil
		}
		return out, nil
	}
	return habits, ErrNotFound
}

// DeleteHabit removes the habit with the given id, keeping the others in order.
func DeleteHabit(habits []Habit, id int64) ([]Habit, error) {
	out, ok := deleteByID(habits, id)
	if !ok {
		return habits, ErrNotFound
	}
	return out, nil
}

// FindHabit returns the habit with the given id.
func FindHabit(habits []Habit, id int64) (Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// ResetHabitsForDay clears CompletedToday on every habit not completed on today.
// The second result reports whether anything changed.
func ResetHabitsForDay(habits []Habit, today string) ([]Habit, bool) {
	out := make([]Habit, len(habits))
	copy(out, habits)
	changed := false
	for i := range out {
		if out[i].CompletedToday && !out[i].DoneOn(today) {
			out[i].CompletedToday = false
			changed = true
		}
	}
	return out, changed
}
