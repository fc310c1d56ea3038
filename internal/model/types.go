// Package model holds the Vibe OS domain types and the pure operations over
// them: the task/habit list manager, date filtering, calendar arithmetic and
// statistics.
package model

import (
	"errors"
	"time"
)

// Category is the fixed set of task labels.
type Category string

const (
	CategoryCode   Category = "Code"
	CategoryDesign Category = "Design"
	CategoryLife   Category = "Life"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryCode, CategoryDesign, CategoryLife}

// Priority is the importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority from highest to lowest.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Defaults applied when a submission leaves a field unset.
const (
	DefaultCategory = CategoryLife
	DefaultPriority = PriorityMedium
	DefaultEmoji    = "⚡"
)

// Emojis is the palette offered by the input bar.
var Emojis = []string{"⚡", "🔥", "💻", "🎨", "📚", "🏃", "💧", "🎵", "🍔", "💤", "🛒", "✈️"}

// DateLayout is the on-disk and display format of calendar dates.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyText is returned when a submission has no text after trimming.
	ErrEmptyText = errors.New("text is empty")

	// ErrNotFound is returned when no entity matches an identifier.
	ErrNotFound = errors.New("not found")
)

// Task represents a to-do item.
type Task struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Category  Category `json:"category"`
	Priority  Priority `json:"priority"`
	Emoji     string   `json:"emoji"`
	DueDate   string   `json:"dueDate"` // YYYY-MM-DD, may be empty
}

// Habit represents a recurring daily activity.
type Habit struct {
	ID             int64   `json:"id"`
	Text           string  `json:"text"`
	Emoji          string  `json:"emoji"`
	Streak         int     `json:"streak"`
	LastCompleted  *string `json:"lastCompleted"`
	CompletedToday bool    `json:"completedToday"`
}

// FocusSession records a countdown that ran to zero.
type FocusSession struct {
	ID          string    `json:"id"`
	Mode        string    `json:"mode"`
	Task        string    `json:"task,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// NewTask is the input of AddTask.
type NewTask struct {
	Text     string
	Category Category
	Priority Priority
	Emoji    string
	DueDate  string
}

// NewHabit is the input of AddHabit.
type NewHabit struct {
	Text  string
	Emoji string
}

// IsDueOn reports whether the task is due on the given date.
func (t Task) IsDueOn(date string) bool {
	return t.DueDate != "" && t.DueDate == date
}

// DoneOn reports whether the habit was last completed on the given date.
func (h Habit) DoneOn(date string) bool {
	return h.LastCompleted != nil && *h.LastCompleted == date
}

// FormatDate formats t as a calendar date in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseCategory returns the category named s, or false if s is not one.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// ParsePriority returns the priority named s, or false if s is not one.
func ParsePriority(s string) (Priority, bool) {
	for _, p := range Priorities {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// NextCategory cycles through Categories by delta.
func NextCategory(c Category, delta int) Category {
	return Categories[cycleIndex(indexOf(Categories, c), delta, len(Categories))]
}

// NextPriority cycles through Priorities by delta.
func NextPriority(p Priority, delta int) Priority {
	return Priorities[cycleIndex(indexOf(Priorities, p), delta, len(Priorities))]
}

// NextEmoji cycles through Emojis by delta.
func NextEmoji(e string, delta int) string {
	return Emojis[cycleIndex(indexOf(Emojis, e), delta, len(Emojis))]
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func cycleIndex(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
