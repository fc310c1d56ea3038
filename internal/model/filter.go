package model

import "math"

// TasksDueOn returns the tasks whose due date is exactly date, in list order.
func TasksDueOn(tasks []Task, date string) []Task {
	var out []Task
	for _, t := range tasks {
		if t.IsDueOn(date) {
			out = append(out, t)
		}
	}
	return out
}

// HasOpenTaskOn reports whether an uncompleted task is due on date.
func HasOpenTaskOn(tasks []Task, date string) bool {
	for _, t := range tasks {
		if t.IsDueOn(date) && !t.Completed {
			return true
		}
	}
	return false
}

// CountCompleted returns how many tasks are completed.
func CountCompleted(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// CompletionPercent returns the rounded share of completed tasks, 0 for none.
func CompletionPercent(tasks []Task) int {
	return Percent(CountCompleted(tasks), len(tasks))
}

// DayCompletionPercent is CompletionPercent over the tasks due on date.
func DayCompletionPercent(tasks []Task, date string) int {
	return CompletionPercent(TasksDueOn(tasks, date))
}

// Percent returns round(part/total*100), or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
