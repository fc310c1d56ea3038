package model

// Stats is the dashboard summary.
type Stats struct {
	TotalTasks      int
	CompletedTasks  int
	CompletionRate  int // percent
	BestStreak      int
	HabitsDoneToday int
	TotalHabits     int
	HabitRate       int // percent of habits done today
	FocusToday      int
}

// Summarize computes the dashboard numbers for the given day.
func Summarize(tasks []Task, habits []Habit, sessions []FocusSession, today string) Stats {
	s := Stats{
		TotalTasks:     len(tasks),
		CompletedTasks: CountCompleted(tasks),
		TotalHabits:    len(habits),
	}
	s.CompletionRate = Percent(s.CompletedTasks, s.TotalTasks)

	for _, h := range habits {
		if h.Streak > s.BestStreak {
			s.BestStreak = h.Streak
		}
		if h.CompletedToday {
			s.HabitsDoneToday++
		}
	}
	s.HabitRate = Percent(s.HabitsDoneToday, s.TotalHabits)

	for _, fs := range sessions {
		if FormatDate(fs.CompletedAt.Local()) == today {
			s.FocusToday++
		}
	}
	return s
}
