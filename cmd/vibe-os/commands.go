package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/store"
	"github.com/vibeos/vibe-os/internal/timer"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		habit    bool
		category string
		priority string
		emoji    string
		due      string
	)

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a task (or a habit with --habit)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			ids := model.NewIDGenerator(time.Now)
			if habit {
				habits, err := e.repo.LoadHabits(today())
				if err != nil {
					return err
				}
				ids.SeedHabits(habits)
				id := ids.Next()
				habits, err = model.AddHabit(habits, model.NewHabit{Text: text, Emoji: emoji}, id)
				if err != nil {
					return err
				}
				if err := e.repo.SaveHabits(habits); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added habit %d: %s\n", id, text)
				return nil
			}

			in := model.NewTask{Text: text, Emoji: emoji, DueDate: today()}
			if category != "" {
				c, ok := model.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				in.Category = c
			}
			if priority != "" {
				p, ok := model.ParsePriority(priority)
				if !ok {
					return fmt.Errorf("unknown priority %q", priority)
				}
				in.Priority = p
			}
			if due != "" {
				d, err := parseDay(due)
				if err != nil {
					return err
				}
				in.DueDate = d
			}

			tasks, err := e.repo.LoadTasks()
			if err != nil {
				return err
			}
			ids.SeedTasks(tasks)
			id := ids.Next()
			tasks, err = model.AddTask(tasks, in, id)
			if err != nil {
				return err
			}
			if err := e.repo.SaveTasks(tasks); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s (due %s)\n", id, text, in.DueDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&habit, "habit", false, "Add a habit instead of a task")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Task category (Code, Design, Life)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Task priority (High, Medium, Low)")
	cmd.Flags().StringVarP(&emoji, "emoji", "e", "", "Emoji shown next to the text")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD, today, tomorrow)")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		habits bool
		date   string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a day, every task, or habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			if habits {
				list, err := e.repo.LoadHabits(today())
				if err != nil {
					return err
				}
				if len(list) == 0 {
					fmt.Fprintln(out, "No habits yet.")
					return nil
				}
				rows := make([][]string, len(list))
				for i, h := range list {
					rows[i] = []string{strconv.FormatInt(h.ID, 10), check(h.CompletedToday), h.Emoji + " " + h.Text, strconv.Itoa(h.Streak)}
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "", "HABIT", "STREAK"}, rows))
				return nil
			}

			tasks, err := e.repo.LoadTasks()
			if err != nil {
				return err
			}
			day := today()
			if date != "" {
				if day, err = parseDay(date); err != nil {
					return err
				}
			}
			if !all {
				tasks = model.TasksDueOn(tasks, day)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks.")
				return nil
			}

			rows := make([][]string, len(tasks))
			for i, t := range tasks {
				rows[i] = []string{strconv.FormatInt(t.ID, 10), check(t.Completed), t.Emoji + " " + t.Text, string(t.Category), string(t.Priority), t.DueDate}
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "", "TASK", "CATEGORY", "PRIORITY", "DUE"}, rows))
			if !all {
				fmt.Fprintf(out, "%s: %d%% done\n", day, model.CompletionPercent(tasks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&habits, "habits", false, "List habits")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Show tasks due on this date (default today)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every task")
	cmd.MarkFlagsMutuallyExclusive("date", "all")
	return cmd
}

func newDoneCmd(opts *rootOptions) *cobra.Command {
	var habit bool
	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a task's completion (or a habit's with --habit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			if habit {
				habits, err := e.repo.LoadHabits(today())
				if err != nil {
					return err
				}
				if habits, err = model.ToggleHabit(habits, id, today()); err != nil {
					return fmt.Errorf("habit %d: %w", id, err)
				}
				if err := e.repo.SaveHabits(habits); err != nil {
					return err
				}
				h, _ := model.FindHabit(habits, id)
				fmt.Fprintf(out, "%s %s (streak %d)\n", check(h.CompletedToday), h.Text, h.Streak)
				return nil
			}

			tasks, err := e.repo.LoadTasks()
			if err != nil {
				return err
			}
			if tasks, err = model.ToggleTask(tasks, id); err != nil {
				return fmt.Errorf("task %d: %w", id, err)
			}
			if err := e.repo.SaveTasks(tasks); err != nil {
				return err
			}
			t, _ := model.FindTask(tasks, id)
			fmt.Fprintf(out, "%s %s\n", check(t.Completed), t.Text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&habit, "habit", false, "Toggle a habit")
	return cmd
}

func newRmCmd(opts *rootOptions) *cobra.Command {
	var habit bool
	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task (or a habit with --habit)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			if habit {
				habits, err := e.repo.LoadHabits(today())
				if err != nil {
					return err
				}
				if habits, err = model.DeleteHabit(habits, id); err != nil {
					return fmt.Errorf("habit %d: %w", id, err)
				}
				if err := e.repo.SaveHabits(habits); err != nil {
					return err
				}
			} else {
				tasks, err := e.repo.LoadTasks()
				if err != nil {
					return err
				}
				if tasks, err = model.DeleteTask(tasks, id); err != nil {
					return fmt.Errorf("task %d: %w", id, err)
				}
				if err := e.repo.SaveTasks(tasks); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&habit, "habit", false, "Delete a habit")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task, habit and focus statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			snap, err := e.repo.Load(today())
			if err != nil {
				return err
			}
			s := model.Summarize(snap.Tasks, snap.Habits, snap.Sessions, today())

			rows := [][]string{
				{"Tasks done", fmt.Sprintf("%d/%d", s.CompletedTasks, s.TotalTasks)},
				{"Completion", fmt.Sprintf("%d%%", s.CompletionRate)},
				{"Best streak", strconv.Itoa(s.BestStreak)},
				{"Habits today", fmt.Sprintf("%d/%d", s.HabitsDoneToday, s.TotalHabits)},
				{"Focus sessions today", strconv.Itoa(s.FocusToday)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"STAT", "VALUE"}, rows))
			return nil
		},
	}
}

func newFocusCmd(opts *rootOptions) *cobra.Command {
	var (
		mode string
		task string
	)

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a countdown in the terminal (ctrl+c cancels)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := timer.ParseMode(mode)
			if err != nil {
				return err
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			c := timer.New(timer.Durations{
				timer.ModeFocus:      e.cfg.Timer.FocusDuration(),
				timer.ModeShortBreak: e.cfg.Timer.ShortBreakDuration(),
				timer.ModeLongBreak:  e.cfg.Timer.LongBreakDuration(),
			})
			c.SetMode(m)

			label := string(m)
			if task != "" {
				label += ": " + task
			}
			log := e.log.WithField("mode", string(m))
			log.Info("headless countdown started")

			expired, err := timer.Run(ctx, c, timer.NewTicker(), func(remaining int) {
				fmt.Fprintf(out, "\r⏱  %s  %s ", timer.Format(remaining), label)
			})
			fmt.Fprintln(out)
			if errors.Is(err, context.Canceled) {
				fmt.Fprintf(out, "Cancelled with %s left.\n", timer.Format(c.Remaining()))
				return nil
			}
			if err != nil || !expired {
				return err
			}

			e.effects().Success()
			msg := fmt.Sprintf("%s complete!", label)
			if err := e.notifier().Notify("Vibe OS", msg); err != nil {
				log.WithError(err).Warn("failed to send notification")
			}
			if m == timer.ModeFocus {
				if _, err := e.repo.AppendSession(store.NewSession(string(m), task, time.Now())); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, msg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "focus", "Timer mode (focus, short, long)")
	cmd.Flags().StringVarP(&task, "task", "t", "", "Task to focus on")
	return cmd
}

// renderTable draws rows with a rounded border and a bold header.
func renderTable(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.Render()
}

func check(done bool) string {
	if done {
		return "✓"
	}
	return "·"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDay accepts YYYY-MM-DD, "today" and "tomorrow".
func parseDay(s string) (string, error) {
	switch strings.ToLower(s) {
	case "today":
		return today(), nil
	case "tomorrow":
		return model.ShiftDate(today(), 1), nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return model.FormatDate(t), nil
}
