package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/tui/state"
)

// TasksView handles the Tasks tab: the date-filtered task list.
type TasksView struct {
	*BaseView
}

// NewTasksView creates a new TasksView.
func NewTasksView(s *state.State) *TasksView {
	return &TasksView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *TasksView) Name() string {
	return "tasks"
}

// OnEnter is called when switching to this view.
func (v *TasksView) OnEnter() tea.Cmd {
	v.State.ClampCursors()
	return nil
}

// OnExit is called when leaving this view.
func (v *TasksView) OnExit() {
	v.State.KeyState.Reset()
}

// HandleKey processes keyboard input for this view.
func (v *TasksView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	km, ok := v.State.Keymap.(state.KeymapData)
	if !ok {
		km = state.DefaultKeymap()
	}
	action, consumed := v.State.KeyState.HandleKey(msg, km)
	if !consumed {
		return nil, false
	}

	n := len(v.State.VisibleTasks())
	switch action {
	case "up":
		MoveCursor(&v.State.TaskCursor, -1, n)
	case "down":
		MoveCursor(&v.State.TaskCursor, 1, n)
	case "top":
		v.State.TaskCursor = 0
	case "bottom":
		MoveCursor(&v.State.TaskCursor, n, n)
	case "add":
		v.State.InputForm = state.NewInputForm(state.FormTask)
		v.State.InputForm.SetWidth(v.State.Width)
		v.State.PreviousView = v.State.CurrentView
		v.State.CurrentView = state.ViewInput
	case "toggle":
		return v.HandleSelect(), true
	case "delete":
		if t, ok := v.State.SelectedTask(); ok {
			return v.DeleteTask(t.ID), true
		}
	case "copy":
		if t, ok := v.State.SelectedTask(); ok {
			return v.Copy(t.Text), true
		}
	case "focus_on":
		if t, ok := v.State.SelectedTask(); ok {
			v.FocusOn(t.Text)
			return func() tea.Msg { return SwitchTabMsg{Tab: state.TabFocus} }, true
		}
	case "show_all":
		v.ToggleShowAll()
	case "prev_day":
		v.ShiftDay(-1)
	case "next_day":
		v.ShiftDay(1)
	case "today":
		v.SelectDate(v.State.Today)
	}
	return nil, true
}

// HandleSelect toggles the task under the cursor.
func (v *TasksView) HandleSelect() tea.Cmd {
	t, ok := v.State.SelectedTask()
	if !ok {
		return nil
	}
	return v.ToggleTask(t.ID)
}

// HandleBack processes Escape for this view.
func (v *TasksView) HandleBack() (tea.Cmd, bool) {
	if v.State.ShowAllTasks {
		v.ToggleShowAll()
		return nil, false
	}
	return nil, false
}
