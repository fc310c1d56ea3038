package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/tui/state"
)

// HabitsView handles the Habits tab.
type HabitsView struct {
	*BaseView
}

// NewHabitsView creates a new HabitsView.
func NewHabitsView(s *state.State) *HabitsView {
	return &HabitsView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *HabitsView) Name() string {
	return "habits"
}

// OnEnter is called when switching to this view.
func (v *HabitsView) OnEnter() tea.Cmd {
	v.State.ClampCursors()
	return nil
}

// OnExit is called when leaving this view.
func (v *HabitsView) OnExit() {
	v.State.KeyState.Reset()
}

// HandleKey processes keyboard input for this view.
func (v *HabitsView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	km, ok := v.State.Keymap.(state.KeymapData)
	if !ok {
		km = state.DefaultKeymap()
	}
	action, consumed := v.State.KeyState.HandleKey(msg, km)
	if !consumed {
		return nil, false
	}

	n := len(v.State.Habits)
	switch action {
	case "up":
		MoveCursor(&v.State.HabitCursor, -1, n)
	case "down":
		MoveCursor(&v.State.HabitCursor, 1, n)
	case "top":
		v.State.HabitCursor = 0
	case "bottom":
		MoveCursor(&v.State.HabitCursor, n, n)
	case "add":
		v.State.InputForm = state.NewInputForm(state.FormHabit)
		v.State.InputForm.SetWidth(v.State.Width)
		v.State.PreviousView = v.State.CurrentView
		v.State.CurrentView = state.ViewInput
	case "toggle":
		return v.HandleSelect(), true
	case "delete":
		if h, ok := v.State.SelectedHabit(); ok {
			return v.DeleteHabit(h.ID), true
		}
	case "copy":
		if h, ok := v.State.SelectedHabit(); ok {
			return v.Copy(h.Text), true
		}
	case "":
		// first key of a sequence
	default:
		// Date filter keys mean nothing here.
		return nil, false
	}
	return nil, true
}

// HandleSelect toggles the habit under the cursor.
func (v *HabitsView) HandleSelect() tea.Cmd {
	h, ok := v.State.SelectedHabit()
	if !ok {
		return nil
	}
	return v.ToggleHabit(h.ID)
}

// HandleBack processes Escape for this view.
func (v *HabitsView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}
