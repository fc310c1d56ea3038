package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/timer"
	"github.com/vibeos/vibe-os/internal/tui/state"
)

// FocusView handles the Focus tab and its countdown.
type FocusView struct {
	*BaseView
}

// NewFocusView creates a new FocusView.
func NewFocusView(s *state.State) *FocusView {
	return &FocusView{BaseView: NewBaseView(s)}
}

// Name returns the view identifier.
func (v *FocusView) Name() string {
	return "focus"
}

// OnEnter is called when switching to this view.
func (v *FocusView) OnEnter() tea.Cmd {
	return nil
}

// OnExit is called when leaving this view.
func (v *FocusView) OnExit() {
	// The countdown keeps running in the background
}

// HandleKey processes keyboard input for this view.
func (v *FocusView) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case " ", "enter":
		return v.HandleSelect(), true
	case "r":
		v.ResetTimer()
		return nil, true
	case "1":
		v.SetMode(timer.ModeFocus)
		return nil, true
	case "2":
		v.SetMode(timer.ModeShortBreak)
		return nil, true
	case "3":
		v.SetMode(timer.ModeLongBreak)
		return nil, true
	case "n":
		v.SetMode(timer.NextMode(v.State.Timer.Mode()))
		return nil, true
	case "c":
		v.State.FocusTask = ""
		v.SetStatus("Focus task cleared")
		return nil, true
	}
	return nil, false
}

// HandleSelect starts or pauses the countdown.
func (v *FocusView) HandleSelect() tea.Cmd {
	return v.ToggleTimer()
}

// HandleBack processes Escape for this view.
func (v *FocusView) HandleBack() (tea.Cmd, bool) {
	return nil, false
}
