package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeos/vibe-os/internal/model"
)

// FormKind selects what the input bar creates.
type FormKind int

const (
	FormTask FormKind = iota
	FormHabit
)

// Input bar fields, in tab order.
const (
	FieldText = iota
	FieldCategory
	FieldPriority
	FieldEmoji
)

// InputForm is the input bar used to add tasks and habits.
// Text is typed; category, priority and emoji are picked with left/right.
type InputForm struct {
	Kind     FormKind
	Input    textinput.Model
	Category model.Category
	Priority model.Priority
	Emoji    string

	FocusIndex int
}

// NewInputForm creates an input bar with the default picks.
func NewInputForm(kind FormKind) *InputForm {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 200
	input.Width = 50
	if kind == FormHabit {
		input.Placeholder = "New habit, e.g. Drink water"
	} else {
		input.Placeholder = "What needs doing?"
	}

	return &InputForm{
		Kind:     kind,
		Input:    input,
		Category: model.DefaultCategory,
		Priority: model.DefaultPriority,
		Emoji:    model.DefaultEmoji,
	}
}

// Fields returns the focusable fields for the form's kind.
func (f *InputForm) Fields() []int {
	if f.Kind == FormHabit {
		return []int{FieldText, FieldEmoji}
	}
	return []int{FieldText, FieldCategory, FieldPriority, FieldEmoji}
}

// Focused returns the field that has focus.
func (f *InputForm) Focused() int {
	fields := f.Fields()
	return fields[f.FocusIndex%len(fields)]
}

// Update handles input events for the form.
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			f.moveFocus(1)
			return nil
		case "shift+tab":
			f.moveFocus(-1)
			return nil
		case "left", "right":
			if f.Focused() != FieldText {
				delta := 1
				if key.String() == "left" {
					delta = -1
				}
				f.cycle(delta)
				return nil
			}
		}
	}

	if f.Focused() != FieldText {
		return nil
	}
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

func (f *InputForm) moveFocus(delta int) {
	n := len(f.Fields())
	f.FocusIndex = ((f.FocusIndex+delta)%n + n) % n
	if f.Focused() == FieldText {
		f.Input.Focus()
	} else {
		f.Input.Blur()
	}
}

func (f *InputForm) cycle(delta int) {
	switch f.Focused() {
	case FieldCategory:
		f.Category = model.NextCategory(f.Category, delta)
	case FieldPriority:
		f.Priority = model.NextPriority(f.Priority, delta)
	case FieldEmoji:
		f.Emoji = model.NextEmoji(f.Emoji, delta)
	}
}

// Value returns the current input value.
func (f *InputForm) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// IsValid returns true if there is content to submit.
func (f *InputForm) IsValid() bool {
	return f.Value() != ""
}

// Clear resets the text for the next entry and keeps the picks.
func (f *InputForm) Clear() {
	f.Input.SetValue("")
	f.FocusIndex = 0
	f.Input.Focus()
}

// NewTask builds a task submission due on date.
func (f *InputForm) NewTask(date string) model.NewTask {
	return model.NewTask{
		Text:     f.Value(),
		Category: f.Category,
		Priority: f.Priority,
		Emoji:    f.Emoji,
		DueDate:  date,
	}
}

// NewHabit builds a habit submission.
func (f *InputForm) NewHabit() model.NewHabit {
	return model.NewHabit{Text: f.Value(), Emoji: f.Emoji}
}

// SetWidth sets the width of the input field.
func (f *InputForm) SetWidth(width int) {
	// Account for dialog borders/padding
	inputWidth := width - 10
	if inputWidth < 30 {
		inputWidth = 30
	}
	if inputWidth > 80 {
		inputWidth = 80
	}
	f.Input.Width = inputWidth
}
