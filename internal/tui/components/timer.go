package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerTickMsg is sent every second while the focus timer is running.
// Gen is the countdown generation the tick was scheduled for.
type TimerTickMsg struct {
	Gen int
}

// TimerTick returns a command that sends a TimerTickMsg after one second.
func TimerTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TimerTickMsg{Gen: gen}
	})
}

// Large clock digits
var Digits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {" ███ ", "    █", " ███ ", "█    ", " ███ "},
	'3': {" ███ ", "    █", " ███ ", "    █", " ███ "},
	'4': {"█   █", "█   █", " ███ ", "    █", "    █"},
	'5': {" ███ ", "█    ", " ███ ", "    █", " ███ "},
	'6': {" ███ ", "█    ", " ███ ", "█   █", " ███ "},
	'7': {" ███ ", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ███ ", "    █", " ███ "},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// RenderLargeTime renders time in large block characters.
func RenderLargeTime(tStr string) string {
	var rows [5]string
	for _, r := range tStr {
		lines, ok := Digits[r]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			rows[i] += lines[i] + "  "
		}
	}

	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(strings.TrimRight(rows[i], " "))
		if i < 4 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ProgressBar renders a bar of width cells filled to ratio.
func ProgressBar(ratio float64, width int) (filled, empty string) {
	if width <= 0 {
		return "", ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	n := int(ratio*float64(width) + 0.5)
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}
