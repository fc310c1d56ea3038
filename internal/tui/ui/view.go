package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vibeos/vibe-os/internal/tui/state"
	"github.com/vibeos/vibe-os/internal/tui/styles"
)

// Renderer draws the state. It never mutates data, only render caches.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	content := r.renderMainView()

	switch r.CurrentView {
	case state.ViewHelp:
		content = r.overlay(r.HelpComp.View())
	case state.ViewCalendar:
		content = r.overlay(r.CalendarComp.View())
	case state.ViewStats:
		content = r.overlay(r.renderStats())
	case state.ViewInput:
		content = r.overlay(r.renderInputBar())
	}

	return content
}

// overlay centers a dialog on the screen.
func (r *Renderer) overlay(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}

// renderMainView renders the main layout with tab bar and content.
func (r *Renderer) renderMainView() string {
	tabBar := r.renderTabBar()

	// Add status bar or command line
	var bottomBar string
	if r.CommandLine != nil && r.CommandLine.Active {
		bottomBar = r.renderCommandLine()
	} else {
		bottomBar = r.renderStatusBar()
	}

	// Calculate content height dynamically (total - tab bar - bottom bar)
	contentHeight := r.Height - lipgloss.Height(tabBar) - lipgloss.Height(bottomBar)
	if contentHeight < 3 {
		contentHeight = 3
	}

	var mainContent string
	switch r.CurrentTab {
	case state.TabHabits:
		mainContent = r.renderHabits(r.Width-2, contentHeight)
	case state.TabFocus:
		mainContent = r.renderFocus(r.Width-4, contentHeight)
	default:
		mainContent = r.renderTasks(r.Width-2, contentHeight)
	}
	mainContent = lipgloss.Place(r.Width, contentHeight, lipgloss.Left, lipgloss.Top, mainContent)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, mainContent, bottomBar)
}

// renderCommandLine renders the vim-style command line.
func (r *Renderer) renderCommandLine() string {
	prompt := styles.CommandPrompt.Render(":")
	input := r.CommandLine.Input.View()

	// Render suggestions if any
	var suggestionsView string
	if len(r.CommandLine.Suggestions) > 0 {
		var suggestionItems []string
		for i, s := range r.CommandLine.Suggestions {
			if i == r.CommandLine.SuggestionCursor {
				suggestionItems = append(suggestionItems, styles.CommandSuggestionSelected.Render(" "+s+" "))
			} else {
				suggestionItems = append(suggestionItems, styles.CommandSuggestion.Render(" "+s+" "))
			}
		}
		suggestionsView = lipgloss.JoinHorizontal(lipgloss.Left, suggestionItems...)
		suggestionsView = lipgloss.NewStyle().Padding(0, 1).Render(suggestionsView)
	}

	cmdLine := lipgloss.JoinHorizontal(lipgloss.Left, prompt, input)
	cmdLine = styles.CommandLineContainer.Width(r.Width).Render(cmdLine)

	if suggestionsView != "" {
		return lipgloss.JoinVertical(lipgloss.Left, suggestionsView, cmdLine)
	}
	return cmdLine
}

// renderTabBar renders the top tab bar.
// Uses caching to avoid re-rendering when tab, width and theme haven't changed.
func (r *Renderer) renderTabBar() string {
	if r.CachedTabBar != "" && r.CachedTabBarTab == r.CurrentTab &&
		r.CachedTabBarWidth == r.Width && r.CachedTabBarTheme == r.Theme {
		return r.CachedTabBar
	}

	tabs := state.GetTabDefinitions()

	// Full: "✅ Tasks", Short: "✅ Tsk", Minimal: "✅"
	useShortLabels := r.Width < 60
	useMinimalLabels := r.Width < 36

	var tabStrs []string
	for _, t := range tabs {
		var label string
		if useMinimalLabels {
			label = t.Icon
		} else if useShortLabels {
			label = fmt.Sprintf("%s %s", t.Icon, t.ShortName)
		} else {
			label = fmt.Sprintf("%s %s", t.Icon, t.Name)
		}

		if r.CurrentTab == t.Tab {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")

	brand := styles.Title.Render("Vibe OS")
	if lipgloss.Width(tabLine)+lipgloss.Width(brand)+6 <= r.Width {
		gap := r.Width - lipgloss.Width(tabLine) - lipgloss.Width(brand) - 4
		tabLine = tabLine + strings.Repeat(" ", gap) + brand
	}

	// Truncate if still too wide
	maxWidth := r.Width - 4
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	result := styles.TabBar.Width(r.Width).Render(tabLine)

	r.CachedTabBar = result
	r.CachedTabBarTab = r.CurrentTab
	r.CachedTabBarWidth = r.Width
	r.CachedTabBarTheme = r.Theme

	return result
}

// renderStatusBar shows the status message or error on the left and the
// music indicator with a few key hints on the right.
func (r *Renderer) renderStatusBar() string {
	var rightParts []string
	if r.MusicOn {
		rightParts = append(rightParts, styles.StatusBarKey.Render("♫ on"))
	}
	if r.Timer.Running() && r.CurrentTab != state.TabFocus {
		rightParts = append(rightParts, styles.StatusBarText.Render("⏱ "+timerText(r.Timer.Remaining())))
	}
	for _, h := range [][2]string{{"?", "help"}, {":", "cmd"}, {"q", "quit"}} {
		rightParts = append(rightParts, styles.StatusBarKey.Render(h[0])+styles.StatusBarText.Render(":"+h[1]))
	}
	right := strings.Join(rightParts, " ")
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	// Ensure left doesn't overwhelm right
	maxLeftWidth := r.Width - rightWidth - padding - 2
	left := ""
	if r.Err != nil {
		errStr := strings.ReplaceAll(r.Err.Error(), "\n", " ")
		left = styles.StatusBarError.Render(truncateString("Error: "+errStr, maxLeftWidth))
	} else if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(truncateString(msgStr, maxLeftWidth))
	}

	spacing := r.Width - lipgloss.Width(left) - rightWidth - padding
	if spacing < 0 {
		spacing = 0
	}

	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}
