package ui

import "github.com/mattn/go-runewidth"

// truncateString cuts s to maxLen terminal cells, ending in "…" when cut.
// Emoji and CJK count as two cells.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}
