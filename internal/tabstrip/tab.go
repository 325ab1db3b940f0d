package tabstrip

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const maxTabTextLines = 2

// Tab is the view state of one tab.
type Tab struct {
	Index    int
	Title    string
	Selected bool
}

// Label lays out a tab title for a text area width cells wide: word wrapped,
// at most two lines, with an ellipsis at the end when it does not fit.
func Label(title string, width int) string {
	if width < 1 {
		return ""
	}
	title = strings.Join(strings.Fields(title), " ")
	lines := strings.Split(ansi.Wrap(title, width, ""), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if len(lines) <= maxTabTextLines {
		return strings.Join(lines, "\n")
	}
	rest := strings.Join(lines[maxTabTextLines-1:], " ")
	lines[maxTabTextLines-1] = ansi.Truncate(rest, width, "…")
	return strings.Join(lines[:maxTabTextLines], "\n")
}
