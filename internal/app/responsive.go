package app

// LayoutMode represents the display width category for responsive layout.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // <40 chars: page counter only
	LayoutMedium                   // 40-79: counter and help hint
	LayoutWide                     // 80+: counter, scroll state and help hint
)

// GetLayoutMode returns the appropriate layout mode for the given terminal width.
func GetLayoutMode(width int) LayoutMode {
	switch {
	case width < 40:
		return LayoutNarrow
	case width < 80:
		return LayoutMedium
	default:
		return LayoutWide
	}
}

// StatusBarHeight returns the height of the status bar (always 1 row).
func StatusBarHeight() int {
	return 1
}

// StripHeight returns the rows given to a tab strip that wants want rows,
// leaving room for the status bar.
func StripHeight(totalHeight, want int) int {
	return max(0, min(want, totalHeight-StatusBarHeight()))
}

// ContentHeight returns the available height for pages after subtracting
// the tab strip and status bar from the total terminal height.
func ContentHeight(totalHeight, stripHeight int) int {
	h := totalHeight - stripHeight - StatusBarHeight()
	if h < 0 {
		return 0
	}
	return h
}
