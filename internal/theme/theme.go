package theme

import "github.com/charmbracelet/lipgloss"

// Ayu color palette. AdaptiveColor for light/dark terminal support.
var (
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}

	// ColorPrimaryText is the ambient foreground for emphasised text.
	ColorPrimaryText = lipgloss.AdaptiveColor{Light: "#5c6166", Dark: "#e6e1cf"}

	ColorBar = lipgloss.AdaptiveColor{Light: "#e7e8e9", Dark: "#1f2430"}
)

// Semantic text styles.
var (
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)

// TabTextStyle is the default text appearance of a strip tab.
var TabTextStyle = lipgloss.NewStyle().Bold(true)

// StatusBarStyle for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Background(ColorBar).
	Foreground(ColorMuted).
	Padding(0, 1)

// Page styles.
var (
	PageHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	PageEmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Resolve collapses an adaptive color into the concrete color the renderer
// would pick for its background. Other colors are returned unchanged.
func Resolve(r *lipgloss.Renderer, c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	switch c := c.(type) {
	case lipgloss.AdaptiveColor:
		if r.HasDarkBackground() {
			return lipgloss.Color(c.Dark)
		}
		return lipgloss.Color(c.Light)
	case lipgloss.CompleteAdaptiveColor:
		if r.HasDarkBackground() {
			return c.Dark
		}
		return c.Light
	}
	return c
}
