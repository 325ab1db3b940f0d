// Package tabstrip renders a horizontally scrolling strip of equal-width text
// tabs bound to a paged container. The strip mirrors the container's scroll
// progress with an indicator bar and turns clicks on tabs into page changes.
package tabstrip

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tnguyen21/funtab/internal/logging"
	"github.com/tnguyen21/funtab/internal/pager"
	"github.com/tnguyen21/funtab/internal/theme"
)

// ErrInvalidConfiguration is returned when a strip cannot be constructed
// from its configuration.
var ErrInvalidConfiguration = errors.New("invalid tab strip configuration")

const (
	// DefaultIndicatorHeight is the indicator height of DefaultConfig and
	// the builder.
	DefaultIndicatorHeight = 1

	// DefaultVisibleTabs is the budget used by the builder and the config
	// file defaults.
	DefaultVisibleTabs = 4
)

// Container is the paged container a strip binds to.
type Container interface {
	PageCount() int
	PageTitle(i int) string
	CurrentPage() int
	// AnimateTo asks the container to move to page i. The container
	// reports the outcome through its listener.
	AnimateTo(i int) tea.Cmd
	// SetListener replaces the container's listener; nil clears it.
	SetListener(l pager.Listener)
	// Listener returns the listener currently in the container's slot.
	Listener() pager.Listener
}

// Padding around each tab's text, in cells.
type Padding struct {
	Start, Top, End, Bottom int
}

// Config is the strip configuration. It is immutable once a Strip has been
// built from it.
type Config struct {
	Padding Padding

	// TextAppearance styles tab text. Padding and margins set on it are
	// ignored; use Padding.
	TextAppearance lipgloss.Style
	Background     lipgloss.TerminalColor

	// SelectedTextColor defaults to the ambient primary text color.
	SelectedTextColor lipgloss.TerminalColor
	// DefaultTextColor defaults to the foreground of TextAppearance, or the
	// ambient muted color when TextAppearance has none.
	DefaultTextColor lipgloss.TerminalColor

	// IndicatorHeight in rows. Must be at least 1.
	IndicatorHeight int
	// IndicatorColor defaults to the ambient accent color.
	IndicatorColor lipgloss.TerminalColor

	// VisibleTabs is the number of tabs that must fit across the strip when
	// there are more tabs than fit. Must be at least 1.
	VisibleTabs int

	// Renderer resolves adaptive colors and renders styles. Nil selects the
	// default renderer.
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// DefaultConfig returns a valid configuration with the default budget and
// indicator height. Everything else is left to the theme.
func DefaultConfig() Config {
	return Config{
		VisibleTabs:     DefaultVisibleTabs,
		IndicatorHeight: DefaultIndicatorHeight,
	}
}

func (c Config) validate() error {
	if c.VisibleTabs < 1 {
		return fmt.Errorf("%w: visible tab budget must be at least 1, got %d", ErrInvalidConfiguration, c.VisibleTabs)
	}
	if c.IndicatorHeight < 1 {
		return fmt.Errorf("%w: indicator height must be positive, got %d", ErrInvalidConfiguration, c.IndicatorHeight)
	}
	p := c.Padding
	if p.Start < 0 || p.Top < 0 || p.End < 0 || p.Bottom < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %+v", ErrInvalidConfiguration, p)
	}
	return nil
}

// resolve fills in defaults and pins every color to a concrete value for
// the renderer, so later rendering never consults the theme again.
func (c Config) resolve() Config {
	if c.Renderer == nil {
		c.Renderer = lipgloss.DefaultRenderer()
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	if c.SelectedTextColor == nil {
		c.SelectedTextColor = theme.ColorPrimaryText
	}
	if c.DefaultTextColor == nil {
		c.DefaultTextColor = theme.ColorMuted
		if fg := c.TextAppearance.GetForeground(); !isNoColor(fg) {
			c.DefaultTextColor = fg
		}
	}
	if c.IndicatorColor == nil {
		c.IndicatorColor = theme.ColorAccent
	}
	c.SelectedTextColor = theme.Resolve(c.Renderer, c.SelectedTextColor)
	c.DefaultTextColor = theme.Resolve(c.Renderer, c.DefaultTextColor)
	c.IndicatorColor = theme.Resolve(c.Renderer, c.IndicatorColor)
	if c.Background != nil {
		c.Background = theme.Resolve(c.Renderer, c.Background)
	}
	return c
}

// Height returns the number of rows a strip built from c wants: two text
// lines plus vertical padding plus the indicator.
func Height(c Config) int {
	return c.Padding.Top + maxTabTextLines + c.Padding.Bottom + c.IndicatorHeight
}

func isNoColor(c lipgloss.TerminalColor) bool {
	if c == nil {
		return true
	}
	_, ok := c.(lipgloss.NoColor)
	return ok
}
