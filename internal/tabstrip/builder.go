package tabstrip

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Builder assembles a Config fluently and builds an attached Strip.
//
//	strip, err := tabstrip.NewBuilder().
//		Container(p).
//		VisibleTabs(4).
//		IndicatorColor(lipgloss.Color("#59c2ff")).
//		Build()
type Builder struct {
	cfg       Config
	container Container
}

// NewBuilder starts from DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Container sets the paged container to bind to. Required.
func (b *Builder) Container(c Container) *Builder {
	b.container = c
	return b
}

func (b *Builder) Padding(start, top, end, bottom int) *Builder {
	b.cfg.Padding = Padding{Start: start, Top: top, End: end, Bottom: bottom}
	return b
}

func (b *Builder) TextAppearance(st lipgloss.Style) *Builder {
	b.cfg.TextAppearance = st
	return b
}

func (b *Builder) Background(c lipgloss.TerminalColor) *Builder {
	b.cfg.Background = c
	return b
}

func (b *Builder) SelectedTextColor(c lipgloss.TerminalColor) *Builder {
	b.cfg.SelectedTextColor = c
	return b
}

func (b *Builder) DefaultTextColor(c lipgloss.TerminalColor) *Builder {
	b.cfg.DefaultTextColor = c
	return b
}

func (b *Builder) IndicatorColor(c lipgloss.TerminalColor) *Builder {
	b.cfg.IndicatorColor = c
	return b
}

// IndicatorHeight sets the indicator height in rows. It must be positive.
func (b *Builder) IndicatorHeight(h int) *Builder {
	b.cfg.IndicatorHeight = h
	return b
}

func (b *Builder) VisibleTabs(n int) *Builder {
	b.cfg.VisibleTabs = n
	return b
}

func (b *Builder) Renderer(r *lipgloss.Renderer) *Builder {
	b.cfg.Renderer = r
	return b
}

func (b *Builder) Logger(l *log.Logger) *Builder {
	b.cfg.Logger = l
	return b
}

// Config returns the configuration assembled so far.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build validates the configuration and returns a strip attached to the
// container. Nothing is attached when it fails.
func (b *Builder) Build() (*Strip, error) {
	if b.container == nil {
		return nil, fmt.Errorf("%w: paged container is required", ErrInvalidConfiguration)
	}
	return NewAttached(b.cfg, b.container)
}
