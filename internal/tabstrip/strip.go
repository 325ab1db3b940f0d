package tabstrip

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/tnguyen21/funtab/internal/pager"
)

type styles struct {
	normal     lipgloss.Style
	selected   lipgloss.Style
	background lipgloss.Style
	indicator  lipgloss.Style
}

func newStyles(c Config) styles {
	r := c.Renderer
	bg := r.NewStyle()
	if c.Background != nil {
		bg = bg.Background(c.Background)
	}
	text := r.NewStyle().Inherit(c.TextAppearance).Inherit(bg)
	return styles{
		normal:     text.Foreground(c.DefaultTextColor),
		selected:   text.Foreground(c.SelectedTextColor),
		background: bg,
		indicator:  bg.Foreground(c.IndicatorColor),
	}
}

// Strip is a tab strip bound to a paged container. It implements
// pager.Listener; all of its state changes are driven by the container's
// events.
type Strip struct {
	cfg       Config
	container Container
	tracker   *Tracker
	ctrl      *Controller
	styles    styles
	logger    *log.Logger

	width  int
	height int
}

var _ pager.Listener = (*Strip)(nil)

// New builds an unattached strip. It fails with ErrInvalidConfiguration when
// cfg is invalid.
func New(cfg Config) (*Strip, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.resolve()
	tracker := newTracker(cfg.VisibleTabs, cfg.IndicatorHeight)
	return &Strip{
		cfg:     cfg,
		tracker: tracker,
		ctrl:    newController(tracker),
		styles:  newStyles(cfg),
		logger:  cfg.Logger,
	}, nil
}

// NewAttached builds a strip and attaches it to c.
func NewAttached(cfg Config, c Container) (*Strip, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := s.Attach(c); err != nil {
		return nil, err
	}
	return s, nil
}

// Attach binds the strip to c, taking over c's listener slot. Tabs are built
// from c's pages and the selection starts on c's current page. A strip
// already attached elsewhere is detached first, and a strip that held c's
// slot before is detached too.
func (s *Strip) Attach(c Container) error {
	if c == nil {
		return fmt.Errorf("%w: paged container is required", ErrInvalidConfiguration)
	}
	if s.container != nil {
		s.Detach()
	}
	if prev, ok := c.Listener().(*Strip); ok && prev != s {
		prev.Detach()
	}
	s.container = c
	c.SetListener(s)
	s.ctrl.Reset(s.materialize())
	current := c.CurrentPage()
	s.ctrl.OnPageSelected(current)
	s.ctrl.OnScroll(current, 0)
	s.logger.Debug("strip attached", "tabs", len(s.ctrl.Tabs()), "current", current)
	return nil
}

// Detach drops the tabs and, if the strip still owns it, clears the
// container's listener slot. Events delivered after Detach are ignored.
func (s *Strip) Detach() {
	if s.container == nil {
		return
	}
	if s.owns(s.container) {
		s.container.SetListener(nil)
	}
	s.container = nil
	s.ctrl.Reset(nil)
	s.logger.Debug("strip detached")
}

func (s *Strip) owns(c Container) bool {
	l, ok := c.Listener().(*Strip)
	return ok && l == s
}

func (s *Strip) Attached() bool { return s.container != nil }

func (s *Strip) materialize() []Tab {
	n := s.container.PageCount()
	tabs := make([]Tab, n)
	for i := range tabs {
		tabs[i] = Tab{Index: i, Title: s.container.PageTitle(i)}
	}
	return tabs
}

// Selected returns the index of the tab the container considers current.
func (s *Strip) Selected() int { return s.ctrl.Selected() }

// Tabs returns the tab views.
func (s *Strip) Tabs() []Tab { return s.ctrl.Tabs() }

// Indicator returns the indicator rectangle in strip content coordinates.
func (s *Strip) Indicator() Rect { return s.tracker.Rect() }

// ScrollX returns how far the strip content is scrolled.
func (s *Strip) ScrollX() int { return s.tracker.ScrollX() }

func (s *Strip) TabWidth() int { return s.tracker.TabWidth() }

func (s *Strip) DragState() pager.ScrollState { return s.ctrl.DragState() }

// Height returns the number of rows the strip wants.
func (s *Strip) Height() int { return Height(s.cfg) }

// OnScroll implements pager.Listener.
func (s *Strip) OnScroll(page int, offset float64, _ int) {
	if s.container == nil {
		return
	}
	s.ctrl.OnScroll(page, offset)
}

// OnPageSelected implements pager.Listener.
func (s *Strip) OnPageSelected(page int) {
	if s.container == nil {
		return
	}
	if !s.ctrl.OnPageSelected(page) {
		s.logger.Debug("ignoring selection of unknown page", "page", page)
	}
}

// OnScrollStateChanged implements pager.Listener.
func (s *Strip) OnScrollStateChanged(state pager.ScrollState) {
	if s.container == nil {
		return
	}
	s.ctrl.OnScrollStateChanged(state)
}

// OnDatasetChanged implements pager.Listener.
func (s *Strip) OnDatasetChanged() {
	if s.container == nil {
		return
	}
	s.ctrl.Reset(s.materialize())
	s.logger.Debug("tabs rebuilt", "tabs", len(s.ctrl.Tabs()), "selected", s.ctrl.Selected())
}

// SetSize is the layout callback.
func (s *Strip) SetSize(w, h int) {
	s.width = max(0, w)
	s.height = max(0, h)
	s.tracker.Layout(s.width, s.height)
}

// Tap asks the container to move to tab i. Taps on tabs that are not
// currently on screen, or on a detached strip, are ignored.
func (s *Strip) Tap(i int) tea.Cmd {
	if s.container == nil || !s.owns(s.container) {
		s.logger.Debug("ignoring tap on detached strip", "index", i)
		return nil
	}
	first, last := s.tracker.VisibleRange()
	if i < first || i > last {
		s.logger.Debug("ignoring tap on recycled tab", "index", i)
		return nil
	}
	s.logger.Debug("tab tapped", "index", i, "selected", s.ctrl.Selected())
	return s.ctrl.Tap(i, s.container)
}

func (s *Strip) Init() tea.Cmd {
	return nil
}

// Update handles clicks. Mouse coordinates are relative to the strip.
func (s *Strip) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		if msg.Y < 0 || msg.Y >= s.height {
			return s, nil
		}
		if i := s.tracker.TabAt(msg.X); i >= 0 {
			return s, s.Tap(i)
		}
	}
	return s, nil
}

func (s *Strip) View() string {
	if s.width == 0 || s.height == 0 {
		return ""
	}
	indicatorRows := min(s.cfg.IndicatorHeight, s.height)
	bodyRows := s.height - indicatorRows

	var rows []string
	if bodyRows > 0 {
		rows = append(rows, s.renderTabs(bodyRows))
	}
	if indicatorRows > 0 {
		rows = append(rows, s.renderIndicator(indicatorRows))
	}
	return strings.Join(rows, "\n")
}

// renderTabs renders only the tabs intersecting the viewport and cuts the
// result to the scrolled window.
func (s *Strip) renderTabs(rows int) string {
	first, last := s.tracker.VisibleRange()
	if last < first {
		return s.styles.background.Width(s.width).Height(rows).Render("")
	}
	w := s.tracker.TabWidth()
	tabs := s.ctrl.Tabs()
	cols := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		cols = append(cols, s.renderTab(tabs[i], w, rows))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	cut := s.tracker.ScrollX() - first*w
	lines := strings.Split(joined, "\n")
	for i, line := range lines {
		line = ansi.Cut(line, cut, cut+s.width)
		if pad := s.width - ansi.StringWidth(line); pad > 0 {
			line += s.styles.background.Render(strings.Repeat(" ", pad))
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (s *Strip) renderTab(tab Tab, w, h int) string {
	p := s.cfg.Padding
	textW := w - p.Start - p.End
	textH := h - p.Top - p.Bottom
	if textW < 1 || textH < 1 {
		return s.styles.background.Width(w).Height(h).Render("")
	}
	st := s.styles.normal
	if tab.Selected {
		st = s.styles.selected
	}
	text := st.
		Width(textW).
		Height(textH).
		MaxHeight(textH).
		Align(lipgloss.Center, lipgloss.Center).
		Render(Label(tab.Title, textW))
	return s.styles.background.
		Padding(p.Top, p.End, p.Bottom, p.Start).
		Render(text)
}

func (s *Strip) renderIndicator(rows int) string {
	r := s.tracker.Rect()
	scroll := float64(s.tracker.ScrollX())
	left := min(max(int(math.Round(r.Left-scroll)), 0), s.width)
	right := min(max(int(math.Round(r.Right-scroll)), left), s.width)

	glyph := "━"
	if rows > 1 {
		glyph = "█"
	}
	line := s.fill(s.styles.background, " ", left) +
		s.fill(s.styles.indicator, glyph, right-left) +
		s.fill(s.styles.background, " ", s.width-right)

	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (s *Strip) fill(st lipgloss.Style, glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	return st.Render(strings.Repeat(glyph, n))
}
