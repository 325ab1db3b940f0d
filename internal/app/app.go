package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/tnguyen21/funtab/internal/config"
	"github.com/tnguyen21/funtab/internal/logging"
	"github.com/tnguyen21/funtab/internal/pager"
	"github.com/tnguyen21/funtab/internal/pages"
	"github.com/tnguyen21/funtab/internal/tabstrip"
	"github.com/tnguyen21/funtab/internal/theme"
)

// Options configures a root Model.
type Options struct {
	Config config.Config
	// Renderer is the renderer of the terminal the model is drawn on. Nil
	// selects the default renderer.
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// Model is the root bubbletea Model that composes the tab strip, the pager
// and the status bar, and polls for page changes.
type Model struct {
	config      config.Config
	pager       *pager.Pager
	strip       *tabstrip.Strip
	width       int
	height      int
	stripHeight int
	layoutMode  LayoutMode
	keys        KeyMap
	help        help.Model
	showHelp    bool
	fingerprint uint64
	logger      *log.Logger
}

// New creates a root Model with the pages described by the config.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := opts.Config

	loaded := pages.Load(cfg.Pages)
	p := pager.New(loaded, pager.Options{
		Duration: cfg.Animation(),
		Logger:   logger.WithPrefix("pager"),
	})
	strip, err := tabstrip.NewAttached(StripConfig(cfg.Strip, opts.Renderer, logger.WithPrefix("strip")), p)
	if err != nil {
		return Model{}, fmt.Errorf("building tab strip: %w", err)
	}

	return Model{
		config:      cfg,
		pager:       p,
		strip:       strip,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		fingerprint: pages.Fingerprint(loaded),
		logger:      logger,
	}, nil
}

// StripConfig maps the strip section of the config file onto a strip
// configuration. Empty colors are left for the strip to default.
func StripConfig(s config.Strip, r *lipgloss.Renderer, logger *log.Logger) tabstrip.Config {
	return tabstrip.Config{
		Padding: tabstrip.Padding{
			Start:  s.Padding.Start,
			Top:    s.Padding.Top,
			End:    s.Padding.End,
			Bottom: s.Padding.Bottom,
		},
		TextAppearance:    theme.TabTextStyle,
		Background:        color(s.Background),
		SelectedTextColor: color(s.SelectedTextColor),
		DefaultTextColor:  color(s.DefaultTextColor),
		IndicatorHeight:   s.IndicatorHeight,
		IndicatorColor:    color(s.IndicatorColor),
		VisibleTabs:       s.VisibleTabs,
		Renderer:          r,
		Logger:            logger,
	}
}

func color(s string) lipgloss.TerminalColor {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}

// ShortHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Prev, k.Next, k.Help}
}

// FullHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Prev, k.Next},
		{k.Page1, k.Page2, k.Page3, k.Page4},
		{k.Up, k.Down},
		{k.Reload, k.Close, k.Help},
	}
}

// Ensure KeyMap satisfies help.KeyMap at compile time.
var _ help.KeyMap = KeyMap{}

// Init starts page reload polling.
func (m Model) Init() tea.Cmd {
	return pages.ScheduleReload(m.config.Reload())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutMode = GetLayoutMode(msg.Width)
		m.help.Width = msg.Width
		m.stripHeight = StripHeight(msg.Height, m.strip.Height())
		m.strip.SetSize(msg.Width, m.stripHeight)
		m.pager.SetSize(msg.Width, ContentHeight(msg.Height, m.stripHeight))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pages.TickMsg:
		return m, tea.Batch(
			pages.ReloadCmd(m.config.Pages),
			pages.ScheduleReload(m.config.Reload()),
		)

	case pages.LoadedMsg:
		if msg.Fingerprint == m.fingerprint {
			return m, nil
		}
		m.logger.Info("pages changed", "count", len(msg.Pages))
		m.fingerprint = msg.Fingerprint
		m.pager.SetPages(msg.Pages)
		return m, nil
	}

	// Animation frames and anything else belong to the pager.
	_, cmd := m.pager.Update(msg)
	return m, cmd
}

// View renders the full UI: tab strip, current page, and status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().
			Height(ContentHeight(m.height, m.stripHeight)).
			Render(m.help.View(m.keys))
	} else {
		content = m.pager.View()
	}

	var parts []string
	if m.stripHeight > 0 {
		parts = append(parts, m.strip.View())
	}
	if content != "" {
		parts = append(parts, content)
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// handleKey processes global key bindings, forwarding scroll keys to the
// pager.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if c := m.pager.CurrentPage(); c > 0 {
			return m, m.pager.AnimateTo(c - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m, m.pager.AnimateTo(m.pager.CurrentPage() + 1)

	case key.Matches(msg, m.keys.Reload):
		m.logger.Debug("reloading pages")
		return m, pages.ReloadCmd(m.config.Pages)

	case key.Matches(msg, m.keys.Close):
		m.closeCurrentPage()
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		_, cmd := m.pager.Update(msg)
		return m, cmd
	}

	// Number keys for direct page switching.
	if idx, ok := m.pageKeyIndex(msg); ok {
		return m, m.pager.AnimateTo(idx)
	}
	return m, nil
}

// pageKeyIndex returns the page index if msg matches a page number key.
func (m Model) pageKeyIndex(msg tea.KeyMsg) (int, bool) {
	for i, k := range m.keys.pageKeys() {
		if key.Matches(msg, k) && i < m.pager.PageCount() {
			return i, true
		}
	}
	return 0, false
}

// closeCurrentPage drops the current page until the page sources change.
func (m Model) closeCurrentPage() {
	all := m.pager.Pages()
	c := m.pager.CurrentPage()
	if c >= len(all) {
		return
	}
	m.logger.Debug("closing page", "page", c, "title", all[c].Title)
	m.pager.SetPages(slices.Delete(all, c, c+1))
}

// handleMouse routes clicks on the strip rows to the strip and everything
// else to the pager. A drag that started on the pager keeps going to the
// pager wherever the pointer goes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.pager.Dragging() {
		msg.Y -= m.stripHeight
		_, cmd := m.pager.Update(msg)
		return m, cmd
	}
	if msg.Y < m.stripHeight {
		_, cmd := m.strip.Update(msg)
		return m, cmd
	}
	if m.showHelp || msg.Y >= m.stripHeight+ContentHeight(m.height, m.stripHeight) {
		return m, nil
	}
	msg.Y -= m.stripHeight
	_, cmd := m.pager.Update(msg)
	return m, cmd
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	n := m.pager.PageCount()
	counter := theme.WarnStyle.Render("no pages")
	if n > 0 {
		sel := m.strip.Selected()
		counter = theme.AccentStyle.Render(fmt.Sprintf("%d/%d %s", sel+1, n, m.pager.PageTitle(sel)))
	}
	parts := []string{counter}

	if m.layoutMode == LayoutWide {
		parts = append(parts, theme.MutedStyle.Render(m.pager.State().String()))
	}
	if m.layoutMode != LayoutNarrow {
		parts = append(parts, theme.MutedStyle.Render("?=help  q=quit"))
	}

	bar := strings.Join(parts, "  |  ")
	return theme.StatusBarStyle.
		Width(m.width).
		MaxHeight(StatusBarHeight()).
		Render(ansi.Truncate(bar, max(0, m.width-2), "…"))
}
