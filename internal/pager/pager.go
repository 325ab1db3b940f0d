// Package pager implements a paged content container: a set of text pages
// shown one at a time, with animated horizontal transitions driven either
// programmatically or by mouse drags.
package pager

import (
	"math"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/tnguyen21/funtab/internal/logging"
	"github.com/tnguyen21/funtab/internal/theme"
)

// DefaultDuration is the length of a settle animation.
const DefaultDuration = 250 * time.Millisecond

const (
	frameInterval = time.Second / 60

	// A drag turns the page once it has travelled this fraction of a page.
	pageTurnThreshold = 1.0 / 3
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Page is one page of content.
type Page struct {
	Title string
	Body  string
}

// Options configures a Pager.
type Options struct {
	// Duration of a settle animation. Zero selects DefaultDuration.
	Duration time.Duration
	Logger   *log.Logger
}

// frameMsg advances a settle animation. Frames from superseded animations
// carry a stale generation and are dropped.
type frameMsg struct {
	id  int
	gen int
}

type animation struct {
	from, to    float64
	step, steps int
}

type drag struct {
	pressed    bool
	startX     int
	origin     float64
	originPage int
}

// Pager is the paged container. It is used through a pointer; listener
// callbacks fire synchronously while it handles messages.
type Pager struct {
	id       int
	pages    []Page
	bodies   []viewport.Model
	current  int
	position float64 // in pages; integral when at rest
	state    ScrollState
	listener Listener

	width  int
	height int

	duration time.Duration
	gen      int
	anim     animation
	drag     drag
	logger   *log.Logger
}

// New creates a Pager showing pages, starting on the first page.
func New(pages []Page, opts Options) *Pager {
	p := &Pager{
		id:       nextID(),
		pages:    slices.Clone(pages),
		duration: opts.Duration,
		logger:   opts.Logger,
	}
	if p.duration <= 0 {
		p.duration = DefaultDuration
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	p.rebuildBodies()
	return p
}

func (p *Pager) PageCount() int { return len(p.pages) }

// PageTitle returns the title of page i, or an empty string when i is out of
// range.
func (p *Pager) PageTitle(i int) string {
	if i < 0 || i >= len(p.pages) {
		return ""
	}
	return p.pages[i].Title
}

// Pages returns a copy of the current page set.
func (p *Pager) Pages() []Page { return slices.Clone(p.pages) }

// CurrentPage returns the page the pager has committed to.
func (p *Pager) CurrentPage() int { return p.current }

// Position returns the scroll position in pages.
func (p *Pager) Position() float64 { return p.position }

func (p *Pager) State() ScrollState { return p.state }

// Dragging reports whether a mouse button went down inside the pager and has
// not been released yet.
func (p *Pager) Dragging() bool { return p.drag.pressed }

// SetListener installs l as the pager's only listener. A nil l clears the
// slot.
func (p *Pager) SetListener(l Listener) {
	p.listener = l
}

// Listener returns the listener currently in the slot, or nil.
func (p *Pager) Listener() Listener { return p.listener }

// SetSize is called on resize.
func (p *Pager) SetSize(w, h int) {
	p.width = max(0, w)
	p.height = max(0, h)
	p.rebuildBodies()
}

// SetPages replaces the page set. Any transition in flight is cancelled. If
// the current page no longer exists the pager returns to the first page.
func (p *Pager) SetPages(pages []Page) {
	p.gen++
	p.drag = drag{}
	p.pages = slices.Clone(pages)
	if p.current >= len(p.pages) {
		p.current = 0
	}
	p.position = float64(p.current)
	p.rebuildBodies()
	p.setState(StateIdle)
	p.logger.Debug("pages replaced", "count", len(p.pages), "current", p.current)
	if p.listener != nil {
		p.listener.OnDatasetChanged()
	}
}

// AnimateTo starts an animated transition to page i, which is clamped to the
// page range. It returns the command driving the animation.
func (p *Pager) AnimateTo(i int) tea.Cmd {
	n := len(p.pages)
	if n == 0 {
		return nil
	}
	i = min(max(i, 0), n-1)
	if i == p.current && p.state != StateDragging {
		return nil
	}
	p.drag = drag{}
	return p.settle(i, i != p.current)
}

func (p *Pager) Init() tea.Cmd {
	return nil
}

func (p *Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != p.id || msg.gen != p.gen || p.state != StateSettling {
			return p, nil
		}
		return p, p.advance()
	case tea.MouseMsg:
		return p, p.handleMouse(msg)
	case tea.KeyMsg:
		return p, p.updateBody(msg)
	}
	return p, nil
}

func (p *Pager) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}
	if len(p.pages) == 0 {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center,
			theme.PageEmptyStyle.Render("No pages"))
	}

	page := int(math.Floor(p.position))
	offset := p.position - float64(page)
	if page >= len(p.pages)-1 || offset == 0 {
		return p.bodies[min(page, len(p.pages)-1)].View()
	}

	// Mid-transition: the right part of page and the left part of page+1
	// share the viewport.
	px := int(offset * float64(p.width))
	left := strings.Split(p.bodies[page].View(), "\n")
	right := strings.Split(p.bodies[page+1].View(), "\n")
	lines := make([]string, p.height)
	for i := range lines {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		lines[i] = ansi.Cut(l, px, p.width) + ansi.Cut(r, 0, px)
	}
	return strings.Join(lines, "\n")
}

// settle animates from the current position to target. When selected is
// true the pager commits to target and reports it before the first frame.
func (p *Pager) settle(target int, selected bool) tea.Cmd {
	p.gen++
	p.setState(StateSettling)
	p.current = target
	if selected {
		p.logger.Debug("page selected", "page", target)
		if p.listener != nil {
			p.listener.OnPageSelected(target)
		}
	}
	if p.position == float64(target) {
		p.setPosition(p.position)
		p.setState(StateIdle)
		return nil
	}
	p.anim = animation{
		from:  p.position,
		to:    float64(target),
		steps: max(1, int(p.duration/frameInterval)),
	}
	return p.nextFrame()
}

func (p *Pager) nextFrame() tea.Cmd {
	id, gen := p.id, p.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}

// advance moves the animation on by one frame using an ease-out cubic curve.
func (p *Pager) advance() tea.Cmd {
	a := &p.anim
	a.step++
	if a.step >= a.steps {
		p.setPosition(a.to)
		p.setState(StateIdle)
		return nil
	}
	t := float64(a.step) / float64(a.steps)
	eased := 1 - math.Pow(1-t, 3)
	p.setPosition(a.from + (a.to-a.from)*eased)
	return p.nextFrame()
}

func (p *Pager) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.drag = drag{
				pressed:    true,
				startX:     msg.X,
				origin:     p.position,
				originPage: int(math.Round(p.position)),
			}
			return nil
		}
		if tea.MouseEvent(msg).IsWheel() {
			return p.updateBody(msg)
		}
	case tea.MouseActionMotion:
		if !p.drag.pressed || p.width == 0 || len(p.pages) == 0 {
			return nil
		}
		if p.state != StateDragging {
			// Supersedes any settle animation in flight.
			p.gen++
			p.setState(StateDragging)
		}
		d := p.drag
		pos := d.origin + float64(d.startX-msg.X)/float64(p.width)
		lo := float64(max(0, d.originPage-1))
		hi := float64(min(len(p.pages)-1, d.originPage+1))
		p.setPosition(min(max(pos, lo), hi))
	case tea.MouseActionRelease:
		d := p.drag
		p.drag = drag{}
		if !d.pressed || p.state != StateDragging {
			return nil
		}
		target := d.originPage
		switch delta := p.position - float64(d.originPage); {
		case delta > pageTurnThreshold:
			target++
		case delta < -pageTurnThreshold:
			target--
		}
		target = min(max(target, 0), len(p.pages)-1)
		return p.settle(target, true)
	}
	return nil
}

// updateBody forwards vertical scrolling to the current page.
func (p *Pager) updateBody(msg tea.Msg) tea.Cmd {
	if p.current >= len(p.bodies) {
		return nil
	}
	var cmd tea.Cmd
	p.bodies[p.current], cmd = p.bodies[p.current].Update(msg)
	return cmd
}

func (p *Pager) setPosition(pos float64) {
	n := len(p.pages)
	if n == 0 {
		return
	}
	pos = min(max(pos, 0), float64(n-1))
	p.position = pos
	page := int(math.Floor(pos))
	offset := pos - float64(page)
	if page >= n-1 {
		page, offset = n-1, 0
	}
	if p.listener != nil {
		p.listener.OnScroll(page, offset, int(offset*float64(p.width)))
	}
}

func (p *Pager) setState(s ScrollState) {
	if s == p.state {
		return
	}
	p.state = s
	p.logger.Debug("scroll state changed", "state", s)
	if p.listener != nil {
		p.listener.OnScrollStateChanged(s)
	}
}

func (p *Pager) rebuildBodies() {
	bodies := make([]viewport.Model, len(p.pages))
	for i, pg := range p.pages {
		vp := viewport.New(p.width, p.height)
		vp.SetContent(p.renderPage(pg))
		if i < len(p.bodies) {
			vp.SetYOffset(p.bodies[i].YOffset)
		}
		bodies[i] = vp
	}
	p.bodies = bodies
}

func (p *Pager) renderPage(pg Page) string {
	header := theme.PageHeaderStyle.Render(pg.Title)
	body := pg.Body
	if strings.TrimSpace(body) == "" {
		body = theme.PageEmptyStyle.Render("(empty page)")
	} else if p.width > 0 {
		body = lipgloss.NewStyle().Width(p.width).Render(body)
	}
	return header + "\n\n" + body
}
