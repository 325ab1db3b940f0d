package tabstrip

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tnguyen21/funtab/internal/pager"
)

// Controller reconciles the pager's scroll, selection and gesture events
// into the strip's single view of which tab is selected and where the
// indicator sits.
//
// The selected tab only ever changes when the container reports a page
// selection. Taps are forwarded to the container and come back as
// selections, so the strip never disagrees with the container.
type Controller struct {
	selected int
	anchor   int
	offset   float64
	drag     pager.ScrollState
	tabs     []Tab
	tracker  *Tracker
}

func newController(t *Tracker) *Controller {
	return &Controller{tracker: t}
}

func (c *Controller) Selected() int                { return c.selected }
func (c *Controller) Anchor() int                  { return c.anchor }
func (c *Controller) Offset() float64              { return c.offset }
func (c *Controller) DragState() pager.ScrollState { return c.drag }
func (c *Controller) Tabs() []Tab                  { return c.tabs }

// OnScroll moves the indicator. Repeating the same event is a no-op.
func (c *Controller) OnScroll(page int, offset float64) {
	c.tracker.Scroll(page, offset)
	c.anchor, c.offset = c.tracker.Anchor(), c.tracker.Offset()
}

// OnPageSelected marks page as the selected tab. It returns false, leaving
// the state untouched, when page is not a known tab.
func (c *Controller) OnPageSelected(page int) bool {
	if page < 0 || page >= len(c.tabs) {
		return false
	}
	c.selected = page
	c.markSelected()
	return true
}

func (c *Controller) OnScrollStateChanged(s pager.ScrollState) {
	c.drag = s
}

// Tap asks the container to animate to tab i. The selection is left alone
// until the container echoes the page back.
func (c *Controller) Tap(i int, container Container) tea.Cmd {
	if container == nil || i < 0 || i >= len(c.tabs) {
		return nil
	}
	return container.AnimateTo(i)
}

// Reset installs a rebuilt tab set. Any transition in flight is dropped and
// the indicator returns to the selected tab; if either the selected tab or
// the indicator's anchor no longer exists everything returns to the first
// tab.
func (c *Controller) Reset(tabs []Tab) {
	n := len(tabs)
	if c.selected >= n || c.anchor >= n {
		c.selected = 0
	}
	c.tabs = tabs
	c.anchor, c.offset = c.selected, 0
	c.drag = pager.StateIdle
	c.tracker.SetCount(n)
	c.tracker.Scroll(c.anchor, 0)
	c.markSelected()
}

func (c *Controller) markSelected() {
	for i := range c.tabs {
		c.tabs[i].Selected = i == c.selected
	}
}
