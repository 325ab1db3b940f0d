package tabstrip

import "math"

// Rect is a rectangle in strip content coordinates, in cells. Right and
// Bottom are exclusive. Width is exactly the tab width; Right - Left may
// carry rounding error.
type Rect struct {
	Left, Top, Right, Bottom float64
	Width                    float64
}

func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// Tracker maps pager progress onto the indicator rectangle and keeps the
// strip scrolled so the indicator stays in view.
type Tracker struct {
	budget          int
	indicatorHeight int

	viewport int
	height   int
	count    int
	tabWidth int

	anchor  int
	offset  float64
	scrollX int
	rect    Rect

	// ready is false until the strip has a non-zero width and at least one
	// tab. Scroll updates arriving earlier are remembered and applied on the
	// first real layout.
	ready bool
}

func newTracker(budget, indicatorHeight int) *Tracker {
	return &Tracker{budget: budget, indicatorHeight: indicatorHeight}
}

// Layout is called whenever the strip is resized.
func (t *Tracker) Layout(width, height int) {
	t.viewport = max(0, width)
	t.height = max(0, height)
	t.relayout()
}

// SetCount is called whenever the tab set is rebuilt.
func (t *Tracker) SetCount(n int) {
	t.count = max(0, n)
	t.relayout()
}

// Scroll moves the indicator to anchor + offset tabs.
func (t *Tracker) Scroll(anchor int, offset float64) {
	t.anchor, t.offset = t.clamp(anchor, offset)
	if t.ready {
		t.recompute()
	}
}

func (t *Tracker) Anchor() int       { return t.anchor }
func (t *Tracker) Offset() float64   { return t.offset }
func (t *Tracker) Rect() Rect        { return t.rect }
func (t *Tracker) ScrollX() int      { return t.scrollX }
func (t *Tracker) TabWidth() int     { return t.tabWidth }
func (t *Tracker) Ready() bool       { return t.ready }
func (t *Tracker) ContentWidth() int { return t.tabWidth * t.count }

// VisibleRange returns the first and last tab intersecting the viewport. The
// range is empty (last < first) before layout.
func (t *Tracker) VisibleRange() (first, last int) {
	if !t.ready || t.tabWidth == 0 {
		return 0, -1
	}
	first = t.scrollX / t.tabWidth
	last = min(t.count-1, (t.scrollX+t.viewport-1)/t.tabWidth)
	return first, last
}

// TabAt returns the tab under viewport column x, or -1.
func (t *Tracker) TabAt(x int) int {
	if !t.ready || t.tabWidth == 0 || x < 0 || x >= t.viewport {
		return -1
	}
	i := (t.scrollX + x) / t.tabWidth
	if i >= t.count {
		return -1
	}
	return i
}

func (t *Tracker) relayout() {
	t.tabWidth = 0
	if t.count > 0 {
		// budget is validated at construction
		t.tabWidth, _ = TabWidth(t.viewport, t.count, t.budget)
	}
	t.anchor, t.offset = t.clamp(t.anchor, t.offset)
	t.ready = t.viewport > 0 && t.count > 0
	if !t.ready {
		return
	}
	t.recompute()
}

func (t *Tracker) clamp(anchor int, offset float64) (int, float64) {
	if t.count == 0 {
		return 0, 0
	}
	anchor = min(max(anchor, 0), t.count-1)
	switch {
	case math.IsNaN(offset) || offset < 0:
		offset = 0
	case offset >= 1:
		offset = math.Nextafter(1, 0)
	}
	// nothing to interpolate towards past the last tab
	if anchor == t.count-1 {
		offset = 0
	}
	return anchor, offset
}

func (t *Tracker) recompute() {
	w := float64(t.tabWidth)
	left := (float64(t.anchor) + t.offset) * w
	t.rect = Rect{
		Left:   left,
		Top:    float64(max(0, t.height-t.indicatorHeight)),
		Right:  left + w,
		Bottom: float64(t.height),
		Width:  w,
	}
	t.follow()
}

// follow scrolls the strip when the indicator centre leaves the band half a
// tab in from either viewport edge.
func (t *Tracker) follow() {
	half := float64(t.tabWidth) / 2
	c := t.rect.CenterX()
	lo := float64(t.scrollX) + half
	hi := float64(t.scrollX+t.viewport) - half
	switch {
	case c < lo:
		t.scrollX = int(math.Floor(c - half))
	case c > hi:
		t.scrollX = int(math.Ceil(c - float64(t.viewport) + half))
	}
	t.scrollX = min(max(t.scrollX, 0), max(0, t.ContentWidth()-t.viewport))
}
