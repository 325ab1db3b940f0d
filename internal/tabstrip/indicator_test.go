package tabstrip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func laidOut(viewport, height, n, budget, indicatorHeight int) *Tracker {
	t := newTracker(budget, indicatorHeight)
	t.SetCount(n)
	t.Layout(viewport, height)
	return t
}

func TestTrackerFewTabs(t *testing.T) {
	tr := laidOut(800, 48, 3, 4, 2)

	assert.Equal(t, 266, tr.TabWidth())
	assert.Equal(t, 798, tr.ContentWidth())
	assert.Equal(t, Rect{Left: 0, Top: 46, Right: 266, Bottom: 48, Width: 266}, tr.Rect())
}

func TestTrackerManyTabs(t *testing.T) {
	tr := laidOut(800, 48, 6, 4, 2)

	assert.Equal(t, 200, tr.TabWidth())
	assert.Equal(t, 1200, tr.ContentWidth())
	assert.Equal(t, Rect{Left: 0, Top: 46, Right: 200, Bottom: 48, Width: 200}, tr.Rect())

	tr.Scroll(1, 0.5)
	assert.Equal(t, 300.0, tr.Rect().Left)
	assert.Equal(t, 500.0, tr.Rect().Right)
}

func TestTrackerContinuity(t *testing.T) {
	tr := laidOut(800, 3, 6, 4, 1)

	prev := math.Inf(-1)
	for i := 0; i < 100; i++ {
		tr.Scroll(2, float64(i)/100)
		r := tr.Rect()
		assert.GreaterOrEqual(t, r.Left, prev)
		assert.Equal(t, float64(tr.TabWidth()), r.Width)
		prev = r.Left
	}
}

func TestTrackerBoundaryCoincidence(t *testing.T) {
	tr := laidOut(800, 3, 6, 4, 1)

	for anchor := 0; anchor < 6; anchor++ {
		tr.Scroll(anchor, 0)
		assert.Equal(t, float64(anchor*tr.TabWidth()), tr.Rect().Left)
		assert.Equal(t, float64((anchor+1)*tr.TabWidth()), tr.Rect().Right)
	}
}

func TestTrackerFollow(t *testing.T) {
	tr := laidOut(800, 3, 6, 4, 1)

	// centre stays within the band: no scrolling
	tr.Scroll(2, 0.5)
	assert.Equal(t, 0, tr.ScrollX())

	tr.Scroll(4, 0)
	assert.Equal(t, 200, tr.ScrollX(), "tab 4 is brought to the right edge")

	tr.Scroll(5, 0)
	assert.Equal(t, 400, tr.ScrollX(), "clamped to the content edge")

	tr.Scroll(3, 0)
	assert.Equal(t, 400, tr.ScrollX(), "tab 3 is still inside the band")

	tr.Scroll(1, 0)
	assert.Equal(t, 200, tr.ScrollX())

	tr.Scroll(0, 0)
	assert.Equal(t, 0, tr.ScrollX())
}

func TestTrackerFollowNoScrollWhenFits(t *testing.T) {
	tr := laidOut(800, 3, 3, 4, 1)

	tr.Scroll(2, 0)
	assert.Equal(t, 0, tr.ScrollX())
}

func TestTrackerClamp(t *testing.T) {
	tr := laidOut(800, 3, 6, 4, 1)

	tr.Scroll(-3, -1)
	assert.Equal(t, 0, tr.Anchor())
	assert.Equal(t, 0.0, tr.Offset())

	tr.Scroll(99, 0.5)
	assert.Equal(t, 5, tr.Anchor())
	assert.Equal(t, 0.0, tr.Offset(), "no interpolation past the last tab")
	assert.Equal(t, 1000.0, tr.Rect().Left)

	tr.Scroll(2, 1.5)
	assert.Equal(t, 2, tr.Anchor())
	assert.Less(t, tr.Offset(), 1.0)

	tr.Scroll(2, math.NaN())
	assert.Equal(t, 0.0, tr.Offset())
}

func TestTrackerDeferredLayout(t *testing.T) {
	tr := newTracker(4, 1)
	tr.SetCount(6)
	tr.Layout(0, 3)

	tr.Scroll(3, 0.25)
	assert.False(t, tr.Ready())
	assert.Equal(t, Rect{}, tr.Rect())

	tr.Layout(800, 3)
	assert.True(t, tr.Ready())
	assert.Equal(t, 650.0, tr.Rect().Left)
	assert.Equal(t, 850.0, tr.Rect().Right)
}

func TestTrackerRelayoutRecomputes(t *testing.T) {
	tr := laidOut(800, 3, 6, 4, 1)
	tr.Scroll(2, 0)

	tr.Layout(400, 3)
	assert.Equal(t, 100, tr.TabWidth())
	assert.Equal(t, 200.0, tr.Rect().Left)
}

func TestTrackerVisibleRange(t *testing.T) {
	tr := laidOut(80, 3, 8, 4, 1)

	first, last := tr.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last)

	tr.Scroll(7, 0)
	first, last = tr.VisibleRange()
	assert.Equal(t, 4, first)
	assert.Equal(t, 7, last)

	tr.Layout(0, 3)
	first, last = tr.VisibleRange()
	assert.Less(t, last, first)
}

func TestTrackerTabAt(t *testing.T) {
	tr := laidOut(80, 3, 3, 4, 1) // tabs 26 wide, 78 of content

	assert.Equal(t, 0, tr.TabAt(0))
	assert.Equal(t, 0, tr.TabAt(25))
	assert.Equal(t, 1, tr.TabAt(26))
	assert.Equal(t, 2, tr.TabAt(77))
	assert.Equal(t, -1, tr.TabAt(78), "past the last tab")
	assert.Equal(t, -1, tr.TabAt(80))
	assert.Equal(t, -1, tr.TabAt(-1))
}
