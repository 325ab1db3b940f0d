package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	kind   string
	page   int
	offset float64
	px     int
	state  ScrollState
}

type recorder struct {
	events []event
}

func (r *recorder) OnScroll(page int, offset float64, px int) {
	r.events = append(r.events, event{kind: "scroll", page: page, offset: offset, px: px})
}

func (r *recorder) OnPageSelected(page int) {
	r.events = append(r.events, event{kind: "selected", page: page})
}

func (r *recorder) OnScrollStateChanged(state ScrollState) {
	r.events = append(r.events, event{kind: "state", state: state})
}

func (r *recorder) OnDatasetChanged() {
	r.events = append(r.events, event{kind: "dataset"})
}

// kinds collapses consecutive scroll events so orderings are easy to assert.
func (r *recorder) kinds() []string {
	var out []string
	for _, e := range r.events {
		k := e.kind
		if k == "state" {
			k = e.state.String()
		}
		if k == "scroll" && len(out) > 0 && out[len(out)-1] == "scroll" {
			continue
		}
		out = append(out, k)
	}
	return out
}

func (r *recorder) selected() []int {
	var out []int
	for _, e := range r.events {
		if e.kind == "selected" {
			out = append(out, e.page)
		}
	}
	return out
}

func (r *recorder) last() event {
	return r.events[len(r.events)-1]
}

func (r *recorder) lastScroll() event {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].kind == "scroll" {
			return r.events[i]
		}
	}
	return event{}
}

func testPages(n int) []Page {
	titles := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot"}
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Title: titles[i%len(titles)], Body: "body of " + titles[i%len(titles)]}
	}
	return pages
}

func setup(t *testing.T, n int) (*Pager, *recorder) {
	t.Helper()
	p := New(testPages(n), Options{})
	p.SetSize(30, 10)
	rec := &recorder{}
	p.SetListener(rec)
	return p, rec
}

// settleAll feeds frames until the pager comes to rest.
func settleAll(t *testing.T, p *Pager) {
	t.Helper()
	for i := 0; p.State() == StateSettling; i++ {
		require.Less(t, i, 1000, "animation did not finish")
		p.Update(frameMsg{id: p.id, gen: p.gen})
	}
}

func press(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func motion(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

func release(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 2, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
}

func TestScrollStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "settling", StateSettling.String())
}

func TestNew(t *testing.T) {
	p := New(testPages(3), Options{})

	assert.Equal(t, 3, p.PageCount())
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, "Bravo", p.PageTitle(1))
	assert.Equal(t, "", p.PageTitle(3))
	assert.Equal(t, "", p.PageTitle(-1))
	assert.Equal(t, StateIdle, p.State())
	assert.Equal(t, DefaultDuration, p.duration)
}

func TestAnimateTo(t *testing.T) {
	p, rec := setup(t, 4)

	cmd := p.AnimateTo(2)
	require.NotNil(t, cmd)
	assert.Equal(t, 2, p.CurrentPage(), "pager commits to the target immediately")

	settleAll(t, p)

	assert.Equal(t, []string{"settling", "selected", "scroll", "idle"}, rec.kinds())
	assert.Equal(t, []int{2}, rec.selected())
	assert.Equal(t, event{kind: "scroll", page: 2}, rec.lastScroll())
	assert.Equal(t, 2.0, p.Position())

	// positions only ever move towards the target
	prev := 0.0
	for _, e := range rec.events {
		if e.kind != "scroll" {
			continue
		}
		pos := float64(e.page) + e.offset
		assert.GreaterOrEqual(t, pos, prev)
		assert.GreaterOrEqual(t, e.offset, 0.0)
		assert.Less(t, e.offset, 1.0)
		prev = pos
	}
}

func TestAnimateToCurrentPage(t *testing.T) {
	p, rec := setup(t, 3)

	assert.Nil(t, p.AnimateTo(0))
	assert.Empty(t, rec.events)
}

func TestAnimateToClampsTarget(t *testing.T) {
	p, rec := setup(t, 3)

	p.AnimateTo(99)
	settleAll(t, p)

	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, []int{2}, rec.selected())
}

func TestAnimateToRetargetsInFlight(t *testing.T) {
	p, rec := setup(t, 5)

	p.AnimateTo(1)
	staleGen := p.gen
	p.Update(frameMsg{id: p.id, gen: p.gen})

	p.AnimateTo(4)
	before := len(rec.events)
	p.Update(frameMsg{id: p.id, gen: staleGen})
	assert.Len(t, rec.events, before, "stale frame must be dropped")

	settleAll(t, p)
	assert.Equal(t, []int{1, 4}, rec.selected())
	assert.Equal(t, 4, p.CurrentPage())
	assert.Equal(t, StateIdle, rec.last().state)
}

func TestFrameFromOtherPagerIgnored(t *testing.T) {
	p, rec := setup(t, 3)
	other := New(testPages(3), Options{})

	p.AnimateTo(1)
	before := len(rec.events)
	p.Update(frameMsg{id: other.id, gen: p.gen})
	assert.Len(t, rec.events, before)
}

func TestDragToNextPage(t *testing.T) {
	p, rec := setup(t, 3)

	p.Update(press(20))
	assert.True(t, p.Dragging())
	assert.Empty(t, rec.events, "a press alone is not a drag")

	p.Update(motion(5))
	assert.Equal(t, StateDragging, p.State())
	assert.Equal(t, event{kind: "scroll", page: 0, offset: 0.5, px: 15}, rec.lastScroll())

	_, cmd := p.Update(release(5))
	require.NotNil(t, cmd)
	settleAll(t, p)

	assert.Equal(t, []string{"dragging", "scroll", "settling", "selected", "scroll", "idle"}, rec.kinds())
	assert.Equal(t, []int{1}, rec.selected())
	assert.Equal(t, 1, p.CurrentPage())
	assert.False(t, p.Dragging())
}

func TestDragReversed(t *testing.T) {
	p, rec := setup(t, 4)
	p.AnimateTo(2)
	settleAll(t, p)
	rec.events = nil

	p.Update(press(20))
	p.Update(motion(0)) // two thirds of the way to page 3
	p.Update(motion(18))
	p.Update(release(18))
	settleAll(t, p)

	assert.Equal(t, []int{2}, rec.selected(), "reversed drag re-selects the origin page")
	assert.Equal(t, event{kind: "scroll", page: 2}, rec.lastScroll())
	assert.Equal(t, StateIdle, p.State())
}

func TestDragBackwards(t *testing.T) {
	p, rec := setup(t, 3)
	p.AnimateTo(1)
	settleAll(t, p)
	rec.events = nil

	p.Update(press(5))
	p.Update(motion(20))
	assert.Equal(t, 0, rec.lastScroll().page)
	p.Update(release(20))
	settleAll(t, p)

	assert.Equal(t, []int{0}, rec.selected())
	assert.Equal(t, 0, p.CurrentPage())
}

func TestDragLimitedToAdjacentPages(t *testing.T) {
	p, _ := setup(t, 5)

	p.Update(press(29))
	p.Update(motion(-200))
	assert.Equal(t, 1.0, p.Position())
}

func TestDragSupersedesSettling(t *testing.T) {
	p, rec := setup(t, 4)

	p.AnimateTo(3)
	p.Update(frameMsg{id: p.id, gen: p.gen})
	staleGen := p.gen

	p.Update(press(10))
	p.Update(motion(9))
	assert.Equal(t, StateDragging, p.State())

	before := len(rec.events)
	p.Update(frameMsg{id: p.id, gen: staleGen})
	assert.Len(t, rec.events, before)
}

func TestClickWithoutDrag(t *testing.T) {
	p, rec := setup(t, 3)

	p.Update(press(10))
	_, cmd := p.Update(release(10))

	assert.Nil(t, cmd)
	assert.Empty(t, rec.events)
}

func TestSetPages(t *testing.T) {
	t.Run("keeps current page when it survives", func(t *testing.T) {
		p, rec := setup(t, 4)
		p.AnimateTo(1)
		settleAll(t, p)
		rec.events = nil

		p.SetPages(testPages(3))
		assert.Equal(t, 1, p.CurrentPage())
		assert.Equal(t, []string{"dataset"}, rec.kinds())
	})

	t.Run("returns to first page when current is removed", func(t *testing.T) {
		p, rec := setup(t, 5)
		p.AnimateTo(4)
		settleAll(t, p)
		rec.events = nil

		p.SetPages(testPages(2))
		assert.Equal(t, 0, p.CurrentPage())
		assert.Equal(t, 0.0, p.Position())
		assert.Equal(t, 2, p.PageCount())
		assert.Equal(t, "dataset", rec.last().kind)
	})

	t.Run("cancels transition in flight", func(t *testing.T) {
		p, rec := setup(t, 5)
		p.AnimateTo(3)
		p.Update(frameMsg{id: p.id, gen: p.gen})
		staleGen := p.gen

		p.SetPages(testPages(5))
		assert.Equal(t, StateIdle, p.State())
		assert.Equal(t, 3.0, p.Position())

		before := len(rec.events)
		p.Update(frameMsg{id: p.id, gen: staleGen})
		assert.Len(t, rec.events, before)
	})
}

func TestDetachedListener(t *testing.T) {
	p, rec := setup(t, 3)
	p.SetListener(nil)

	p.AnimateTo(2)
	settleAll(t, p)

	assert.Empty(t, rec.events)
	assert.Equal(t, 2, p.CurrentPage())
}

func TestListenerSlot(t *testing.T) {
	p, rec := setup(t, 2)
	assert.Same(t, rec, p.Listener())

	p.SetListener(nil)
	assert.Nil(t, p.Listener())
}

func TestMouseWheelScrollsBody(t *testing.T) {
	long := strings.Repeat("line\n", 50)
	p := New([]Page{{Title: "Long", Body: long}, {Title: "Short", Body: "x"}}, Options{})
	p.SetSize(30, 10)
	rec := &recorder{}
	p.SetListener(rec)

	p.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 3, p.bodies[0].YOffset)
	assert.False(t, p.Dragging(), "the wheel never starts a drag")
	assert.Empty(t, rec.events)

	p.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 0, p.bodies[0].YOffset)
	assert.Equal(t, 0, p.bodies[1].YOffset)
}

func TestView(t *testing.T) {
	p, _ := setup(t, 2)

	assert.Contains(t, p.View(), "Alpha")

	// Halfway through a drag the left half of the viewport shows the right
	// half of Alpha's page and the right half shows the left of Bravo's.
	p.Update(press(20))
	p.Update(motion(5))
	view := p.View()
	assert.Contains(t, view, "Bravo")
	assert.NotContains(t, view, "Alpha")
}

func TestViewEmpty(t *testing.T) {
	p := New(nil, Options{})
	assert.Equal(t, "", p.View(), "no size yet")

	p.SetSize(20, 3)
	assert.Contains(t, p.View(), "No pages")
	assert.Nil(t, p.AnimateTo(1))
}
