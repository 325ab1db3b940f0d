package pager

// ScrollState is the gesture state of the pager.
type ScrollState int

const (
	StateIdle     ScrollState = iota // at rest on a page
	StateDragging                    // the user is dragging the content
	StateSettling                    // animating towards a committed page
)

func (s ScrollState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Listener observes the pager. Callbacks run synchronously on the bubbletea
// event loop from within Pager.Update or the command that started a
// transition.
//
// For a gesture the pager delivers, in order: OnScrollStateChanged(dragging),
// zero or more OnScroll, OnScrollStateChanged(settling), exactly one
// OnPageSelected, more OnScroll while settling, and OnScrollStateChanged(idle).
type Listener interface {
	// OnScroll reports the left-anchor page, the fraction in [0, 1) of the
	// way to page+1, and that fraction in cells.
	OnScroll(page int, offset float64, offsetPx int)
	// OnPageSelected reports the page the pager has committed to.
	OnPageSelected(page int)
	OnScrollStateChanged(state ScrollState)
	// OnDatasetChanged reports that the page set was replaced.
	OnDatasetChanged()
}
