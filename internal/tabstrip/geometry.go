package tabstrip

import "fmt"

// TabWidth returns the fixed width shared by every tab. When the n tabs fit
// within the budget they split the viewport between them; otherwise each tab
// takes 1/budget of the viewport so that budget tabs are always visible and
// the strip scrolls.
func TabWidth(viewport, n, budget int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: tab count must be at least 1, got %d", ErrInvalidConfiguration, n)
	}
	if budget < 1 {
		return 0, fmt.Errorf("%w: visible tab budget must be at least 1, got %d", ErrInvalidConfiguration, budget)
	}
	viewport = max(0, viewport)
	if n > budget {
		return viewport / budget, nil
	}
	return viewport / n, nil
}
