package tabstrip

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tnguyen21/funtab/internal/pager"
)

type animateMsg int

type fakeContainer struct {
	titles   []string
	current  int
	listener pager.Listener
	animated []int
}

func newFakeContainer(n int) *fakeContainer {
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}
	f := &fakeContainer{}
	for i := 0; i < n; i++ {
		f.titles = append(f.titles, names[i%len(names)])
	}
	return f
}

func (f *fakeContainer) PageCount() int   { return len(f.titles) }
func (f *fakeContainer) CurrentPage() int { return f.current }

func (f *fakeContainer) PageTitle(i int) string {
	if i < 0 || i >= len(f.titles) {
		return ""
	}
	return f.titles[i]
}

func (f *fakeContainer) AnimateTo(i int) tea.Cmd {
	f.animated = append(f.animated, i)
	return func() tea.Msg { return animateMsg(i) }
}

func (f *fakeContainer) SetListener(l pager.Listener) {
	f.listener = l
}

func (f *fakeContainer) Listener() pager.Listener {
	return f.listener
}

func testRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

// testConfig returns a valid configuration rendering to a discarding
// renderer.
func testConfig(budget int) Config {
	cfg := DefaultConfig()
	cfg.VisibleTabs = budget
	cfg.Renderer = testRenderer()
	return cfg
}

// attached returns a strip bound to a fake container with n pages, laid out
// width cells wide and three rows tall.
func attached(t *testing.T, n, budget, width int) (*Strip, *fakeContainer) {
	t.Helper()
	fc := newFakeContainer(n)
	s, err := NewAttached(testConfig(budget), fc)
	require.NoError(t, err)
	s.SetSize(width, 3)
	return s, fc
}

func click(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}
