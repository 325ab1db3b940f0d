// Package pages loads the pages shown in the pager and polls their sources
// for changes.
package pages

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tnguyen21/funtab/internal/config"
	"github.com/tnguyen21/funtab/internal/pager"
)

// TickMsg triggers a reload on the bubbletea event loop.
type TickMsg time.Time

// LoadedMsg carries freshly loaded pages back to the model.
type LoadedMsg struct {
	Pages       []pager.Page
	Fingerprint uint64
}

// Load builds pages from the configured entries. File pages are read from
// disk; a file that cannot be read becomes a page describing the error.
// With no entries the demo pages are returned.
func Load(entries []config.Page) []pager.Page {
	if len(entries) == 0 {
		return Demo()
	}
	out := make([]pager.Page, 0, len(entries))
	for _, e := range entries {
		out = append(out, pager.Page{Title: e.Title, Body: body(e)})
	}
	return out
}

func body(e config.Page) string {
	if e.File == "" {
		return e.Text
	}
	data, err := os.ReadFile(e.File)
	if err != nil {
		return fmt.Sprintf("Could not load %s.\n\n%v", e.File, err)
	}
	return strings.TrimRight(string(data), "\n")
}

// Fingerprint hashes titles and bodies so reloads that change nothing can be
// dropped.
func Fingerprint(pages []pager.Page) uint64 {
	h := fnv.New64a()
	for _, p := range pages {
		h.Write([]byte(p.Title))
		h.Write([]byte{0})
		h.Write([]byte(p.Body))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// ScheduleReload returns a tea.Tick command for the next reload, or nil when
// reloading is off.
func ScheduleReload(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ReloadCmd returns a tea.Cmd that loads pages in the background.
func ReloadCmd(entries []config.Page) tea.Cmd {
	return func() tea.Msg {
		p := Load(entries)
		return LoadedMsg{Pages: p, Fingerprint: Fingerprint(p)}
	}
}
