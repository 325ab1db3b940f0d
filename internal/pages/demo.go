package pages

import "github.com/tnguyen21/funtab/internal/pager"

// Demo returns the pages shown when no pages are configured.
func Demo() []pager.Page {
	return []pager.Page{
		{
			Title: "Welcome",
			Body: `funtab is a tab strip bound to a paged view.

Drag a page sideways with the mouse, or press left and right, and watch
the indicator under the tabs follow the page as it moves.

Click a tab to jump to its page. The highlighted tab only changes once the
page view has actually moved there.`,
		},
		{
			Title: "Keys",
			Body: `left, h      previous page
right, l     next page
1-9          jump to page
j, k         scroll the page body
r            reload pages
x            close the current page
?            toggle help
q            quit`,
		},
		{
			Title: "Indicator",
			Body: `The indicator is exactly one tab wide and sits at the bottom of the
strip. While a page is halfway between two positions the indicator is
halfway between their tabs.

When the indicator nears either edge of the strip, the strip scrolls to
keep it in view.`,
		},
		{
			Title: "Tab widths",
			Body: `All tabs share one width. When every tab fits, the strip is divided
evenly between them. Otherwise the strip is divided by the visible tab
budget and the rest of the tabs are reached by scrolling.`,
		},
		{
			Title: "A tab title long enough to wrap onto a second line",
			Body: `Tab labels wrap onto at most two lines. Anything past the second line
is cut short with an ellipsis.`,
		},
		{
			Title: "Config",
			Body: `Pages and strip colors are read from ~/.config/funtab/funtab.yaml.

pages:
  - title: Notes
    file: notes.md
  - title: Hello
    text: Hello there.`,
		},
		{
			Title: "Serve",
			Body: `funtab serve starts an SSH server. Every session gets its own strip
and pages, rendered for the client's terminal.`,
		},
	}
}
