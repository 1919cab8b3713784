package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/x402-Systems/pantry/internal/store"
)

var (
	red  = lipgloss.Color("#FF0000")
	grey = lipgloss.Color("#444444")
)

// Printer writes inventory listings to w. Styling is dropped automatically
// when w is not a terminal.
type Printer struct {
	w        io.Writer
	category lipgloss.Style
	id       lipgloss.Style
	summary  lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		category: r.NewStyle().Foreground(red).Bold(true),
		id:       r.NewStyle().Foreground(grey),
		summary:  r.NewStyle().Bold(true),
	}
}

// Quantity drops the decimal point for whole numbers.
func Quantity(q float64) string {
	if q == 0 {
		q = 0 // -0
	}
	if q == math.Trunc(q) && !math.IsInf(q, 0) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func (p *Printer) row(it store.Item) string {
	return fmt.Sprintf("%s  %-30s %s %s", p.id.Render(fmt.Sprintf("#%3d", it.ID)), it.Name, Quantity(it.Quantity), it.Unit)
}

// Inventory prints items grouped under a [category] header. Items must
// already be ordered by category.
func (p *Printer) Inventory(items []store.Item) {
	if len(items) == 0 {
		fmt.Fprintln(p.w, "No items found.")
		return
	}

	current := ""
	for i, it := range items {
		if i == 0 || it.Category != current {
			current = it.Category
			fmt.Fprintf(p.w, "\n  %s\n", p.category.Render("["+current+"]"))
		}
		fmt.Fprintf(p.w, "    %s\n", p.row(it))
	}

	fmt.Fprintf(p.w, "\n  %s\n", p.summary.Render(fmt.Sprintf("Total: %d items", len(items))))
}

// Matches prints a flat list of search hits for query.
func (p *Printer) Matches(query string, items []store.Item) {
	if len(items) == 0 {
		fmt.Fprintf(p.w, "No items matching '%s'.\n", query)
		return
	}

	for _, it := range items {
		fmt.Fprintf(p.w, "  %s  %s\n", p.row(it), p.category.Render("["+it.Category+"]"))
	}

	fmt.Fprintf(p.w, "\n  %s\n", p.summary.Render(fmt.Sprintf("Found: %d items", len(items))))
}

// Categories prints the per-category counts of a seed run.
func (p *Printer) Categories(counts []store.CategoryCount) {
	fmt.Fprintln(p.w, "\nItems by category:")
	for _, c := range counts {
		fmt.Fprintf(p.w, "  %s: %d\n", c.Category, c.Count)
	}
}

// JSON writes v indented. A nil item slice is written as [].
func (p *Printer) JSON(v interface{}) error {
	if items, ok := v.([]store.Item); ok && items == nil {
		v = []store.Item{}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
