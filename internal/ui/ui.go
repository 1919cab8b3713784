package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/x402-Systems/pantry/internal/render"
	"github.com/x402-Systems/pantry/internal/store"
)

var (
	// Colors
	red   = lipgloss.Color("#FF0000")
	grey  = lipgloss.Color("#444444")
	white = lipgloss.Color("#FFFFFF")

	// Styles
	headerStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(red).
			Padding(0, 1).
			Bold(true).
			MarginBottom(1)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderLeftForeground(red).
			PaddingLeft(2)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(grey).
			Width(12).
			Render

	detailValStyle = lipgloss.NewStyle().
			Foreground(white).
			Bold(true).
			Render

	helpStyle = lipgloss.NewStyle().Foreground(grey).MarginTop(1)
)

// Source is what the browser reads items from.
type Source interface {
	List(ctx context.Context, category string) ([]store.Item, error)
}

type itemsMsg []store.Item

type errMsg struct{ err error }

// Model is a read-only browser over the inventory.
type Model struct {
	ctx        context.Context
	table      table.Model
	src        Source
	items      []store.Item
	categories []string
	filter     int // index into categories, -1 shows everything
	status     string
	err        error
}

func New(ctx context.Context, src Source) Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "NAME", Width: 30},
		{Title: "QTY", Width: 8},
		{Title: "UNIT", Width: 8},
		{Title: "CATEGORY", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(grey).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(white).
		Background(red).
		Bold(true)
	t.SetStyles(s)

	return Model{
		ctx:    ctx,
		table:  t,
		src:    src,
		filter: -1,
		status: "LOADING",
	}
}

// Init loads every item; category filtering happens in memory.
func (m Model) Init() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		items, err := src.List(ctx, "")
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg(items)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.items = msg
		m.categories = categoriesOf(msg)
		if m.filter >= len(m.categories) {
			m.filter = -1
		}
		m.err = nil
		m.refreshRows()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.status = "ERROR"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.status = "RELOADING"
			return m, m.Init()
		case "c":
			if len(m.categories) > 0 {
				m.filter++
				if m.filter >= len(m.categories) {
					m.filter = -1
				}
				m.refreshRows()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Filter returns the category currently shown, or "" for all of them.
func (m Model) Filter() string {
	if m.filter < 0 || m.filter >= len(m.categories) {
		return ""
	}
	return m.categories[m.filter]
}

func (m *Model) refreshRows() {
	want := m.Filter()

	rows := make([]table.Row, 0, len(m.items))
	for _, it := range m.items {
		if want != "" && it.Category != want {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", it.ID),
			it.Name,
			render.Quantity(it.Quantity),
			it.Unit,
			it.Category,
		})
	}
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(0)
	}

	if want == "" {
		want = "ALL"
	}
	m.status = strings.ToUpper(fmt.Sprintf("%s // %d items", want, len(rows)))
}

func (m Model) View() string {
	header := headerStyle.Render("PANTRY // INVENTORY")
	statusLine := lipgloss.NewStyle().Foreground(red).Render(fmt.Sprintf(" STATUS: %s", m.status))

	var body string
	if m.err != nil {
		body = lipgloss.NewStyle().Foreground(red).Render(fmt.Sprintf("Failed to load inventory: %v", m.err))
	} else {
		var details string
		if curr := m.table.SelectedRow(); len(curr) > 0 {
			details = lipgloss.JoinVertical(lipgloss.Left,
				detailKeyStyle("ID")+detailValStyle(curr[0]),
				detailKeyStyle("NAME")+detailValStyle(curr[1]),
				detailKeyStyle("QUANTITY")+detailValStyle(curr[2]+" "+curr[3]),
				detailKeyStyle("CATEGORY")+detailValStyle(curr[4]),
			)
		} else {
			details = lipgloss.NewStyle().Foreground(grey).Italic(true).Render("No items found.")
		}

		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.table.View(),
			lipgloss.NewStyle().MarginLeft(4).Render(borderStyle.Render(details)),
		)
	}

	help := helpStyle.Render(" q: quit • r: reload • c: next category • ↑/↓: move")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		statusLine,
		"",
		body,
		help,
	)
}

func categoriesOf(items []store.Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	sort.Strings(out)
	return out
}
