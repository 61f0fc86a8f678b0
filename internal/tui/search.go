package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lakeview/internal/search"
	"lakeview/internal/searchbox"
)

type searchModel struct {
	input    textinput.Model
	box      *searchbox.Box
	catalogs []string
	current  int
}

func newSearchModel(cfg Config) searchModel {
	ti := textinput.New()
	ti.Placeholder = "Search databases, tables, columns..."
	ti.CharLimit = 200
	ti.Focus()

	catalogs := cfg.Registry.Catalogs()
	var first string
	if len(catalogs) > 0 {
		first = catalogs[0]
	}

	ref := cfg.program
	box := searchbox.New(searchbox.Config{
		Searcher:  cfg.Registry,
		Scheduler: searchbox.TimerScheduler{},
		Catalog:   first,
		OnUpdate: func() {
			if ref != nil && ref.p != nil {
				ref.p.Send(resultsMsg{})
			}
		},
	})

	return searchModel{
		input:    ti,
		box:      box,
		catalogs: catalogs,
	}
}

func (m searchModel) catalogName() string {
	if len(m.catalogs) == 0 {
		return ""
	}
	return m.catalogs[m.current]
}

func (m *searchModel) focus() {
	m.input.Focus()
}

// Update handles one message on the search screen. It returns the activated
// item when Enter selects a result.
func (m searchModel) Update(msg tea.Msg) (searchModel, *search.IndexItem, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsMsg:
		// Repaint only; results are read from the box in View.
		return m, nil, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			m.box.MoveUp()
			return m, nil, nil
		case "down":
			m.box.MoveDown()
			return m, nil, nil
		case "tab":
			if len(m.catalogs) > 1 {
				m.current = (m.current + 1) % len(m.catalogs)
				m.box.SetCatalog(m.catalogs[m.current])
			}
			return m, nil, nil
		case "enter":
			results := m.box.Results()
			active := m.box.Active()
			if active < 0 || active >= len(results) {
				return m, nil, nil
			}
			item := results[active].Item
			m.box.Activate()
			m.input.SetValue("")
			return m, &item, nil
		case "esc":
			if m.box.PopupVisible() || m.input.Value() != "" {
				m.box.Dismiss()
				m.input.SetValue("")
				return m, nil, nil
			}
			return m, nil, tea.Quit
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.box.SetQuery(v)
	}
	return m, nil, cmd
}

func (m searchModel) View(title string, width, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	if name := m.catalogName(); name != "" {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("  [%s]", name)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.box.Results()
	active := m.box.Active()
	switch {
	case m.box.Query() == "":
		b.WriteString(dimStyle.Render("Type to search the catalog."))
	case len(results) == 0 && m.box.State() == searchbox.StateTyping:
		b.WriteString(dimStyle.Render("Searching..."))
	case len(results) == 0:
		b.WriteString(dimStyle.Render("No matches."))
	default:
		for i, r := range results {
			cursor := "  "
			line := resultLine(r)
			if i == active {
				cursor = selectedStyle.Render("> ")
				line = selectedStyle.Render(stripHighlight(r)) // keep the active row one solid style
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("up/down navigate · enter open · tab switch catalog · esc clear/quit"))
	return b.String()
}

// resultLine renders one result row with its matched characters emphasised.
func resultLine(r search.Match) string {
	field := fieldForKind(r.Item.Kind)
	label := highlightRanges(r.Item.Label(), r.Fields[field])

	ctx := matchContext(r.Item)
	if ctx != "" {
		return label + dimStyle.Render("  "+ctx)
	}
	return label
}

func stripHighlight(r search.Match) string {
	ctx := matchContext(r.Item)
	if ctx != "" {
		return r.Item.Label() + "  " + ctx
	}
	return r.Item.Label()
}

func matchContext(item search.IndexItem) string {
	switch item.Kind {
	case search.KindDatabase:
		return "database"
	case search.KindTable:
		return "table in " + item.Database
	case search.KindPartition:
		return partitionContext(item)
	default:
		return columnContext(item)
	}
}

func columnContext(item search.IndexItem) string {
	ctx := "column of " + item.Database + "." + item.Table
	if item.TypeInfo != "" {
		ctx += " (" + item.TypeInfo + ")"
	}
	return ctx
}

func partitionContext(item search.IndexItem) string {
	ctx := "partition of " + item.Database + "." + item.Table
	if item.TypeInfo != "" {
		ctx += " (" + item.TypeInfo + ")"
	}
	return ctx
}

func fieldForKind(kind search.Kind) string {
	switch kind {
	case search.KindDatabase:
		return search.FieldDatabase
	case search.KindTable:
		return search.FieldTable
	default:
		return search.FieldColumn
	}
}

// highlightRanges styles the matched byte ranges of text. Ranges are sorted,
// non-overlapping byte offsets produced by the matcher; boundaries are
// snapped to rune starts so multi-byte runes never render split.
func highlightRanges(text string, ranges []search.Range) string {
	if len(ranges) == 0 {
		return listItemStyle.Render(text)
	}

	var b strings.Builder
	prev := 0
	for _, rg := range ranges {
		if rg.Start < prev || rg.End > len(text) || rg.Start >= rg.End {
			return listItemStyle.Render(text)
		}
		start, end := snapToRunes(text, rg.Start, rg.End)
		if start < prev {
			start = prev
		}
		if end <= start {
			continue
		}
		if start > prev {
			b.WriteString(listItemStyle.Render(text[prev:start]))
		}
		b.WriteString(matchStyle.Render(text[start:end]))
		prev = end
	}
	if prev < len(text) {
		b.WriteString(listItemStyle.Render(text[prev:]))
	}
	return b.String()
}

// snapToRunes widens a byte range so neither boundary splits a multi-byte
// rune.
func snapToRunes(text string, start, end int) (int, int) {
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return start, end
}
