package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lakeview/internal/domain"
	"lakeview/internal/snippet"
)

// detailModel renders a database or table detail screen. It is read-only;
// the only interaction is scrolling and Esc back to search.
type detailModel struct {
	header  string
	lines   []string
	offset  int
	focused string // column name to mark, when arriving from a column hit
}

func newDatabaseDetail(catalogName string, db domain.Database) detailModel {
	lines := []string{
		subtitleStyle.Render(fmt.Sprintf("%d tables", len(db.Tables))),
		"",
	}
	for _, t := range db.Tables {
		line := listItemStyle.Render(t.Name)
		if t.Description != "" {
			line += dimStyle.Render("  " + t.Description)
		}
		lines = append(lines, line)
	}
	return detailModel{
		header: headerStyle.Render(catalogName + " / " + db.Name),
		lines:  lines,
	}
}

func newTableDetail(catalogName, dbName string, t domain.Table, focusedColumn string) detailModel {
	d := detailModel{
		header:  headerStyle.Render(catalogName + " / " + dbName + " / " + t.Name),
		focused: focusedColumn,
	}

	if t.Description != "" {
		d.lines = append(d.lines, subtitleStyle.Render(t.Description), "")
	}

	meta := metadataLines(t)
	if len(meta) > 0 {
		d.lines = append(d.lines, meta...)
		d.lines = append(d.lines, "")
	}

	d.lines = append(d.lines, titleStyle.Render("Columns"))
	if !t.HasColumns() {
		d.lines = append(d.lines, dimStyle.Render("Schema unavailable for this table."))
	}
	for _, col := range t.Columns {
		d.lines = append(d.lines, d.columnLine(col))
	}

	if len(t.Partitions) > 0 {
		d.lines = append(d.lines, "", titleStyle.Render("Partitions"))
		for _, p := range t.Partitions {
			d.lines = append(d.lines, partitionLine(p))
		}
	}

	d.lines = append(d.lines, "", titleStyle.Render("Usage"))
	for _, line := range strings.Split(snippet.Python(catalogName, dbName, t), "\n") {
		d.lines = append(d.lines, dimStyle.Render("  "+line))
	}

	return d
}

func metadataLines(t domain.Table) []string {
	var lines []string
	add := func(key, value string) {
		if value != "" {
			lines = append(lines, dimStyle.Render(key+": ")+listItemStyle.Render(value))
		}
	}
	add("type", t.TableType)
	add("latency", t.LatencyInfo)
	add("data input", t.DataInput)
	if t.SupportsSQLFilter {
		add("sql filter", "supported")
	}
	return lines
}

func (d detailModel) columnLine(col domain.Column) string {
	name := listItemStyle.Render(col.Name)
	if col.Name == d.focused {
		name = matchStyle.Render(col.Name)
	}
	line := "  " + name
	if col.Type != "" {
		line += dimStyle.Render("  " + col.Type)
	}
	var flags []string
	if col.Readonly {
		flags = append(flags, "readonly")
	}
	if col.FilterOnly {
		flags = append(flags, "filter-only")
	}
	if col.HasStats {
		flags = append(flags, "stats")
	}
	if len(flags) > 0 {
		line += subtitleStyle.Render("  [" + strings.Join(flags, ", ") + "]")
	}
	return line
}

func partitionLine(p domain.Partition) string {
	line := "  " + listItemStyle.Render(p.ColumnName)
	if p.TypeAnnotation != nil && *p.TypeAnnotation != "" {
		line += dimStyle.Render("  " + *p.TypeAnnotation)
	}
	return line
}

// Update handles keys on a detail screen; it reports done=true when the
// user navigates back to search.
func (d detailModel) Update(msg tea.Msg) (detailModel, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, false
	}

	switch keyMsg.String() {
	case "esc", "q", "backspace":
		return d, true
	case "up":
		if d.offset > 0 {
			d.offset--
		}
	case "down":
		if d.offset < len(d.lines)-1 {
			d.offset++
		}
	}
	return d, false
}

func (d detailModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(d.header)
	b.WriteString("\n\n")

	visible := d.lines
	if height > 6 {
		max := height - 5
		if d.offset < len(visible) {
			visible = visible[d.offset:]
		}
		if len(visible) > max {
			visible = visible[:max]
		}
	}
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down scroll · esc back"))
	return b.String()
}
