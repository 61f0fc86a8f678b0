package ui

import (
	"lakeview/internal/domain"
	"lakeview/internal/snippet"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TablePage shows one table's descriptive metadata, schema, partitions, and
// a generated usage snippet for the upstream catalog API.
func TablePage(site string, c domain.Catalog, db domain.Database, t domain.Table) Node {
	body := []Node{metadataCard(t)}

	if t.HasColumns() {
		body = append(body, columnsCard(t))
	} else {
		body = append(body, Div(
			Class("card"),
			H2(Text("Columns")),
			P(Class("muted"), Text("No schema was resolved for this table in the export.")),
		))
	}

	if len(t.Partitions) > 0 {
		body = append(body, partitionsCard(t))
	}

	body = append(body, Div(
		Class("card"),
		H2(Text("Usage")),
		Pre(Class("snippet"), Code(Text(snippet.Python(c.Name, db.Name, t)))),
	))

	return appPage(site, "Table: "+db.Name+"."+t.Name, c.Name, crumbs(c.Name, db.Name, t.Name), body...)
}

func metadataCard(t domain.Table) Node {
	rows := []Node{
		P(Text("Type: "+dashIfEmpty(t.TableType))),
		P(Text("Description: "+dashIfEmpty(t.Description))),
		P(Text("Latency: "+dashIfEmpty(t.LatencyInfo))),
		P(Text("Data input: "+dashIfEmpty(t.DataInput))),
		P(Text("SQL filter pushdown: "+boolLabel(t.SupportsSQLFilter))),
	}
	if t.ExampleNotebook != "" {
		rows = append(rows, P(A(Href(t.ExampleNotebook), Text("Example notebook"))))
	}
	return Div(Class("card"), Group(rows))
}

func columnsCard(t domain.Table) Node {
	rows := make([]Node, 0, len(t.Columns))
	for _, col := range t.Columns {
		flags := ""
		if col.Readonly {
			flags += "readonly "
		}
		if col.FilterOnly {
			flags += "filter-only "
		}
		if col.HasStats {
			flags += "stats"
		}
		rows = append(rows, Tr(
			Td(Text(col.Name)),
			Td(Text(formatType(col.Type))),
			Td(Class("muted"), Text(dashIfEmpty(flags))),
		))
	}
	return Div(
		Class("card"),
		H2(Text("Columns")),
		Table(
			THead(Tr(Th(Text("Name")), Th(Text("Type")), Th(Text("Flags")))),
			TBody(Group(rows)),
		),
	)
}

func partitionsCard(t domain.Table) Node {
	rows := make([]Node, 0, len(t.Partitions))
	for _, p := range t.Partitions {
		typeInfo := "-"
		if p.TypeAnnotation != nil {
			typeInfo = formatType(*p.TypeAnnotation)
		}
		rows = append(rows, Tr(
			Td(Text(p.ColumnName)),
			Td(Text(typeInfo)),
		))
	}
	return Div(
		Class("card"),
		H2(Text("Partitions")),
		Table(
			THead(Tr(Th(Text("Column")), Th(Text("Type")))),
			TBody(Group(rows)),
		),
	)
}
