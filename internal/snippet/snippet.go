// Package snippet renders copy-pasteable code snippets for the upstream
// catalog API, shown on table pages.
package snippet

import (
	"encoding/json"
	"fmt"
	"strings"

	"lakeview/internal/domain"
)

// Python renders the Python snippet for reading a table through the catalog
// client. Partitioned tables get one example filter per partition column so
// readers see which pushdown filters the table expects.
func Python(catalog, database string, table domain.Table) string {
	var b strings.Builder

	if len(table.Partitions) > 0 {
		b.WriteString("from datarepo.core import Filter\n\n")
	}

	b.WriteString(fmt.Sprintf("df = catalog(%q).db(%q).table(\n", catalog, database))
	b.WriteString(fmt.Sprintf("    %q,\n", table.Name))

	if len(table.Partitions) > 0 {
		b.WriteString("    filters=[\n")
		for _, p := range table.Partitions {
			b.WriteString(fmt.Sprintf("        Filter(%q, \"=\", %s),\n", p.ColumnName, pyValue(p.Value)))
		}
		b.WriteString("    ],\n")
	}

	if len(table.SelectedColumns) > 0 {
		cols := make([]string, 0, len(table.SelectedColumns))
		for _, c := range table.SelectedColumns {
			cols = append(cols, fmt.Sprintf("%q", c))
		}
		b.WriteString(fmt.Sprintf("    columns=[%s],\n", strings.Join(cols, ", ")))
	}

	b.WriteString(").collect()\n")
	return b.String()
}

// pyValue renders a partition example value as a Python literal. JSON scalars
// and Python literals agree for strings and numbers; anything unrenderable
// becomes an ellipsis placeholder.
func pyValue(v any) string {
	if v == nil {
		return "..."
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "..."
	}
	return string(raw)
}
