package ui

import (
	"strconv"
	"strings"

	"lakeview/internal/domain"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

func dashIfEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func boolLabel(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}

// formatType normalizes exported schema type descriptors for display.
func formatType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "-"
	}
	return strings.ToLower(t)
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

// quickFilterCard is the datastar-driven client-side filter used on sidebar
// and listing pages; rows opt in via data.Show(containsExpr(...)).
func quickFilterCard(placeholder string) Node {
	return Div(
		Class("card"),
		data.Signals(map[string]any{"q": ""}),
		Label(Class("muted"), Text("Quick filter")),
		Input(Type("search"), data.Bind("q"), Placeholder(placeholder), AutoComplete("off")),
	)
}

// crumbs builds the breadcrumb nav for a page. Each level links back up the
// catalog tree.
func crumbs(catalogName, databaseName, tableName string) []Node {
	nav := []Node{A(Href("/"), Text("Catalogs"))}
	if catalogName != "" {
		nav = append(nav, A(Href(domain.CatalogLocator(catalogName)), Text(catalogName)))
	}
	if databaseName != "" {
		nav = append(nav, A(Href(domain.DatabaseLocator(catalogName, databaseName)), Text(databaseName)))
	}
	if tableName != "" {
		nav = append(nav, A(
			Href(domain.TableLocator(catalogName, databaseName, tableName)),
			Class("active"),
			Text(tableName),
		))
	}
	return nav
}
