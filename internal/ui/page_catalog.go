package ui

import (
	"fmt"

	"lakeview/internal/domain"

	data "maragu.dev/gomponents-datastar"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CatalogPage lists the databases of one catalog with a quick filter.
func CatalogPage(site string, c domain.Catalog) Node {
	rows := make([]Node, 0, len(c.Databases))
	for _, db := range c.Databases {
		rows = append(rows, Tr(
			data.Show(containsExpr(db.Name)),
			Td(A(Href(domain.DatabaseLocator(c.Name, db.Name)), Text(db.Name))),
			Td(Text(fmt.Sprintf("%d", len(db.Tables)))),
		))
	}

	return appPage(site, "Catalog: "+c.Name, c.Name, crumbs(c.Name, "", ""),
		quickFilterCard("Filter by database name"),
		Div(
			Class("card"),
			Table(
				THead(Tr(Th(Text("Database")), Th(Text("Tables")))),
				TBody(Group(rows)),
			),
		),
	)
}
