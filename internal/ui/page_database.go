package ui

import (
	"lakeview/internal/domain"

	data "maragu.dev/gomponents-datastar"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DatabasePage lists the tables of one database, with the catalog's other
// databases in a sidebar for navigation.
func DatabasePage(site string, c domain.Catalog, db domain.Database) Node {
	sidebar := make([]Node, 0, len(c.Databases))
	for _, other := range c.Databases {
		className := ""
		if other.Name == db.Name {
			className = "active"
		}
		sidebar = append(sidebar, Li(
			data.Show(containsExpr(other.Name)),
			A(Href(domain.DatabaseLocator(c.Name, other.Name)), Class(className), Text(other.Name)),
		))
	}

	rows := make([]Node, 0, len(db.Tables))
	for _, t := range db.Tables {
		rows = append(rows, Tr(
			data.Show(containsExpr(t.Name+" "+t.TableType)),
			Td(A(Href(domain.TableLocator(c.Name, db.Name, t.Name)), Text(t.Name))),
			Td(Text(dashIfEmpty(t.TableType))),
			Td(Text(dashIfEmpty(t.Description))),
		))
	}

	return appPage(site, "Database: "+c.Name+"."+db.Name, c.Name, crumbs(c.Name, db.Name, ""),
		quickFilterCard("Filter by table or database name"),
		Div(
			Class("browse"),
			Div(Class("sidebar card"), H2(Text("Databases")), Ul(Group(sidebar))),
			Div(
				Class("card"),
				H2(Text("Tables")),
				Table(
					THead(Tr(Th(Text("Name")), Th(Text("Type")), Th(Text("Description")))),
					TBody(Group(rows)),
				),
			),
		),
	)
}
