package ui

import (
	"fmt"

	"lakeview/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// OverviewPage lists every catalog in the export with a database/table tally.
func OverviewPage(site string, catalogs []domain.Catalog) Node {
	searchCatalog := ""
	if len(catalogs) > 0 {
		searchCatalog = catalogs[0].Name
	}

	cards := make([]Node, 0, len(catalogs))
	for _, c := range catalogs {
		tables := 0
		for _, db := range c.Databases {
			tables += len(db.Tables)
		}
		cards = append(cards, Div(
			Class("card"),
			H2(A(Href(domain.CatalogLocator(c.Name)), Text(c.Name))),
			P(Class("muted"), Text(fmt.Sprintf("%d databases, %d tables", len(c.Databases), tables))),
		))
	}
	if len(cards) == 0 {
		cards = append(cards, Div(Class("card"), P(Class("muted"), Text("The export contains no catalogs."))))
	}

	return appPage(site, "Catalogs", searchCatalog, crumbs("", "", ""), cards...)
}
