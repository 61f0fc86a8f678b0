package ui

import (
	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

// appPage is the shared chrome: topbar with the search box, breadcrumb nav,
// and page body. catalogKey selects which catalog's index the search box
// queries.
func appPage(site, title, catalogKey string, nav []gomponents.Node, body ...gomponents.Node) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | "+site)),
			html.Link(html.Rel("stylesheet"), html.Href("/static/css/app.css")),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.Div(
					html.Class("topbar"),
					html.Div(
						html.Strong(html.A(html.Href("/"), gomponents.Text(site))),
						html.P(html.Class("muted"), gomponents.Text("Read-only catalog metadata browser")),
					),
					searchBox(catalogKey),
				),
				html.Nav(html.Class("nav"), gomponents.Group(nav)),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				gomponents.Group(body),
			),
			html.Script(html.Src("/static/js/search.js"), html.Defer()),
		),
	)
}

// searchBox renders the autocomplete input and its (initially empty) result
// popup. The popup is filled by /search/results fragments; it is visible iff
// it has results since :empty popups collapse in CSS.
func searchBox(catalogKey string) gomponents.Node {
	return html.Div(
		html.Class("searchbox"),
		data.Signals(map[string]any{"q": ""}),
		html.Input(
			html.Type("search"),
			html.ID("catalog-search"),
			data.Bind("q"),
			gomponents.Attr("data-catalog", catalogKey),
			html.Placeholder("Search databases, tables, columns..."),
			html.AutoComplete("off"),
		),
		html.Div(html.ID("search-results"), html.Class("search-popup")),
	)
}

func errorPage(site, title, message string) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | "+site)),
			html.Link(html.Rel("stylesheet"), html.Href("/static/css/app.css")),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				html.P(gomponents.Text(message)),
				html.P(html.A(html.Href("/"), gomponents.Text("Back to overview"))),
			),
		),
	)
}
