package domain

import "net/url"

// CatalogLocator returns the navigable path for a catalog page.
func CatalogLocator(catalog string) string {
	return "/" + url.PathEscape(catalog)
}

// DatabaseLocator returns the navigable path for a database page.
func DatabaseLocator(catalog, database string) string {
	return CatalogLocator(catalog) + "/" + url.PathEscape(database)
}

// TableLocator returns the navigable path for a table page. The table key is
// URL-escaped since table names may contain characters like spaces.
func TableLocator(catalog, database, table string) string {
	return DatabaseLocator(catalog, database) + "/" + url.PathEscape(table)
}
