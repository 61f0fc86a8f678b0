// Package domain defines the read-only catalog metadata model and errors
// shared across lakeview.
package domain

// Snapshot is the root of a catalog metadata export. It is loaded once at
// startup and never mutated afterwards.
type Snapshot struct {
	Catalogs []Catalog `json:"catalogs"`
}

// Catalog is a top-level named collection of databases.
type Catalog struct {
	Name      string     `json:"name"`
	Databases []Database `json:"databases"`
}

// Database groups tables under a catalog. Names are unique within a catalog.
type Database struct {
	Name   string  `json:"name"`
	Tables []Table `json:"tables"`
}

// Table carries the exported metadata for a single table. Columns is nil when
// the exporter could not resolve a schema for the table.
type Table struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Partitions        []Partition `json:"partitions"`
	Columns           []Column    `json:"columns"`
	SelectedColumns   []string    `json:"selected_columns"`
	SupportsSQLFilter bool        `json:"supports_sql_filter"`
	TableType         string      `json:"table_type"`
	LatencyInfo       string      `json:"latency_info"`
	ExampleNotebook   string      `json:"example_notebook"`
	DataInput         string      `json:"data_input"`
}

// Column describes one column of a table schema.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Readonly   bool   `json:"readonly,omitempty"`
	FilterOnly bool   `json:"filter_only,omitempty"`
	HasStats   bool   `json:"has_stats,omitempty"`
}

// Partition describes a partitioning column of a table.
type Partition struct {
	ColumnName     string  `json:"column_name"`
	TypeAnnotation *string `json:"type_annotation"`
	Value          any     `json:"value,omitempty"`
}

// Database returns the named database, or false when absent.
func (c Catalog) Database(name string) (Database, bool) {
	for i := range c.Databases {
		if c.Databases[i].Name == name {
			return c.Databases[i], true
		}
	}
	return Database{}, false
}

// Table returns the named table, or false when absent.
func (d Database) Table(name string) (Table, bool) {
	for i := range d.Tables {
		if d.Tables[i].Name == name {
			return d.Tables[i], true
		}
	}
	return Table{}, false
}

// HasColumns reports whether the exporter resolved a schema for the table.
func (t Table) HasColumns() bool {
	return t.Columns != nil
}
