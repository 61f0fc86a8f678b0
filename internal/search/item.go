package search

// Kind tags the catalog entity an IndexItem was projected from.
type Kind string

const (
	KindDatabase  Kind = "database"
	KindTable     Kind = "table"
	KindColumn    Kind = "column"
	KindPartition Kind = "partition"
)

// Searched field names, used to key matched ranges for highlighting.
const (
	FieldDatabase = "database"
	FieldTable    = "table"
	FieldColumn   = "column"
)

// IndexItem is a flattened, search-oriented projection of one catalog entity.
// Locator always points at an existing database or table page in the source
// snapshot; the snapshot is immutable for the session so locators never go
// stale.
type IndexItem struct {
	Kind     Kind
	Locator  string
	Database string
	Table    string // empty for database items
	Column   string // column-or-partition name, fine items only
	TypeInfo string // optional type descriptor for column/partition items
}

// Label returns the display name of the entity itself.
func (it IndexItem) Label() string {
	switch it.Kind {
	case KindDatabase:
		return it.Database
	case KindTable:
		return it.Table
	default:
		return it.Column
	}
}

type keyField struct {
	field string
	text  string
}

// keys lists the searchable text keys for the item. Coarse items expose
// database and table names; fine items additionally expose the
// column-or-partition name.
func (it IndexItem) keys() []keyField {
	keys := make([]keyField, 0, 3)
	keys = append(keys, keyField{field: FieldDatabase, text: it.Database})
	if it.Table != "" {
		keys = append(keys, keyField{field: FieldTable, text: it.Table})
	}
	if it.Column != "" {
		keys = append(keys, keyField{field: FieldColumn, text: it.Column})
	}
	return keys
}
