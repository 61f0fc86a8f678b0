package export

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"lakeview/internal/domain"
)

// ROAPITable is one entry of a ROAPI `tables:` configuration list.
type ROAPITable struct {
	Name             string            `yaml:"name"`
	URI              string            `yaml:"uri"`
	Option           ROAPIOption       `yaml:"option"`
	PartitionColumns []PartitionColumn `yaml:"partition_columns,omitempty"`
}

// ROAPIOption selects how ROAPI loads the table data.
type ROAPIOption struct {
	Format         string `yaml:"format"`
	UseMemoryTable bool   `yaml:"use_memory_table"`
}

// PartitionColumn declares a hive partition column for ROAPI.
type PartitionColumn struct {
	Name     string `yaml:"name"`
	DataType string `yaml:"data_type"`
}

type roapiConfig struct {
	Tables []ROAPITable `yaml:"tables"`
}

// ROAPITables projects every exportable table of the snapshot into ROAPI
// table entries. A table is exportable when its data input is a URI and its
// type maps to a ROAPI format; everything else is skipped and reported
// through the returned list only.
func ROAPITables(snap domain.Snapshot) []ROAPITable {
	var tables []ROAPITable
	for _, c := range snap.Catalogs {
		for _, db := range c.Databases {
			for _, t := range db.Tables {
				entry, ok := roapiTable(db.Name, t)
				if !ok {
					continue
				}
				tables = append(tables, entry)
			}
		}
	}
	return tables
}

// WriteROAPIConfig renders the `tables:` document for the snapshot.
func WriteROAPIConfig(w io.Writer, snap domain.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(roapiConfig{Tables: ROAPITables(snap)}); err != nil {
		return fmt.Errorf("encode roapi config: %w", err)
	}
	return enc.Close()
}

func roapiTable(database string, t domain.Table) (ROAPITable, bool) {
	format, ok := roapiFormat(t.TableType)
	if !ok {
		return ROAPITable{}, false
	}
	uri := t.DataInput
	if !looksLikeURI(uri) {
		return ROAPITable{}, false
	}

	entry := ROAPITable{
		Name:   database + "_" + t.Name,
		URI:    uri,
		Option: ROAPIOption{Format: format},
	}

	// Delta tables carry partitioning in their transaction log; only plain
	// parquet needs the partition columns spelled out.
	if format == "parquet" {
		for _, p := range t.Partitions {
			entry.PartitionColumns = append(entry.PartitionColumns, PartitionColumn{
				Name:     p.ColumnName,
				DataType: roapiDataType(p),
			})
		}
	}
	return entry, true
}

func roapiFormat(tableType string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(tableType)) {
	case "PARQUET":
		return "parquet", true
	case "DELTALAKE", "DELTA":
		return "delta", true
	default:
		return "", false
	}
}

func roapiDataType(p domain.Partition) string {
	// Date-named partitions hold YYYY-MM-DD values.
	if p.ColumnName == "date" {
		return "Date32"
	}
	var ann string
	if p.TypeAnnotation != nil {
		ann = strings.ToLower(strings.TrimSpace(*p.TypeAnnotation))
	}
	switch ann {
	case "int", "int64", "integer":
		return "Int64"
	case "float", "float64", "double":
		return "Float64"
	case "bool", "boolean":
		return "Boolean"
	case "str", "string", "utf8":
		return "Utf8"
	}
	switch v := p.Value.(type) {
	case bool:
		return "Boolean"
	case int, int64:
		return "Int64"
	case float64:
		// JSON numbers decode as float64 even for integral values.
		if v == float64(int64(v)) {
			return "Int64"
		}
		return "Float64"
	default:
		return "Utf8"
	}
}

func looksLikeURI(s string) bool {
	for _, prefix := range []string{"s3://", "gs://", "az://", "abfss://", "http://", "https://", "file://", "/"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
