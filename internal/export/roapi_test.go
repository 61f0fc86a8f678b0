package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lakeview/internal/domain"
)

func TestROAPITables(t *testing.T) {
	tables := ROAPITables(exportSnapshot())

	// The clickhouse table has no ROAPI format and is skipped.
	require.Len(t, tables, 2)

	t.Run("parquet_with_partition_columns", func(t *testing.T) {
		entry := tables[0]
		assert.Equal(t, "sales_customer", entry.Name)
		assert.Equal(t, "s3://lake/sales/customer/", entry.URI)
		assert.Equal(t, "parquet", entry.Option.Format)
		require.Len(t, entry.PartitionColumns, 1)
		assert.Equal(t, "c_custkey", entry.PartitionColumns[0].Name)
		assert.Equal(t, "Int64", entry.PartitionColumns[0].DataType)
	})

	t.Run("delta_without_partition_columns", func(t *testing.T) {
		entry := tables[1]
		assert.Equal(t, "sales_orders", entry.Name)
		assert.Equal(t, "delta", entry.Option.Format)
		assert.Empty(t, entry.PartitionColumns)
	})
}

func TestWriteROAPIConfig(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteROAPIConfig(&buf, exportSnapshot()))

	var decoded struct {
		Tables []ROAPITable `yaml:"tables"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(buf.String()), &decoded))
	require.Len(t, decoded.Tables, 2)
	assert.Equal(t, "sales_customer", decoded.Tables[0].Name)

	assert.Contains(t, buf.String(), "use_memory_table: false")
}

func TestRoapiDataType(t *testing.T) {
	ann := func(s string) *string { return &s }

	cases := []struct {
		name string
		col  string
		ta   *string
		val  any
		want string
	}{
		{"date_column_is_date32", "date", nil, "2024-01-01", "Date32"},
		{"annotation_wins", "part", ann("str"), 3, "Utf8"},
		{"integral_json_number", "part", nil, float64(7), "Int64"},
		{"fractional_json_number", "part", nil, 1.5, "Float64"},
		{"bool_value", "part", nil, true, "Boolean"},
		{"fallback_utf8", "part", nil, nil, "Utf8"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := roapiDataType(domain.Partition{ColumnName: tc.col, TypeAnnotation: tc.ta, Value: tc.val})
			assert.Equal(t, tc.want, got)
		})
	}
}
