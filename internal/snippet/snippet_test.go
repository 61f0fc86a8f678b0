package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lakeview/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestPython(t *testing.T) {
	t.Run("partitioned_table_with_selected_columns", func(t *testing.T) {
		table := domain.Table{
			Name: "customer",
			Partitions: []domain.Partition{
				{ColumnName: "c_custkey", TypeAnnotation: strPtr("int"), Value: 1},
			},
			SelectedColumns: []string{"c_custkey", "c_name"},
		}

		got := Python("tpc-h", "sales", table)
		want := `from datarepo.core import Filter

df = catalog("tpc-h").db("sales").table(
    "customer",
    filters=[
        Filter("c_custkey", "=", 1),
    ],
    columns=["c_custkey", "c_name"],
).collect()
`
		assert.Equal(t, want, got)
	})

	t.Run("plain_table", func(t *testing.T) {
		got := Python("tpc-h", "supply", domain.Table{Name: "part"})
		want := `df = catalog("tpc-h").db("supply").table(
    "part",
).collect()
`
		assert.Equal(t, want, got)
	})

	t.Run("string_partition_value", func(t *testing.T) {
		table := domain.Table{
			Name: "orders",
			Partitions: []domain.Partition{
				{ColumnName: "o_orderdate", Value: "1995-01-01"},
			},
		}
		got := Python("tpc-h", "sales", table)
		assert.Contains(t, got, `Filter("o_orderdate", "=", "1995-01-01")`)
	})

	t.Run("missing_partition_value", func(t *testing.T) {
		table := domain.Table{
			Name:       "events",
			Partitions: []domain.Partition{{ColumnName: "day"}},
		}
		got := Python("c", "db", table)
		assert.Contains(t, got, `Filter("day", "=", ...)`)
	})
}
