package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakeview/internal/domain"
	"lakeview/internal/search"
)

func TestHighlightRanges(t *testing.T) {
	t.Run("marks_matched_bytes", func(t *testing.T) {
		out := highlightRanges("c_custkey", []search.Range{{Start: 2, End: 9}})
		assert.Contains(t, out, "custkey")
		assert.Contains(t, out, "c_")
	})

	t.Run("malformed_range_falls_back_to_plain", func(t *testing.T) {
		out := highlightRanges("name", []search.Range{{Start: 3, End: 99}})
		assert.Contains(t, out, "name")
	})
}

func TestSnapToRunes(t *testing.T) {
	// "naïve": ï spans bytes 2-3.
	start, end := snapToRunes("naïve", 3, 5)
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	start, end = snapToRunes("naïve", 0, 3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)

	start, end = snapToRunes("plain", 1, 3)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
}

func TestMatchContext(t *testing.T) {
	cases := []struct {
		name string
		item search.IndexItem
		want string
	}{
		{"database", search.IndexItem{Kind: search.KindDatabase, Database: "sales"}, "database"},
		{"table", search.IndexItem{Kind: search.KindTable, Database: "sales", Table: "customer"}, "table in sales"},
		{"column", search.IndexItem{Kind: search.KindColumn, Database: "sales", Table: "customer", Column: "c_name", TypeInfo: "Utf8"}, "column of sales.customer (Utf8)"},
		{"partition", search.IndexItem{Kind: search.KindPartition, Database: "sales", Table: "customer", Column: "c_custkey"}, "partition of sales.customer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matchContext(tc.item))
		})
	}
}

func TestTableDetail(t *testing.T) {
	ann := "int"
	table := domain.Table{
		Name:        "customer",
		Description: "Customer master data.",
		Columns: []domain.Column{
			{Name: "c_custkey", Type: "Int64", HasStats: true},
			{Name: "c_name", Type: "Utf8"},
		},
		Partitions: []domain.Partition{{ColumnName: "c_custkey", TypeAnnotation: &ann}},
		TableType:  "DELTALAKE",
	}

	d := newTableDetail("tpc-h", "sales", table, "c_name")
	view := d.View(80, 40)

	assert.Contains(t, view, "tpc-h / sales / customer")
	assert.Contains(t, view, "c_custkey")
	assert.Contains(t, view, "Partitions")
	assert.Contains(t, view, `catalog("tpc-h")`)
	assert.Contains(t, view, "[stats]")
}

func TestTableDetailWithoutSchema(t *testing.T) {
	d := newTableDetail("tpc-h", "supply", domain.Table{Name: "part"}, "")
	assert.Contains(t, d.View(80, 40), "Schema unavailable")
}

func TestDatabaseDetail(t *testing.T) {
	db := domain.Database{Name: "sales", Tables: []domain.Table{{Name: "customer"}, {Name: "orders"}}}
	d := newDatabaseDetail("tpc-h", db)
	view := d.View(80, 40)

	assert.Contains(t, view, "tpc-h / sales")
	assert.Contains(t, view, "2 tables")
	assert.Contains(t, view, "orders")
}

func TestDetailUpdate(t *testing.T) {
	d := newDatabaseDetail("tpc-h", domain.Database{Name: "sales"})

	t.Run("esc_returns_to_search", func(t *testing.T) {
		_, done := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, done)
	})

	t.Run("scroll_clamps_at_top", func(t *testing.T) {
		next, done := d.Update(tea.KeyMsg{Type: tea.KeyUp})
		require.False(t, done)
		assert.Equal(t, 0, next.offset)
	})
}

func TestSearchViewStates(t *testing.T) {
	reg := search.BuildRegistry(domain.Snapshot{Catalogs: []domain.Catalog{{
		Name: "tpc-h",
		Databases: []domain.Database{{
			Name:   "sales",
			Tables: []domain.Table{{Name: "customer"}},
		}},
	}}})

	m := newSearchModel(Config{Registry: reg, Title: "Data Catalog"})
	view := m.View("Data Catalog", 80, 24)

	assert.True(t, strings.Contains(view, "Type to search"))
	assert.Contains(t, view, "[tpc-h]")
}
