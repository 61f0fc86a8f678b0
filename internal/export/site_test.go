package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakeview/internal/catalog"
	"lakeview/internal/domain"
)

func exportSnapshot() domain.Snapshot {
	ann := "int"
	return domain.Snapshot{Catalogs: []domain.Catalog{{
		Name: "tpc-h",
		Databases: []domain.Database{{
			Name: "sales",
			Tables: []domain.Table{
				{
					Name:        "customer",
					Description: "Customer master data.",
					Columns: []domain.Column{
						{Name: "c_custkey", Type: "Int64"},
						{Name: "c_name", Type: "Utf8"},
					},
					Partitions: []domain.Partition{
						{ColumnName: "c_custkey", TypeAnnotation: &ann, Value: 1},
					},
					TableType: "PARQUET",
					DataInput: "s3://lake/sales/customer/",
				},
				{
					Name:      "orders",
					Columns:   []domain.Column{{Name: "o_orderkey", Type: "Int64"}},
					TableType: "DELTALAKE",
					DataInput: "s3://lake/sales/orders/",
				},
				{
					Name:      "events",
					TableType: "CLICKHOUSE",
					DataInput: "clickhouse cluster feed",
				},
			},
		}},
	}}}
}

func TestSiteGenerate(t *testing.T) {
	store, err := catalog.FromSnapshot(exportSnapshot())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "dist")
	// A stale file from a previous export must not survive the rebuild.
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.html"), []byte("old"), 0o644))

	site := NewSite(store, "Data Catalog", nil)
	require.NoError(t, site.Generate(dir))

	t.Run("wipes_previous_output", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dir, "stale.html"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("renders_every_page", func(t *testing.T) {
		for _, page := range []string{
			"index.html",
			"tpc-h/index.html",
			"tpc-h/sales/index.html",
			"tpc-h/sales/customer/index.html",
			"tpc-h/sales/orders/index.html",
			"tpc-h/sales/events/index.html",
		} {
			data, err := os.ReadFile(filepath.Join(dir, page))
			require.NoError(t, err, page)
			assert.Contains(t, string(data), "Data Catalog", page)
		}

		table, err := os.ReadFile(filepath.Join(dir, "tpc-h/sales/customer/index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(table), "c_custkey")
	})

	t.Run("writes_snapshot_json", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, "data.json"))
		require.NoError(t, err)

		var snap domain.Snapshot
		require.NoError(t, json.Unmarshal(data, &snap))
		require.Len(t, snap.Catalogs, 1)
		assert.Equal(t, "tpc-h", snap.Catalogs[0].Name)
	})

	t.Run("copies_static_assets", func(t *testing.T) {
		for _, asset := range []string{"static/css/app.css", "static/js/search.js"} {
			_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(asset)))
			assert.NoError(t, err, asset)
		}
	})
}

func TestSiteGenerateRejectsEmptyDir(t *testing.T) {
	store, err := catalog.FromSnapshot(exportSnapshot())
	require.NoError(t, err)

	site := NewSite(store, "Data Catalog", nil)
	var verr *domain.ValidationError
	require.ErrorAs(t, site.Generate(""), &verr)
}
