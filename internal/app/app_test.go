package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakeview/internal/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		DataPath:           "../catalog/testdata/data.json",
		ListenAddr:         ":0",
		SiteTitle:          "Data Catalog",
		CORSAllowedOrigins: []string{"*"},
	}

	a, err := New(Deps{Cfg: cfg})
	require.NoError(t, err)

	srv := httptest.NewServer(a.Router)
	t.Cleanup(srv.Close)

	get := func(path string) (int, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	t.Run("serves_ui", func(t *testing.T) {
		status, body := get("/")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Data Catalog")
	})

	t.Run("serves_api", func(t *testing.T) {
		status, body := get("/api/catalogs")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "tpc-h")
	})

	t.Run("serves_search", func(t *testing.T) {
		status, body := get("/api/search?catalog=tpc-h&q=custkey")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "c_custkey")
	})
}

func TestNewMissingData(t *testing.T) {
	cfg := &config.Config{DataPath: "does-not-exist.json", ListenAddr: ":0"}
	_, err := New(Deps{Cfg: cfg})
	require.Error(t, err)
}
