// Package export renders the catalog browser to a self-contained static
// site and generates ROAPI table configuration from the same snapshot.
package export

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"maragu.dev/gomponents"

	"lakeview/internal/catalog"
	"lakeview/internal/domain"
	"lakeview/internal/ui"
	"lakeview/internal/ui/assets"
)

// Site writes a browsable static rendition of the catalog.
type Site struct {
	Store     *catalog.Store
	SiteTitle string
	Logger    *slog.Logger
}

// NewSite creates a static-site exporter for the given store.
func NewSite(store *catalog.Store, title string, logger *slog.Logger) *Site {
	if logger == nil {
		logger = slog.Default()
	}
	return &Site{
		Store:     store,
		SiteTitle: title,
		Logger:    logger.With("component", "export"),
	}
}

// Generate wipes outputDir and rebuilds the full site under it: one HTML
// page per catalog, database and table, the raw snapshot as data.json,
// and the embedded static assets. Table pages render in parallel.
func (s *Site) Generate(outputDir string) error {
	if outputDir == "" || outputDir == "/" {
		return domain.ErrValidation("refusing to export into %q", outputDir)
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("clean output dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := s.writeSnapshot(outputDir); err != nil {
		return err
	}
	if err := s.copyAssets(outputDir); err != nil {
		return err
	}

	catalogs := s.Store.Catalogs()
	if err := writePage(filepath.Join(outputDir, "index.html"), ui.OverviewPage(s.SiteTitle, catalogs)); err != nil {
		return err
	}

	var g errgroup.Group
	pages := 1
	for _, c := range catalogs {
		c := c // per-iteration copy: module now builds with go < 1.22 loop semantics
		g.Go(func() error {
			return writePage(filepath.Join(outputDir, c.Name, "index.html"), ui.CatalogPage(s.SiteTitle, c))
		})
		pages++
		for _, db := range c.Databases {
			db := db
			g.Go(func() error {
				return writePage(filepath.Join(outputDir, c.Name, db.Name, "index.html"), ui.DatabasePage(s.SiteTitle, c, db))
			})
			pages++
			for _, t := range db.Tables {
				t := t
				g.Go(func() error {
					return writePage(filepath.Join(outputDir, c.Name, db.Name, t.Name, "index.html"), ui.TablePage(s.SiteTitle, c, db, t))
				})
				pages++
			}
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.Logger.Info("site generated", "dir", outputDir, "pages", pages)
	return nil
}

func (s *Site) writeSnapshot(outputDir string) error {
	f, err := os.Create(filepath.Join(outputDir, "data.json"))
	if err != nil {
		return fmt.Errorf("write data.json: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Store.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}

func (s *Site) copyAssets(outputDir string) error {
	static := assets.StaticFS()
	return fs.WalkDir(static, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(outputDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		return os.WriteFile(dst, data, 0o644)
	})
}

func writePage(path string, node gomponents.Node) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create page dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	defer f.Close()

	if err := node.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
