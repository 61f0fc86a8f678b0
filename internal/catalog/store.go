// Package catalog loads a catalog metadata export and serves read-only
// lookups over it for the lifetime of the process.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"lakeview/internal/domain"
)

// Store holds one immutable metadata snapshot with by-name lookup.
type Store struct {
	snapshot domain.Snapshot
	byName   map[string]int
}

// Load reads and parses a data.json export from disk. A missing or malformed
// file is fatal for the caller: without metadata there is nothing to serve.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog export: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a data.json export from r.
func Read(r io.Reader) (*Store, error) {
	var snap domain.Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode catalog export: %w", err)
	}
	return FromSnapshot(snap)
}

// FromSnapshot validates a snapshot and builds the lookup index.
func FromSnapshot(snap domain.Snapshot) (*Store, error) {
	byName := make(map[string]int, len(snap.Catalogs))
	for i, c := range snap.Catalogs {
		if c.Name == "" {
			return nil, domain.ErrValidation("catalog %d has an empty name", i)
		}
		if _, dup := byName[c.Name]; dup {
			return nil, domain.ErrValidation("duplicate catalog name %q", c.Name)
		}
		byName[c.Name] = i

		seenDBs := make(map[string]struct{}, len(c.Databases))
		for _, db := range c.Databases {
			if db.Name == "" {
				return nil, domain.ErrValidation("catalog %q has a database with an empty name", c.Name)
			}
			if _, dup := seenDBs[db.Name]; dup {
				return nil, domain.ErrValidation("catalog %q has duplicate database %q", c.Name, db.Name)
			}
			seenDBs[db.Name] = struct{}{}

			seenTables := make(map[string]struct{}, len(db.Tables))
			for _, t := range db.Tables {
				if t.Name == "" {
					return nil, domain.ErrValidation("database %q.%q has a table with an empty name", c.Name, db.Name)
				}
				if _, dup := seenTables[t.Name]; dup {
					return nil, domain.ErrValidation("database %q.%q has duplicate table %q", c.Name, db.Name, t.Name)
				}
				seenTables[t.Name] = struct{}{}
			}
		}
	}

	return &Store{snapshot: snap, byName: byName}, nil
}

// Snapshot returns the full metadata snapshot.
func (s *Store) Snapshot() domain.Snapshot {
	return s.snapshot
}

// Catalogs returns all catalogs in export order.
func (s *Store) Catalogs() []domain.Catalog {
	return s.snapshot.Catalogs
}

// Catalog returns the named catalog.
func (s *Store) Catalog(name string) (domain.Catalog, error) {
	i, ok := s.byName[name]
	if !ok {
		return domain.Catalog{}, domain.ErrNotFound("catalog %q not found", name)
	}
	return s.snapshot.Catalogs[i], nil
}

// Database returns the named database within a catalog.
func (s *Store) Database(catalog, database string) (domain.Database, error) {
	c, err := s.Catalog(catalog)
	if err != nil {
		return domain.Database{}, err
	}
	db, ok := c.Database(database)
	if !ok {
		return domain.Database{}, domain.ErrNotFound("database %q not found in catalog %q", database, catalog)
	}
	return db, nil
}

// Table returns the named table within a database.
func (s *Store) Table(catalog, database, table string) (domain.Table, error) {
	db, err := s.Database(catalog, database)
	if err != nil {
		return domain.Table{}, err
	}
	t, ok := db.Table(table)
	if !ok {
		return domain.Table{}, domain.ErrNotFound("table %q not found in %s.%s", table, catalog, database)
	}
	return t, nil
}
