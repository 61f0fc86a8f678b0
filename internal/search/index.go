// Package search builds segmented fuzzy-search indexes over catalog metadata
// and ranks queries across them.
//
// Each catalog gets exactly one SegmentedIndex with two segments: a coarse one
// over database and table names and a fine one over column and partition
// names. Indexes are built once at load time and are immutable afterwards.
package search

import (
	"lakeview/internal/domain"
)

// SegmentedIndex holds the two per-catalog item collections.
type SegmentedIndex struct {
	catalog string
	coarse  []IndexItem
	fine    []IndexItem
}

// BuildIndex walks one catalog in metadata order and produces its
// SegmentedIndex. Construction is pure and total: well-formed metadata never
// fails, and an empty catalog yields empty segments.
func BuildIndex(c domain.Catalog) *SegmentedIndex {
	idx := &SegmentedIndex{catalog: c.Name}

	for _, db := range c.Databases {
		idx.coarse = append(idx.coarse, IndexItem{
			Kind:     KindDatabase,
			Locator:  domain.DatabaseLocator(c.Name, db.Name),
			Database: db.Name,
		})

		for _, t := range db.Tables {
			locator := domain.TableLocator(c.Name, db.Name, t.Name)
			idx.coarse = append(idx.coarse, IndexItem{
				Kind:     KindTable,
				Locator:  locator,
				Database: db.Name,
				Table:    t.Name,
			})

			for _, col := range t.Columns {
				idx.fine = append(idx.fine, IndexItem{
					Kind:     KindColumn,
					Locator:  locator,
					Database: db.Name,
					Table:    t.Name,
					Column:   col.Name,
					TypeInfo: col.Type,
				})
			}

			for _, p := range t.Partitions {
				item := IndexItem{
					Kind:     KindPartition,
					Locator:  locator,
					Database: db.Name,
					Table:    t.Name,
					Column:   p.ColumnName,
				}
				if p.TypeAnnotation != nil {
					item.TypeInfo = *p.TypeAnnotation
				}
				idx.fine = append(idx.fine, item)
			}
		}
	}

	return idx
}

// Catalog returns the name of the catalog the index was built from.
func (x *SegmentedIndex) Catalog() string { return x.catalog }

// Coarse returns the database/table items in metadata order. Callers must not
// mutate the returned slice.
func (x *SegmentedIndex) Coarse() []IndexItem { return x.coarse }

// Fine returns the column/partition items in metadata order. Callers must not
// mutate the returned slice.
func (x *SegmentedIndex) Fine() []IndexItem { return x.fine }

// Registry maps catalog names to their indexes. It is built once at startup
// and passed explicitly to consumers instead of living in package state.
type Registry struct {
	indexes map[string]*SegmentedIndex
	names   []string
}

// BuildRegistry eagerly builds one index per catalog in the snapshot.
func BuildRegistry(snap domain.Snapshot) *Registry {
	r := &Registry{indexes: make(map[string]*SegmentedIndex, len(snap.Catalogs))}
	for _, c := range snap.Catalogs {
		r.indexes[c.Name] = BuildIndex(c)
		r.names = append(r.names, c.Name)
	}
	return r
}

// Index returns the index for a catalog name, or false when none exists.
func (r *Registry) Index(catalog string) (*SegmentedIndex, bool) {
	idx, ok := r.indexes[catalog]
	return idx, ok
}

// Catalogs returns catalog names in snapshot order.
func (r *Registry) Catalogs() []string { return r.names }

// Search runs a query against the named catalog's index. A missing catalog
// yields an empty result list rather than an error.
func (r *Registry) Search(catalog, query string, limit int) []Match {
	idx, ok := r.indexes[catalog]
	if !ok {
		return nil
	}
	return Search(idx, query, limit)
}
