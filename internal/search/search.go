package search

import (
	"sort"
	"strings"
)

// coarseBias is subtracted from every coarse-segment score so that database
// and table hits outrank column and partition hits of otherwise-equal
// quality. Sized against the matchKey score bands in match.go: 0.05 is one
// full band width, so a coarse hit always beats an equal fine hit but never
// leapfrogs a clearly better one.
const coarseBias = 0.05

// Match is one ranked search hit.
type Match struct {
	Item  IndexItem
	Score float64
	// Fields maps searched field names (FieldDatabase, FieldTable,
	// FieldColumn) to the character ranges the query matched, for
	// highlighting.
	Fields map[string][]Range
}

// Search ranks query against both segments of the index and returns at most
// limit matches, ascending by score. Both segments are searched independently
// with the same cap, then merged; the two-phase bound is deliberate, as it
// changes which items are eligible when both segments are near capacity.
// Ties keep discovery order: coarse before fine, metadata order within each.
func Search(idx *SegmentedIndex, query string, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	coarse := searchSegment(idx.coarse, query, limit)
	for i := range coarse {
		coarse[i].Score -= coarseBias
	}
	fine := searchSegment(idx.fine, query, limit)

	merged := make([]Match, 0, len(coarse)+len(fine))
	merged = append(merged, coarse...)
	merged = append(merged, fine...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score < merged[j].Score
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// searchSegment scores every item in one segment and returns the best limit
// matches, ascending by score with discovery order as the tie-break.
func searchSegment(items []IndexItem, query string, limit int) []Match {
	var matches []Match
	for _, item := range items {
		best := -1.0
		var fields map[string][]Range
		for _, key := range item.keys() {
			score, ranges, ok := matchKey(query, key.text)
			if !ok {
				continue
			}
			if fields == nil {
				fields = make(map[string][]Range, 3)
			}
			fields[key.field] = ranges
			if best < 0 || score < best {
				best = score
			}
		}
		if best >= 0 {
			matches = append(matches, Match{Item: item, Score: best, Fields: fields})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
