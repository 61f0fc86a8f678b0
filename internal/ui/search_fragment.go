package ui

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"lakeview/internal/search"
	"lakeview/internal/searchbox"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SearchResults renders the autocomplete popup fragment for one debounced
// query. An unknown catalog or an empty query renders an empty fragment, so
// the popup collapses rather than erroring.
func (h *Handler) SearchResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := searchbox.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	matches := h.Registry.Search(q.Get("catalog"), q.Get("q"), limit)
	renderHTML(w, http.StatusOK, resultsFragment(matches))
}

func resultsFragment(matches []search.Match) Node {
	items := make([]Node, 0, len(matches))
	for i, m := range matches {
		items = append(items, A(
			Href(m.Item.Locator),
			Class("search-result"),
			Attr("data-index", strconv.Itoa(i)),
			Span(Class("kind"), Text(string(m.Item.Kind))),
			highlightLabel(m),
			Span(Class("context"), Text(" "+matchContext(m.Item))),
		))
	}
	return Group(items)
}

// highlightLabel renders the entity's own name with the matched character
// ranges wrapped in <mark>.
func highlightLabel(m search.Match) Node {
	field := FieldForKind(m.Item.Kind)
	return highlight(m.Item.Label(), m.Fields[field])
}

// FieldForKind maps an item kind to the searched field holding its own name.
func FieldForKind(kind search.Kind) string {
	switch kind {
	case search.KindDatabase:
		return search.FieldDatabase
	case search.KindTable:
		return search.FieldTable
	default:
		return search.FieldColumn
	}
}

// highlight splits text on the matched ranges, wrapping matched runs in
// <mark>. Ranges are byte offsets as produced by the searcher, ascending and
// non-overlapping; the matcher works byte-wise, so boundaries are snapped to
// rune starts before slicing.
func highlight(text string, ranges []search.Range) Node {
	if len(ranges) == 0 {
		return Span(Text(text))
	}

	var parts []Node
	pos := 0
	for _, rg := range ranges {
		if rg.Start > len(text) || rg.End > len(text) || rg.Start < pos {
			// A malformed range renders the raw text instead of slicing
			// out of bounds.
			return Span(Text(text))
		}
		start, end := snapToRunes(text, rg.Start, rg.End)
		if start < pos {
			start = pos
		}
		if end <= start {
			continue
		}
		if start > pos {
			parts = append(parts, Text(text[pos:start]))
		}
		parts = append(parts, El("mark", Text(text[start:end])))
		pos = end
	}
	if pos < len(text) {
		parts = append(parts, Text(text[pos:]))
	}
	return Span(Group(parts))
}

// snapToRunes widens a byte range so neither boundary splits a multi-byte
// rune: the start moves back to its rune's first byte, the end forward past
// any continuation bytes.
func snapToRunes(text string, start, end int) (int, int) {
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return start, end
}

// matchContext describes where the matched entity lives.
func matchContext(item search.IndexItem) string {
	switch item.Kind {
	case search.KindDatabase:
		return item.Database
	case search.KindTable:
		return item.Database + "." + item.Table
	default:
		context := item.Database + "." + item.Table
		if item.TypeInfo != "" {
			context += " (" + formatType(item.TypeInfo) + ")"
		}
		return context
	}
}
