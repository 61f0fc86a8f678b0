package search

// Range marks a matched run of bytes in a searched key, half-open [Start, End).
// Offsets are into the original key text, so callers can slice it directly
// when highlighting.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Score scale produced by matchKey. Lower is better; the domain is [0, 1):
//
//	0.00         exact match
//	(0.05, 0.15] prefix match
//	(0.15, 0.30] substring match
//	(0.30, 0.70] in-order subsequence match
//	(0.70, 0.95] bounded edit-distance (typo) match
//
// Within each band, shorter keys and earlier match positions score better.
// Keys are compared with ASCII case folding only; catalog identifiers are
// ASCII in practice and folding byte-wise keeps range offsets exact.
const (
	prefixBase      = 0.05
	substringBase   = 0.15
	subsequenceBase = 0.30
	typoBase        = 0.70
)

// matchKey scores query against one key text. ok is false when the query does
// not match at all.
func matchKey(query, text string) (score float64, ranges []Range, ok bool) {
	if query == "" || text == "" || len(query) > len(text)+maxTypos(len(query)) {
		return 0, nil, false
	}

	lengthPenalty := 0.1 * (1 - float64(min(len(query), len(text)))/float64(len(text)))

	if idx := indexFold(text, query); idx >= 0 {
		r := []Range{{Start: idx, End: idx + len(query)}}
		switch {
		case idx == 0 && len(query) == len(text):
			return 0, r, true
		case idx == 0:
			return prefixBase + lengthPenalty, r, true
		default:
			posPenalty := 0.05 * float64(min(idx, 20)) / 20
			return substringBase + posPenalty + lengthPenalty, r, true
		}
	}

	if positions := subsequenceFold(text, query); positions != nil {
		span := positions[len(positions)-1] + 1 - positions[0]
		gaps := span - len(query)
		score := subsequenceBase + 0.3*float64(gaps)/float64(span) + lengthPenalty
		return score, runsToRanges(positions), true
	}

	limit := maxTypos(len(query))
	if d, ok := editDistanceFold(query, text, limit); ok {
		return typoBase + 0.25*float64(d)/float64(limit), []Range{{Start: 0, End: len(text)}}, true
	}

	return 0, nil, false
}

// maxTypos is the edit-distance budget for a query of n bytes.
func maxTypos(n int) int {
	return 1 + n/4
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// indexFold is a case-folding strings.Index over ASCII bytes.
func indexFold(text, query string) int {
	if len(query) > len(text) {
		return -1
	}
	for i := 0; i+len(query) <= len(text); i++ {
		match := true
		for j := 0; j < len(query); j++ {
			if foldByte(text[i+j]) != foldByte(query[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// subsequenceFold returns the leftmost positions at which the query bytes
// appear in order within text, or nil when the query is not a subsequence.
func subsequenceFold(text, query string) []int {
	positions := make([]int, 0, len(query))
	ti := 0
	for qi := 0; qi < len(query); qi++ {
		q := foldByte(query[qi])
		found := -1
		for ; ti < len(text); ti++ {
			if foldByte(text[ti]) == q {
				found = ti
				ti++
				break
			}
		}
		if found < 0 {
			return nil
		}
		positions = append(positions, found)
	}
	return positions
}

// runsToRanges collapses sorted match positions into contiguous ranges.
func runsToRanges(positions []int) []Range {
	var ranges []Range
	for _, p := range positions {
		if n := len(ranges); n > 0 && ranges[n-1].End == p {
			ranges[n-1].End = p + 1
			continue
		}
		ranges = append(ranges, Range{Start: p, End: p + 1})
	}
	return ranges
}

// editDistanceFold computes the Levenshtein distance between a and b with
// ASCII case folding, bailing out once the distance exceeds limit.
func editDistanceFold(a, b string, limit int) (int, bool) {
	if abs(len(a)-len(b)) > limit {
		return 0, false
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if foldByte(a[i-1]) == foldByte(b[j-1]) {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > limit {
			return 0, false
		}
		prev, cur = cur, prev
	}

	if prev[len(b)] > limit {
		return 0, false
	}
	return prev[len(b)], true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
