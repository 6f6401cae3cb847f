package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultThreshold is the score above which a candidate is discarded.
// Scores run from 0 (exact) to 1 (no resemblance).
const DefaultThreshold = 0.6

// Document is one searchable post projection.
type Document struct {
	ID      int64  `json:"ID"`
	Title   string `json:"post_title"`
	Excerpt string `json:"post_excerpt"`
	Slug    string `json:"slug"`
}

// Index is an in-memory typo-tolerant index over post titles and excerpts.
// It is rebuilt from a full scan of published posts on every query, which
// caps out at corpus sizes a single process can hold; the result cache in
// front of it absorbs repeated queries.
type Index struct {
	docs      []Document
	threshold float64
}

// NewIndex builds an index over the given documents. A non-positive
// threshold selects DefaultThreshold.
func NewIndex(docs []Document, threshold float64) *Index {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Index{docs: docs, threshold: threshold}
}

// Search returns the documents matching query within the threshold, best
// match first. Scores are internal and not exposed. An unmatched query
// yields an empty slice, never an error.
func (i *Index) Search(query string) []Document {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Document{}
	}

	type scored struct {
		doc   Document
		score float64
	}

	matches := make([]scored, 0)
	for _, doc := range i.docs {
		score := docScore(query, doc)
		if score <= i.threshold {
			matches = append(matches, scored{doc: doc, score: score})
		}
	}

	// Ascending score; stable so equally scored documents keep corpus order.
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score < matches[b].score
	})

	results := make([]Document, len(matches))
	for n, m := range matches {
		results[n] = m.doc
	}
	return results
}

// docScore is the best field score across title and excerpt.
func docScore(query string, doc Document) float64 {
	title := fieldScore(query, doc.Title)
	excerpt := fieldScore(query, doc.Excerpt)
	if excerpt < title {
		return excerpt
	}
	return title
}

// fieldScore scores a query against one text field. A substring hit is an
// exact match; otherwise the best per-word edit distance wins.
func fieldScore(query, field string) float64 {
	field = strings.ToLower(field)
	if field == "" {
		return 1
	}
	if strings.Contains(field, query) {
		return 0
	}
	// A subsequence hit ranks above pure edit-distance matches.
	best := 1.0
	if fuzzy.MatchNormalizedFold(query, field) {
		best = 0.1
	}
	for _, word := range strings.FieldsFunc(field, isWordSep) {
		if s := wordScore(query, word); s < best {
			best = s
		}
	}
	return best
}

// wordScore is the normalized edit distance between query and word, also
// tried against the word's prefix so a typo in a short query still matches
// a longer word ("gradn" vs "gardening").
func wordScore(query, word string) float64 {
	full := normalizedDistance(query, word)

	prefixLen := len(query) + 1
	if prefixLen > len(word) {
		prefixLen = len(word)
	}
	prefix := normalizedDistance(query, word[:prefixLen])

	if prefix < full {
		return prefix
	}
	return full
}

func normalizedDistance(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return float64(fuzzy.LevenshteinDistance(a, b)) / float64(longest)
}

func isWordSep(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '.' || r == '-' || r == ':' || r == ';'
}
