package analysis

import (
	"sort"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
)

// MatchSet maps a lemma key to the set of surface forms observed for it.
type MatchSet map[string]map[string]struct{}

// Add records a surface form under a lemma key.
func (m MatchSet) Add(key, surface string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]struct{})
		m[key] = set
	}
	set[surface] = struct{}{}
}

// Keys returns the lemma keys in lexicographic order.
func (m MatchSet) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Representative returns the lexicographically smallest surface form
// recorded for key, or "" when the key is unknown. The fixed rule keeps
// lookup links stable across runs.
func (m MatchSet) Representative(key string) string {
	var rep string
	for surface := range m[key] {
		if rep == "" || surface < rep {
			rep = surface
		}
	}
	return rep
}

// AnnotatedBlock pairs a segmented subtitle block with its tokens.
type AnnotatedBlock struct {
	Timestamp string
	Text      string
	Tokens    []annotator.Token
}

// SentenceBlock is one emitted block with its per-category matches.
// Highlights holds, per category, the indexes of the tokens whose lemma
// was folded into that category's MatchSet.
type SentenceBlock struct {
	Timestamp  string
	Text       string
	Tokens     []annotator.Token
	Matches    map[annotator.Category]MatchSet
	Highlights map[annotator.Category]map[int]struct{}
}

// GlobalIndex aggregates matches and raw occurrence totals over one
// input file. Totals count every classified token, repeated lemmas
// included.
type GlobalIndex struct {
	Matches map[annotator.Category]MatchSet
	Totals  map[annotator.Category]int
}

// Result is the complete outcome of one analysis run.
type Result struct {
	Sentences []SentenceBlock
	Global    GlobalIndex
}
