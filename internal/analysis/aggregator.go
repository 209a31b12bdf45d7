package analysis

import "github.com/agalvezelec/germanSrtAnalysis/internal/annotator"

// Aggregate folds annotated blocks into per-sentence matches and the
// global index. Tokens outside the tracked categories are ignored
// entirely. Blocks where no token matched any tracked category are not
// emitted; the global index is untouched by such blocks because no
// token of theirs was ever folded in.
func Aggregate(blocks []AnnotatedBlock) Result {
	global := GlobalIndex{
		Matches: make(map[annotator.Category]MatchSet, len(annotator.Categories)),
		Totals:  make(map[annotator.Category]int, len(annotator.Categories)),
	}
	for _, cat := range annotator.Categories {
		global.Matches[cat] = make(MatchSet)
	}

	var sentences []SentenceBlock
	for _, block := range blocks {
		sb := SentenceBlock{
			Timestamp:  block.Timestamp,
			Text:       block.Text,
			Tokens:     block.Tokens,
			Matches:    make(map[annotator.Category]MatchSet, len(annotator.Categories)),
			Highlights: make(map[annotator.Category]map[int]struct{}, len(annotator.Categories)),
		}
		for _, cat := range annotator.Categories {
			sb.Matches[cat] = make(MatchSet)
			sb.Highlights[cat] = make(map[int]struct{})
		}

		matched := false
		for _, tok := range block.Tokens {
			local, tracked := sb.Matches[tok.Category]
			if !tracked {
				continue
			}

			key := LemmaKey(tok)
			local.Add(key, tok.Text)
			sb.Highlights[tok.Category][tok.Index] = struct{}{}

			global.Matches[tok.Category].Add(key, tok.Text)
			global.Totals[tok.Category]++
			matched = true
		}

		if !matched {
			continue
		}
		sentences = append(sentences, sb)
	}

	return Result{Sentences: sentences, Global: global}
}
