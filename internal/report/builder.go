package report

import (
	"github.com/agalvezelec/germanSrtAnalysis/internal/analysis"
	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
)

// Segment is a run of context text, highlighted or plain. Concatenating
// Text over a context's segments reproduces the block text exactly;
// only token text is ever highlighted, trailing whitespace stays plain.
type Segment struct {
	Text      string
	Highlight bool
}

// Entry is one lemma in a cell or summary list: the human-visible key
// and the surface form used for the dictionary lookup link.
type Entry struct {
	Key            string
	Representative string
}

// BlockView is the render-ready projection of one sentence block.
type BlockView struct {
	Timestamp string
	Text      string
	Contexts  map[annotator.Category][]Segment
	Cells     map[annotator.Category][]Entry
}

// Summary is the render-ready projection of the global index.
type Summary struct {
	Totals  map[annotator.Category]int
	Entries map[annotator.Category][]Entry
}

// Model carries everything the renderers need, free of any markup.
type Model struct {
	Blocks  []BlockView
	Summary Summary
}

// Build computes the per-category highlighted context variants and the
// sorted cell and summary entries from an analysis result.
func Build(res analysis.Result) Model {
	m := Model{
		Summary: Summary{
			Totals:  make(map[annotator.Category]int, len(annotator.Categories)),
			Entries: make(map[annotator.Category][]Entry, len(annotator.Categories)),
		},
	}
	for _, cat := range annotator.Categories {
		m.Summary.Totals[cat] = res.Global.Totals[cat]
		m.Summary.Entries[cat] = entries(res.Global.Matches[cat])
	}

	for _, sb := range res.Sentences {
		view := BlockView{
			Timestamp: sb.Timestamp,
			Text:      sb.Text,
			Contexts:  make(map[annotator.Category][]Segment, len(annotator.Categories)),
			Cells:     make(map[annotator.Category][]Entry, len(annotator.Categories)),
		}
		for _, cat := range annotator.Categories {
			view.Contexts[cat] = contextSegments(sb, cat)
			view.Cells[cat] = entries(sb.Matches[cat])
		}
		m.Blocks = append(m.Blocks, view)
	}

	return m
}

// entries flattens a MatchSet into sorted-by-key entries with the
// deterministic representative surface form.
func entries(set analysis.MatchSet) []Entry {
	keys := set.Keys()
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		out = append(out, Entry{Key: key, Representative: set.Representative(key)})
	}
	return out
}

// contextSegments walks the token sequence in position order and marks
// the tokens matched for cat. Adjacent runs with the same flag are
// merged. A category without matches yields the plain block text.
func contextSegments(sb analysis.SentenceBlock, cat annotator.Category) []Segment {
	marked := sb.Highlights[cat]
	if len(marked) == 0 {
		return []Segment{{Text: sb.Text}}
	}

	var segments []Segment
	push := func(text string, highlight bool) {
		if text == "" {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Highlight == highlight {
			segments[n-1].Text += text
			return
		}
		segments = append(segments, Segment{Text: text, Highlight: highlight})
	}

	for _, tok := range sb.Tokens {
		_, highlight := marked[tok.Index]
		push(tok.Text, highlight)
		push(tok.Whitespace, false)
	}
	return segments
}
