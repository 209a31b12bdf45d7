package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/agalvezelec/germanSrtAnalysis/internal/analysis"
	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
)

func analyzed(t *testing.T, blocks ...analysis.AnnotatedBlock) analysis.Result {
	t.Helper()
	return analysis.Aggregate(blocks)
}

func tokensFor(text string, cats ...annotator.Category) []annotator.Token {
	// Splits on spaces, rebuilding the exact whitespace as trailing " "
	// for every token but the last.
	fields := strings.Split(text, " ")
	tokens := make([]annotator.Token, 0, len(fields))
	for i, f := range fields {
		ws := " "
		if i == len(fields)-1 {
			ws = ""
		}
		cat := annotator.Other
		if i < len(cats) {
			cat = cats[i]
		}
		tokens = append(tokens, annotator.Token{
			Text: f, Whitespace: ws, Category: cat, Lemma: strings.ToLower(f), Index: i,
		})
	}
	return tokens
}

func joinSegments(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func TestBuildHighlightRoundTrip(t *testing.T) {
	text := "Der große Hund bellt laut"
	res := analyzed(t, analysis.AnnotatedBlock{
		Timestamp: "00:00:01,000",
		Text:      text,
		Tokens:    tokensFor(text, annotator.Other, annotator.Adjective, annotator.Noun, annotator.Verb, annotator.Adverb),
	})

	m := Build(res)
	if len(m.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(m.Blocks))
	}

	for _, cat := range annotator.Categories {
		if got := joinSegments(m.Blocks[0].Contexts[cat]); got != text {
			t.Errorf("context for %v reassembles to %q, want %q", cat, got, text)
		}
	}
}

func TestBuildMultilineRoundTrip(t *testing.T) {
	// Token whitespace may carry the line break.
	tokens := []annotator.Token{
		{Text: "Hallo", Whitespace: "\n", Category: annotator.Other, Lemma: "hallo", Index: 0},
		{Text: "Welt", Whitespace: "", Category: annotator.Noun, Lemma: "Welt", Gender: annotator.GenderFem, Index: 1},
	}
	text := "Hallo\nWelt"
	res := analyzed(t, analysis.AnnotatedBlock{Timestamp: "00:00:01,000", Text: text, Tokens: tokens})

	m := Build(res)
	if got := joinSegments(m.Blocks[0].Contexts[annotator.Noun]); got != text {
		t.Errorf("context = %q, want %q", got, text)
	}
}

func TestBuildHighlightsOnlyMatchedTokens(t *testing.T) {
	text := "Der große Hund bellt laut"
	res := analyzed(t, analysis.AnnotatedBlock{
		Timestamp: "00:00:01,000",
		Text:      text,
		Tokens:    tokensFor(text, annotator.Other, annotator.Adjective, annotator.Noun, annotator.Verb, annotator.Adverb),
	})

	m := Build(res)
	segments := m.Blocks[0].Contexts[annotator.Noun]

	var highlighted []string
	for _, seg := range segments {
		if seg.Highlight {
			highlighted = append(highlighted, seg.Text)
		}
	}
	if !reflect.DeepEqual(highlighted, []string{"Hund"}) {
		t.Errorf("highlighted runs = %v, want [Hund]", highlighted)
	}
}

func TestBuildPlainContextWhenNoMatch(t *testing.T) {
	text := "Der große Hund bellt laut"
	res := analyzed(t, analysis.AnnotatedBlock{
		Timestamp: "00:00:01,000",
		Text:      text,
		// Only a noun; adjectives never match in this block.
		Tokens: tokensFor(text, annotator.Other, annotator.Other, annotator.Noun, annotator.Other, annotator.Other),
	})

	m := Build(res)
	segments := m.Blocks[0].Contexts[annotator.Adjective]
	want := []Segment{{Text: text}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("adjective context = %#v, want single plain segment", segments)
	}
}

func TestBuildCellEntriesSortedWithRepresentative(t *testing.T) {
	blocks := []analysis.AnnotatedBlock{
		{
			Timestamp: "00:00:01,000", Text: "lief",
			Tokens: []annotator.Token{{Text: "lief", Category: annotator.Verb, Lemma: "laufen", Index: 0}},
		},
		{
			Timestamp: "00:00:02,000", Text: "läuft aß",
			Tokens: []annotator.Token{
				{Text: "läuft", Whitespace: " ", Category: annotator.Verb, Lemma: "laufen", Index: 0},
				{Text: "aß", Whitespace: "", Category: annotator.Verb, Lemma: "essen", Index: 1},
			},
		},
	}

	m := Build(analyzed(t, blocks...))

	got := m.Summary.Entries[annotator.Verb]
	want := []Entry{
		{Key: "essen", Representative: "aß"},
		{Key: "laufen", Representative: "lief"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("summary entries = %#v, want %#v", got, want)
	}

	if m.Summary.Totals[annotator.Verb] != 3 {
		t.Errorf("verb total = %d, want 3", m.Summary.Totals[annotator.Verb])
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	blocks := []analysis.AnnotatedBlock{
		{
			Timestamp: "00:00:01,000", Text: "läuft lief rennt",
			Tokens: []annotator.Token{
				{Text: "läuft", Whitespace: " ", Category: annotator.Verb, Lemma: "laufen", Index: 0},
				{Text: "lief", Whitespace: " ", Category: annotator.Verb, Lemma: "laufen", Index: 1},
				{Text: "rennt", Whitespace: "", Category: annotator.Verb, Lemma: "rennen", Index: 2},
			},
		},
	}

	first := Build(analysis.Aggregate(blocks))
	for i := 0; i < 20; i++ {
		again := Build(analysis.Aggregate(blocks))
		if !reflect.DeepEqual(first, again) {
			t.Fatal("Build() output varies between identical runs")
		}
	}
}
