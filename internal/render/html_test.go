package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agalvezelec/germanSrtAnalysis/internal/analysis"
	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/config"
	"github.com/agalvezelec/germanSrtAnalysis/internal/report"
)

func testModel(t *testing.T) *report.Model {
	t.Helper()
	res := analysis.Aggregate([]analysis.AnnotatedBlock{
		{
			Timestamp: "00:00:01,000",
			Text:      "Der Mann läuft schnell.",
			Tokens: []annotator.Token{
				{Text: "Der", Whitespace: " ", Category: annotator.Other, Lemma: "der", Index: 0},
				{Text: "Mann", Whitespace: " ", Category: annotator.Noun, Lemma: "Mann", Gender: annotator.GenderMasc, Number: annotator.NumberSingular, Index: 1},
				{Text: "läuft", Whitespace: " ", Category: annotator.Verb, Lemma: "laufen", Index: 2},
				{Text: "schnell", Whitespace: "", Category: annotator.Adverb, Lemma: "schnell", Index: 3},
				{Text: ".", Whitespace: "", Category: annotator.Other, Lemma: ".", Index: 4},
			},
		},
	})
	m := report.Build(res)
	return &m
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestHTMLArtifactNames(t *testing.T) {
	r := NewHTML(testConfig(t))
	artifacts := r.Artifacts(testModel(t), "movie")

	want := []string{
		"movie.adjectives.html",
		"movie.verbs.html",
		"movie.nouns.html",
		"movie.adverbs.html",
		"movie.combined.html",
	}
	if len(artifacts) != len(want) {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), len(want))
	}
	for i, name := range want {
		if artifacts[i].Name != name {
			t.Errorf("artifact %d = %q, want %q", i, artifacts[i].Name, name)
		}
	}
}

func TestHTMLCategoryReport(t *testing.T) {
	r := NewHTML(testConfig(t)).(*htmlRenderer)
	data := string(r.categoryReport(testModel(t), annotator.Noun, "movie"))

	for _, want := range []string{
		"<h1>Nouns Analysis</h1>",
		`<strong class="highlight">Mann</strong>`,
		`https://www.verbformen.es/?w=Mann`,
		`title="Lookup: Mann"`,
		"<strong>der Mann</strong>",
		`http://localhost:8080/?time=00:00:01,000`,
		"Total found: <strong>1</strong> instances.",
	} {
		if !strings.Contains(data, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// The verb must not leak into the noun highlight.
	if strings.Contains(data, `<strong class="highlight">läuft</strong>`) {
		t.Error("noun report highlights a verb token")
	}
}

func TestHTMLEmptyCategory(t *testing.T) {
	r := NewHTML(testConfig(t)).(*htmlRenderer)
	data := string(r.categoryReport(testModel(t), annotator.Adjective, "movie"))

	if !strings.Contains(data, "No adjectives found in text.") {
		t.Error("empty category report should say nothing was found")
	}
	if strings.Contains(data, "<table") {
		t.Error("empty category report should not carry a table")
	}
}

func TestHTMLCombinedReport(t *testing.T) {
	r := NewHTML(testConfig(t)).(*htmlRenderer)
	data := string(r.combinedReport(testModel(t), "movie"))

	if !strings.Contains(data, "<th>Context</th><th>Adjectives</th><th>Verbs</th><th>Nouns</th><th>Adverbs</th><th>Start Time</th>") {
		t.Error("combined report header row wrong")
	}
	if !strings.Contains(data, "Der Mann läuft schnell.") {
		t.Error("combined report misses the plain context")
	}
	if strings.Contains(data, `class="highlight"`) {
		t.Error("combined report context must be plain")
	}
}

func TestHTMLEscaping(t *testing.T) {
	res := analysis.Aggregate([]analysis.AnnotatedBlock{
		{
			Timestamp: "00:00:01,000",
			Text:      "a < b & c",
			Tokens: []annotator.Token{
				{Text: "a", Whitespace: " ", Category: annotator.Noun, Lemma: "a<b", Gender: annotator.GenderNeut, Index: 0},
				{Text: "<", Whitespace: " ", Category: annotator.Other, Index: 1},
				{Text: "b", Whitespace: " ", Category: annotator.Other, Lemma: "b", Index: 2},
				{Text: "&", Whitespace: " ", Category: annotator.Other, Index: 3},
				{Text: "c", Whitespace: "", Category: annotator.Other, Lemma: "c", Index: 4},
			},
		},
	})
	m := report.Build(res)

	r := NewHTML(testConfig(t)).(*htmlRenderer)
	data := string(r.categoryReport(&m, annotator.Noun, "movie"))

	if strings.Contains(data, "a < b") {
		t.Error("raw markup characters leaked into the report")
	}
	if !strings.Contains(data, "&lt;") || !strings.Contains(data, "&amp;") {
		t.Error("context is not HTML-escaped")
	}
}

func TestHTMLLookupURLEscapesUmlauts(t *testing.T) {
	if got := lookupURL("https://www.verbformen.es/?w=%s", "läuft"); got != "https://www.verbformen.es/?w=l%C3%A4uft" {
		t.Errorf("lookupURL() = %q", got)
	}
	if got := lookupURL("https://www.verbformen.es/?w=%s", "zwei Wörter"); got != "https://www.verbformen.es/?w=zwei+W%C3%B6rter" {
		t.Errorf("lookupURL() = %q", got)
	}
}

func TestHTMLIdempotent(t *testing.T) {
	r := NewHTML(testConfig(t))
	m := testModel(t)

	first := r.Artifacts(m, "movie")
	for i := 0; i < 10; i++ {
		again := r.Artifacts(m, "movie")
		for j := range first {
			if !bytes.Equal(first[j].Data, again[j].Data) {
				t.Fatalf("artifact %s differs between renders", first[j].Name)
			}
		}
	}
}
