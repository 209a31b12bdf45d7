package analysis

import "github.com/agalvezelec/germanSrtAnalysis/internal/annotator"

// articleByGender maps grammatical gender to the nominative definite
// article.
var articleByGender = map[string]string{
	annotator.GenderMasc: "der",
	annotator.GenderFem:  "die",
	annotator.GenderNeut: "das",
}

// LemmaKey derives the canonical display lemma for a token. Nouns get
// their nominative definite article prefixed; plural always takes
// "die", gender decides otherwise. A noun without a usable gender
// keeps the bare lemma. All other categories pass through unchanged.
func LemmaKey(tok annotator.Token) string {
	if tok.Category != annotator.Noun {
		return tok.Lemma
	}

	var article string
	if tok.Number == annotator.NumberPlural {
		article = "die"
	} else {
		article = articleByGender[tok.Gender]
	}
	if article == "" {
		return tok.Lemma
	}
	return article + " " + tok.Lemma
}
