package annotator

// Category is the coarse part-of-speech class of a token.
type Category string

const (
	Adjective Category = "adj"
	Verb      Category = "verb"
	Noun      Category = "noun"
	Adverb    Category = "adv"
	Other     Category = "other"
)

// Categories lists the tracked classes in report column order.
var Categories = []Category{Adjective, Verb, Noun, Adverb}

// PluralTitle returns the display name used in report headings and
// output filenames.
func (c Category) PluralTitle() string {
	switch c {
	case Adjective:
		return "Adjectives"
	case Verb:
		return "Verbs"
	case Noun:
		return "Nouns"
	case Adverb:
		return "Adverbs"
	}
	return ""
}

// Grammatical feature values as emitted by the model. Absent features
// are empty strings.
const (
	GenderMasc = "Masc"
	GenderFem  = "Fem"
	GenderNeut = "Neut"

	NumberSingular = "Sing"
	NumberPlural   = "Plur"
)

// Token is one annotated token of a subtitle block. Index is unique and
// increasing within a block. Concatenating Text followed by Whitespace
// over a block's tokens reproduces the block text exactly.
type Token struct {
	Text       string
	Whitespace string
	Category   Category
	Lemma      string
	Gender     string
	Number     string
	Index      int
}
