package render

import (
	"fmt"
	"strings"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/config"
	"github.com/agalvezelec/germanSrtAnalysis/internal/report"
)

type markdownRenderer struct{}

// NewMarkdown creates the Markdown renderer. Markdown tables carry no
// hyperlinks, so the config is not needed yet; the signature matches
// NewHTML for uniform wiring.
func NewMarkdown(cfg *config.Config) Renderer {
	return &markdownRenderer{}
}

func (r *markdownRenderer) Artifacts(m *report.Model, baseName string) []Artifact {
	artifacts := make([]Artifact, 0, len(annotator.Categories)+1)
	for _, cat := range annotator.Categories {
		artifacts = append(artifacts, Artifact{
			Name: artifactName(baseName, cat, "md"),
			Data: r.categoryReport(m, cat, baseName),
		})
	}
	artifacts = append(artifacts, Artifact{
		Name: combinedName(baseName, "md"),
		Data: r.combinedReport(m, baseName),
	})
	return artifacts
}

func (r *markdownRenderer) categoryReport(m *report.Model, cat annotator.Category, baseName string) []byte {
	title := cat.PluralTitle()
	total := m.Summary.Totals[cat]

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Analysis\n", title)
	fmt.Fprintf(&b, "## File: `%s`\n\n---\n\n", baseName)

	if total == 0 {
		fmt.Fprintf(&b, "No %s found in text.\n", strings.ToLower(title))
	} else {
		b.WriteString("| Context | Found Lemmas | Start Time |\n")
		b.WriteString("| :--- | :--- | :--- |\n")
		for _, block := range m.Blocks {
			cells := block.Cells[cat]
			if len(cells) == 0 {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				mdContext(block.Text), mdCell(cells), block.Timestamp)
		}
	}

	b.WriteString("\n\n## Summary\n")
	if total == 0 {
		b.WriteString("No instances found.\n")
	} else {
		fmt.Fprintf(&b, "Total instances found: **%d**\n", total)
		b.WriteString("\n**Unique Lemmas List:**\n\n")
		for _, entry := range m.Summary.Entries[cat] {
			fmt.Fprintf(&b, "* `%s`\n", escapeBackticks(entry.Key))
		}
	}

	return []byte(b.String())
}

func (r *markdownRenderer) combinedReport(m *report.Model, baseName string) []byte {
	var b strings.Builder
	b.WriteString("# Combined Analysis\n")
	fmt.Fprintf(&b, "## File: `%s`\n\n---\n\n", baseName)

	if len(m.Blocks) == 0 {
		b.WriteString("No words found in text.\n")
		return []byte(b.String())
	}

	b.WriteString("| Context | Adjectives | Verbs | Nouns | Adverbs | Start Time |\n")
	b.WriteString("| :--- | :--- | :--- | :--- | :--- | :--- |\n")
	for _, block := range m.Blocks {
		fmt.Fprintf(&b, "| %s |", mdContext(block.Text))
		for _, cat := range annotator.Categories {
			fmt.Fprintf(&b, " %s |", mdCell(block.Cells[cat]))
		}
		fmt.Fprintf(&b, " %s |\n", block.Timestamp)
	}

	return []byte(b.String())
}

// mdContext flattens a block text into one table cell: pipes escaped,
// line breaks become a space.
func mdContext(text string) string {
	text = strings.ReplaceAll(text, "|", `\|`)
	return strings.ReplaceAll(text, "\n", " ")
}

// mdCell renders lemma keys as space-separated inline code spans.
func mdCell(entries []report.Entry) string {
	spans := make([]string, 0, len(entries))
	for _, entry := range entries {
		spans = append(spans, "`"+escapeBackticks(entry.Key)+"`")
	}
	return strings.Join(spans, " ")
}

func escapeBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "\\`")
}
