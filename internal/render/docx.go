package render

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/report"
)

const (
	docxFontName = "Times New Roman"
	docxFontSize = 13
)

// DocxWriter produces per-category study sheets. godocx only saves to a
// path, so unlike the other renderers this one writes files itself.
type DocxWriter struct{}

// NewDocx creates the DOCX study sheet writer.
func NewDocx() *DocxWriter {
	return &DocxWriter{}
}

// WriteCategory writes one category's study sheet: every matching block
// as a context paragraph with the matched words in bold, followed by
// its lemmas and start time.
func (w *DocxWriter) WriteCategory(m *report.Model, cat annotator.Category, baseName, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	title := cat.PluralTitle()
	addHeading(doc, fmt.Sprintf("%s Analysis — %s", title, baseName), 16)

	total := m.Summary.Totals[cat]
	if total == 0 {
		addText(doc.AddParagraph(""), fmt.Sprintf("No %s found in text.", title), false)
		return doc.SaveTo(path)
	}

	for _, block := range m.Blocks {
		cells := block.Cells[cat]
		if len(cells) == 0 {
			continue
		}

		p := doc.AddParagraph("")
		for _, seg := range block.Contexts[cat] {
			addText(p, seg.Text, seg.Highlight)
		}

		meta := doc.AddParagraph("")
		for i, entry := range cells {
			if i > 0 {
				addText(meta, ", ", false)
			}
			addText(meta, entry.Key, true)
		}
		addText(meta, "   ["+block.Timestamp+"]", false)
		doc.AddParagraph("")
	}

	addHeading(doc, "Summary", 15)
	addText(doc.AddParagraph(""), fmt.Sprintf("Total instances found: %d", total), false)
	for _, entry := range m.Summary.Entries[cat] {
		addText(doc.AddParagraph(""), "• "+entry.Key, false)
	}

	return doc.SaveTo(path)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	doc.AddParagraph("").AddText(text).Font(docxFontName).Size(size).Color("000000").Bold(true)
}

func addText(p *docx.Paragraph, text string, bold bool) {
	run := p.AddText(text).Font(docxFontName).Size(docxFontSize).Color("000000")
	if bold {
		run.Bold(true)
	}
}
