package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/config"
	"github.com/agalvezelec/germanSrtAnalysis/internal/report"
)

type htmlRenderer struct {
	lookupTemplate string
	playbackPort   int
}

// NewHTML creates the HTML renderer.
func NewHTML(cfg *config.Config) Renderer {
	return &htmlRenderer{
		lookupTemplate: cfg.Lookup.URLTemplate,
		playbackPort:   cfg.Playback.Port,
	}
}

func (r *htmlRenderer) Artifacts(m *report.Model, baseName string) []Artifact {
	artifacts := make([]Artifact, 0, len(annotator.Categories)+1)
	for _, cat := range annotator.Categories {
		artifacts = append(artifacts, Artifact{
			Name: artifactName(baseName, cat, "html"),
			Data: r.categoryReport(m, cat, baseName),
		})
	}
	artifacts = append(artifacts, Artifact{
		Name: combinedName(baseName, "html"),
		Data: r.combinedReport(m, baseName),
	})
	return artifacts
}

func (r *htmlRenderer) categoryReport(m *report.Model, cat annotator.Category, baseName string) []byte {
	title := cat.PluralTitle()
	total := m.Summary.Totals[cat]

	var b strings.Builder
	b.WriteString(htmlHeader(title + " Analysis"))
	fmt.Fprintf(&b, "<h1>%s Analysis</h1>\n", title)
	fmt.Fprintf(&b, "<h2>File: <code>%s</code></h2>\n", html.EscapeString(baseName))

	if total == 0 {
		fmt.Fprintf(&b, "<p>No %s found in text.</p>\n", strings.ToLower(title))
	} else {
		b.WriteString("<table class=\"single-report\">\n")
		b.WriteString("  <thead><tr><th>Context (Highlighted)</th><th>Found Lemmas</th><th>Start Time</th></tr></thead>\n")
		b.WriteString("  <tbody>\n")
		for _, block := range m.Blocks {
			cells := block.Cells[cat]
			if len(cells) == 0 {
				continue
			}
			fmt.Fprintf(&b, "    <tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				r.contextCell(block.Contexts[cat]),
				r.matchesCell(cells),
				r.timestampCell(block.Timestamp))
		}
		b.WriteString("  </tbody>\n</table>\n")
	}

	b.WriteString("<h3>Summary</h3>\n")
	if total == 0 {
		b.WriteString("<p>No instances found.</p>\n")
	} else {
		fmt.Fprintf(&b, "<p>Total found: <strong>%d</strong> instances.</p>\n", total)
		b.WriteString("<h4>Unique Lemmas List:</h4>\n<ul>\n")
		for _, entry := range m.Summary.Entries[cat] {
			fmt.Fprintf(&b, "  <li>%s</li>\n", r.lookupLink(entry))
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

func (r *htmlRenderer) combinedReport(m *report.Model, baseName string) []byte {
	var b strings.Builder
	b.WriteString(htmlHeader("Combined Analysis"))
	b.WriteString("<h1>Combined Analysis</h1>\n")
	fmt.Fprintf(&b, "<h2>File: <code>%s</code></h2>\n", html.EscapeString(baseName))

	if len(m.Blocks) == 0 {
		b.WriteString("<p>No words found in text.</p>\n")
	} else {
		b.WriteString("<table class=\"combined\">\n")
		b.WriteString("  <thead><tr><th>Context</th><th>Adjectives</th><th>Verbs</th><th>Nouns</th><th>Adverbs</th><th>Start Time</th></tr></thead>\n")
		b.WriteString("  <tbody>\n")
		for _, block := range m.Blocks {
			b.WriteString("    <tr>\n")
			fmt.Fprintf(&b, "      <td>%s</td>\n", plainContext(block.Text))
			for _, cat := range annotator.Categories {
				fmt.Fprintf(&b, "      <td>%s</td>\n", r.matchesCell(block.Cells[cat]))
			}
			fmt.Fprintf(&b, "      <td>%s</td>\n", r.timestampCell(block.Timestamp))
			b.WriteString("    </tr>\n")
		}
		b.WriteString("  </tbody>\n</table>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

// contextCell renders highlighted segments; line breaks become <br>.
func (r *htmlRenderer) contextCell(segments []report.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		text := html.EscapeString(seg.Text)
		if seg.Highlight {
			b.WriteString(`<strong class="highlight">` + text + `</strong>`)
		} else {
			b.WriteString(text)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", "<br>")
}

func plainContext(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}

// matchesCell links every lemma key to the dictionary lookup of its
// representative surface form.
func (r *htmlRenderer) matchesCell(entries []report.Entry) string {
	links := make([]string, 0, len(entries))
	for _, entry := range entries {
		links = append(links, r.lookupLink(entry))
	}
	return strings.Join(links, "<br>")
}

func (r *htmlRenderer) lookupLink(entry report.Entry) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" title="Lookup: %s"><strong>%s</strong></a>`,
		lookupURL(r.lookupTemplate, entry.Representative),
		html.EscapeString(entry.Representative),
		html.EscapeString(entry.Key))
}

func (r *htmlRenderer) timestampCell(timestamp string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" title="Jump to time (localhost)">%s</a>`,
		playbackURL(r.playbackPort, timestamp), timestamp)
}

func htmlHeader(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; margin: 2em; }
        table {
            width: 100%%;
            border-collapse: collapse;
            margin-bottom: 2em;
            table-layout: fixed;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 8px 12px;
            text-align: left;
            vertical-align: top;
            word-wrap: break-word;
        }
        th { background-color: #f4f4f4; }

        /* Individual Reports: Context (60%%), Matches (30%%), Time (10%%) */
        .single-report th:nth-child(1), .single-report td:nth-child(1) { width: 60%%; }
        .single-report th:nth-child(2), .single-report td:nth-child(2) { width: 30%%; }
        .single-report th:nth-child(3), .single-report td:nth-child(3) { width: 10%%; font-size: 0.9em; color: #555; }

        /* Combined Report: Context (30%%), 4x Matches (15%% each), Time (10%%) */
        .combined th:nth-child(1), .combined td:nth-child(1) { width: 30%%; }
        .combined th:nth-child(2), .combined td:nth-child(2) { width: 15%%; }
        .combined th:nth-child(3), .combined td:nth-child(3) { width: 15%%; }
        .combined th:nth-child(4), .combined td:nth-child(4) { width: 15%%; }
        .combined th:nth-child(5), .combined td:nth-child(5) { width: 15%%; }
        .combined th:nth-child(6), .combined td:nth-child(6) { width: 10%%; font-size: 0.9em; color: #555; }

        h1, h2, h3, h4 { border-bottom: 2px solid #f4f4f4; padding-bottom: 5px; }
        ul { padding-left: 20px; }
        li { margin-bottom: 5px; }
        strong { color: #333; }
        td strong.highlight { background-color: #fff8c5; padding: 0 2px; }

        /* Link Styles */
        a { text-decoration: none; color: #005fcc; }
        a:hover { text-decoration: underline; }
        /* Make timestamp links less obtrusive */
        td:nth-child(3) a, .combined td:nth-child(6) a { color: #444; }
    </style>
</head>
<body>
`, html.EscapeString(title))
}
