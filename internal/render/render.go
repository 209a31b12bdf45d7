package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/report"
)

// Artifact is one generated report file.
type Artifact struct {
	Name string
	Data []byte
}

// Renderer produces the five artifacts of one output format: four
// per-category reports plus the combined report.
type Renderer interface {
	Artifacts(m *report.Model, baseName string) []Artifact
}

// lookupURL builds the dictionary link for a representative surface
// form. The form is query-escaped; the template carries one %s.
func lookupURL(template, surface string) string {
	return fmt.Sprintf(template, url.QueryEscape(surface))
}

// playbackURL builds the local seek link for a verbatim timestamp.
func playbackURL(port int, timestamp string) string {
	return fmt.Sprintf("http://localhost:%d/?time=%s", port, timestamp)
}

// artifactName builds "<base>.<plural lowercase>.<ext>".
func artifactName(baseName string, cat annotator.Category, ext string) string {
	return fmt.Sprintf("%s.%s.%s", baseName, strings.ToLower(cat.PluralTitle()), ext)
}

func combinedName(baseName, ext string) string {
	return fmt.Sprintf("%s.combined.%s", baseName, ext)
}
