package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
)

func TestDocxWriteCategory(t *testing.T) {
	w := NewDocx()
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "movie.nouns.docx")

	if err := w.WriteCategory(m, annotator.Noun, "movie", path); err != nil {
		t.Fatalf("WriteCategory() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("study sheet is empty")
	}
	// A docx file is a zip archive.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("study sheet is not a zip archive (starts with % x)", data[:2])
	}
}

func TestDocxWriteCategoryWithoutMatches(t *testing.T) {
	w := NewDocx()
	m := testModel(t) // has no adjectives
	path := filepath.Join(t.TempDir(), "movie.adjectives.docx")

	if err := w.WriteCategory(m, annotator.Adjective, "movie", path); err != nil {
		t.Fatalf("WriteCategory() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty-category study sheet was not written")
	}
}
