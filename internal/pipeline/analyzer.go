package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/agalvezelec/germanSrtAnalysis/internal/analysis"
	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/render"
	"github.com/agalvezelec/germanSrtAnalysis/internal/report"
	"github.com/agalvezelec/germanSrtAnalysis/internal/srt"
)

// Analyze runs the whole pipeline for one SRT file: segment, annotate,
// aggregate, build the report model and write every artifact into the
// output folder next to the input. A failing artifact write is logged
// and skipped; only setup failures (unreadable input, annotator error,
// uncreatable output folder) abort the run.
func (a *implAnalyzer) Analyze(ctx context.Context, srtPath string) error {
	start := time.Now()

	absPath, err := filepath.Abs(srtPath)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	base := filepath.Base(absPath)
	baseName := strings.TrimSuffix(base, filepath.Ext(base))

	outDir := filepath.Join(filepath.Dir(absPath), a.cfg.Output.DirName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}

	a.logger.Info(ctx, "Analyzing: %s", base)

	blocks := srt.Segment(string(raw))
	texts := make([]string, len(blocks))
	for i, block := range blocks {
		texts[i] = block.Text
	}

	tokens, err := a.annotator.AnnotateAll(ctx, texts)
	if err != nil {
		return fmt.Errorf("annotate blocks: %w", err)
	}

	annotated := make([]analysis.AnnotatedBlock, len(blocks))
	for i, block := range blocks {
		annotated[i] = analysis.AnnotatedBlock{
			Timestamp: block.Timestamp,
			Text:      block.Text,
			Tokens:    tokens[i],
		}
	}

	result := analysis.Aggregate(annotated)
	model := report.Build(result)

	a.logger.Info(ctx, "Segmented %d blocks, %d with matches", len(blocks), len(model.Blocks))

	a.writeArtifacts(ctx, &model, outDir, baseName)

	a.logger.Info(ctx, "Analysis of %s finished in %s", base, time.Since(start))
	return nil
}

// writeArtifacts writes every report. Writes are independent, so they
// run concurrently; each one is all-or-nothing at the file level.
func (a *implAnalyzer) writeArtifacts(ctx context.Context, m *report.Model, outDir, baseName string) {
	var wg sync.WaitGroup
	for _, r := range a.renderers {
		for _, artifact := range r.Artifacts(m, baseName) {
			wg.Add(1)
			go func(artifact render.Artifact) {
				defer wg.Done()
				path := filepath.Join(outDir, artifact.Name)
				if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
					a.logger.Error(ctx, "Failed to write %s: %v", path, err)
					return
				}
				a.logger.Info(ctx, "Created %s", path)
			}(artifact)
		}
	}
	wg.Wait()

	if a.docx == nil {
		return
	}
	for _, cat := range annotator.Categories {
		name := fmt.Sprintf("%s.%s.docx", baseName, strings.ToLower(cat.PluralTitle()))
		path := filepath.Join(outDir, name)
		if err := a.docx.WriteCategory(m, cat, baseName, path); err != nil {
			a.logger.Error(ctx, "Failed to write %s: %v", path, err)
			continue
		}
		a.logger.Info(ctx, "Created %s", path)
	}
}
