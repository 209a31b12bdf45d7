package pipeline

import "context"

// Analyzer runs the full analysis pipeline for one subtitle file.
type Analyzer interface {
	Analyze(ctx context.Context, srtPath string) error
}
