package annotator

import "context"

// Annotator wraps the external linguistic model.
type Annotator interface {
	// Check verifies that the model resource can be loaded.
	Check(ctx context.Context) error
	// AnnotateAll annotates every text in a single model session and
	// returns one token sequence per input text, in input order.
	AnnotateAll(ctx context.Context, texts []string) ([][]Token, error)
	Close() error
}
