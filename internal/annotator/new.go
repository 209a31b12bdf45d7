package annotator

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/agalvezelec/germanSrtAnalysis/internal/config"
	"github.com/agalvezelec/germanSrtAnalysis/internal/logger"
	"github.com/agalvezelec/germanSrtAnalysis/pkg/executor"
)

//go:embed annotate_de.py
var bridgeScript string

type implAnnotator struct {
	python     string
	model      string
	scriptPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates an Annotator backed by a spaCy bridge process. The
// embedded bridge script is written to a temp file that lives for the
// lifetime of the Annotator; Close removes it.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Annotator, error) {
	script, err := os.CreateTemp("", "annotate-*.py")
	if err != nil {
		return nil, fmt.Errorf("create bridge script: %w", err)
	}
	if _, err := script.WriteString(bridgeScript); err != nil {
		script.Close()
		os.Remove(script.Name())
		return nil, fmt.Errorf("write bridge script: %w", err)
	}
	if err := script.Close(); err != nil {
		os.Remove(script.Name())
		return nil, fmt.Errorf("close bridge script: %w", err)
	}

	return &implAnnotator{
		python:     cfg.Annotator.Python,
		model:      cfg.Annotator.Model,
		scriptPath: script.Name(),
		executor:   exec,
		logger:     log,
	}, nil
}
