package pipeline

import (
	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/config"
	"github.com/agalvezelec/germanSrtAnalysis/internal/logger"
	"github.com/agalvezelec/germanSrtAnalysis/internal/render"
)

type implAnalyzer struct {
	cfg       *config.Config
	annotator annotator.Annotator
	renderers []render.Renderer
	docx      *render.DocxWriter
	logger    logger.Logger
}

// New creates an Analyzer instance wired with the HTML and Markdown
// renderers, plus the DOCX writer when enabled.
func New(cfg *config.Config, ann annotator.Annotator, log logger.Logger) Analyzer {
	a := &implAnalyzer{
		cfg:       cfg,
		annotator: ann,
		renderers: []render.Renderer{render.NewHTML(cfg), render.NewMarkdown(cfg)},
		logger:    log,
	}
	if cfg.Output.Docx {
		a.docx = render.NewDocx()
	}
	return a
}
