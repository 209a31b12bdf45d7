package annotator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// rawToken is the wire format emitted by the bridge script.
type rawToken struct {
	Text       string `json:"text"`
	Whitespace string `json:"whitespace"`
	POS        string `json:"pos"`
	Lemma      string `json:"lemma"`
	Gender     string `json:"gender"`
	Number     string `json:"number"`
	Index      int    `json:"i"`
}

// categoryForPOS maps universal POS tags to tracked categories.
func categoryForPOS(pos string) Category {
	switch pos {
	case "ADJ":
		return Adjective
	case "VERB":
		return Verb
	case "NOUN":
		return Noun
	case "ADV":
		return Adverb
	}
	return Other
}

// Check loads the model once and discards the result. A missing model
// resource surfaces here, before any input is read.
func (a *implAnnotator) Check(ctx context.Context) error {
	if _, err := a.executor.Execute(ctx, a.python, a.scriptPath, a.model, "--check"); err != nil {
		return fmt.Errorf("load model %q: %w", a.model, err)
	}
	return nil
}

// AnnotateAll ships all block texts to one bridge process so the model
// loads a single time per run.
func (a *implAnnotator) AnnotateAll(ctx context.Context, texts []string) ([][]Token, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, fmt.Errorf("encode annotator input: %w", err)
	}

	a.logger.Debug(ctx, "Annotating %d blocks with %s", len(texts), a.model)

	out, err := a.executor.ExecuteWithInput(ctx, string(payload), a.python, a.scriptPath, a.model)
	if err != nil {
		return nil, fmt.Errorf("run annotator: %w", err)
	}

	var raw [][]rawToken
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("decode annotator output: %w", err)
	}
	if len(raw) != len(texts) {
		return nil, fmt.Errorf("annotator returned %d blocks, expected %d", len(raw), len(texts))
	}

	result := make([][]Token, len(raw))
	for i, tokens := range raw {
		result[i] = make([]Token, 0, len(tokens))
		for _, rt := range tokens {
			result[i] = append(result[i], Token{
				Text:       rt.Text,
				Whitespace: rt.Whitespace,
				Category:   categoryForPOS(rt.POS),
				Lemma:      rt.Lemma,
				Gender:     rt.Gender,
				Number:     rt.Number,
				Index:      rt.Index,
			})
		}
	}
	return result, nil
}

func (a *implAnnotator) Close() error {
	return os.Remove(a.scriptPath)
}
