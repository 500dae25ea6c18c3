package classifier

import (
	"context"
	"testing"

	"brightextract/pkg/core/schema"
)

func TestClassifyEmptyText(t *testing.T) {
	r := Classify(context.Background(), "   ", nil)
	if r.DocType != schema.DocConsultation || r.Confidence != 0 || !r.Ambiguous {
		t.Errorf("unexpected result for empty text: %+v", r)
	}
}

func TestClassifyAnapath(t *testing.T) {
	text := "Compte rendu anatomopathologique. Macroscopie: piece operatoire recue. Microscopie: proliferation gliale."
	r := Classify(context.Background(), text, nil)
	if r.DocType != schema.DocAnapath {
		t.Errorf("expected anapath, got %s (score ambiguous=%v)", r.DocType, r.Ambiguous)
	}
}

func TestClassifyAmbiguousNoLLM(t *testing.T) {
	r := Classify(context.Background(), "texte neutre sans aucun mot cle clinique reconnu", nil)
	if !r.Ambiguous {
		t.Errorf("expected ambiguous result for score-0 text")
	}
}

type stubProvider struct {
	response string
}

func (s *stubProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string, options map[string]interface{}) (string, error) {
	return s.response, nil
}
func (s *stubProvider) AdaptInstructions(raw string) string { return raw }

func TestClassifyLLMTieBreakOverrides(t *testing.T) {
	stub := &stubProvider{response: "rcp"}
	r := Classify(context.Background(), "texte neutre sans aucun mot cle clinique reconnu", stub)
	if r.DocType != schema.DocRCP {
		t.Errorf("expected llm override to rcp, got %s", r.DocType)
	}
	if r.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5 on disagreement, got %v", r.Confidence)
	}
}
