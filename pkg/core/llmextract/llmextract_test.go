package llmextract

import (
	"context"
	"testing"

	"brightextract/pkg/core/prompt"
	"brightextract/pkg/core/schema"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string, options map[string]interface{}) (string, error) {
	return s.response, s.err
}
func (s *stubProvider) AdaptInstructions(raw string) string { return raw }

func TestRunFillsGapFromLLMResponse(t *testing.T) {
	if err := prompt.LoadFromDirectory("../prompt"); err != nil {
		t.Fatalf("load prompt templates: %v", err)
	}
	stub := &stubProvider{response: `{"values":{"ihc_idh1":"positif"},"_source":{"ihc_idh1":"IDH1 positif en IHC"}}`}
	sections := map[schema.SectionName]string{
		schema.SectionIHC: "IDH1 positif en IHC, ATRX non renseigne.",
	}
	gaps := map[string]bool{"ihc_idh1": true}

	results, _ := Run(context.Background(), stub, sections, sections[schema.SectionIHC], gaps, Config{})
	v, ok := results["ihc_idh1"]
	if !ok {
		t.Fatalf("expected ihc_idh1 to be filled, got %v", results)
	}
	if v.Value != "positif" || v.Tier != "llm" {
		t.Errorf("unexpected value: %+v", v)
	}
	if v.SourceSpan == "" {
		t.Errorf("expected non-empty source span")
	}
}

func TestRunSkipsGroupOnUnparseableResponse(t *testing.T) {
	stub := &stubProvider{response: "not json at all {{{"}
	gaps := map[string]bool{"mol_mgmt": true}
	results, log := Run(context.Background(), stub, nil, "", gaps, Config{})
	if len(results) != 0 {
		t.Errorf("expected no results on unparseable response, got %v", results)
	}
	if len(log) == 0 {
		t.Errorf("expected a log entry describing the failure")
	}
}
