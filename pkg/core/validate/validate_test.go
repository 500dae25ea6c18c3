package validate

import (
	"testing"

	"brightextract/pkg/core/model"
)

func TestValidateSpansExactMatch(t *testing.T) {
	text := "IDH1 : positif"
	values := map[string]model.ExtractionValue{
		"ihc_idh1": {Field: "ihc_idh1", Value: "positif", Tier: model.TierRule, SourceSpan: "IDH1 : positif"},
	}
	ValidateSpans(text, values, 0.8)
	if !values["ihc_idh1"].SpanValid || values["ihc_idh1"].Flagged {
		t.Errorf("expected exact match to validate, got %+v", values["ihc_idh1"])
	}
}

func TestValidateSpansFlagsMissingLLMSpan(t *testing.T) {
	text := "quelque texte"
	values := map[string]model.ExtractionValue{
		"grade": {Field: "grade", Value: "3", Tier: model.TierLLM, SourceSpan: ""},
	}
	ValidateSpans(text, values, 0.8)
	if !values["grade"].Flagged {
		t.Errorf("expected llm value with empty span to be flagged")
	}
}

func TestValidateSpansRuleTierNoSpanNotFlagged(t *testing.T) {
	text := "quelque texte"
	values := map[string]model.ExtractionValue{
		"grade": {Field: "grade", Value: "3", Tier: model.TierRule, SourceSpan: ""},
	}
	ValidateSpans(text, values, 0.8)
	if values["grade"].Flagged {
		t.Errorf("rule-tier value with no span should not be flagged")
	}
}

func TestValidateSpansFuzzyMatch(t *testing.T) {
	text := "Le patient presente une epilepsie pharmacoresistante depuis deux ans."
	values := map[string]model.ExtractionValue{
		"epilepsie": {Field: "epilepsie", Value: "oui", Tier: model.TierLLM, SourceSpan: "epilepsie pharmaco resistante"},
	}
	ValidateSpans(text, values, 0.5)
	if !values["epilepsie"].SpanValid {
		t.Errorf("expected fuzzy match to pass at low threshold, got %+v", values["epilepsie"])
	}
}

func TestValidateVocabularyRejectsOutOfSet(t *testing.T) {
	values := map[string]model.ExtractionValue{
		"sexe": {Field: "sexe", Value: "inconnu"},
	}
	ValidateVocabulary(values)
	if values["sexe"].VocabValid {
		t.Errorf("expected sexe=inconnu to fail vocabulary check")
	}
	if !values["sexe"].Flagged {
		t.Errorf("expected out-of-vocabulary value to be flagged")
	}
}

func TestValidateVocabularyNormalizesSexSynonym(t *testing.T) {
	values := map[string]model.ExtractionValue{
		"sexe": {Field: "sexe", Value: "homme"},
	}
	ValidateVocabulary(values)
	if values["sexe"].Value != "M" || !values["sexe"].VocabValid {
		t.Errorf("expected sexe normalized to M, got %+v", values["sexe"])
	}
}

func TestValidateVocabularyEvolutionLabel(t *testing.T) {
	values := map[string]model.ExtractionValue{
		"evolution": {Field: "evolution", Value: "P2"},
	}
	ValidateVocabulary(values)
	if !values["evolution"].VocabValid {
		t.Errorf("expected P2 to be a valid evolution label")
	}
}
