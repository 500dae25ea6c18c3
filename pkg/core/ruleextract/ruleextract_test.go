package ruleextract

import (
	"testing"

	"brightextract/pkg/core/section"
)

func allFieldsCandidate() map[string]bool {
	return map[string]bool{
		"ihc_idh1": true, "mol_mgmt": true, "ch1p": true, "ch19q": true,
		"grade": true, "epilepsie": true, "ki67": true,
		"ihc_h3k27me3": true, "ihc_h3k27m": true, "ihc_egfr_hirsch": true,
		"mol_cdkn2a": true, "type_chirurgie": true,
		"epilepsie_1er_symptome": true, "chm_date_fin": true, "rx_date_fin": true,
	}
}

func TestExtractIHCPositive(t *testing.T) {
	text := "IDH1 : positif"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	v, ok := results["ihc_idh1"]
	if !ok {
		t.Fatalf("expected ihc_idh1 extracted, got %v", results)
	}
	if v.Value != "positif" || v.Tier != "rule" {
		t.Errorf("unexpected value: %+v", v)
	}
}

func TestExtractBinaryNegation(t *testing.T) {
	text := "Pas d'epilepsie."
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	v, ok := results["epilepsie"]
	if !ok || v.Value != "non" {
		t.Errorf("expected epilepsie=non, got %+v", results)
	}
}

func TestExtractMGMT(t *testing.T) {
	text := "MGMT : non methyle"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	v, ok := results["mol_mgmt"]
	if !ok || v.Value != "non methyle" {
		t.Errorf("expected mol_mgmt=non methyle, got %+v", results)
	}
}

func TestExtractCodeletion(t *testing.T) {
	text := "codeletion 1p/19q confirmee"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["ch1p"].Value != "perte" || results["ch19q"].Value != "perte" {
		t.Errorf("expected both ch1p and ch19q perte, got %+v", results)
	}
}

func TestExtractGradeRoman(t *testing.T) {
	text := "Grade IV"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["grade"].Value != "4" {
		t.Errorf("expected grade=4, got %+v", results["grade"])
	}
}

func TestExtractH3K27MDoesNotMatchH3K27me3(t *testing.T) {
	text := "H3K27me3 : perte d'expression"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if _, ok := results["ihc_h3k27m"]; ok {
		t.Errorf("expected ihc_h3k27m not extracted from an h3k27me3 mention, got %+v", results["ihc_h3k27m"])
	}
	if results["ihc_h3k27me3"].Value != "negatif" {
		t.Errorf("expected ihc_h3k27me3=negatif, got %+v", results["ihc_h3k27me3"])
	}
}

func TestExtractEGFRHirschScore(t *testing.T) {
	text := "EGFR : score de Hirsch 2+"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["ihc_egfr_hirsch"].Value != "2+" {
		t.Errorf("expected ihc_egfr_hirsch=2+, got %+v", results["ihc_egfr_hirsch"])
	}
}

func TestExtractCDKN2ADeletion(t *testing.T) {
	text := "CDKN2A/B : deletion homozygote"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["mol_cdkn2a"].Value != "oui" {
		t.Errorf("expected mol_cdkn2a=oui, got %+v", results["mol_cdkn2a"])
	}
}

func TestExtractCDKN2ANoDeletion(t *testing.T) {
	text := "CDKN2A/B : pas de deletion"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["mol_cdkn2a"].Value != "non" {
		t.Errorf("expected mol_cdkn2a=non, got %+v", results["mol_cdkn2a"])
	}
}

func TestExtractSurgeryTypeTotale(t *testing.T) {
	text := "Exerese chirurgicale totale de la lesion."
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["type_chirurgie"].Value != "exerese complete" {
		t.Errorf("expected type_chirurgie=exerese complete, got %+v", results["type_chirurgie"])
	}
}

func TestExtractSurgeryTypeBiopsie(t *testing.T) {
	text := "Biopsie stereotaxique realisee."
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["type_chirurgie"].Value != "biopsie" {
		t.Errorf("expected type_chirurgie=biopsie, got %+v", results["type_chirurgie"])
	}
}

func TestExtractFirstSymptomEpilepsie(t *testing.T) {
	text := "Epilepsie inaugurale."
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	if results["epilepsie_1er_symptome"].Value != "oui" {
		t.Errorf("expected epilepsie_1er_symptome=oui, got %+v", results["epilepsie_1er_symptome"])
	}
}

func TestRuleTierSourceSpanVerbatim(t *testing.T) {
	text := "IDH1 : positif"
	spans := section.DetectSpans(text)
	results := Run(text, spans, allFieldsCandidate(), true)
	v := results["ihc_idh1"]
	if text[v.SpanStart:v.SpanEnd] != v.SourceSpan {
		t.Errorf("source span not verbatim: text[%d:%d]=%q source_span=%q", v.SpanStart, v.SpanEnd, text[v.SpanStart:v.SpanEnd], v.SourceSpan)
	}
}
