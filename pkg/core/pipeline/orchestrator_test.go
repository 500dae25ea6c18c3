package pipeline

import (
	"context"
	"testing"

	"brightextract/pkg/core/model"
)

const sampleAnapath = `COMPTE RENDU ANATOMOPATHOLOGIQUE

Conclusion:
Glioblastome, grade 4. IDH1 : negatif. Date du compte rendu : 12/03/2022.

Immunohistochimie:
IDH1 : negatif
ATRX : maintenu

Biologie moleculaire:
MGMT : methyle
codeletion 1p/19q absente
`

func TestExtractDocumentRuleOnly(t *testing.T) {
	o := NewOrchestrator(Config{UseLLM: false, UseNegation: true, FuzzySpanThreshold: 0.8}, nil)
	result := o.ExtractDocument(context.Background(), model.Document{
		Text:      sampleAnapath,
		PatientID: "patient-1",
	})

	if result.DocType != "anapath" {
		t.Errorf("expected anapath classification, got %q", result.DocType)
	}
	if result.RuleCount == 0 {
		t.Errorf("expected some tier-1 values, got none")
	}
	if result.LLMCount != 0 {
		t.Errorf("expected no tier-2 values with use_llm=false, got %d", result.LLMCount)
	}
	if result.DocumentDate != "12/03/2022" {
		t.Errorf("expected document date 12/03/2022, got %q", result.DocumentDate)
	}

	byField := result.ByField()
	v, ok := byField["ihc_idh1"]
	if !ok || v.Value != "negatif" {
		t.Errorf("expected ihc_idh1=negatif, got %+v", byField["ihc_idh1"])
	}
}

func TestExtractDocumentCallerDateOverride(t *testing.T) {
	o := NewOrchestrator(Config{UseLLM: false}, nil)
	result := o.ExtractDocument(context.Background(), model.Document{
		Text:         sampleAnapath,
		DocumentDate: "01/01/2020",
	})
	if result.DocumentDate != "01/01/2020" {
		t.Errorf("expected caller override to win, got %q", result.DocumentDate)
	}
}

func TestExtractBatchDefaultsDocumentIDToIndex(t *testing.T) {
	o := NewOrchestrator(Config{UseLLM: false}, nil)
	docs := []model.Document{
		{Text: sampleAnapath},
		{Text: sampleAnapath},
	}
	results := o.ExtractBatch(context.Background(), docs)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].DocumentID != "0" || results[1].DocumentID != "1" {
		t.Errorf("expected index-based document IDs, got %q and %q", results[0].DocumentID, results[1].DocumentID)
	}
}

func TestExtractDocumentAssignsGeneratedIDWhenMissing(t *testing.T) {
	o := NewOrchestrator(Config{UseLLM: false}, nil)
	result := o.ExtractDocument(context.Background(), model.Document{Text: sampleAnapath})
	if result.DocumentID == "" {
		t.Errorf("expected a generated document ID, got empty string")
	}
}
