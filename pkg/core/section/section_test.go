package section

import (
	"testing"

	"brightextract/pkg/core/schema"
)

func TestDetectNoHeaderFallsBackToFullText(t *testing.T) {
	text := "Patiente suivie pour gliome, sans mention de section structuree."
	sections := Detect(text)
	if got, ok := sections[schema.SectionFullText]; !ok || got != text {
		t.Errorf("expected full_text fallback, got %v", sections)
	}
}

func TestDetectPreambleAndSection(t *testing.T) {
	text := "Patient de 54 ans adresse pour suspicion de gliome.\n\nCONCLUSION\nGliome de grade III confirme par analyse histologique complete.\n"
	sections := Detect(text)
	if _, ok := sections[schema.SectionPreamble]; !ok {
		t.Errorf("expected preamble section, got %v", sections)
	}
	body, ok := sections[schema.SectionConclusion]
	if !ok {
		t.Fatalf("expected conclusion section, got %v", sections)
	}
	if len(body) < minBodyLen {
		t.Errorf("conclusion body too short: %q", body)
	}
}

func TestDetectFirstOccurrenceOnly(t *testing.T) {
	text := "CONCLUSION\nPremiere conclusion suffisamment longue pour compter.\n\nCONCLUSION\nDeuxieme conclusion qui ne doit jamais etre retenue ici.\n"
	sections := Detect(text)
	body := sections[schema.SectionConclusion]
	if body == "" {
		t.Fatalf("expected a conclusion section")
	}
	if body != "Premiere conclusion suffisamment longue pour compter." {
		t.Errorf("expected first occurrence body, got %q", body)
	}
}

func TestDetectDiscardsShortBodies(t *testing.T) {
	text := "CONCLUSION\nOK\n\nTRAITEMENT\nChimiotherapie puis radiotherapie standard selon protocole habituel.\n"
	sections := Detect(text)
	if _, ok := sections[schema.SectionConclusion]; ok {
		t.Errorf("short conclusion body should have been discarded")
	}
	if _, ok := sections[schema.SectionTreatment]; !ok {
		t.Errorf("expected treatment section to survive")
	}
}
