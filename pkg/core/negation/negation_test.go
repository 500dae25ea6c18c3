package negation

import "testing"

func TestAnnotateNegation(t *testing.T) {
	text := "Pas d'épilepsie rapportée ce jour."
	start, end := 6, 16 // "épilepsie"
	ann := Annotate(text, start, end)
	if !ann.Negated {
		t.Errorf("expected negated=true for %q", text)
	}
}

func TestAnnotateNoNegationAcrossSentenceBoundary(t *testing.T) {
	text := "Absence de signe. Epilepsie presente depuis deux ans."
	idx := len("Absence de signe. ")
	ann := Annotate(text, idx, idx+len("Epilepsie"))
	if ann.Negated {
		t.Errorf("negation cue from prior sentence leaked across boundary")
	}
}

func TestAnnotateHistory(t *testing.T) {
	text := "Antecedent de meningiome en 2015, actuellement suivi."
	idx := len("Antecedent de ")
	ann := Annotate(text, idx, idx+len("meningiome"))
	if !ann.Historical {
		t.Errorf("expected historical=true for %q", text)
	}
}

func TestAnnotateHypothesis(t *testing.T) {
	text := "Lesion suspectee d'origine tumorale, a confirmer par biopsie."
	idx := 0
	ann := Annotate(text, idx, idx+len("Lesion"))
	if !ann.Hypothesis {
		t.Errorf("expected hypothesis=true for %q", text)
	}
}

func TestIsNegatedIdempotent(t *testing.T) {
	text := "Pas de cephalees d'HIC."
	a := IsNegated(text, 8, 22)
	b := IsNegated(text, 8, 22)
	if a != b {
		t.Errorf("IsNegated not idempotent: %v != %v", a, b)
	}
	if !a {
		t.Errorf("expected negated=true")
	}
}
