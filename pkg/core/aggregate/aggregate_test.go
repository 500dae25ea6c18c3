package aggregate

import (
	"testing"

	"brightextract/pkg/core/model"
)

func val(field, value string) model.ExtractionValue {
	return model.ExtractionValue{Field: field, Value: value}
}

func TestRunFiveDocumentScenario(t *testing.T) {
	results := []*model.ExtractionResult{
		{
			DocumentID: "d1", PatientID: "p1", DocType: "consultation", DocumentDate: "15/01/2024",
			Values: []model.ExtractionValue{val("sexe", "M"), val("ik", "90")},
		},
		{
			DocumentID: "d2", PatientID: "p1", DocType: "anapath", DocumentDate: "10/02/2024",
			Values: []model.ExtractionValue{val("ihc_idh1", "positif"), val("grade", "3")},
		},
		{
			DocumentID: "d3", PatientID: "p1", DocType: "rcp", DocumentDate: "05/03/2024",
			Values: nil,
		},
		{
			DocumentID: "d4", PatientID: "p1", DocType: "consultation", DocumentDate: "20/06/2024",
			Values: []model.ExtractionValue{val("ik", "70")},
		},
		{
			DocumentID: "d5", PatientID: "p1", DocType: "anapath", DocumentDate: "01/09/2024",
			Values: []model.ExtractionValue{val("chir_date", "01/09/2024"), val("grade", "4")},
		},
	}

	rows := Run(results)
	if len(rows) != 5 {
		t.Fatalf("expected 5 timeline rows, got %d", len(rows))
	}

	row5 := rows[4]
	if row5.Values["sexe"] != "M" {
		t.Errorf("expected sexe=M carried forward, got %q", row5.Values["sexe"])
	}
	if row5.Values["grade"] != "4" {
		t.Errorf("expected grade=4 restated in row 5, got %q", row5.Values["grade"])
	}
	if row5.Values["ik"] != "70" {
		t.Errorf("expected ik=70 carried forward, got %q", row5.Values["ik"])
	}
	if row5.Values["ihc_idh1"] != "" {
		t.Errorf("expected ihc_idh1 cleared by specimen reset, got %q", row5.Values["ihc_idh1"])
	}

	if row5.Values["_patient_id"] != "p1" || row5.Values["_document_id"] != "d5" ||
		row5.Values["_document_type"] != "anapath" || row5.Values["_document_date"] != "01/09/2024" {
		t.Errorf("unexpected metadata columns on row 5: %+v", row5.Values)
	}
}

func TestRunMissingDateSortsLast(t *testing.T) {
	results := []*model.ExtractionResult{
		{DocumentID: "a", PatientID: "p1", DocType: "consultation", DocumentDate: "", Values: []model.ExtractionValue{val("ik", "60")}},
		{DocumentID: "b", PatientID: "p1", DocType: "consultation", DocumentDate: "01/01/2024", Values: []model.ExtractionValue{val("ik", "80")}},
	}
	rows := Run(results)
	if rows[0].Values["_document_id"] != "b" {
		t.Errorf("expected dated document first, got %q", rows[0].Values["_document_id"])
	}
	if rows[1].Values["_document_id"] != "a" {
		t.Errorf("expected undated document last, got %q", rows[1].Values["_document_id"])
	}
}

func TestColumnsOrderIsStable(t *testing.T) {
	cols := Columns()
	want := []string{"_patient_id", "_document_id", "_document_type", "_document_date"}
	for i, w := range want {
		if cols[i] != w {
			t.Errorf("expected metadata column %d = %q, got %q", i, w, cols[i])
		}
	}
	for i := 5; i < len(cols); i++ {
		if cols[i-1] > cols[i] {
			t.Errorf("expected feature columns sorted by name, %q before %q", cols[i-1], cols[i])
		}
	}
}
