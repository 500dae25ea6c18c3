package rowdup

import (
	"testing"

	"brightextract/pkg/core/model"
)

func TestRunNoMultiEventReturnsOriginal(t *testing.T) {
	result := &model.ExtractionResult{
		DocumentID: "doc-1",
		Values: []model.ExtractionValue{
			{Field: "chir_date", Value: "12/03/2020"},
			{Field: "sexe", Value: "M"},
		},
	}
	out := Run(result)
	if len(out) != 1 || out[0] != result {
		t.Fatalf("expected the original single result unchanged, got %d results", len(out))
	}
}

func TestRunSplitsTwoSurgeries(t *testing.T) {
	result := &model.ExtractionResult{
		DocumentID: "doc-2",
		PatientID:  "patient-9",
		Values: []model.ExtractionValue{
			{Field: "chir_date", Value: "12/03/2020, 20/06/2021"},
			{Field: "sexe", Value: "M"},
			{Field: "ihc_idh1", Value: "negatif"},
			{Field: "ik", Value: "80"},
		},
	}

	out := Run(result)
	if len(out) != 2 {
		t.Fatalf("expected 2 duplicated rows, got %d", len(out))
	}

	byField0 := out[0].ByField()
	byField1 := out[1].ByField()

	if byField0["chir_date"].Value != "12/03/2020" {
		t.Errorf("expected first row chir_date=12/03/2020, got %q", byField0["chir_date"].Value)
	}
	if byField1["chir_date"].Value != "20/06/2021" {
		t.Errorf("expected second row chir_date=20/06/2021, got %q", byField1["chir_date"].Value)
	}

	// Shared specimen/demographic features copied to both rows.
	if byField0["ihc_idh1"].Value != "negatif" || byField1["ihc_idh1"].Value != "negatif" {
		t.Errorf("expected ihc_idh1 copied to both rows")
	}
	if byField0["sexe"].Value != "M" || byField1["sexe"].Value != "M" {
		t.Errorf("expected sexe copied to both rows")
	}
	// Clinical-state fields copied to each event row.
	if byField0["ik"].Value != "80" || byField1["ik"].Value != "80" {
		t.Errorf("expected ik copied to both rows")
	}

	if len(out[0].Log) == 0 || len(out[1].Log) == 0 {
		t.Errorf("expected a duplication log entry on each row")
	}
}

func TestRunDoesNotSplitOnSlash(t *testing.T) {
	result := &model.ExtractionResult{
		DocumentID: "doc-3",
		Values: []model.ExtractionValue{
			{Field: "chir_date", Value: "12/03/2020"},
		},
	}
	out := Run(result)
	if len(out) != 1 {
		t.Fatalf("expected a single DD/MM/YYYY date not to be split, got %d results", len(out))
	}
}

func TestRunPriorityStopsAtFirstMatchingType(t *testing.T) {
	result := &model.ExtractionResult{
		DocumentID: "doc-4",
		Values: []model.ExtractionValue{
			{Field: "chir_date", Value: "12/03/2020, 20/06/2021"},
			{Field: "chm_date_debut", Value: "01/01/2021, 01/02/2021"},
		},
	}
	out := Run(result)
	if len(out) != 2 {
		t.Fatalf("expected surgery split only, got %d results", len(out))
	}
	for _, r := range out {
		v := r.ByField()["chm_date_debut"]
		if v.Value != "01/01/2021, 01/02/2021" {
			t.Errorf("expected chm_date_debut left unsplit, got %q", v.Value)
		}
	}
}
