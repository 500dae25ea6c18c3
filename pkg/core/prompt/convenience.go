package prompt

// Convenience functions for the per-feature-group extraction prompts.

// GetGroupPrompt returns a feature group's system prompt by group name
// (ihc, molecular, chromosomal, diagnosis, demographics, symptoms,
// treatment, evolution).
func GetGroupPrompt(group string) (string, error) {
	id := "extraction." + group
	return Get().GetSystemPrompt(id)
}

// MustGetGroupPrompt is like GetGroupPrompt but panics on error.
func MustGetGroupPrompt(group string) string {
	p, err := GetGroupPrompt(group)
	if err != nil {
		panic(err)
	}
	return p
}

// PromptIDs contains the known extraction prompt identifiers, one per
// feature group (spec §4.5).
var PromptIDs = struct {
	ExtractionIHC           string
	ExtractionMolecular     string
	ExtractionChromosomal   string
	ExtractionDiagnosis     string
	ExtractionDemographics  string
	ExtractionSymptoms      string
	ExtractionTreatment     string
	ExtractionEvolution     string
}{
	ExtractionIHC:          "extraction.ihc",
	ExtractionMolecular:    "extraction.molecular",
	ExtractionChromosomal:  "extraction.chromosomal",
	ExtractionDiagnosis:    "extraction.diagnosis",
	ExtractionDemographics: "extraction.demographics",
	ExtractionSymptoms:     "extraction.symptoms",
	ExtractionTreatment:    "extraction.treatment",
	ExtractionEvolution:    "extraction.evolution",
}
