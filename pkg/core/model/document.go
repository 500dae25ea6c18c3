// Package model declares the input/output data shapes shared across the
// extraction pipeline: the document the caller submits, the values the
// pipeline produces, and the resulting extraction result and timeline row.
package model

// Document is a single pseudonymized clinical report submitted for
// extraction (spec §3, §6 "Input document").
type Document struct {
	DocumentID   string // optional; defaults to a generated UUID for single calls, a batch index for ExtractBatch
	PatientID    string
	Text         string
	DocumentDate string // DD/MM/YYYY, optional caller override (spec §4.8 step 9)
}

// Tier names the extractor family that produced an ExtractionValue.
type Tier string

const (
	TierRule    Tier = "rule"
	TierLLM     Tier = "llm"
	TierManual  Tier = "manual"
)

// Assertion is the outcome of the Assertion Annotator for a single span
// (spec §4.1).
type Assertion string

const (
	AssertionAffirmed   Assertion = "affirmed"
	AssertionNegated    Assertion = "negated"
	AssertionHypothetic Assertion = "hypothetical"
	AssertionHistorical Assertion = "historical"
)

// ExtractionValue is one field's extracted value plus its provenance
// (spec §3).
type ExtractionValue struct {
	Field      string
	Value      string
	Tier       Tier
	Assertion  Assertion
	SourceSpan string // verbatim substring the value was derived from
	SpanStart  int
	SpanEnd    int
	SpanValid  bool // set by the Source-span Validator
	VocabValid bool // set by the Vocabulary Validator
	Flagged    bool
	Confidence float64
}

// ExtractionResult is the full output of running the pipeline on one
// Document (spec §3).
type ExtractionResult struct {
	DocumentID     string
	PatientID      string
	DocType        string
	DocTypeConf    float64
	DocTypeUnclear bool   // classifier ambiguity flag (spec §4.3)
	DocumentDate   string // DD/MM/YYYY, derived per spec §4.8 step 9; empty if none found
	Sections       map[string]string
	Values         []ExtractionValue
	RuleCount      int
	LLMCount       int
	ManualCount    int
	FlaggedCount   int
	ElapsedMS      int64
	Log            []string
	Errors         []string
}

// ByField indexes a result's values by field name; later entries for the
// same field (if any were appended out of order) overwrite earlier ones.
func (r *ExtractionResult) ByField() map[string]ExtractionValue {
	out := make(map[string]ExtractionValue, len(r.Values))
	for _, v := range r.Values {
		out[v.Field] = v
	}
	return out
}

// TimelineRow is one row of a patient's longitudinal timeline, emitted by
// the Temporal Aggregator from row-duplicated ExtractionResults (spec
// §4.10). Values holds both the four metadata columns (_patient_id,
// _document_id, _document_type, _document_date) and one entry per known
// field; column order is defined by aggregate.Columns, not by this map.
type TimelineRow struct {
	PatientID string
	Values    map[string]string
}
