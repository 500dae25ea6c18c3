// Package ruleextract implements the Tier 1 deterministic extractors: a
// family of regex-based matchers run per detected section, producing
// ExtractionValues with extraction_tier="rule" (spec §4.4).
package ruleextract

import (
	"brightextract/pkg/core/model"
	"brightextract/pkg/core/schema"
	"brightextract/pkg/core/section"
)

// candidate is one extractor's proposed value before it's wrapped into an
// ExtractionValue with tier/confidence metadata.
type candidate struct {
	Field      string
	Value      string
	RawSpan    string // verbatim substring of the document text backing Value
	Start, End int
	Confidence float64
}

// routing lists, per canonical section, which extractor families to run
// against that section's body (spec §4.4).
type family func(body string, offset int) []candidate

func sectionFamiliesFor(useNegation bool) map[schema.SectionName][]family {
	bin := binaryFamily(useNegation)
	return map[schema.SectionName][]family{
		schema.SectionIHC:          {extractIHC, extractDates},
		schema.SectionMolecular:    {extractMolecular, extractAmplificationsFusions, extractDates},
		schema.SectionChromosomal:  {extractChromosomal},
		schema.SectionMacroscopy:   {extractNumeric, extractDates},
		schema.SectionMicroscopy:   {extractNumeric, bin},
		schema.SectionConclusion:   {extractNumeric, bin, extractDates, extractMolecular},
		schema.SectionHistory:      {bin, extractDates},
		schema.SectionTreatment:    {extractNumeric, bin, extractSurgeryType, extractDates},
		schema.SectionClinicalExam: {bin, extractNumeric},
		schema.SectionRadiology:    {bin, extractDates},
		schema.SectionPreamble:     {bin, extractDates},
		schema.SectionFullText: {
			extractIHC, extractMolecular, extractChromosomal, extractAmplificationsFusions,
			bin, extractNumeric, extractSurgeryType, extractDates,
		},
	}
}

// dateFieldRoutingOrder is the fixed order in which unfilled date fields are
// assigned detected dates positionally (spec §4.4, §9 open question 4).
var dateFieldRoutingOrder = []string{
	"date_naissance", "date_diagnostic", "chir_date", "date_chir",
	"chm_date_debut", "chm_date_fin", "rx_date_debut", "rx_date_fin",
	"date_progression", "date_deces",
}

// Run executes Tier 1 over the detected sections, restricted to
// candidateFields, and returns one ExtractionValue per field that any
// extractor produced. A field found in an earlier section (per section
// iteration order below) is never overwritten by a later one. useNegation
// gates the Assertion Annotator inside binary extraction (spec §6).
func Run(text string, spans []section.Span, candidateFields map[string]bool, useNegation bool) map[string]model.ExtractionValue {
	results := make(map[string]model.ExtractionValue)
	var pendingDates []candidate
	sectionFamilies := sectionFamiliesFor(useNegation)

	for _, span := range spans {
		families := sectionFamilies[span.Name]
		for _, fam := range families {
			for _, c := range fam(span.Body, span.Start) {
				if c.Field == "" {
					// date candidates carry no field yet; assigned below.
					pendingDates = append(pendingDates, c)
					continue
				}
				if !candidateFields[c.Field] {
					continue
				}
				if _, exists := results[c.Field]; exists {
					continue
				}
				results[c.Field] = toValue(c, string(span.Name))
			}
		}
	}

	assignDates(text, pendingDates, candidateFields, results)
	return results
}

// assignDates implements the positional date-to-field heuristic (spec §4.4):
// the i-th detected, not-yet-consumed date is assigned to the i-th unfilled
// date field in dateFieldRoutingOrder.
func assignDates(text string, dates []candidate, candidateFields map[string]bool, results map[string]model.ExtractionValue) {
	if len(dates) == 0 {
		return
	}
	i := 0
	for _, field := range dateFieldRoutingOrder {
		if !candidateFields[field] {
			continue
		}
		if _, exists := results[field]; exists {
			continue
		}
		if i >= len(dates) {
			break
		}
		c := dates[i]
		c.Field = field
		results[field] = toValue(c, "")
		i++
	}
}

func toValue(c candidate, sectionName string) model.ExtractionValue {
	return model.ExtractionValue{
		Field:      c.Field,
		Value:      c.Value,
		Tier:       model.TierRule,
		SourceSpan: c.RawSpan,
		SpanStart:  c.Start,
		SpanEnd:    c.End,
		SpanValid:  true,
		Confidence: c.Confidence,
	}
}
