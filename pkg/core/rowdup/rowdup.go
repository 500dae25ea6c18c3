// Package rowdup implements the Row Duplicator: splitting one
// ExtractionResult into several when its text narrates more than one
// distinct treatment event of the same type (spec §4.9).
package rowdup

import (
	"fmt"
	"regexp"
	"strings"

	"brightextract/pkg/core/model"
)

// eventSeparator matches the French list separators the source text uses
// between co-narrated event dates. "/" is deliberately excluded so that
// DD/MM/YYYY dates are never split apart (spec §4.9).
var eventSeparator = regexp.MustCompile(`\s*(?:;|,| et | puis )\s*`)

// splitEvents splits raw on eventSeparator and drops empty/duplicate
// entries, preserving first-seen order.
func splitEvents(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, part := range eventSeparator.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

// eventSpec describes one event type's date field(s) in priority order
// (spec §4.9): surgery > chemotherapy > radiotherapy > progression.
type eventSpec struct {
	eventType     string
	dateField     string
	altDateField  string // surgery's historical alias
	parallelField string // chemo's co-split protocol field
}

var eventPriority = []eventSpec{
	{eventType: "surgery", dateField: "chir_date", altDateField: "date_chir"},
	{eventType: "chemotherapy", dateField: "chm_date_debut", parallelField: "chimios"},
	{eventType: "radiotherapy", dateField: "rx_date_debut"},
	{eventType: "progression", dateField: "date_progression"},
}

// Run detects whether result narrates multiple events of a single type and,
// if so, emits one ExtractionResult per event. The first matching event
// type in priority order triggers; no other type is split in the same pass
// (spec §9 open question 3). If nothing triggers, returns []*ExtractionResult{result}.
func Run(result *model.ExtractionResult) []*model.ExtractionResult {
	byField := result.ByField()

	for _, spec := range eventPriority {
		field, v, ok := pickDateField(byField, spec)
		if !ok {
			continue
		}
		dates := splitEvents(v.Value)
		if len(dates) <= 1 {
			continue
		}
		return duplicate(result, byField, spec, field, dates)
	}

	return []*model.ExtractionResult{result}
}

// RunAll applies Run across every result, for the aggregator's convenience.
func RunAll(results []*model.ExtractionResult) []*model.ExtractionResult {
	var out []*model.ExtractionResult
	for _, r := range results {
		out = append(out, Run(r)...)
	}
	return out
}

func pickDateField(byField map[string]model.ExtractionValue, spec eventSpec) (string, model.ExtractionValue, bool) {
	if v, ok := byField[spec.dateField]; ok && v.Value != "" {
		return spec.dateField, v, true
	}
	if spec.altDateField != "" {
		if v, ok := byField[spec.altDateField]; ok && v.Value != "" {
			return spec.altDateField, v, true
		}
	}
	return "", model.ExtractionValue{}, false
}

func duplicate(result *model.ExtractionResult, byField map[string]model.ExtractionValue, spec eventSpec, field string, dates []string) []*model.ExtractionResult {
	var parallelValues []string
	if spec.parallelField != "" {
		if pv, ok := byField[spec.parallelField]; ok {
			parallelValues = splitEvents(pv.Value)
		}
	}

	otherAlias := ""
	if spec.eventType == "surgery" {
		if field == spec.dateField {
			otherAlias = spec.altDateField
		} else {
			otherAlias = spec.dateField
		}
	}

	out := make([]*model.ExtractionResult, 0, len(dates))
	for i, date := range dates {
		clone := cloneResult(result)
		setFieldValue(clone, field, date)
		if otherAlias != "" {
			removeField(clone, otherAlias)
		}
		if spec.parallelField != "" && i < len(parallelValues) {
			setFieldValue(clone, spec.parallelField, parallelValues[i])
		}
		clone.Log = append(clone.Log, fmt.Sprintf("Row duplicated: event %d (%s) from document %s", i+1, spec.eventType, result.DocumentID))
		out = append(out, clone)
	}
	return out
}

func cloneResult(r *model.ExtractionResult) *model.ExtractionResult {
	values := make([]model.ExtractionValue, len(r.Values))
	copy(values, r.Values)
	sections := make(map[string]string, len(r.Sections))
	for k, v := range r.Sections {
		sections[k] = v
	}
	log := make([]string, len(r.Log))
	copy(log, r.Log)
	errs := make([]string, len(r.Errors))
	copy(errs, r.Errors)
	return &model.ExtractionResult{
		DocumentID:     r.DocumentID,
		PatientID:      r.PatientID,
		DocType:        r.DocType,
		DocTypeConf:    r.DocTypeConf,
		DocTypeUnclear: r.DocTypeUnclear,
		DocumentDate:   r.DocumentDate,
		Sections:       sections,
		Values:         values,
		RuleCount:      r.RuleCount,
		LLMCount:       r.LLMCount,
		ManualCount:    r.ManualCount,
		FlaggedCount:   r.FlaggedCount,
		ElapsedMS:      r.ElapsedMS,
		Log:            log,
		Errors:         errs,
	}
}

func setFieldValue(r *model.ExtractionResult, field, value string) {
	for i := range r.Values {
		if r.Values[i].Field == field {
			r.Values[i].Value = value
			return
		}
	}
	r.Values = append(r.Values, model.ExtractionValue{Field: field, Value: value, Tier: model.TierManual})
}

func removeField(r *model.ExtractionResult, field string) {
	out := r.Values[:0]
	for _, v := range r.Values {
		if v.Field != field {
			out = append(out, v)
		}
	}
	r.Values = out
}
