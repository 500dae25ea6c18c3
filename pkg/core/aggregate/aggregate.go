// Package aggregate implements the Temporal Aggregator: folding a patient's
// ordered ExtractionResults (after row duplication) into a longitudinal
// timeline, one row per result, forward-filling state across documents
// (spec §4.10).
package aggregate

import (
	"sort"
	"strings"

	"brightextract/pkg/core/model"
	"brightextract/pkg/core/schema"
)

// dateSortKey converts DD/MM/YYYY to a lexicographically comparable
// YYYYMMDD key. A missing or unparseable date sorts last (spec §4.10 step 1).
func dateSortKey(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "99999999"
	}
	d, m, y := parts[0], parts[1], parts[2]
	if len(d) != 2 || len(m) != 2 || len(y) != 4 {
		return "99999999"
	}
	return y + m + d
}

// stateEntry is one field's current value plus the document type that
// produced it, used to arbitrate static/specimen-bound priority (spec
// §4.10 step 4).
type stateEntry struct {
	value   string
	docType schema.DocumentType
}

// Run sorts results chronologically (stable, so equal sort keys keep the
// caller's order) and emits one TimelineRow per result, maintaining the
// three state maps described in spec §4.10.
func Run(results []*model.ExtractionResult) []model.TimelineRow {
	ordered := make([]*model.ExtractionResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return dateSortKey(ordered[i].DocumentDate) < dateSortKey(ordered[j].DocumentDate)
	})

	static := make(map[string]stateEntry)
	specimen := make(map[string]stateEntry)
	timeVarying := make(map[string]stateEntry)

	rows := make([]model.TimelineRow, 0, len(ordered))
	for _, r := range ordered {
		byField := r.ByField()

		if hasSurgeryEvent(byField) {
			specimen = make(map[string]stateEntry)
		}

		for name, v := range byField {
			if v.Value == "" {
				continue
			}
			field, err := schema.GetField(name)
			if err != nil {
				continue
			}
			docType := schema.DocumentType(r.DocType)

			switch field.Temporal {
			case schema.Static:
				applyPriority(static, name, v.Value, docType, field.Group)
			case schema.SpecimenBound:
				applyPriority(specimen, name, v.Value, docType, field.Group)
			case schema.TimeVarying:
				timeVarying[name] = stateEntry{value: v.Value, docType: docType}
			}
		}

		rows = append(rows, buildRow(r, static, specimen, timeVarying))
	}

	return rows
}

// applyPriority implements the static/specimen-bound update rule: set on
// first sight, replace only if the new document type outranks the current
// holder for this field's group (spec §4.10 step 4).
func applyPriority(state map[string]stateEntry, field, value string, docType schema.DocumentType, group schema.FeatureGroup) {
	current, exists := state[field]
	if !exists {
		state[field] = stateEntry{value: value, docType: docType}
		return
	}
	if rank(docType, group) < rank(current.docType, group) {
		state[field] = stateEntry{value: value, docType: docType}
	}
}

// rank returns a document type's precedence position for a field group;
// lower is higher priority. An unranked type sorts last (spec §4.10).
func rank(dt schema.DocumentType, group schema.FeatureGroup) int {
	chain := schema.PriorityFor(group)
	for i, c := range chain {
		if c == dt {
			return i
		}
	}
	return len(chain)
}

// hasSurgeryEvent reports whether a result reports a non-null surgery date,
// which resets specimen_state (spec §4.10 step 3).
func hasSurgeryEvent(byField map[string]model.ExtractionValue) bool {
	if v, ok := byField["chir_date"]; ok && v.Value != "" {
		return true
	}
	if v, ok := byField["date_chir"]; ok && v.Value != "" {
		return true
	}
	return false
}

func buildRow(r *model.ExtractionResult, static, specimen, timeVarying map[string]stateEntry) model.TimelineRow {
	values := make(map[string]string)
	for _, f := range schema.AllFields() {
		var entry stateEntry
		var ok bool
		switch f.Temporal {
		case schema.Static:
			entry, ok = static[f.Name]
		case schema.SpecimenBound:
			entry, ok = specimen[f.Name]
		case schema.TimeVarying:
			entry, ok = timeVarying[f.Name]
		}
		if ok {
			values[f.Name] = entry.value
		} else {
			values[f.Name] = ""
		}
	}

	return model.TimelineRow{
		PatientID: r.PatientID,
		Values:    metadataValues(r, values),
	}
}

// metadataValues folds the metadata columns into the same value map the CLI
// renders, in the fixed order _patient_id, _document_id, _document_type,
// _document_date, then feature columns sorted by name (spec §4.10 step 6).
// Column order is enforced by Columns, not by map iteration.
func metadataValues(r *model.ExtractionResult, features map[string]string) map[string]string {
	out := make(map[string]string, len(features)+4)
	out["_patient_id"] = r.PatientID
	out["_document_id"] = r.DocumentID
	out["_document_type"] = r.DocType
	out["_document_date"] = r.DocumentDate
	for k, v := range features {
		out[k] = v
	}
	return out
}

// Columns returns the stable, reproducible column order for a timeline
// table: the four metadata columns first, then every known field sorted by
// name (spec §4.10 step 6, §6).
func Columns() []string {
	cols := []string{"_patient_id", "_document_id", "_document_type", "_document_date"}
	names := make([]string, 0, len(schema.AllFields()))
	for _, f := range schema.AllFields() {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return append(cols, names...)
}
