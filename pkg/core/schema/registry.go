package schema

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrUnknownField is returned by GetField when name names no declared field.
var ErrUnknownField = errors.New("schema: unknown field")

// ErrUnknownDocumentType is returned when a document type string does not
// match one of AllDocumentTypes.
var ErrUnknownDocumentType = errors.New("schema: unknown document type")

var (
	byNameOnce sync.Once
	byName     map[string]Field
	byGroup    map[FeatureGroup][]Field
)

func buildIndexes() {
	byName = make(map[string]Field, len(allFields))
	byGroup = make(map[FeatureGroup][]Field)
	for _, f := range allFields {
		byName[f.Name] = f
		byGroup[f.Group] = append(byGroup[f.Group], f)
	}
}

// GetField looks up a field by its stable name.
func GetField(name string) (Field, error) {
	byNameOnce.Do(buildIndexes)
	f, ok := byName[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// AllFields returns every declared field, in table order.
func AllFields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// FieldsForGroup returns the fields belonging to a feature group, used to
// build the per-group LLM extraction schema (spec §4.5).
func FieldsForGroup(g FeatureGroup) []Field {
	byNameOnce.Do(buildIndexes)
	fields := byGroup[g]
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// AllGroups lists the eight feature groups in a stable order.
var AllGroups = []FeatureGroup{
	GroupDemographics, GroupDiagnosis, GroupIHC, GroupMolecular,
	GroupChromosomal, GroupSymptoms, GroupTreatment, GroupEvolution,
}

// docTypeSet backs ParseDocumentType's validation.
var docTypeSet = map[DocumentType]bool{
	DocAnapath: true, DocMolecularReport: true, DocConsultation: true,
	DocRCP: true, DocRadiology: true,
}

// ParseDocumentType validates a raw document type string against the five
// classifiable kinds.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(s)
	if !docTypeSet[dt] {
		return DocTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
	}
	return dt, nil
}

// BiologicalPriority is the document-type precedence chain used by the
// Temporal Aggregator (spec §4.10) for fields in a biological feature group
// (ihc, molecular, chromosomal, diagnosis): anapath > molecular_report > rcp
// > consultation > radiology. Lower index wins.
var BiologicalPriority = []DocumentType{
	DocAnapath, DocMolecularReport, DocRCP, DocConsultation, DocRadiology,
}

// ClinicalPriority is the document-type precedence chain for everything
// else (demographics, symptoms, treatment, evolution): consultation > rcp >
// anapath > molecular_report > radiology.
var ClinicalPriority = []DocumentType{
	DocConsultation, DocRCP, DocAnapath, DocMolecularReport, DocRadiology,
}

// PriorityFor returns the document-type precedence chain applicable to a
// field's feature group.
func PriorityFor(g FeatureGroup) []DocumentType {
	if BiologicalGroups[g] {
		return BiologicalPriority
	}
	return ClinicalPriority
}

// sectionFieldGroups maps canonical sections to the feature groups a Tier 1
// extractor should look for within them (spec §4.2's companion function).
// A field's own Group is the primary routing key; this table lets the
// Section Detector and Rule Extractor agree on which sections are worth
// scanning for which group without re-deriving it ad hoc.
var sectionFieldGroups = map[SectionName][]FeatureGroup{
	SectionIHC:          {GroupIHC},
	SectionMolecular:    {GroupMolecular},
	SectionChromosomal:  {GroupChromosomal},
	SectionMacroscopy:   {GroupDiagnosis},
	SectionMicroscopy:   {GroupDiagnosis},
	SectionConclusion:   {GroupDiagnosis, GroupEvolution},
	SectionHistory:      {GroupDemographics, GroupSymptoms},
	SectionTreatment:    {GroupTreatment},
	SectionClinicalExam: {GroupSymptoms},
	SectionRadiology:    {GroupEvolution},
	SectionPreamble:     {GroupDemographics},
	SectionFullText:     AllGroups,
}

// GroupsForSection returns the feature groups a given section is expected to
// carry evidence for.
func GroupsForSection(s SectionName) []FeatureGroup {
	groups, ok := sectionFieldGroups[s]
	if !ok {
		return nil
	}
	out := make([]FeatureGroup, len(groups))
	copy(out, groups)
	return out
}

// FieldsForSection returns the declared fields whose group is routed to the
// given section.
func FieldsForSection(s SectionName) []Field {
	groups := GroupsForSection(s)
	if len(groups) == 0 {
		return nil
	}
	wanted := make(map[FeatureGroup]bool, len(groups))
	for _, g := range groups {
		wanted[g] = true
	}
	byNameOnce.Do(buildIndexes)
	var out []Field
	for _, f := range allFields {
		if wanted[f.Group] {
			out = append(out, f)
		}
	}
	return out
}

// docTypeGroups is the routing(document_type) table the pipeline intersects
// with features-for-sections to build the candidate field list (spec §4.8
// step 4) that both Tier 1 and Tier 2 are restricted to. It encodes which
// feature groups a document of this type is expected to carry evidence for;
// fields of a group it omits are not extracted by either tier.
var docTypeGroups = map[DocumentType][]FeatureGroup{
	DocAnapath:         {GroupDiagnosis, GroupIHC, GroupMolecular, GroupChromosomal},
	DocMolecularReport: {GroupMolecular, GroupChromosomal, GroupDiagnosis},
	DocConsultation:    {GroupDemographics, GroupSymptoms, GroupTreatment, GroupEvolution},
	DocRCP:             {GroupDiagnosis, GroupTreatment, GroupEvolution},
	DocRadiology:       {GroupEvolution, GroupSymptoms},
	DocTypeUnknown:     AllGroups,
}

// FieldsForDocType returns the fields routed to a document type, per
// docTypeGroups. An unrecognized document type routes to every group.
func FieldsForDocType(dt DocumentType) []Field {
	groups, ok := docTypeGroups[dt]
	if !ok {
		groups = AllGroups
	}
	wanted := make(map[FeatureGroup]bool, len(groups))
	for _, g := range groups {
		wanted[g] = true
	}
	byNameOnce.Do(buildIndexes)
	var out []Field
	for _, f := range allFields {
		if wanted[f.Group] {
			out = append(out, f)
		}
	}
	return out
}

var evolutionPattern = regexp.MustCompile(`^(initial|terminal|P[0-9]+)$`)

// ValidEvolution reports whether value matches the evolution label grammar
// (spec §3): "initial", "terminal", or "P<k>" for an integer progression
// index k.
func ValidEvolution(value string) bool {
	return evolutionPattern.MatchString(value)
}

var molecularTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_+/ .-]{1,50}$`)

// ValidMolecularStatus reports whether value matches the molecular status
// grammar (spec §3, §4.4): the literals "wt" or "mute", or a free-form
// variant token (amino-acid change, fusion partner, etc.) within the
// allowed character set and length.
func ValidMolecularStatus(value string) bool {
	switch value {
	case "wt", "mute":
		return true
	}
	return molecularTokenPattern.MatchString(value)
}
