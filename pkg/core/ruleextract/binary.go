package ruleextract

import (
	"regexp"

	"brightextract/pkg/core/negation"
)

const binaryConfidence = 0.75

// binaryKeywords lists, per binary clinical field, the French phrases whose
// presence triggers extraction; negation then decides oui/non (spec §4.4).
var binaryKeywords = map[string][]string{
	"epilepsie":                  {`epileps`, `crise[s]? comitiale`, `crise[s]? convulsive`},
	"ceph_hic":                   {`cephal[ée]es?`, `hypertension intracranienne`, `signe[s]? d'hic`},
	"deficit":                    {`d[ée]ficit (?:moteur|neurologique|sensitif)`},
	"cognitif":                   {`trouble[s]? cognitif`, `trouble[s]? mnesique`, `trouble[s]? de la memoire`},
	"histo_necrose":              {`necrose`},
	"histo_pec":                  {`proliferation endothelio-capillaire`, `hyperplasie endothelial`},
	"corticoides":                {`corticoide`, `dexamethasone`, `corticotherapie`},
	"optune":                     {`optune`, `ttfields`, `champs electriques`},
	"anti_epileptiques":          {`anti-?epileptique`, `levetiracetam`, `keppra`},
	"essai_therapeutique":        {`essai therapeutique`, `essai clinique`, `protocole de recherche`},
	"contraste_1er_symptome":     {`prise de contraste`, `rehaussement`},
	"oedeme_1er_symptome":        {`oedeme`},
	"calcif_1er_symptome":        {`calcification`},
	"progress_clinique":          {`aggravation clinique`, `degradation clinique`, `progression clinique`},
	"progress_radiologique":      {`progression radiologique`, `progression tumorale`, `majoration (?:de la )?lesion`},
	"antecedent_tumoral":         {`antecedent[s]? (?:de |d')?tumeur`, `antecedent[s]? (?:de |d')?cancer`, `antecedent[s]? neoplasique`},
	"epilepsie_1er_symptome":     {`epileps`, `crise[s]? comitiale`, `crise[s]? convulsive`},
	"ceph_hic_1er_symptome":      {`cephal[ée]es?`, `hypertension intracranienne`, `signe[s]? d'hic`},
	"deficit_1er_symptome":       {`d[ée]ficit (?:moteur|neurologique|sensitif)`},
	"cognitif_1er_symptome":      {`trouble[s]? cognitif`, `trouble[s]? mnesique`, `trouble[s]? de la memoire`},
	"autre_trouble":              {`trouble[s]? de l'equilibre`, `trouble[s]? visuel`, `trouble[s]? du langage`, `aphasie`, `ataxie`},
	"autre_trouble_1er_symptome": {`trouble[s]? de l'equilibre`, `trouble[s]? visuel`, `trouble[s]? du langage`, `aphasie`, `ataxie`},
}

// binaryFieldOrder fixes evaluation order so the first matching field in a
// body wins ties deterministically.
var binaryFieldOrder = []string{
	"epilepsie", "ceph_hic", "deficit", "cognitif", "histo_necrose", "histo_pec",
	"corticoides", "optune", "anti_epileptiques", "essai_therapeutique",
	"contraste_1er_symptome", "oedeme_1er_symptome", "calcif_1er_symptome",
	"progress_clinique", "progress_radiologique", "antecedent_tumoral",
	"epilepsie_1er_symptome", "ceph_hic_1er_symptome", "deficit_1er_symptome",
	"cognitif_1er_symptome", "autre_trouble", "autre_trouble_1er_symptome",
}

var binaryPatterns = compileBinaryPatterns()

func compileBinaryPatterns() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(binaryKeywords))
	for field, words := range binaryKeywords {
		pattern := `(?i)`
		for i, w := range words {
			if i > 0 {
				pattern += `|`
			}
			pattern += w
		}
		out[field] = regexp.MustCompile(pattern)
	}
	return out
}

// extractBinary scans for each binary field's curated keywords; on the
// first hit the Assertion Annotator decides negation, yielding non/oui.
// Negation checking can be disabled (use_negation=false), in which case
// every hit is affirmed.
func extractBinary(body string, offset int) []candidate {
	return extractBinaryOpts(body, offset, true)
}

func extractBinaryOpts(body string, offset int, useNegation bool) []candidate {
	var out []candidate
	for _, field := range binaryFieldOrder {
		loc := binaryPatterns[field].FindStringIndex(body)
		if loc == nil {
			continue
		}
		value := "oui"
		if useNegation && negation.IsNegated(body, loc[0], loc[1]) {
			value = "non"
		}
		out = append(out, candidate{
			Field: field, Value: value, RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: binaryConfidence,
		})
	}
	return out
}

// surgeryTypePatterns is checked in order (most specific first); values
// match the canonical vocabulary pkg/core/vocab already collapses LLM
// synonyms into ("exerese complete"/"exerese partielle"/"biopsie"), so a
// "subtotale" mention is folded into "exerese partielle" the same way
// vocab.Normalize folds "exerese subtotale".
var surgeryTypePatterns = []struct {
	value   string
	pattern *regexp.Regexp
}{
	{"exerese complete", regexp.MustCompile(`(?i)(?:exerese|resection) (?:chirurgicale )?(?:totale|complete)`)},
	{"exerese partielle", regexp.MustCompile(`(?i)(?:exerese|resection) (?:chirurgicale )?(?:subtotale|partielle)`)},
	{"biopsie", regexp.MustCompile(`(?i)\bbiopsie\b`)},
}

// extractSurgeryType recognizes the categorical extent-of-resection cue
// (spec §4.4's treatment family); only the first pattern to match in
// surgeryTypePatterns order is reported.
func extractSurgeryType(body string, offset int) []candidate {
	for _, p := range surgeryTypePatterns {
		if loc := p.pattern.FindStringIndex(body); loc != nil {
			return []candidate{{
				Field: "type_chirurgie", Value: p.value, RawSpan: body[loc[0]:loc[1]],
				Start: offset + loc[0], End: offset + loc[1], Confidence: binaryConfidence,
			}}
		}
	}
	return nil
}

// binaryFamily closes over the use_negation setting so the orchestrator can
// toggle it per its Config (spec §6) without any package-level mutable state.
func binaryFamily(useNegation bool) family {
	return func(body string, offset int) []candidate {
		return extractBinaryOpts(body, offset, useNegation)
	}
}
