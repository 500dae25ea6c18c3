package ruleextract

import "regexp"

const molecularConfidence = 0.8

var molecularGenes = map[string]string{
	"idh1": "mol_idh1", "idh-1": "mol_idh1",
	"tp53": "mol_tp53", "p53": "mol_tp53",
	"atrx": "mol_atrx",
	"braf": "mol_braf",
	"tert": "mol_tert",
	"cic":   "mol_cic",
	"fubp1": "mol_fubp1",
	"pten":  "mol_pten",
	"idh2":  "mol_idh2", "idh-2": "mol_idh2",
}

var geneAliasPattern = `idh[ -]?1|idh[ -]?2|tp ?53|p ?53|atrx|braf|tert|cic|fubp1|pten`

var geneStatusPattern = regexp.MustCompile(`(?i)\b(` + geneAliasPattern + `)\s*[:=\-]\s*([^.;\n]{1,60})`)

var noMutationPattern = regexp.MustCompile(`(?i)\bpas de mutation\s+(?:du\s+)?(` + geneAliasPattern + `)\b`)

var mutationPattern = regexp.MustCompile(`(?i)\bmutation(?:\s+du promoteur)?\s+(?:du\s+)?(` + geneAliasPattern + `)\b(?:\s*\(?([a-z0-9.]+)\)?)?`)

var variantTokenPattern = regexp.MustCompile(`^(?:p\.)?[A-Z]\d+[A-Z]$`)

var wildTypeWords = regexp.MustCompile(`(?i)\b(wild[- ]?type|sauvage|non\s+mut[ée]e?|absence de mutation|pas de mutation)\b`)

var mgmtPattern = regexp.MustCompile(`(?i)\bmgmt\s*[:=\-]\s*(non\s+)?m[ée]thyl[ée]e?`)

// cdkn2aNoDeletionPattern is checked before cdkn2aDeletionPattern so an
// explicit negation ("pas de deletion", "conservé") wins over a bare
// mention of the gene near "deletion" elsewhere in the same clause.
var cdkn2aNoDeletionPattern = regexp.MustCompile(`(?i)\bcdkn2a(?:/b)?\b[^.;\n]{0,40}?(pas de d[ée]l[ée]tion|absence de d[ée]l[ée]tion|non d[ée]l[ée]t[ée]e?|conserv[ée]e?)`)

var cdkn2aDeletionPattern = regexp.MustCompile(`(?i)\bcdkn2a(?:/b)?\b[^.;\n]{0,40}?(d[ée]l[ée]tion homozygote|d[ée]l[ée]t[ée]e?|perte)`)

func geneField(raw string) (string, bool) {
	field, ok := molecularGenes[regexpLower(stripAccents(raw))]
	return field, ok
}

// extractMolecular recognizes gene mutation status and MGMT methylation
// status within a section body (spec §4.4).
func extractMolecular(body string, offset int) []candidate {
	var out []candidate

	if loc := mgmtPattern.FindStringSubmatchIndex(body); loc != nil {
		value := "methyle"
		if loc[2] >= 0 {
			value = "non methyle"
		}
		out = append(out, candidate{
			Field:      "mol_mgmt",
			Value:      value,
			RawSpan:    body[loc[0]:loc[1]],
			Start:      offset + loc[0],
			End:        offset + loc[1],
			Confidence: molecularConfidence,
		})
	}

	if loc := cdkn2aNoDeletionPattern.FindStringIndex(body); loc != nil {
		out = append(out, candidate{
			Field: "mol_cdkn2a", Value: "non", RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: molecularConfidence,
		})
	} else if loc := cdkn2aDeletionPattern.FindStringIndex(body); loc != nil {
		out = append(out, candidate{
			Field: "mol_cdkn2a", Value: "oui", RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: molecularConfidence,
		})
	}

	for _, loc := range noMutationPattern.FindAllStringSubmatchIndex(body, -1) {
		field, ok := geneField(body[loc[2]:loc[3]])
		if !ok {
			continue
		}
		out = append(out, candidate{
			Field: field, Value: "wt", RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: molecularConfidence,
		})
	}

	for _, loc := range mutationPattern.FindAllStringSubmatchIndex(body, -1) {
		field, ok := geneField(body[loc[2]:loc[3]])
		if !ok {
			continue
		}
		out = append(out, candidate{
			Field: field, Value: "mute", RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: molecularConfidence,
		})
	}

	for _, loc := range geneStatusPattern.FindAllStringSubmatchIndex(body, -1) {
		field, ok := geneField(body[loc[2]:loc[3]])
		if !ok {
			continue
		}
		status := body[loc[4]:loc[5]]
		value := classifyMolecularStatus(status)
		out = append(out, candidate{
			Field: field, Value: value, RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: molecularConfidence,
		})
	}

	return out
}

func classifyMolecularStatus(status string) string {
	if wildTypeWords.MatchString(status) {
		return "wt"
	}
	trimmed := stripPunct(status)
	if variantTokenPattern.MatchString(trimmed) {
		return "mute"
	}
	return trimmed
}

func stripPunct(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
