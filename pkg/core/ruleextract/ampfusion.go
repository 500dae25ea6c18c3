package ruleextract

import "regexp"

const ampFusionConfidence = 0.8

var amplificationGenes = map[string]string{
	"mdm2": "amp_mdm2", "cdk4": "amp_cdk4", "egfr": "amp_egfr",
	"met": "amp_met", "mdm4": "amp_mdm4",
}

var amplificationGeneAlias = `mdm2|cdk4|egfr|met|mdm4`

var negatedAmpPattern = regexp.MustCompile(`(?i)(?:pas d'|absence d')\s*amplification\s+(` + amplificationGeneAlias + `)\b`)
var amplificationPattern = regexp.MustCompile(`(?i)\bamplification\s+(?:du gene\s+)?(` + amplificationGeneAlias + `)\b`)

var fusionGeneAlias = `fgfr\d?|ntrk\d?|[a-z0-9]+`

var negatedFusionPattern = regexp.MustCompile(`(?i)(?:pas de|absence de)\s*(?:fusion|rearrangement|translocation)\s+(fgfr\d?|ntrk\d?|[a-z0-9]{2,10})\b`)
var fusionPattern = regexp.MustCompile(`(?i)\b(?:fusion|rearrangement|translocation)\s+(fgfr\d?|ntrk\d?|[a-z0-9]{2,10})\b`)

// extractAmplificationsFusions recognizes amplification and fusion/
// rearrangement mentions, with negated forms checked first so they take
// precedence over a later, broader positive match (spec §4.4).
func extractAmplificationsFusions(body string, offset int) []candidate {
	var out []candidate

	for _, loc := range negatedAmpPattern.FindAllStringSubmatchIndex(body, -1) {
		field, ok := amplificationGenes[regexpLower(body[loc[2]:loc[3]])]
		if !ok {
			continue
		}
		out = append(out, candidate{
			Field: field, Value: "non", RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: ampFusionConfidence,
		})
	}
	for _, loc := range amplificationPattern.FindAllStringSubmatchIndex(body, -1) {
		field, ok := amplificationGenes[regexpLower(body[loc[2]:loc[3]])]
		if !ok {
			continue
		}
		out = append(out, candidate{
			Field: field, Value: "oui", RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: ampFusionConfidence,
		})
	}

	for _, loc := range negatedFusionPattern.FindAllStringSubmatchIndex(body, -1) {
		out = append(out, fusionCandidate(body, offset, loc, "non"))
	}
	for _, loc := range fusionPattern.FindAllStringSubmatchIndex(body, -1) {
		out = append(out, fusionCandidate(body, offset, loc, "oui"))
	}

	return out
}

func fusionCandidate(body string, offset int, loc []int, value string) candidate {
	gene := regexpLower(body[loc[2]:loc[3]])
	field := "fusion_autre"
	switch {
	case hasPrefix(gene, "fgfr"):
		field = "fusion_fgfr"
	case hasPrefix(gene, "ntrk"):
		field = "fusion_ntrk"
	}
	return candidate{
		Field: field, Value: value, RawSpan: body[loc[0]:loc[1]],
		Start: offset + loc[0], End: offset + loc[1], Confidence: ampFusionConfidence,
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
