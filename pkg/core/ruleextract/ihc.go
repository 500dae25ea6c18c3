package ruleextract

import "regexp"

const ihcConfidence = 0.85

type ihcMarker struct {
	field   string
	aliases string // regex alternation of marker spellings
}

var ihcMarkers = []ihcMarker{
	{"ihc_idh1", `idh[ -]?1`},
	{"ihc_atrx", `atrx`},
	{"ihc_h3k27me3", `h3\s*k\s*27\s*m\s*e\s*3|h3k27me3`},
	{"ihc_mmr", `mmr`},
	{"ihc_gfap", `gfap`},
	{"ihc_p53", `p\s*53`},
	{"ihc_olig2", `olig[ -]?2`},
	{"ihc_braf", `braf(?:\s*v600e)?`},
	{"ihc_fgfr3", `fgfr[ -]?3`},
	{"ihc_h3k27m", `h3\s*k\s*27\s*m\b`},
}

// egfrHirschPattern matches the EGFR immunostaining score reported on the
// 0/1+/2+/3+ Hirsch scale, distinct from the positif/negatif markers above.
// "hirsch" is required between the gene name and the score to avoid
// capturing an unrelated EGFR amplification figure as a Hirsch score.
var egfrHirschPattern = regexp.MustCompile(`(?i)\begfr\b[^.;\n]{0,40}?hirsch[^.;\n]{0,10}?\b([0-3]\s*\+|[0-3]\b)`)

// markerValuePattern matches "<marker> [:=-] <value>" where <value> is a
// short run of word characters, percent signs, or +/- (spec §4.4).
func markerValuePattern(aliases string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + aliases + `)\s*[:=\-\s]+\s*([a-zàâäéèêëïîôöùûüç0-9%+\-]+(?:\s+d['’]expression)?)`)
}

var ihcSynonyms = map[string]string{
	"positif": "positif", "positive": "positif", "+": "positif",
	"negatif": "negatif", "negative": "negatif", "-": "negatif",
	"négatif": "negatif", "négative": "negatif",
	"maintenu": "maintenu", "conserve": "maintenu", "conservee": "maintenu",
	"conservé": "maintenu", "conservée": "maintenu",
	"perte": "negatif", "perte d'expression": "negatif", "perte d’expression": "negatif",
}

func normalizeIHCValue(field, raw string) string {
	lower := stripAccents(regexpLower(raw))
	if canon, ok := ihcSynonyms[lower]; ok {
		if canon == "maintenu" {
			switch field {
			case "ihc_atrx", "ihc_h3k27me3", "ihc_mmr":
				return "maintenu"
			default:
				return "positif"
			}
		}
		return canon
	}
	return raw
}

func regexpLower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r = r + ('a' - 'A')
		}
		out = append(out, r)
	}
	return string(out)
}

// extractIHC recognizes per-marker IHC results within a section body.
func extractIHC(body string, offset int) []candidate {
	var out []candidate
	for _, marker := range ihcMarkers {
		pattern := markerValuePattern(marker.aliases)
		loc := pattern.FindStringSubmatchIndex(body)
		if loc == nil {
			continue
		}
		raw := body[loc[2]:loc[3]]
		value := normalizeIHCValue(marker.field, raw)
		out = append(out, candidate{
			Field:      marker.field,
			Value:      value,
			RawSpan:    body[loc[0]:loc[1]],
			Start:      offset + loc[0],
			End:        offset + loc[1],
			Confidence: ihcConfidence,
		})
	}

	if loc := ki67Pattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, candidate{
			Field:      "ki67",
			Value:      body[loc[2]:loc[3]],
			RawSpan:    body[loc[0]:loc[1]],
			Start:      offset + loc[0],
			End:        offset + loc[1],
			Confidence: ihcConfidence,
		})
	}

	if loc := egfrHirschPattern.FindStringSubmatchIndex(body); loc != nil {
		score := stripPunct(body[loc[2]:loc[3]])
		out = append(out, candidate{
			Field:      "ihc_egfr_hirsch",
			Value:      score,
			RawSpan:    body[loc[0]:loc[1]],
			Start:      offset + loc[0],
			End:        offset + loc[1],
			Confidence: ihcConfidence,
		})
	}
	return out
}
