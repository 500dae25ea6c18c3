package ruleextract

import "regexp"

const chromosomalConfidence = 0.85

var chromosomeArms = map[string]string{
	"1p": "ch1p", "19q": "ch19q", "10p": "ch10p", "10q": "ch10q",
	"7p": "ch7p", "7q": "ch7q", "9p": "ch9p", "9q": "ch9q",
}

var armStatusPattern = regexp.MustCompile(`(?i)\b(1p|19q|10p|10q|7p|7q|9p|9q)\s*[:=\-]\s*([^.;\n]{1,40})`)

var codeletionPattern = regexp.MustCompile(`(?i)cod[ée]l[ée]tion\s+1p[/ ]19q`)

func classifyArmStatus(raw string) (string, bool) {
	lower := regexpLower(stripAccents(raw))
	switch {
	case contains(lower, "perte homozygote"), contains(lower, "deletion"), contains(lower, "del"), contains(lower, "perte") && !contains(lower, "partielle") && !contains(lower, "heterozygote"):
		return "perte", true
	case contains(lower, "perte heterozygote"), contains(lower, "partielle"):
		return "perte partielle", true
	case contains(lower, "gain"):
		return "gain", true
	case contains(lower, "normal"):
		return "", false
	}
	return "", false
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && indexOf(s, sub) >= 0
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

// extractChromosomal recognizes per-arm chromosomal alteration status and
// the combined 1p/19q codeletion shorthand (spec §4.4).
func extractChromosomal(body string, offset int) []candidate {
	var out []candidate

	if loc := codeletionPattern.FindStringIndex(body); loc != nil {
		raw := body[loc[0]:loc[1]]
		out = append(out,
			candidate{Field: "ch1p", Value: "perte", RawSpan: raw, Start: offset + loc[0], End: offset + loc[1], Confidence: chromosomalConfidence},
			candidate{Field: "ch19q", Value: "perte", RawSpan: raw, Start: offset + loc[0], End: offset + loc[1], Confidence: chromosomalConfidence},
		)
	}

	for _, loc := range armStatusPattern.FindAllStringSubmatchIndex(body, -1) {
		arm := regexpLower(body[loc[2]:loc[3]])
		field, ok := chromosomeArms[arm]
		if !ok {
			continue
		}
		status, ok := classifyArmStatus(body[loc[4]:loc[5]])
		if !ok {
			continue
		}
		out = append(out, candidate{
			Field: field, Value: status, RawSpan: body[loc[0]:loc[1]],
			Start: offset + loc[0], End: offset + loc[1], Confidence: chromosomalConfidence,
		})
	}

	return out
}
