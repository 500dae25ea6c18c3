package ruleextract

import (
	"regexp"
	"strconv"
	"strings"
)

const numericConfidence = 0.8

var ki67Pattern = regexp.MustCompile(`(?i)\bki-?67\s*[:=\-]?\s*(?:index\s*)?(\d{1,3}(?:[.,]\d+)?)\s*%?`)

var karnofskyPattern = regexp.MustCompile(`(?i)\b(?:ik|indice de karnofsky|karnofsky|kps)\s*[:=\-]?\s*(\d{2,3})`)

var mitosesPattern = regexp.MustCompile(`(?i)\b(\d{1,3})\s*mitoses?\b`)

var gradeArabicPattern = regexp.MustCompile(`(?i)\bgrade\s*[:=\-]?\s*([1-4])\b`)

var gradeRomanPattern = regexp.MustCompile(`(?i)\bgrade\s*[:=\-]?\s*(I{1,3}V?|IV)\b`)

var rxDosePattern = regexp.MustCompile(`(?i)\b(\d{1,3}(?:[.,]\d+)?)\s*gy\b`)

var chemoCyclesPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*cycles?\s*(?:de chimio(?:therapie)?)?\b`)

var romanToArabic = map[string]string{"I": "1", "II": "2", "III": "3", "IV": "4"}

// extractNumeric recognizes the numeric scalar fields: Ki67, Karnofsky,
// mitoses count, tumor grade (Arabic or Roman), radiotherapy dose, and
// chemotherapy cycle count (spec §4.4).
func extractNumeric(body string, offset int) []candidate {
	var out []candidate

	if loc := ki67Pattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, numericCandidate("ki67", normalizeDecimal(body[loc[2]:loc[3]]), body, offset, loc))
	}
	if loc := karnofskyPattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, numericCandidate("ik", body[loc[2]:loc[3]], body, offset, loc))
	}
	if loc := mitosesPattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, numericCandidate("mitoses_count", body[loc[2]:loc[3]], body, offset, loc))
	}
	if loc := gradeArabicPattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, numericCandidate("grade", body[loc[2]:loc[3]], body, offset, loc))
	} else if loc := gradeRomanPattern.FindStringSubmatchIndex(body); loc != nil {
		roman := strings.ToUpper(body[loc[2]:loc[3]])
		if arabic, ok := romanToArabic[roman]; ok {
			out = append(out, numericCandidate("grade", arabic, body, offset, loc))
		}
	}
	if loc := rxDosePattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, numericCandidate("rx_dose", normalizeDecimal(body[loc[2]:loc[3]]), body, offset, loc))
	}
	if loc := chemoCyclesPattern.FindStringSubmatchIndex(body); loc != nil {
		out = append(out, numericCandidate("chm_cycles", body[loc[2]:loc[3]], body, offset, loc))
	}

	return out
}

func numericCandidate(field, value, body string, offset int, loc []int) candidate {
	return candidate{
		Field: field, Value: value, RawSpan: body[loc[0]:loc[1]],
		Start: offset + loc[0], End: offset + loc[1], Confidence: numericConfidence,
	}
}

func normalizeDecimal(s string) string {
	s = strings.ReplaceAll(s, ",", ".")
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return s
	}
	return s
}
