package ruleextract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DateMatch is one recognized and normalized date occurrence.
type DateMatch struct {
	Normalized string // DD/MM/YYYY
	RawSpan    string
	Start      int
	End        int
}

var frenchMonths = map[string]string{
	"janvier": "01", "fevrier": "02", "février": "02", "mars": "03", "avril": "04",
	"mai": "05", "juin": "06", "juillet": "07", "aout": "08", "août": "08",
	"septembre": "09", "octobre": "10", "novembre": "11", "decembre": "12", "décembre": "12",
}

var abbrevMonths = map[string]string{
	"jan": "01", "fev": "02", "fév": "02", "mar": "03", "avr": "04", "mai": "05",
	"jun": "06", "jui": "07", "juil": "07", "aou": "08", "aoû": "08", "sep": "09",
	"oct": "10", "nov": "11", "dec": "12", "déc": "12",
}

var (
	numericDMY   = regexp.MustCompile(`\b(\d{1,2})[./\-](\d{1,2})[./\-](\d{4})\b`)
	numericYMD   = regexp.MustCompile(`\b(\d{4})[./\-](\d{1,2})[./\-](\d{1,2})\b`)
	frenchDate   = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(janvier|f[ée]vrier|mars|avril|mai|juin|juillet|ao[uû]t|septembre|octobre|novembre|d[ée]cembre)\s+(\d{4})\b`)
	abbrevMonYY  = regexp.MustCompile(`(?i)\b(jan|f[ée]v|mar|avr|mai|jun|jui[l]?|ao[uû]|sep|oct|nov|d[ée]c)[.\-]?\s*-?\s*(\d{2})\b`)
	yearOnly     = regexp.MustCompile(`(?i)\b(?:en|depuis|ann[ée]e)\s+(\d{4})\b`)
)

// ExtractDates recognizes and normalizes every date occurrence in text
// (spec §4.4). Output is deduped by position and sorted by start offset.
func ExtractDates(text string) []DateMatch {
	var matches []DateMatch

	for _, loc := range numericDMY.FindAllStringSubmatchIndex(text, -1) {
		day, month, year := text[loc[2]:loc[3]], text[loc[4]:loc[5]], text[loc[6]:loc[7]]
		if norm, ok := normalizeDMY(day, month, year); ok {
			matches = append(matches, DateMatch{norm, text[loc[0]:loc[1]], loc[0], loc[1]})
		}
	}
	for _, loc := range numericYMD.FindAllStringSubmatchIndex(text, -1) {
		year, month, day := text[loc[2]:loc[3]], text[loc[4]:loc[5]], text[loc[6]:loc[7]]
		if norm, ok := normalizeDMY(day, month, year); ok {
			matches = append(matches, DateMatch{norm, text[loc[0]:loc[1]], loc[0], loc[1]})
		}
	}
	for _, loc := range frenchDate.FindAllStringSubmatchIndex(text, -1) {
		day := text[loc[2]:loc[3]]
		monthName := strings.ToLower(stripAccents(text[loc[4]:loc[5]]))
		year := text[loc[6]:loc[7]]
		if month, ok := frenchMonths[monthName]; ok {
			if norm, ok := normalizeDMY(day, month, year); ok {
				matches = append(matches, DateMatch{norm, text[loc[0]:loc[1]], loc[0], loc[1]})
			}
		}
	}
	for _, loc := range abbrevMonYY.FindAllStringSubmatchIndex(text, -1) {
		monthAbbrev := strings.ToLower(stripAccents(text[loc[2]:loc[3]]))
		yy := text[loc[4]:loc[5]]
		if month, ok := abbrevMonths[monthAbbrev]; ok {
			year := expandTwoDigitYear(yy)
			matches = append(matches, DateMatch{"01/" + month + "/" + year, text[loc[0]:loc[1]], loc[0], loc[1]})
		}
	}
	for _, loc := range yearOnly.FindAllStringSubmatchIndex(text, -1) {
		year := text[loc[2]:loc[3]]
		matches = append(matches, DateMatch{"01/01/" + year, text[loc[0]:loc[1]], loc[0], loc[1]})
	}

	return dedupeAndSort(matches)
}

func normalizeDMY(day, month, year string) (string, bool) {
	d, err1 := strconv.Atoi(day)
	m, err2 := strconv.Atoi(month)
	y, err3 := strconv.Atoi(year)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if d < 1 || d > 31 || m < 1 || m > 12 || y < 1900 || y > 2100 {
		return "", false
	}
	return fmt.Sprintf("%02d/%02d/%04d", d, m, y), true
}

func expandTwoDigitYear(yy string) string {
	n, err := strconv.Atoi(yy)
	if err != nil {
		return "20" + yy
	}
	if n < 50 {
		return fmt.Sprintf("20%02d", n)
	}
	return fmt.Sprintf("19%02d", n)
}

func stripAccents(s string) string {
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a", "ä", "a",
		"î", "i", "ï", "i",
		"ô", "o", "ö", "o",
		"ù", "u", "û", "u", "ü", "u",
		"ç", "c",
	)
	return replacer.Replace(s)
}

func dedupeAndSort(matches []DateMatch) []DateMatch {
	seen := make(map[int]bool)
	var out []DateMatch
	for _, m := range matches {
		if seen[m.Start] {
			continue
		}
		seen[m.Start] = true
		out = append(out, m)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Start > out[j].Start; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
