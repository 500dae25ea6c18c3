// Package vocab holds the synonym normalization shared by the LLM
// Extractor's value coercion (spec §4.5 step 5) and the Vocabulary
// Validator (spec §4.7 step 2): the same family of French clinical
// synonyms collapses to the same canonical token in both places.
package vocab

import (
	"regexp"
	"strconv"
	"strings"
)

// nullTokens are values that normalize to "no value" rather than a string.
var nullTokens = map[string]bool{
	"null": true, "none": true, "n": true, "n/a": true, "na": true, "": true,
}

// synonyms maps a lowercased, accent-stripped raw token to its canonical
// form. Order-independent: each entry is a direct replacement.
var synonyms = map[string]string{
	"positive": "positif", "+": "positif",
	"negative": "negatif", "negatif": "negatif",
	"conserve": "maintenu", "conservee": "maintenu",
	"homme": "M", "masculin": "M", "mr": "M", "m.": "M",
	"femme": "F", "feminin": "F", "mme": "F", "mlle": "F",
	"methyle": "methyle", "non methyle": "non methyle",
	"sauvage": "wt", "non mutee": "wt", "non mute": "wt",
	"absence de mutation": "wt", "pas de mutation": "wt",
	"exerese complete": "exerese complete", "exerese totale": "exerese complete",
	"resection complete": "exerese complete",
	"exerese subtotale": "exerese partielle", "resection partielle": "exerese partielle",
	"biopsie stereotaxique": "biopsie",
	"true": "oui", "false": "non",
	"oui": "oui", "non": "non",
}

var whoYearPattern = regexp.MustCompile(`(?i)^(?:oms|who)\s*(2007|2016|2021)$`)

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

// Normalize applies the synonym table to a raw extracted value. Returns
// ("", true) when the value is one of the recognized "no value" tokens
// (i.e. it should be treated as null).
func Normalize(raw string) (value string, isNull bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(stripAccents(trimmed))

	if nullTokens[lower] {
		return "", true
	}
	if m := whoYearPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1], false
	}
	if canon, ok := synonyms[lower]; ok {
		return canon, false
	}
	return trimmed, false
}

// ParseInt attempts to coerce a normalized value into an integer, as the
// Vocabulary Validator does for integer-typed fields holding a string
// representation (spec §4.7 step 3).
func ParseInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}
