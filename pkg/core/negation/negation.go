// Package negation implements the Assertion Annotator: given a document's
// text and a character span within it, decides whether the span is
// negated, hypothetical, or historical by scanning a bounded window of
// surrounding text for French clinical cues.
package negation

import "regexp"

const windowSize = 60

// sentenceBoundary finds `.!?;` followed by whitespace, used to clip the
// scan window so cues from an adjacent sentence never leak in (spec §4.1).
var sentenceBoundary = regexp.MustCompile(`[.!?;]\s`)

var negationCues = regexp.MustCompile(`(?i)\b(pas d'|absence d'|(?:pas de|absence de|sans|aucune?|ni|non|ne\s+\w+\s+pas|n['e]gative?)\b)`)

var hypothesisCues = regexp.MustCompile(`(?i)\b(possiblement|possible|probablement|probable|suspect[ée]e?|suspicion|[àa]\s+confirmer|[àa]\s+confronter|[àa]\s+corr[ée]ler|[ée]ventuellement|[ée]ventuelle?(?:s)?|hypoth[èe]se)\b`)

var historyCues = regexp.MustCompile(`(?i)\b(ant[ée]c[ée]dents?|histoire de|historiquement|ancienn?e?ment|pr[ée]c[ée]demment|ant[ée]rieurement|en\s+(19|20)\d{2})\b`)

// Annotation is the outcome of annotating a single span.
type Annotation struct {
	Negated      bool
	Hypothesis   bool
	Historical   bool
}

// windowBefore returns up to windowSize characters before start, clipped at
// the nearest preceding sentence boundary.
func windowBefore(text string, start int) string {
	lo := start - windowSize
	if lo < 0 {
		lo = 0
	}
	segment := text[lo:start]
	if loc := lastSentenceBoundary(segment); loc >= 0 {
		segment = segment[loc:]
	}
	return segment
}

// windowAfter returns up to windowSize characters after end, clipped at the
// nearest following sentence boundary.
func windowAfter(text string, end int) string {
	hi := end + windowSize
	if hi > len(text) {
		hi = len(text)
	}
	segment := text[end:hi]
	if loc := sentenceBoundary.FindStringIndex(segment); loc != nil {
		segment = segment[:loc[0]+1]
	}
	return segment
}

func lastSentenceBoundary(segment string) int {
	matches := sentenceBoundary.FindAllStringIndex(segment, -1)
	if len(matches) == 0 {
		return -1
	}
	last := matches[len(matches)-1]
	return last[1]
}

// Annotate examines the window around [start,end) in text and returns
// whether it is negated, hypothetical, or historical. The annotator is
// stateless: the same (text, start, end) always yields the same result.
func Annotate(text string, start, end int) Annotation {
	before := windowBefore(text, start)
	after := windowAfter(text, end)
	around := before + after

	return Annotation{
		Negated:    negationCues.MatchString(before),
		Hypothesis: hypothesisCues.MatchString(around),
		Historical: historyCues.MatchString(around),
	}
}

// IsNegated is a convenience used by binary Tier 1 extractors (spec §4.4):
// they only need the negated/not-negated decision to pick "oui" vs "non".
func IsNegated(text string, start, end int) bool {
	return negationCues.MatchString(windowBefore(text, start))
}
