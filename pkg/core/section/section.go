// Package section implements the Section Detector: splitting raw document
// text into a map of canonical section name to section body.
package section

import (
	"regexp"
	"sort"
	"strings"

	"brightextract/pkg/core/schema"
)

const minBodyLen = 10

// headerPattern pairs a strict (own-line) pattern with a lenient
// (line-start) pattern for one canonical section name.
type headerPattern struct {
	name    schema.SectionName
	strict  *regexp.Regexp
	lenient *regexp.Regexp
}

// ownLine builds the strict pattern: the header alone on its line,
// optionally followed by a light punctuation mark.
func ownLine(words string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*(?:` + words + `)\s*[:.\-—–]?\s*$`)
}

// lineStart builds the lenient pattern: the header at the start of a line,
// trailing content on the same line allowed.
func lineStart(words string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*(?:` + words + `)\b`)
}

var patterns = []headerPattern{
	{schema.SectionIHC, ownLine(`immunohistochimie|ihc`), lineStart(`immunohistochimie|ihc`)},
	{schema.SectionMolecular, ownLine(`biologie mol[ée]culaire|analyse mol[ée]culaire|mol[ée]culaire`), lineStart(`biologie mol[ée]culaire|analyse mol[ée]culaire|mol[ée]culaire`)},
	{schema.SectionChromosomal, ownLine(`analyse chromosomique|cytog[ée]n[ée]tique|fish`), lineStart(`analyse chromosomique|cytog[ée]n[ée]tique|fish`)},
	{schema.SectionMacroscopy, ownLine(`macroscopie|examen macroscopique`), lineStart(`macroscopie|examen macroscopique`)},
	{schema.SectionMicroscopy, ownLine(`microscopie|examen microscopique|description microscopique`), lineStart(`microscopie|examen microscopique|description microscopique`)},
	{schema.SectionConclusion, ownLine(`conclusion|synth[èe]se|diagnostic final`), lineStart(`conclusion|synth[èe]se|diagnostic final`)},
	{schema.SectionHistory, ownLine(`ant[ée]c[ée]dents?|histoire de la maladie`), lineStart(`ant[ée]c[ée]dents?|histoire de la maladie`)},
	{schema.SectionTreatment, ownLine(`traitements?|prise en charge th[ée]rapeutique`), lineStart(`traitements?|prise en charge th[ée]rapeutique`)},
	{schema.SectionClinicalExam, ownLine(`examen clinique|examen neurologique`), lineStart(`examen clinique|examen neurologique`)},
	{schema.SectionRadiology, ownLine(`imagerie|irm|scanner|radiologie`), lineStart(`imagerie|irm|scanner|radiologie`)},
}

type headerMatch struct {
	name  schema.SectionName
	start int // index of the header line start
	end   int // index just past the header line (where the body begins)
}

// Span is a detected section's body together with its character offsets in
// the original document text, so downstream extractors can report
// document-level source spans (spec §4.6's verbatim-match invariant).
type Span struct {
	Name  schema.SectionName
	Body  string
	Start int // offset of Body[0] in the original text
	End   int // offset just past Body in the original text
}

// DetectSpans splits text into named sections and returns each section's
// offsets into the original text (spec §4.2).
func DetectSpans(text string) []Span {
	matches := findHeaders(text)
	if len(matches) == 0 {
		return []Span{{Name: schema.SectionFullText, Body: text, Start: 0, End: len(text)}}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var kept []headerMatch
	seen := make(map[schema.SectionName]bool)
	for _, m := range matches {
		if seen[m.name] {
			continue
		}
		seen[m.name] = true
		kept = append(kept, m)
	}

	var spans []Span
	if kept[0].start > 0 {
		preamble := strings.TrimSpace(text[:kept[0].start])
		if preamble != "" {
			start := strings.Index(text[:kept[0].start], preamble)
			spans = append(spans, Span{schema.SectionPreamble, preamble, start, start + len(preamble)})
		}
	}

	for _, m := range kept {
		bodyEnd := len(text)
		for _, next := range matches {
			if next.start > m.start {
				bodyEnd = next.start
				break
			}
		}
		raw := text[m.end:bodyEnd]
		body := strings.TrimSpace(raw)
		if len(body) < minBodyLen {
			continue
		}
		offset := strings.Index(raw, body)
		start := m.end + offset
		spans = append(spans, Span{m.name, body, start, start + len(body)})
	}

	if len(spans) == 0 {
		return []Span{{Name: schema.SectionFullText, Body: text, Start: 0, End: len(text)}}
	}
	if len(spans) == 1 && spans[0].Name == schema.SectionPreamble {
		return []Span{{Name: schema.SectionFullText, Body: text, Start: 0, End: len(text)}}
	}
	return spans
}

// Detect splits text into named sections (spec §4.2), discarding offsets.
func Detect(text string) map[schema.SectionName]string {
	spans := DetectSpans(text)
	out := make(map[schema.SectionName]string, len(spans))
	for _, s := range spans {
		out[s.Name] = s.Body
	}
	return out
}

func findHeaders(text string) []headerMatch {
	var strictMatches []headerMatch
	for _, p := range patterns {
		for _, loc := range p.strict.FindAllStringIndex(text, -1) {
			strictMatches = append(strictMatches, headerMatch{p.name, loc[0], loc[1]})
		}
	}
	if len(strictMatches) > 0 {
		return strictMatches
	}

	var lenientMatches []headerMatch
	for _, p := range patterns {
		for _, loc := range p.lenient.FindAllStringIndex(text, -1) {
			lineEnd := strings.IndexByte(text[loc[0]:], '\n')
			end := loc[1]
			if lineEnd >= 0 {
				end = loc[0] + lineEnd
			} else {
				end = len(text)
			}
			lenientMatches = append(lenientMatches, headerMatch{p.name, loc[0], end})
		}
	}
	return lenientMatches
}
