// Package validate implements the Source-span Validator and the
// Vocabulary Validator (spec §4.6, §4.7): the two passes that run after
// extraction and before an ExtractionResult is considered final.
package validate

import (
	"strings"

	"brightextract/pkg/core/model"
)

const defaultFuzzySpanThreshold = 0.8

func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.ToLower(strings.Join(fields, " "))
}

// fuzzyWordScore is the fraction of span's words that appear anywhere in
// the normalized document text (spec §4.6).
func fuzzyWordScore(span, normalizedText string) float64 {
	words := strings.Fields(normalizeWhitespace(span))
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range words {
		if strings.Contains(normalizedText, w) {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}

// ValidateSpans checks every value's source_span against the document text
// and sets SpanValid/Flagged accordingly. threshold is the configured fuzzy
// match acceptance floor (default 0.8).
func ValidateSpans(text string, values map[string]model.ExtractionValue, threshold float64) {
	if threshold <= 0 {
		threshold = defaultFuzzySpanThreshold
	}
	normalizedText := normalizeWhitespace(text)

	for field, v := range values {
		span := strings.TrimSpace(v.SourceSpan)

		if v.Tier == model.TierLLM && span == "" {
			v.SpanValid = false
			v.Flagged = true
			values[field] = v
			continue
		}
		if span == "" {
			// rule-tier with no span: the regex match already guarantees
			// presence, so this is not flagged (spec §4.6).
			v.SpanValid = true
			values[field] = v
			continue
		}

		if strings.Contains(normalizedText, normalizeWhitespace(span)) {
			v.SpanValid = true
			values[field] = v
			continue
		}

		if fuzzyWordScore(span, normalizedText) >= threshold {
			v.SpanValid = true
			values[field] = v
			continue
		}

		v.SpanValid = false
		v.Flagged = true
		values[field] = v
	}
}
