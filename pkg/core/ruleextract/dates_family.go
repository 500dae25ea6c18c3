package ruleextract

// extractDates wraps ExtractDates as a family function: date candidates
// carry no field yet (dates.Field == ""); Run assigns them positionally to
// unfilled date fields (spec §4.4, §9 open question 4).
func extractDates(body string, offset int) []candidate {
	matches := ExtractDates(body)
	out := make([]candidate, 0, len(matches))
	for _, m := range matches {
		out = append(out, candidate{
			Value:      m.Normalized,
			RawSpan:    m.RawSpan,
			Start:      offset + m.Start,
			End:        offset + m.End,
			Confidence: 0.85,
		})
	}
	return out
}
