package llmextract

import (
	"context"
	"fmt"

	"brightextract/pkg/core/llm"
	"brightextract/pkg/core/model"
	"brightextract/pkg/core/prompt"
	"brightextract/pkg/core/schema"
	"brightextract/pkg/core/vocab"
)

const (
	defaultMaxSectionChars = 4000
	llmConfidence          = 0.7
	truncationMarker       = "\n[...texte tronque...]"
)

// Config carries the small set of Tier 2 knobs the pipeline exposes
// (spec §6).
type Config struct {
	MaxSectionChars int
}

func (c Config) maxChars() int {
	if c.MaxSectionChars > 0 {
		return c.MaxSectionChars
	}
	return defaultMaxSectionChars
}

// Run extracts every field in gaps using provider, bucketed by feature
// group (spec §4.5). sections maps canonical section name to body text, as
// produced by the section detector; fullText is the whole document, used
// as a last-resort section choice. Returns one ExtractionValue per field
// the LLM filled; callers merge these only into fields still missing after
// Tier 1 (tier precedence, spec §8 law).
func Run(ctx context.Context, provider llm.Provider, sections map[schema.SectionName]string, fullText string, gaps map[string]bool, cfg Config) (map[string]model.ExtractionValue, []string) {
	var log []string
	results := make(map[string]model.ExtractionValue)

	groups := groupGaps(gaps)
	for _, group := range schema.AllGroups {
		fields := groups[group]
		if len(fields) == 0 {
			continue
		}

		sectionName, sectionText := selectSection(group, sections, fullText)
		sectionText = truncate(sectionText, cfg.maxChars())

		values, err := runGroup(ctx, provider, group, fields, sectionText)
		if err != nil {
			log = append(log, fmt.Sprintf("llm extraction failed for group %s: %v", group, err))
			continue
		}

		for field, v := range values {
			v.Tier = model.TierLLM
			results[field] = v
		}
		log = append(log, fmt.Sprintf("llm extraction for group %s (%d fields) from section %s", group, len(fields), sectionName))
	}

	return results, log
}

func groupGaps(gaps map[string]bool) map[schema.FeatureGroup][]schema.Field {
	out := make(map[schema.FeatureGroup][]schema.Field)
	for name := range gaps {
		f, err := schema.GetField(name)
		if err != nil {
			continue
		}
		out[f.Group] = append(out[f.Group], f)
	}
	return out
}

// selectSection prefers a section whose canonical name routes to this
// group, else full_text, else the whole document (spec §4.5 step 1).
func selectSection(group schema.FeatureGroup, sections map[schema.SectionName]string, fullText string) (schema.SectionName, string) {
	for name, body := range sections {
		for _, g := range schema.GroupsForSection(name) {
			if g == group && name != schema.SectionFullText {
				return name, body
			}
		}
	}
	if body, ok := sections[schema.SectionFullText]; ok {
		return schema.SectionFullText, body
	}
	return schema.SectionFullText, fullText
}

func truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + truncationMarker
}

func runGroup(ctx context.Context, provider llm.Provider, group schema.FeatureGroup, fields []schema.Field, sectionText string) (map[string]model.ExtractionValue, error) {
	systemPrompt, err := prompt.GetGroupPrompt(string(group))
	if err != nil {
		return nil, fmt.Errorf("load prompt for group %s: %w", group, err)
	}

	userPrompt := renderUserPrompt(sectionText)
	schemaJSON := jsonSchemaFor(fields)

	raw, err := provider.GenerateResponse(ctx, userPrompt, systemPrompt, map[string]interface{}{
		"temperature": 0.0,
		"format":      string(schemaJSON),
	})
	if err != nil {
		return nil, err
	}

	parsed, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	out := make(map[string]model.ExtractionValue)
	for _, f := range fields {
		raw, present := parsed.Values[f.Name]
		if !present || raw == nil {
			continue
		}
		value := coerce(f, raw)
		if value == "" {
			continue
		}
		out[f.Name] = model.ExtractionValue{
			Field:      f.Name,
			Value:      value,
			Confidence: llmConfidence,
			SourceSpan: parsed.Source[f.Name],
		}
	}
	return out, nil
}

func renderUserPrompt(sectionText string) string {
	return "Texte source:\n" + sectionText
}

func coerce(f schema.Field, raw interface{}) string {
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case bool:
		if v {
			s = "oui"
		} else {
			s = "non"
		}
	case float64:
		if f.Type == schema.TypeInteger {
			return fmt.Sprintf("%d", int(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}

	normalized, isNull := vocab.Normalize(s)
	if isNull {
		return ""
	}
	return normalized
}
