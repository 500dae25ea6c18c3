// Package llmextract implements the LLM Extractor (Tier 2): for every
// feature group with fields Tier 1 didn't fill, it issues a schema-
// constrained JSON request to the configured LLM provider and parses cited
// source spans (spec §4.5).
package llmextract

import (
	"encoding/json"

	"brightextract/pkg/core/schema"
)

// jsonSchemaFor derives the JSON Schema (spec §6) constraining the LLM's
// structured output for one feature group's fields: a "values" object typed
// per field declaration and a parallel nullable-string "_source" object
// citing evidence for each.
func jsonSchemaFor(fields []schema.Field) json.RawMessage {
	valueProps := make(map[string]interface{}, len(fields))
	sourceProps := make(map[string]interface{}, len(fields))
	required := make([]string, 0, len(fields))

	for _, f := range fields {
		valueProps[f.Name] = valueSchemaFor(f)
		sourceProps[f.Name] = map[string]interface{}{"type": []string{"string", "null"}}
		required = append(required, f.Name)
	}

	doc := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"values": map[string]interface{}{
				"type":       "object",
				"properties": valueProps,
				"required":   required,
			},
			"_source": map[string]interface{}{
				"type":       "object",
				"properties": sourceProps,
			},
		},
		"required": []string{"values", "_source"},
	}

	raw, _ := json.Marshal(doc)
	return raw
}

func valueSchemaFor(f schema.Field) map[string]interface{} {
	switch f.Type {
	case schema.TypeCategorical:
		enum := make([]interface{}, 0, len(f.Allowed)+1)
		for _, a := range f.Allowed {
			enum = append(enum, a)
		}
		enum = append(enum, nil)
		return map[string]interface{}{"enum": enum}
	case schema.TypeInteger:
		return map[string]interface{}{"type": []string{"integer", "null"}}
	case schema.TypeFloat:
		return map[string]interface{}{"type": []string{"number", "null"}}
	default:
		return map[string]interface{}{"type": []string{"string", "null"}}
	}
}
