package llmextract

import (
	"fmt"

	"brightextract/pkg/core/utils"
)

// groupResponse mirrors the JSON Schema's shape: a typed value per field
// plus a parallel source-span citation (spec §6).
type groupResponse struct {
	Values map[string]interface{} `json:"values"`
	Source map[string]string      `json:"_source"`
}

// parseResponse runs the same multi-tier parse strategy the teacher's
// utils.SmartParse uses for malformed LLM output: strict JSON, then
// json-repair, then hjson, before giving up (spec §4.5 step 4).
func parseResponse(raw string) (*groupResponse, error) {
	cleaned := utils.CleanMarkdown(raw)

	var resp groupResponse
	if _, err := utils.SmartParse(cleaned, &resp); err != nil {
		return nil, fmt.Errorf("unparseable llm response: %w", err)
	}
	if resp.Values == nil {
		resp.Values = map[string]interface{}{}
	}
	if resp.Source == nil {
		resp.Source = map[string]string{}
	}
	return &resp, nil
}
