package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaProvider talks to a local LLM runtime over the wire protocol in
// spec §6: POST /api/chat for generation, GET /api/tags for readiness. It
// is the default Tier 2 backend; GeminiProvider is kept as a hosted
// alternative behind the same Provider interface.
type OllamaProvider struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	HTTPClient *http.Client
}

// NewOllamaProvider builds a provider with the spec's documented defaults
// (600s timeout, 2 retries beyond the first attempt).
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:    baseURL,
		Model:      model,
		Timeout:    600 * time.Second,
		MaxRetries: 2,
		RetryDelay: 2 * time.Second,
		HTTPClient: &http.Client{},
	}
}

type chatRequest struct {
	Model    string                 `json:"model"`
	Messages []Message              `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options,omitempty"`
	Format   json.RawMessage        `json:"format,omitempty"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Model          string `json:"model"`
	TotalDuration  int64  `json:"total_duration"`
	PromptEvalCnt  int    `json:"prompt_eval_count"`
	EvalCount      int    `json:"eval_count"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// GenerateResponse issues one blocking /api/chat call with retry on
// retryable failures. options may carry "temperature" (float64) and
// "format" (a pre-built JSON Schema as json.RawMessage or string) for
// Tier 2's structured-output request.
func (p *OllamaProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	temperature := 0.0
	if v, ok := options["temperature"].(float64); ok {
		temperature = v
	}

	req := chatRequest{
		Model: p.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream:  false,
		Options: map[string]interface{}{"temperature": temperature},
	}
	if raw, ok := options["format"].(json.RawMessage); ok {
		req.Format = raw
	} else if s, ok := options["format"].(string); ok && s != "" {
		req.Format = json.RawMessage(s)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &Error{Kind: KindUnparseable, Message: "ollama: marshal request", Cause: err}
	}

	var lastErr error
	attempts := p.MaxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(p.RetryDelay):
			case <-ctx.Done():
				return "", &Error{Kind: KindTimeout, Message: "ollama: context cancelled during retry delay", Cause: ctx.Err()}
			}
		}

		content, err := p.doChat(ctx, body)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if llmErr, ok := err.(*Error); ok && !llmErr.Retryable() {
			return "", llmErr
		}
	}
	return "", lastErr
}

func (p *OllamaProvider) doChat(ctx context.Context, body []byte) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, p.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindConnectionFailure, Message: "ollama: build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := p.HTTPClient.Do(httpReq)
	if err != nil {
		if callCtx.Err() != nil {
			return "", &Error{Kind: KindTimeout, Message: "ollama: request timed out", Cause: err}
		}
		return "", &Error{Kind: KindConnectionFailure, Message: "ollama: connection failed", Cause: err}
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &Error{Kind: KindHTTPError, Message: "ollama: read response body", Cause: err}
	}

	if res.StatusCode == http.StatusNotFound {
		return "", &Error{Kind: KindModelNotFound, Message: fmt.Sprintf("ollama: model %q not found", p.Model)}
	}
	if res.StatusCode != http.StatusOK {
		return "", &Error{Kind: KindHTTPError, Message: fmt.Sprintf("ollama: status %d", res.StatusCode), Cause: fmt.Errorf("%s", string(respBody))}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &Error{Kind: KindUnparseable, Message: "ollama: unmarshal response", Cause: err}
	}
	return parsed.Message.Content, nil
}

// EnsureReady polls /api/tags and reports whether the configured model is
// present. This is best-effort: a failure here degrades the pipeline to
// Tier 1 only rather than being treated as fatal (spec §5).
func (p *OllamaProvider) EnsureReady(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, p.BaseURL+"/api/tags", nil)
	if err != nil {
		return &Error{Kind: KindConnectionFailure, Message: "ollama: build readiness request", Cause: err}
	}

	res, err := p.HTTPClient.Do(req)
	if err != nil {
		return &Error{Kind: KindConnectionFailure, Message: "ollama: readiness probe failed", Cause: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &Error{Kind: KindHTTPError, Message: "ollama: read readiness body", Cause: err}
	}

	var parsed tagsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &Error{Kind: KindUnparseable, Message: "ollama: unmarshal readiness body", Cause: err}
	}

	for _, m := range parsed.Models {
		if m.Name == p.Model {
			return nil
		}
	}
	return &Error{Kind: KindModelNotFound, Message: fmt.Sprintf("ollama: model %q not in /api/tags", p.Model)}
}

func (p *OllamaProvider) AdaptInstructions(raw string) string {
	return raw
}
