package llm

import "context"

// Provider is implemented by every LLM backend the extractor can call: the
// local Ollama-style runtime (default) and Gemini, kept in this package as
// a hosted alternative for callers without a local runtime.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	AdaptInstructions(rawInstructions string) string
}

// Message is a single chat turn, shared by the providers that speak an
// OpenAI-shaped or Ollama-shaped chat API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrorKind classifies an LLM call failure for retry/degrade decisions
// (spec §5, §7).
type ErrorKind string

const (
	KindConnectionFailure ErrorKind = "connection_failure"
	KindTimeout           ErrorKind = "timeout"
	KindHTTPError         ErrorKind = "http_error"
	KindModelNotFound     ErrorKind = "model_not_found"
	KindUnparseable       ErrorKind = "response_unparseable"
)

// Error is the typed error returned by every Provider implementation in
// this package. Callers branch on Kind/Retryable rather than string
// matching, mirroring how the pipeline degrades per group on LLM failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Retryable reports whether the caller should retry the call. Model-not-found
// and unparseable responses are not retryable: a different attempt with the
// same model and the same malformed output would not fix either.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindConnectionFailure, KindTimeout, KindHTTPError:
		return true
	default:
		return false
	}
}
