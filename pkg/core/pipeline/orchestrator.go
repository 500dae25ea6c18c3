// Package pipeline wires the classifier, section detector, rule extractor,
// LLM extractor, and validators into the single public operation the rest
// of the system calls: extract_document (spec §4.8).
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brightextract/pkg/core/classifier"
	"brightextract/pkg/core/llm"
	"brightextract/pkg/core/llmextract"
	"brightextract/pkg/core/model"
	"brightextract/pkg/core/ruleextract"
	"brightextract/pkg/core/schema"
	"brightextract/pkg/core/section"
	"brightextract/pkg/core/validate"
)

// Config carries the constructor-time options the pipeline recognizes
// (spec §6). NewConfig returns the documented defaults; in a Config built
// any other way, only an empty LLMProvider, a zero FuzzySpanThreshold and a
// zero MaxSectionChars fall back to their defaults, and every other zero
// value is used as is.
type Config struct {
	UseLLM             bool
	UseNegation        bool
	LLMProvider        string // "ollama" (default) or "gemini"
	OllamaModel        string
	OllamaBaseURL      string
	OllamaTimeoutS     int
	OllamaMaxRetries   int
	OllamaRetryDelayS  int
	GeminiModel        string
	AmbiguityThreshold int // not read by the pipeline: classifier.Classify uses its own fixed threshold of 2
	FuzzySpanThreshold float64
	MaxSectionChars    int
}

// NewConfig returns the documented defaults (spec §6).
func NewConfig() Config {
	return Config{
		UseLLM:             true,
		UseNegation:        true,
		LLMProvider:        "ollama",
		OllamaModel:        "llama3",
		OllamaBaseURL:      "http://localhost:11434",
		OllamaTimeoutS:     600,
		OllamaMaxRetries:   2,
		OllamaRetryDelayS:  2,
		GeminiModel:        "gemini-2.0-flash-exp",
		AmbiguityThreshold: 2,
		FuzzySpanThreshold: 0.8,
		MaxSectionChars:    4000,
	}
}

// NewProvider builds the Tier 2 backend cfg selects. Returns nil, nil when
// UseLLM is false: the pipeline then runs Tier 1 only (spec §5 degrade
// path). An unrecognized LLMProvider value is an error, not a silent
// Ollama fallback, since a caller that misspells it wants to know.
func NewProvider(cfg Config) (llm.Provider, error) {
	if !cfg.UseLLM {
		return nil, nil
	}
	switch cfg.LLMProvider {
	case "", "ollama":
		p := llm.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel)
		p.Timeout = time.Duration(cfg.OllamaTimeoutS) * time.Second
		p.MaxRetries = cfg.OllamaMaxRetries
		p.RetryDelay = time.Duration(cfg.OllamaRetryDelayS) * time.Second
		return p, nil
	case "gemini":
		return &llm.GeminiProvider{Model: cfg.GeminiModel}, nil
	default:
		return nil, fmt.Errorf("unrecognized llm provider %q", cfg.LLMProvider)
	}
}

// dateSections is the priority order searched for a document date when the
// caller did not supply one (spec §4.8 step 9).
var dateSections = []schema.SectionName{
	schema.SectionConclusion, schema.SectionPreamble, schema.SectionHistory,
}

// Orchestrator runs the extraction pipeline for one or many documents. It
// holds no per-document mutable state, so a single instance may be shared
// across goroutines each processing a different document (spec §5);
// provider must be safe for concurrent use, which every llm.Provider in
// this module is.
type Orchestrator struct {
	cfg      Config
	provider llm.Provider
}

// NewOrchestrator builds an orchestrator. provider may be nil when
// cfg.UseLLM is false.
func NewOrchestrator(cfg Config, provider llm.Provider) *Orchestrator {
	return &Orchestrator{cfg: cfg, provider: provider}
}

// ExtractDocument runs the ten logged steps of spec §4.8 against one
// document and returns the resulting ExtractionResult. It never returns an
// error: failures are recorded in the result's Errors/Log so that batch
// processing can isolate them per document.
func (o *Orchestrator) ExtractDocument(ctx context.Context, doc model.Document) *model.ExtractionResult {
	start := time.Now()

	// Step 1: initialize.
	docID := doc.DocumentID
	if docID == "" {
		docID = uuid.NewString()
	}
	result := &model.ExtractionResult{
		DocumentID: docID,
		PatientID:  doc.PatientID,
	}
	result.Log = append(result.Log, fmt.Sprintf("initialized result for document %s", docID))

	// Step 2: classify.
	class := classifier.Classify(ctx, doc.Text, o.provider)
	result.DocType = string(class.DocType)
	result.DocTypeConf = class.Confidence
	result.DocTypeUnclear = class.Ambiguous
	result.Log = append(result.Log, fmt.Sprintf("classified as %s (confidence=%.2f, ambiguous=%v)", class.DocType, class.Confidence, class.Ambiguous))

	// Step 3: section detection.
	spans := section.DetectSpans(doc.Text)
	result.Sections = make(map[string]string, len(spans))
	var names []string
	for _, sp := range spans {
		result.Sections[string(sp.Name)] = sp.Body
		names = append(names, string(sp.Name))
	}
	result.Log = append(result.Log, fmt.Sprintf("detected sections: %v", names))

	// Step 4: candidate field list = routing(document_type) ∩
	// features-for-sections(detected sections).
	candidateFields := o.candidateFields(class.DocType, spans)
	result.Log = append(result.Log, fmt.Sprintf("candidate field list has %d fields", len(candidateFields)))

	// Step 5: Tier 1.
	ruleValues := ruleextract.Run(doc.Text, spans, candidateFields, o.cfg.UseNegation)
	result.Log = append(result.Log, fmt.Sprintf("tier 1 produced %d values", len(ruleValues)))

	// Step 6: Tier 2 for remaining gaps.
	merged := make(map[string]model.ExtractionValue, len(candidateFields))
	for field, v := range ruleValues {
		merged[field] = v
	}
	if o.cfg.UseLLM && o.provider != nil {
		gaps := make(map[string]bool)
		for field := range candidateFields {
			if _, present := merged[field]; !present {
				gaps[field] = true
			}
		}
		if len(gaps) > 0 {
			llmValues, llmLog := llmextract.Run(ctx, o.provider, result.Sections, doc.Text, gaps, llmextract.Config{MaxSectionChars: o.cfg.MaxSectionChars})
			result.Log = append(result.Log, llmLog...)
			for field, v := range llmValues {
				if _, present := merged[field]; !present {
					merged[field] = v
				}
			}
		}
	} else {
		result.Log = append(result.Log, "tier 2 skipped (use_llm=false or no provider)")
	}

	// Step 7: source-span validation.
	validate.ValidateSpans(doc.Text, merged, o.cfg.FuzzySpanThreshold)
	result.Log = append(result.Log, "source-span validation complete")

	// Step 8: vocabulary validation.
	validate.ValidateVocabulary(merged)
	result.Log = append(result.Log, "vocabulary validation complete")

	// Step 9: derive document date.
	result.DocumentDate = o.deriveDocumentDate(doc, result.Sections)
	result.Log = append(result.Log, fmt.Sprintf("document date: %q", result.DocumentDate))

	// Step 10: counts, flagged, elapsed.
	for field, v := range merged {
		v.Field = field
		switch v.Tier {
		case model.TierRule:
			result.RuleCount++
		case model.TierLLM:
			result.LLMCount++
		case model.TierManual:
			result.ManualCount++
		}
		if v.Flagged {
			result.FlaggedCount++
		}
		result.Values = append(result.Values, v)
	}
	result.ElapsedMS = time.Since(start).Milliseconds()
	result.Log = append(result.Log, fmt.Sprintf("done: rule=%d llm=%d flagged=%d elapsed_ms=%d", result.RuleCount, result.LLMCount, result.FlaggedCount, result.ElapsedMS))

	return result
}

// candidateFields builds routing(document_type) ∩ features-for-sections per
// spec §4.8 step 4.
func (o *Orchestrator) candidateFields(docType schema.DocumentType, spans []section.Span) map[string]bool {
	routed := make(map[string]bool)
	for _, f := range schema.FieldsForDocType(docType) {
		routed[f.Name] = true
	}

	fromSections := make(map[string]bool)
	for _, sp := range spans {
		for _, f := range schema.FieldsForSection(sp.Name) {
			fromSections[f.Name] = true
		}
	}

	out := make(map[string]bool)
	for name := range routed {
		if fromSections[name] {
			out[name] = true
		}
	}
	return out
}

// deriveDocumentDate implements spec §4.8 step 9: a caller override wins;
// otherwise the first date found in the designated sections, searched in
// priority order, wins; otherwise empty.
func (o *Orchestrator) deriveDocumentDate(doc model.Document, sections map[string]string) string {
	if doc.DocumentDate != "" {
		return doc.DocumentDate
	}
	for _, name := range dateSections {
		body, ok := sections[string(name)]
		if !ok {
			continue
		}
		dates := ruleextract.ExtractDates(body)
		if len(dates) > 0 {
			return dates[0].Normalized
		}
	}
	return ""
}

// ExtractBatch runs ExtractDocument over each document in order. A document
// whose processing panics is still recorded (with its Errors populated) and
// the batch continues (spec §4.8 "Batch operation"). Documents with an
// empty DocumentID default to their index in the batch, matching spec §6.
func (o *Orchestrator) ExtractBatch(ctx context.Context, docs []model.Document) []*model.ExtractionResult {
	results := make([]*model.ExtractionResult, 0, len(docs))
	for i, doc := range docs {
		if doc.DocumentID == "" {
			doc.DocumentID = fmt.Sprintf("%d", i)
		}
		result := o.runIsolated(ctx, doc)
		results = append(results, result)
	}
	return results
}

// runIsolated recovers from a panic in a single document's extraction so
// one malformed document cannot abort the batch.
func (o *Orchestrator) runIsolated(ctx context.Context, doc model.Document) (result *model.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &model.ExtractionResult{
				DocumentID: doc.DocumentID,
				PatientID:  doc.PatientID,
				Errors:     []string{fmt.Sprintf("panic during extraction: %v", r)},
			}
		}
	}()
	return o.ExtractDocument(ctx, doc)
}
