// Package classifier implements the Document Classifier: assigns one of the
// five document types to a report using weighted keyword scoring, with an
// optional LLM tie-break when the keyword scores are ambiguous.
package classifier

import (
	"context"
	"strings"

	"brightextract/pkg/core/llm"
	"brightextract/pkg/core/schema"
)

// keywordSet is the strong/moderate keyword list for one document type.
type keywordSet struct {
	docType  schema.DocumentType
	strong   []string
	moderate []string
}

const (
	strongWeight   = 3
	moderateWeight = 1
)

var keywordSets = []keywordSet{
	{
		docType: schema.DocAnapath,
		strong:  []string{"anatomopathologie", "anatomo-pathologie", "compte rendu anatomopathologique", "examen histologique"},
		moderate: []string{
			"macroscopie", "microscopie", "immunohistochimie", "biopsie", "exerese", "piece operatoire",
		},
	},
	{
		docType:  schema.DocMolecularReport,
		strong:   []string{"biologie moleculaire", "analyse moleculaire", "sequencage"},
		moderate: []string{"mutation", "mgmt", "idh1", "idh2", "codeletion", "fish", "ngs"},
	},
	{
		docType:  schema.DocConsultation,
		strong:   []string{"compte rendu de consultation", "consultation de neuro-oncologie", "consultation d'oncologie"},
		moderate: []string{"examen clinique", "karnofsky", "motif de consultation", "suivi"},
	},
	{
		docType:  schema.DocRCP,
		strong:   []string{"reunion de concertation pluridisciplinaire", "rcp neuro-oncologie", "staff rcp"},
		moderate: []string{"concertation", "proposition therapeutique", "dossier presente en rcp"},
	},
	{
		docType:  schema.DocRadiology,
		strong:   []string{"compte rendu d'irm", "compte rendu de scanner", "compte rendu radiologique"},
		moderate: []string{"irm cerebrale", "scanner cerebral", "sequences", "gadolinium", "rehaussement"},
	},
}

// Result is the classifier's decision for one document.
type Result struct {
	DocType    schema.DocumentType
	Confidence float64
	Ambiguous  bool
}

const ambiguityThreshold = 2

// Classify scores text against the five document types. llmClient may be
// nil, in which case ambiguous results are returned as-is (spec §4.3).
func Classify(ctx context.Context, text string, llmClient llm.Provider) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{DocType: schema.DocConsultation, Confidence: 0, Ambiguous: true}
	}

	lower := strings.ToLower(trimmed)
	scores := make(map[schema.DocumentType]int, len(keywordSets))
	for _, ks := range keywordSets {
		score := 0
		for _, kw := range ks.strong {
			if strings.Contains(lower, kw) {
				score += strongWeight
			}
		}
		for _, kw := range ks.moderate {
			if strings.Contains(lower, kw) {
				score += moderateWeight
			}
		}
		scores[ks.docType] = score
	}

	top, _, topScore, secondScore := rank(scores)
	ambiguous := topScore == 0 || (topScore-secondScore) <= ambiguityThreshold
	confidence := confidenceOf(topScore, secondScore)

	result := Result{DocType: top, Confidence: confidence, Ambiguous: ambiguous}

	if ambiguous && llmClient != nil {
		if tieBroken, ok := tieBreak(ctx, trimmed, llmClient); ok {
			if tieBroken == top {
				result.Confidence = clamp(result.Confidence + 0.3)
			} else {
				result.DocType = tieBroken
				result.Confidence = 0.5
			}
		}
	}

	return result
}

func rank(scores map[schema.DocumentType]int) (top, second schema.DocumentType, topScore, secondScore int) {
	topScore, secondScore = -1, -1
	for _, dt := range schema.AllDocumentTypes {
		s := scores[dt]
		if s > topScore {
			second, secondScore = top, topScore
			top, topScore = dt, s
		} else if s > secondScore {
			second, secondScore = dt, s
		}
	}
	return
}

func confidenceOf(top, second int) float64 {
	denom := top
	if denom < 1 {
		denom = 1
	}
	c := float64(top-second) / float64(denom)
	return clamp(c)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// buildExcerpt returns the first maxChars bytes of text (the whole text when
// it is shorter); it does not select the preamble or any particular section.
func buildExcerpt(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}

const llmExcerptChars = 2000

const classifyPromptFr = `Tu es un assistant medical. Lis l'extrait de document suivant et reponds par un seul mot parmi: anapath, molecular_report, consultation, rcp, radiology. Ne donne aucune explication.

Extrait:
%s`

func tieBreak(ctx context.Context, text string, client llm.Provider) (schema.DocumentType, bool) {
	excerpt := buildExcerpt(text, llmExcerptChars)
	prompt := sprintfClassify(excerpt)
	resp, err := client.GenerateResponse(ctx, prompt, "", map[string]interface{}{"temperature": 0.0})
	if err != nil || strings.TrimSpace(resp) == "" {
		return "", false
	}
	lower := strings.ToLower(resp)
	for _, dt := range schema.AllDocumentTypes {
		if strings.Contains(lower, string(dt)) {
			return dt, true
		}
	}
	return "", false
}

func sprintfClassify(excerpt string) string {
	return strings.Replace(classifyPromptFr, "%s", excerpt, 1)
}
