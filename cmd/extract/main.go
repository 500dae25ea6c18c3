// Command extract is a thin operational driver around the extraction
// pipeline: it reads a directory of pseudonymized .txt reports (or a JSON
// batch manifest), runs extraction, row duplication, and temporal
// aggregation per patient, and prints the resulting timeline as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"brightextract/pkg/core/aggregate"
	"brightextract/pkg/core/llm"
	"brightextract/pkg/core/model"
	"brightextract/pkg/core/pipeline"
	"brightextract/pkg/core/prompt"
	"brightextract/pkg/core/rowdup"
)

// manifestEntry is one record in an optional JSON batch manifest, an
// alternative to a plain directory of .txt files.
type manifestEntry struct {
	DocumentID   string `json:"document_id"`
	PatientID    string `json:"patient_id"`
	Text         string `json:"text"`
	DocumentDate string `json:"document_date"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	if len(os.Args) < 2 {
		log.Fatal("usage: extract <directory-or-manifest.json> [output.json]")
	}
	inputPath := os.Args[1]

	if err := prompt.LoadFromDirectory("pkg/core/prompt"); err != nil {
		log.Printf("Warning: prompt templates not loaded: %v", err)
	}

	cfg := configFromEnv()
	provider := providerFromConfig(cfg)
	orch := pipeline.NewOrchestrator(cfg, provider)

	docs, err := loadDocuments(inputPath)
	if err != nil {
		log.Fatalf("Error: failed to load documents from %s: %v", inputPath, err)
	}
	fmt.Printf("Loaded %d document(s) from %s\n", len(docs), inputPath)

	results := orch.ExtractBatch(context.Background(), docs)
	for _, r := range results {
		if len(r.Errors) > 0 {
			fmt.Printf("Document %s failed: %v\n", r.DocumentID, r.Errors)
		}
	}

	duplicated := rowdup.RunAll(results)
	fmt.Printf("Extracted %d document(s), %d row(s) after duplication\n", len(results), len(duplicated))

	timeline := timelinePerPatient(duplicated)

	out := os.Stdout
	if len(os.Args) >= 3 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			log.Fatalf("Error: failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(timeline); err != nil {
		log.Fatalf("Error: failed to encode timeline: %v", err)
	}
}

// timelinePerPatient groups row-duplicated results by patient and runs the
// Temporal Aggregator independently for each (spec §4.10 is per-patient).
func timelinePerPatient(results []*model.ExtractionResult) map[string][]map[string]string {
	byPatient := make(map[string][]*model.ExtractionResult)
	for _, r := range results {
		byPatient[r.PatientID] = append(byPatient[r.PatientID], r)
	}

	patients := make([]string, 0, len(byPatient))
	for p := range byPatient {
		patients = append(patients, p)
	}
	sort.Strings(patients)

	out := make(map[string][]map[string]string, len(patients))
	for _, p := range patients {
		rows := aggregate.Run(byPatient[p])
		cols := aggregate.Columns()
		rendered := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			rowMap := make(map[string]string, len(cols))
			for _, c := range cols {
				rowMap[c] = row.Values[c]
			}
			rendered = append(rendered, rowMap)
		}
		out[p] = rendered
	}
	return out
}

// loadDocuments accepts either a directory of .txt files (one document per
// file, patient/document IDs derived from the filename) or a single JSON
// manifest file.
func loadDocuments(path string) ([]model.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return loadManifest(path)
	}
	return loadDirectory(path)
}

func loadManifest(path string) ([]model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []manifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	docs := make([]model.Document, len(entries))
	for i, e := range entries {
		docs[i] = model.Document{
			DocumentID:   e.DocumentID,
			PatientID:    e.PatientID,
			Text:         e.Text,
			DocumentDate: e.DocumentDate,
		}
	}
	return docs, nil
}

// loadDirectory expects files named <patient_id>__<document_id>.txt; a
// filename without the "__" separator is treated as a single-document
// patient with the filename stem as patient ID.
func loadDirectory(dir string) ([]model.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var docs []model.Document
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		stem := strings.TrimSuffix(e.Name(), ".txt")
		patientID, documentID := stem, ""
		if idx := strings.Index(stem, "__"); idx >= 0 {
			patientID, documentID = stem[:idx], stem[idx+2:]
		}
		docs = append(docs, model.Document{
			DocumentID: documentID,
			PatientID:  patientID,
			Text:       string(data),
		})
	}
	return docs, nil
}

func configFromEnv() pipeline.Config {
	cfg := pipeline.NewConfig()
	cfg.UseLLM = envBool("BRIGHT_USE_LLM", cfg.UseLLM)
	cfg.UseNegation = envBool("BRIGHT_USE_NEGATION", cfg.UseNegation)
	cfg.LLMProvider = envString("BRIGHT_LLM_PROVIDER", cfg.LLMProvider)
	cfg.OllamaModel = envString("BRIGHT_OLLAMA_MODEL", cfg.OllamaModel)
	cfg.OllamaBaseURL = envString("BRIGHT_OLLAMA_BASE_URL", cfg.OllamaBaseURL)
	cfg.OllamaTimeoutS = envInt("BRIGHT_OLLAMA_TIMEOUT_S", cfg.OllamaTimeoutS)
	cfg.OllamaMaxRetries = envInt("BRIGHT_OLLAMA_MAX_RETRIES", cfg.OllamaMaxRetries)
	cfg.OllamaRetryDelayS = envInt("BRIGHT_OLLAMA_RETRY_DELAY_S", cfg.OllamaRetryDelayS)
	cfg.GeminiModel = envString("BRIGHT_GEMINI_MODEL", cfg.GeminiModel)
	cfg.AmbiguityThreshold = envInt("BRIGHT_AMBIGUITY_THRESHOLD", cfg.AmbiguityThreshold)
	cfg.MaxSectionChars = envInt("BRIGHT_MAX_SECTION_CHARS", cfg.MaxSectionChars)
	return cfg
}

func providerFromConfig(cfg pipeline.Config) llm.Provider {
	provider, err := pipeline.NewProvider(cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if provider == nil {
		return nil
	}
	if ollama, ok := provider.(*llm.OllamaProvider); ok {
		if err := ollama.EnsureReady(context.Background()); err != nil {
			log.Printf("Warning: Ollama runtime not ready (%v); tier 2 extraction may fail and degrade to tier 1 only.", err)
		}
	}
	return provider
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
