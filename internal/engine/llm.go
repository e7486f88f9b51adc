package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/jonathan/jobfit/internal/analyzer"
	"github.com/jonathan/jobfit/internal/llm"
	"github.com/jonathan/jobfit/internal/prompts"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
)

// defaultCallTimeout bounds a single model call. Failures inside the window
// fall back to the rule-based engine; there are no retries.
const defaultCallTimeout = 30 * time.Second

// LLMEngine asks a model for the same JobAnalysis shape the rule-based
// analyzer produces, validates the response against the embedded JSON
// Schema, and falls back to the rules on any failure. Callers never see
// model or transport errors from Analyze and Score.
type LLMEngine struct {
	client   llm.Client
	fallback *Deterministic
	timeout  time.Duration
}

// NewLLMEngine builds an engine backed by the default Gemini client.
func NewLLMEngine(ctx context.Context, apiKey string) (*LLMEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for the llm engine")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return NewLLMEngineWithClient(client), nil
}

// NewLLMEngineWithClient wires an existing client. The caller keeps ownership
// of the client lifecycle only if it skips Close on the engine.
func NewLLMEngineWithClient(client llm.Client) *LLMEngine {
	return &LLMEngine{
		client:   client,
		fallback: NewDeterministic(),
		timeout:  defaultCallTimeout,
	}
}

// Close releases the underlying model client.
func (e *LLMEngine) Close() error {
	return e.client.Close()
}

func (e *LLMEngine) Analyze(ctx context.Context, jobText string) (*types.JobAnalysis, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &analyzer.InvalidInputError{Message: "job description cannot be empty"}
	}

	analysis, err := e.analyzeWithModel(ctx, jobText)
	if err != nil {
		log.Printf("llm analysis failed, falling back to rule-based: %v", err)
		return e.fallback.Analyze(ctx, jobText)
	}

	return analysis, nil
}

func (e *LLMEngine) analyzeWithModel(ctx context.Context, jobText string) (*types.JobAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := llm.BuildExtractionPrompt(llm.JobAnalysisSchema(), jobText)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	cleaned := llm.CleanJSONBlock(responseText)
	if err := schemas.Validate(schemas.JobAnalysisSchema, cleaned); err != nil {
		return nil, fmt.Errorf("analysis response rejected by schema: %w", err)
	}

	var analysis types.JobAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	normalizeAnalysis(&analysis)
	return &analysis, nil
}

// normalizeAnalysis applies the same hygiene the rule-based analyzer
// guarantees by construction: lowercased deduplicated skills and keywords,
// a known experience level, and at most the standard keyword count.
func normalizeAnalysis(analysis *types.JobAnalysis) {
	analysis.Skills.Technical = normalizeTerms(analysis.Skills.Technical)
	analysis.Skills.Soft = normalizeTerms(analysis.Skills.Soft)
	analysis.ExperienceLevel = types.ParseExperienceLevel(string(analysis.ExperienceLevel))

	for i := range analysis.Keywords {
		analysis.Keywords[i].Word = strings.ToLower(strings.TrimSpace(analysis.Keywords[i].Word))
	}
	if len(analysis.Keywords) > analyzer.DefaultKeywordLimit {
		analysis.Keywords = analysis.Keywords[:analyzer.DefaultKeywordLimit]
	}

	for i := range analysis.PrioritySkills {
		analysis.PrioritySkills[i].Skill = strings.ToLower(strings.TrimSpace(analysis.PrioritySkills[i].Skill))
	}
}

func normalizeTerms(terms []string) []string {
	normalized := make([]string, 0, len(terms))
	seen := make(map[string]bool)
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t != "" && !seen[t] {
			normalized = append(normalized, t)
			seen[t] = true
		}
	}
	return normalized
}

func (e *LLMEngine) Score(ctx context.Context, candidateSkills []string, analysis *types.JobAnalysis) (float64, error) {
	// Degenerate inputs are defined to score 0.0; skip the model call.
	if analysis == nil || len(candidateSkills) == 0 || len(analysis.AllSkills()) == 0 {
		return e.fallback.Score(ctx, candidateSkills, analysis)
	}

	score, err := e.scoreWithModel(ctx, candidateSkills, analysis)
	if err != nil {
		log.Printf("llm scoring failed, falling back to rule-based: %v", err)
		return e.fallback.Score(ctx, candidateSkills, analysis)
	}

	return score, nil
}

type matchResult struct {
	Score float64 `json:"score"`
}

func (e *LLMEngine) scoreWithModel(ctx context.Context, candidateSkills []string, analysis *types.JobAnalysis) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("failed to encode analysis: %w", err)
	}

	template := prompts.MustGet("match_score.json", "score-skills")
	prompt := prompts.Format(template, map[string]string{
		"Skills":   strings.Join(candidateSkills, ", "),
		"Analysis": string(analysisJSON),
	})

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return 0, fmt.Errorf("failed to generate score: %w", err)
	}

	cleaned := llm.CleanJSONBlock(responseText)
	if err := schemas.Validate(schemas.MatchResultSchema, cleaned); err != nil {
		return 0, fmt.Errorf("score response rejected by schema: %w", err)
	}

	var result matchResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return 0, fmt.Errorf("failed to parse score response: %w", err)
	}

	return clampScore(result.Score), nil
}

// clampScore forces a model-produced score into [0, 100] with one decimal
// place, matching the rule-based scorer's output contract.
func clampScore(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}
