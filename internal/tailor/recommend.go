package tailor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/jobfit/internal/llm"
	"github.com/jonathan/jobfit/internal/prompts"
	"github.com/jonathan/jobfit/internal/types"
)

// recommendationInput is the candidate-side context serialized into the
// tailoring prompt.
type recommendationInput struct {
	Profile     *types.Profile     `json:"profile"`
	Experiences []types.Experience `json:"experiences"`
}

// Recommend asks the model for tailoring recommendations layered on top of
// the deterministic plan. A client is created for the single call; callers
// that already hold one should use RecommendWithClient.
func Recommend(ctx context.Context, profile *types.Profile, experiences []types.Experience, analysis *types.JobAnalysis, apiKey string) (*types.TailoringRecommendations, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for tailoring recommendations")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return RecommendWithClient(ctx, client, profile, experiences, analysis)
}

// RecommendWithClient runs the tailoring prompt against an existing client.
func RecommendWithClient(ctx context.Context, client llm.Client, profile *types.Profile, experiences []types.Experience, analysis *types.JobAnalysis) (*types.TailoringRecommendations, error) {
	profileJSON, err := json.Marshal(recommendationInput{Profile: profile, Experiences: experiences})
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	template := prompts.MustGet("tailoring.json", "recommendations")
	prompt := prompts.Format(template, map[string]string{
		"Profile":  string(profileJSON),
		"Analysis": string(analysisJSON),
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	cleaned := llm.CleanJSONBlock(responseText)

	var recs types.TailoringRecommendations
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}

	return &recs, nil
}
