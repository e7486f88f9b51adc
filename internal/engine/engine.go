// Package engine exposes job analysis and match scoring behind a single
// interface. The rule-based implementation is fully deterministic; the
// model-backed one asks an LLM for the same structured output and falls back
// to the rules whenever the model call, validation, or parsing fails.
package engine

import (
	"context"
	"fmt"

	"github.com/jonathan/jobfit/internal/analyzer"
	"github.com/jonathan/jobfit/internal/scorer"
	"github.com/jonathan/jobfit/internal/types"
)

// Engine analyzes job descriptions and scores candidate skills against them.
type Engine interface {
	// Analyze extracts a structured JobAnalysis from raw job description text.
	// Blank input fails with analyzer.InvalidInputError.
	Analyze(ctx context.Context, jobText string) (*types.JobAnalysis, error)

	// Score rates candidateSkills against an analysis on a 0-100 scale with
	// one decimal place. Degenerate inputs score 0.0 rather than failing.
	Score(ctx context.Context, candidateSkills []string, analysis *types.JobAnalysis) (float64, error)
}

// Mode selects an engine implementation.
type Mode string

const (
	ModeDeterministic Mode = "deterministic"
	ModeLLM           Mode = "llm"
)

// ParseMode maps a raw string (usually from JOBFIT_ENGINE) to a Mode.
// Empty input selects the deterministic engine.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDeterministic, "":
		return ModeDeterministic, nil
	case ModeLLM:
		return ModeLLM, nil
	default:
		return "", fmt.Errorf("unknown engine mode %q (expected %q or %q)", s, ModeDeterministic, ModeLLM)
	}
}

// New constructs the engine for the given mode. ModeLLM requires a Gemini API
// key; the returned engine implements io.Closer in that case and the caller
// owns the cleanup.
func New(ctx context.Context, mode Mode, apiKey string) (Engine, error) {
	switch mode {
	case ModeDeterministic, "":
		return NewDeterministic(), nil
	case ModeLLM:
		return NewLLMEngine(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unknown engine mode %q", mode)
	}
}

// Deterministic runs the rule-based analyzer and scorer. It is stateless and
// safe for concurrent use.
type Deterministic struct{}

func NewDeterministic() *Deterministic {
	return &Deterministic{}
}

func (d *Deterministic) Analyze(_ context.Context, jobText string) (*types.JobAnalysis, error) {
	return analyzer.Analyze(jobText)
}

func (d *Deterministic) Score(_ context.Context, candidateSkills []string, analysis *types.JobAnalysis) (float64, error) {
	return scorer.Score(candidateSkills, analysis), nil
}
