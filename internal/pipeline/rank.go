// Package pipeline coordinates multi-analysis operations on top of the
// scoring engine.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobfit/internal/engine"
	"github.com/jonathan/jobfit/internal/store"
)

// DefaultConcurrency bounds the scoring workers when the caller does not.
const DefaultConcurrency = 4

// RankedAnalysis is one stored analysis with its match score.
type RankedAnalysis struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Score      float64   `json:"score"`
}

// Rank scores a candidate skill set against each stored analysis with a
// bounded number of workers and returns the results ordered by score
// descending. Ties keep the input order.
func Rank(ctx context.Context, eng engine.Engine, candidateSkills []string, analyses []store.AnalysisRecord, concurrency int) ([]RankedAnalysis, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	ranked := make([]RankedAnalysis, len(analyses))
	var mu sync.Mutex // Protect result assignments

	for i, rec := range analyses {
		g.Go(func() error {
			score, err := eng.Score(gCtx, candidateSkills, rec.Analysis)
			if err != nil {
				return fmt.Errorf("scoring analysis %s failed: %w", rec.ID, err)
			}
			mu.Lock()
			ranked[i] = RankedAnalysis{
				AnalysisID: rec.ID,
				Title:      rec.Title,
				Company:    rec.Company,
				Score:      score,
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	return ranked, nil
}
