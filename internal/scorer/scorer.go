// Package scorer computes the match score between a candidate's skill set
// and an analyzed job description. The score is a simple linear heuristic:
// set-overlap ratio plus a bonus nudge for matched priority skills, capped
// at 100. There is no stemming, synonym resolution, or rarity weighting.
package scorer

import (
	"math"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// Priority bonus weights. A matched priority skill that sits inside the
// requirements section counts double; every unit of weight nudges the
// overlap ratio by bonusStep before the cap.
const (
	requirementWeight = 2
	mentionWeight     = 1
	bonusStep         = 0.1
)

// Score returns a match percentage in [0, 100] with one decimal place. It
// never fails: an empty candidate list or a job with no extracted skills
// scores 0.0 by definition.
//
// The arithmetic order is load-bearing: overlap ratio first, then the
// priority bonus, then the cap, then rounding.
func Score(candidateSkills []string, analysis *types.JobAnalysis) float64 {
	if len(candidateSkills) == 0 || analysis == nil {
		return 0.0
	}

	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[normalize(skill)] = struct{}{}
	}

	jobSet := make(map[string]struct{})
	for _, skill := range analysis.AllSkills() {
		jobSet[normalize(skill)] = struct{}{}
	}
	if len(jobSet) == 0 {
		return 0.0
	}

	matches := 0
	for skill := range jobSet {
		if _, ok := candidateSet[skill]; ok {
			matches++
		}
	}

	priorityWeight := 0
	for _, ps := range analysis.PrioritySkills {
		if _, ok := candidateSet[normalize(ps.Skill)]; ok {
			if ps.InRequirements {
				priorityWeight += requirementWeight
			} else {
				priorityWeight += mentionWeight
			}
		}
	}

	base := float64(matches) / float64(len(jobSet))
	adjusted := math.Min(1.0, base+float64(priorityWeight)*bonusStep)
	return round1(adjusted * 100)
}

func normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// round1 rounds half away from zero to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
