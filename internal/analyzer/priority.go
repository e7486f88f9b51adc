package analyzer

import (
	"sort"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// derivePrioritySkills flags skills that recur in the raw text or appear in
// the extracted requirements. Frequency counts run against the original
// text, not the deduplicating skill extraction, so "Python, Python, Python"
// records a frequency of three.
func derivePrioritySkills(jobText string, analysis *types.JobAnalysis) []types.PrioritySkill {
	lowerText := strings.ToLower(jobText)
	reqText := strings.ToLower(strings.Join(analysis.Requirements, " "))

	priorities := []types.PrioritySkill{}
	for _, skill := range analysis.AllSkills() {
		lowerSkill := strings.ToLower(skill)
		frequency := strings.Count(lowerText, lowerSkill)
		inRequirements := strings.Contains(reqText, lowerSkill)
		if frequency > 1 || inRequirements {
			priorities = append(priorities, types.PrioritySkill{
				Skill:          skill,
				Frequency:      frequency,
				InRequirements: inRequirements,
			})
		}
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		if priorities[i].InRequirements != priorities[j].InRequirements {
			return priorities[i].InRequirements
		}
		return priorities[i].Frequency > priorities[j].Frequency
	})
	return priorities
}
