// Package tailor turns a job analysis into a concrete plan for adjusting a
// candidate's profile: experiences reordered by relevance, matched skills
// pulled to the front, and a summary line aligned with the role's seniority.
// The plan is data for the candidate to apply; nothing here renders documents.
package tailor

import (
	"sort"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const (
	// Per-term weight when a job keyword or skill appears in an experience.
	termMatchWeight = 1
	// Boosts for the top priority skills, requirements-backed ones first.
	requirementBoost = 3
	mentionBoost     = 2
	// Only the strongest priority skills influence experience ordering.
	maxBoostSkills = 5
	// Priority skills folded into a generated summary line.
	summarySkillCount = 3
)

// Plan builds the full tailoring plan for one profile against one analysis.
func Plan(profile *types.Profile, experiences []types.Experience, analysis *types.JobAnalysis) *types.TailoringPlan {
	return &types.TailoringPlan{
		Experiences: PrioritizeExperiences(experiences, analysis),
		Skills:      strings.Join(TailorSkills(profile.SkillList(), analysis), ", "),
		Summary:     Summary(profile, analysis),
	}
}

type scoredExperience struct {
	score int
	exp   types.Experience
}

// PrioritizeExperiences reorders experiences by relevance to the analysis.
// Each occurrence of a job keyword or extracted skill in an experience's
// title, company, or description counts once; the top priority skills add a
// larger boost, biggest when they come from the requirements section. Ties
// keep their original order.
func PrioritizeExperiences(experiences []types.Experience, analysis *types.JobAnalysis) []types.Experience {
	if analysis == nil {
		return experiences
	}

	jobTerms := make(map[string]struct{})
	for _, kw := range analysis.Keywords {
		jobTerms[strings.ToLower(kw.Word)] = struct{}{}
	}
	for _, skill := range analysis.AllSkills() {
		jobTerms[strings.ToLower(skill)] = struct{}{}
	}

	boostSkills := analysis.PrioritySkills
	if len(boostSkills) > maxBoostSkills {
		boostSkills = boostSkills[:maxBoostSkills]
	}

	scored := make([]scoredExperience, 0, len(experiences))
	for _, exp := range experiences {
		expText := strings.ToLower(exp.Title + " " + exp.Company + " " + exp.Description)

		score := 0
		for term := range jobTerms {
			if strings.Contains(expText, term) {
				score += termMatchWeight
			}
		}

		for _, priority := range boostSkills {
			if strings.Contains(expText, strings.ToLower(priority.Skill)) {
				if priority.InRequirements {
					score += requirementBoost
				} else {
					score += mentionBoost
				}
			}
		}

		scored = append(scored, scoredExperience{score: score, exp: exp})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]types.Experience, 0, len(scored))
	for _, se := range scored {
		out = append(out, se.exp)
	}
	return out
}

// TailorSkills moves the profile skills that the job asks for to the front,
// preserving relative order within the matched and unmatched groups. A skill
// matches case-insensitively against the extracted skill lists, or exactly
// against a priority skill name.
func TailorSkills(profileSkills []string, analysis *types.JobAnalysis) []string {
	if len(profileSkills) == 0 {
		return []string{}
	}
	if analysis == nil {
		return profileSkills
	}

	jobSkills := make(map[string]struct{})
	for _, skill := range analysis.AllSkills() {
		jobSkills[strings.ToLower(skill)] = struct{}{}
	}
	priorityNames := make(map[string]struct{})
	for _, ps := range analysis.PrioritySkills {
		priorityNames[ps.Skill] = struct{}{}
	}

	matched := make([]string, 0, len(profileSkills))
	unmatched := make([]string, 0, len(profileSkills))
	for _, skill := range profileSkills {
		_, inJobSkills := jobSkills[strings.ToLower(skill)]
		_, inPriority := priorityNames[skill]
		if inJobSkills || inPriority {
			matched = append(matched, skill)
		} else {
			unmatched = append(unmatched, skill)
		}
	}

	return append(matched, unmatched...)
}

// Summary returns the profile's own summary when present. Otherwise it
// generates one from the analysis: a seniority opener plus the top priority
// skills.
func Summary(profile *types.Profile, analysis *types.JobAnalysis) string {
	base := profile.Summary

	if analysis == nil {
		if base != "" {
			return base
		}
		return "Experienced professional with a strong background in technology and innovation."
	}

	if base != "" {
		return base
	}

	skillText := ""
	if top := analysis.TopPrioritySkills(summarySkillCount); len(top) > 0 {
		skillText = " with expertise in " + strings.Join(top, ", ")
	}

	var levelText string
	switch analysis.ExperienceLevel {
	case types.ExperienceEntry:
		levelText = "Motivated entry-level professional"
	case types.ExperienceMid:
		levelText = "Experienced professional"
	case types.ExperienceSenior:
		levelText = "Senior professional with proven leadership"
	case types.ExperienceExecutive:
		levelText = "Executive-level professional"
	default:
		levelText = "Experienced professional"
	}

	return levelText + skillText + ", ready to contribute to organizational success."
}
