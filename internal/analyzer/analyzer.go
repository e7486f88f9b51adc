// Package analyzer implements the deterministic job-description analysis
// pipeline: catalog-based skill extraction, section extraction for
// requirements and responsibilities, experience-level detection, keyword
// frequencies, and priority-skill derivation. Every function is a pure
// function of its input plus the fixed catalogs, so identical input always
// produces an identical JobAnalysis.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// DefaultKeywordLimit is the number of keywords Analyze keeps.
const DefaultKeywordLimit = 20

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	charsetRe    = regexp.MustCompile(`[^\w\s\-\+\#\.]`)
)

// Preprocess lowercases text, collapses whitespace runs (including
// newlines) to single spaces, and replaces characters outside the kept set
// with spaces. Tokens like "c++", "c#" and "node.js" survive intact.
// Section extraction deliberately skips this and works on the original
// text, which still carries line boundaries.
func Preprocess(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = charsetRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractSkills tests every catalog term for substring membership in the
// preprocessed text. Category and term order are fixed, so the output
// order is deterministic. Only categories with at least one hit appear in
// Categories.
func ExtractSkills(jobText string) types.SkillSummary {
	processed := Preprocess(jobText)

	summary := types.SkillSummary{
		Technical: []string{},
		Soft:      []string{},
	}
	for _, category := range technicalCatalog {
		var found []string
		for _, term := range category.Terms {
			if strings.Contains(processed, term) {
				found = append(found, term)
				summary.Technical = append(summary.Technical, term)
			}
		}
		if len(found) > 0 {
			if summary.Categories == nil {
				summary.Categories = make(map[string][]string)
			}
			summary.Categories[category.Name] = found
		}
	}
	for _, skill := range softSkillCatalog {
		if strings.Contains(processed, skill) {
			summary.Soft = append(summary.Soft, skill)
		}
	}
	return summary
}

// Analyze runs the full pipeline over one job description. It fails only
// when the input is empty or whitespace; every other input yields a
// complete JobAnalysis.
func Analyze(jobText string) (*types.JobAnalysis, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, errEmptyInput()
	}

	analysis := &types.JobAnalysis{
		Skills:           ExtractSkills(jobText),
		Requirements:     ExtractRequirements(jobText),
		Responsibilities: ExtractResponsibilities(jobText),
		ExperienceLevel:  ExtractExperienceLevel(jobText),
		Keywords:         ExtractKeywords(jobText, DefaultKeywordLimit),
	}
	analysis.PrioritySkills = derivePrioritySkills(jobText, analysis)
	return analysis, nil
}
