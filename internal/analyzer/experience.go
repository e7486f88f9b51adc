package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// yearsRe matches phrases like "5+ years of experience" or "3 years
// experience" in preprocessed text.
var yearsRe = regexp.MustCompile(`(\d+)[\+\-\s]*years?\s+(?:of\s+)?experience`)

// ExtractExperienceLevel returns the first level whose indicator phrase
// appears in the preprocessed text. The indicator table short-circuits
// before the numeric fallback, so "junior" wins over "5+ years" when both
// are present. With no indicator, a years-of-experience mention maps to
// entry (<=2), mid (<=5), or senior; otherwise the level is unknown.
func ExtractExperienceLevel(jobText string) types.ExperienceLevel {
	processed := Preprocess(jobText)

	for _, entry := range experienceIndicators {
		for _, indicator := range entry.Indicators {
			if strings.Contains(processed, indicator) {
				return entry.Level
			}
		}
	}

	if match := yearsRe.FindStringSubmatch(processed); match != nil {
		if years, err := strconv.Atoi(match[1]); err == nil {
			switch {
			case years <= 2:
				return types.ExperienceEntry
			case years <= 5:
				return types.ExperienceMid
			default:
				return types.ExperienceSenior
			}
		}
	}

	return types.ExperienceUnknown
}
