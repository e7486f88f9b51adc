package analyzer

import (
	"testing"

	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.ExperienceLevel
	}{
		{"Junior keyword", "Junior developer wanted", types.ExperienceEntry},
		{"Graduate keyword", "Graduate program opening", types.ExperienceEntry},
		{"Zero to two years range", "0-2 years in a similar role", types.ExperienceEntry},
		{"Intermediate keyword", "Intermediate engineer position", types.ExperienceMid},
		{"Three to five years range", "3-5 years in backend work", types.ExperienceMid},
		{"Senior keyword", "Senior engineer role", types.ExperienceSenior},
		{"Principal keyword", "Principal architect opening", types.ExperienceSenior},
		{"Five plus years indicator", "5+ years building services", types.ExperienceSenior},
		{"Director keyword", "Director of engineering", types.ExperienceExecutive},
		{"Vice president spelled out", "Vice President of product", types.ExperienceExecutive},
		{"No signal", "Developer position available now", types.ExperienceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractExperienceLevel(tt.text))
		})
	}
}

func TestExtractExperienceLevel_IndicatorBeatsYearsFallback(t *testing.T) {
	// "junior" sits in the entry indicator list, which is checked before
	// the numeric fallback ever runs, so 5+ years does not promote this
	// posting to senior.
	level := ExtractExperienceLevel("Junior position, although we prefer 5+ years of experience")

	assert.Equal(t, types.ExperienceEntry, level)
}

func TestExtractExperienceLevel_YearsFallback(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.ExperienceLevel
	}{
		{"Two years maps to entry", "2 years of experience required", types.ExperienceEntry},
		{"Four years maps to mid", "4 years of experience required", types.ExperienceMid},
		{"Seven years maps to senior", "7 years of experience required", types.ExperienceSenior},
		{"Years without of", "4 years experience in backend work", types.ExperienceMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractExperienceLevel(tt.text))
		})
	}
}
