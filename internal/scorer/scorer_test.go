package scorer

import (
	"testing"

	"github.com/jonathan/jobfit/internal/analyzer"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_EmptyCandidateSkills(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{Technical: []string{"python"}},
	}

	assert.Equal(t, 0.0, Score(nil, analysis))
	assert.Equal(t, 0.0, Score([]string{}, analysis))
}

func TestScore_EmptyJobSkills(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{Technical: []string{}, Soft: []string{}},
	}

	assert.Equal(t, 0.0, Score([]string{"python", "go"}, analysis))
}

func TestScore_NilAnalysis(t *testing.T) {
	assert.Equal(t, 0.0, Score([]string{"python"}, nil))
}

func TestScore_PartialOverlap(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{
			Technical: []string{"python", "sql"},
			Soft:      []string{},
		},
	}

	// No overlap and no priority bonus: base 0/2.
	assert.Equal(t, 0.0, Score([]string{"java"}, analysis))
}

func TestScore_FullOverlapWithPriorityBonusIsCapped(t *testing.T) {
	text := "Requirements: Python, Docker, and strong leadership skills, Python, Python"
	analysis, err := analyzer.Analyze(text)
	require.NoError(t, err)

	score := Score([]string{"python", "docker", "leadership"}, analysis)

	assert.Equal(t, 100.0, score)
}

func TestScore_BaseOverlapWithoutPriority(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{
			Technical: []string{"python", "sql", "docker", "aws"},
			Soft:      []string{},
		},
	}

	// 2 of 4 job skills covered, no priority entries.
	assert.Equal(t, 50.0, Score([]string{"python", "sql"}, analysis))
}

func TestScore_PriorityBonusArithmetic(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{
			Technical: []string{"python", "sql", "docker", "aws"},
		},
		PrioritySkills: []types.PrioritySkill{
			{Skill: "python", Frequency: 3, InRequirements: true},
			{Skill: "sql", Frequency: 2, InRequirements: false},
			{Skill: "aws", Frequency: 2, InRequirements: false},
		},
	}

	// base 2/4 = 0.5; bonus = 2 (python in requirements) + 1 (sql) = 3
	// => adjusted 0.5 + 0.3 = 0.8 => 80.0. aws is not held by the
	// candidate so it contributes nothing.
	assert.Equal(t, 80.0, Score([]string{"python", "sql"}, analysis))
}

func TestScore_CapAppliesBeforeRounding(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{Technical: []string{"python"}},
		PrioritySkills: []types.PrioritySkill{
			{Skill: "python", Frequency: 9, InRequirements: true},
		},
	}

	// base 1/1 = 1.0 plus bonus 0.2 must not exceed 100.
	assert.Equal(t, 100.0, Score([]string{"python"}, analysis))
}

func TestScore_NormalizesCaseAndWhitespace(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{Technical: []string{"python", "docker"}},
	}

	assert.Equal(t, 100.0, Score([]string{"  Python ", "DOCKER"}, analysis))
}

func TestScore_OneDecimalRounding(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: types.SkillSummary{
			Technical: []string{"python", "sql", "docker"},
		},
	}

	// base 1/3 = 0.333... => 33.3 after rounding to one decimal.
	assert.Equal(t, 33.3, Score([]string{"python"}, analysis))
}

func TestScore_BoundsHoldAcrossInputs(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		analysis *types.JobAnalysis
	}{
		{"Empty everything", nil, &types.JobAnalysis{}},
		{"Huge bonus", []string{"go"}, &types.JobAnalysis{
			Skills: types.SkillSummary{Technical: []string{"go"}},
			PrioritySkills: []types.PrioritySkill{
				{Skill: "go", Frequency: 50, InRequirements: true},
				{Skill: "go", Frequency: 50, InRequirements: true},
			},
		}},
		{"Disjoint sets", []string{"cobol"}, &types.JobAnalysis{
			Skills: types.SkillSummary{Technical: []string{"go", "rust"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.skills, tt.analysis)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}
