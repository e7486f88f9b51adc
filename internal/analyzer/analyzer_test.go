package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Python Developer", "python developer"},
		{"Collapses whitespace", "python\n\n  developer\tneeded", "python developer needed"},
		{"Keeps c++ and c#", "C++ and C# experience", "c++ and c# experience"},
		{"Keeps node.js", "Node.js backend", "node.js backend"},
		{"Keeps hyphenated", "detail-oriented work", "detail-oriented work"},
		{"Strips punctuation", "skills: python, docker!", "skills  python  docker"},
		{"Trims", "  python  ", "python"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Preprocess(tt.input))
		})
	}
}

func TestExtractSkills(t *testing.T) {
	text := "We need Python and Go, React on the frontend, PostgreSQL and Redis, " +
		"deployed with Docker on AWS. Strong leadership and communication required."

	skills := ExtractSkills(text)

	assert.Contains(t, skills.Technical, "python")
	assert.Contains(t, skills.Technical, "go")
	assert.Contains(t, skills.Technical, "react")
	assert.Contains(t, skills.Technical, "postgresql")
	assert.Contains(t, skills.Technical, "redis")
	assert.Contains(t, skills.Technical, "docker")
	assert.Contains(t, skills.Technical, "aws")
	assert.Contains(t, skills.Soft, "leadership")
	assert.Contains(t, skills.Soft, "communication")

	assert.Equal(t, []string{"python", "go"}, skills.Categories["programming"])
	assert.Equal(t, []string{"react"}, skills.Categories["web"])
	assert.NotContains(t, skills.Categories, "data", "category with no hits should be absent")
}

func TestExtractSkills_CategoryOrderIsStable(t *testing.T) {
	text := "docker aws python sql react"

	first := ExtractSkills(text)
	second := ExtractSkills(text)

	assert.Equal(t, first, second)
	// programming before web before database before cloud
	assert.Equal(t, []string{"python", "react", "sql", "aws", "docker"}, first.Technical)
}

func TestExtractSkills_NoMatches(t *testing.T) {
	skills := ExtractSkills("we knit sweaters all day")

	assert.Empty(t, skills.Technical)
	assert.Empty(t, skills.Soft)
	assert.Nil(t, skills.Categories)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   "},
		{"Newlines and tabs", "\n\t \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := Analyze(tt.input)
			require.Error(t, err)
			assert.Nil(t, analysis)

			var invalidErr *InvalidInputError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "Senior Python Developer\n\nRequirements:\n- 5+ years of experience with Python\n- Docker and Kubernetes knowledge\n\nResponsibilities:\n- Build and maintain backend services"

	first, err := Analyze(text)
	require.NoError(t, err)
	second, err := Analyze(text)
	require.NoError(t, err)

	assert.Equal(t, first, second, "analysis of identical input must be identical")
}

func TestAnalyze_FullOverlapScenario(t *testing.T) {
	text := "Requirements: Python, Docker, and strong leadership skills, Python, Python"

	analysis, err := Analyze(text)
	require.NoError(t, err)

	assert.Contains(t, analysis.Skills.Technical, "python")
	assert.Contains(t, analysis.Skills.Technical, "docker")
	assert.Contains(t, analysis.Skills.Soft, "leadership")

	byName := make(map[string]types.PrioritySkill)
	for _, ps := range analysis.PrioritySkills {
		byName[ps.Skill] = ps
	}
	require.Contains(t, byName, "python")
	require.Contains(t, byName, "leadership")
	assert.True(t, byName["python"].InRequirements)
	assert.True(t, byName["leadership"].InRequirements)
	assert.Equal(t, 3, byName["python"].Frequency)
}

func TestAnalyze_PrioritySkillOrdering(t *testing.T) {
	// python: in requirements, frequency 3. docker: in requirements,
	// frequency 1. react: repeated outside requirements, frequency 2.
	text := "Python and python and react\n\nRequirements:\n- Python services in Docker containers\n\nAlso react experience helps."

	analysis, err := Analyze(text)
	require.NoError(t, err)

	require.Len(t, analysis.PrioritySkills, 3)
	assert.Equal(t, "python", analysis.PrioritySkills[0].Skill)
	assert.Equal(t, "docker", analysis.PrioritySkills[1].Skill)
	assert.Equal(t, "react", analysis.PrioritySkills[2].Skill)
	assert.True(t, analysis.PrioritySkills[0].InRequirements)
	assert.True(t, analysis.PrioritySkills[1].InRequirements)
	assert.False(t, analysis.PrioritySkills[2].InRequirements)
}

func TestAnalyze_SingleMentionOutsideRequirementsIsNotPriority(t *testing.T) {
	analysis, err := Analyze("We appreciate knowledge of terraform in general.")
	require.NoError(t, err)

	assert.Contains(t, analysis.Skills.Technical, "terraform")
	assert.Empty(t, analysis.PrioritySkills)
}

func TestAnalyze_JSONRoundTrip(t *testing.T) {
	text := "Senior Go Engineer\n\nRequirements:\n- 6+ years of experience building Go services\n- PostgreSQL, Redis, Docker\n\nResponsibilities:\n- You will design APIs and mentor junior engineers"

	analysis, err := Analyze(text)
	require.NoError(t, err)

	data, err := json.Marshal(analysis)
	require.NoError(t, err)

	var decoded types.JobAnalysis
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, *analysis, decoded, "JobAnalysis must round-trip through JSON")
}

func TestAnalyze_DegenerateTextStillCompletes(t *testing.T) {
	analysis, err := Analyze("x")
	require.NoError(t, err)

	assert.Empty(t, analysis.Skills.Technical)
	assert.Empty(t, analysis.Requirements)
	assert.Empty(t, analysis.Responsibilities)
	assert.Equal(t, types.ExperienceUnknown, analysis.ExperienceLevel)
	assert.Empty(t, analysis.Keywords)
	assert.Empty(t, analysis.PrioritySkills)
}
