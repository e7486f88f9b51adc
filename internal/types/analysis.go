// Package types provides type definitions for structured data used throughout the jobfit system.
package types

// ExperienceLevel is the coarse seniority bucket inferred from a job description.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
	ExperienceUnknown   ExperienceLevel = "unknown"
)

// ParseExperienceLevel maps a raw string to a known level, defaulting to unknown.
func ParseExperienceLevel(s string) ExperienceLevel {
	switch ExperienceLevel(s) {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return ExperienceLevel(s)
	default:
		return ExperienceUnknown
	}
}

// JobAnalysis is the full feature bundle extracted from one job description.
// It is created fresh per analysis call, immutable once returned, and
// round-trips losslessly through encoding/json.
type JobAnalysis struct {
	Skills           SkillSummary    `json:"skills"`
	Requirements     []string        `json:"requirements"`
	Responsibilities []string        `json:"responsibilities"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	Keywords         []KeywordCount  `json:"keywords"`
	PrioritySkills   []PrioritySkill `json:"priority_skills"`
}

// SkillSummary holds the skills found in a job description, split into
// technical and soft, with the per-category breakdown of technical hits.
type SkillSummary struct {
	Technical  []string            `json:"technical"`
	Soft       []string            `json:"soft"`
	Categories map[string][]string `json:"categories,omitempty"`
}

// KeywordCount is one keyword with its occurrence count, ordered by count
// descending in JobAnalysis.Keywords.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// PrioritySkill marks a skill as salient because it recurs in the text or
// appears inside the extracted requirements section.
type PrioritySkill struct {
	Skill          string `json:"skill"`
	Frequency      int    `json:"frequency"`
	InRequirements bool   `json:"in_requirements"`
}

// AllSkills returns technical skills followed by soft skills, preserving
// extraction order.
func (a *JobAnalysis) AllSkills() []string {
	all := make([]string, 0, len(a.Skills.Technical)+len(a.Skills.Soft))
	all = append(all, a.Skills.Technical...)
	all = append(all, a.Skills.Soft...)
	return all
}

// TopPrioritySkills returns the names of up to n priority skills in rank order.
func (a *JobAnalysis) TopPrioritySkills(n int) []string {
	if n > len(a.PrioritySkills) {
		n = len(a.PrioritySkills)
	}
	names := make([]string, 0, n)
	for _, ps := range a.PrioritySkills[:n] {
		names = append(names, ps.Skill)
	}
	return names
}
