// Package types provides type definitions for structured data used throughout the jobfit system.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is a candidate's professional profile. Skills is stored as a
// comma-separated string, matching how users enter it; SkillList flattens it.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Skills    string    `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillList splits the comma-separated skills field into a trimmed list,
// dropping empty entries.
func (p *Profile) SkillList() []string {
	parts := strings.Split(p.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Experience is one work-history entry attached to a profile.
type Experience struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	StartDate    string    `json:"start_date,omitempty"`
	EndDate      string    `json:"end_date,omitempty"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements,omitempty"`
}

// TailoringPlan is the output of tailoring a profile to one job analysis:
// reordered experiences, a reordered skills string, and a summary line.
// It is a plan for the candidate to apply, never a rendered document.
type TailoringPlan struct {
	Experiences     []Experience              `json:"experiences"`
	Skills          string                    `json:"skills"`
	Summary         string                    `json:"summary"`
	Recommendations *TailoringRecommendations `json:"recommendations,omitempty"`
}

// TailoringRecommendations carries optional LLM-generated suggestions
// layered on top of the deterministic plan.
type TailoringRecommendations struct {
	SkillsReordering         []string `json:"skills_reordering,omitempty"`
	ExperiencePrioritization []string `json:"experience_prioritization,omitempty"`
	KeywordsToEmphasize      []string `json:"keywords_to_emphasize,omitempty"`
	AchievementsToHighlight  []string `json:"achievements_to_highlight,omitempty"`
	SummaryFocus             string   `json:"summary_focus,omitempty"`
	CoverLetterPoints        []string `json:"cover_letter_points,omitempty"`
}
