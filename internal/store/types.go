package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobfit/internal/types"
)

// AnalysisRecord is one stored job analysis with its search metadata
type AnalysisRecord struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Company         string             `json:"company"`
	JobURL          string             `json:"job_url,omitempty"`
	JobText         string             `json:"job_text,omitempty"`
	Analysis        *types.JobAnalysis `json:"analysis"`
	Tags            []string           `json:"tags"`
	SkillsCount     int                `json:"skills_count"`
	ExperienceLevel string             `json:"experience_level"`
	CreatedAt       time.Time          `json:"created_at"`
}

// SaveAnalysisInput carries the fields for storing a new analysis.
// Title and Company fall back to placeholder values when empty.
type SaveAnalysisInput struct {
	Title    string
	Company  string
	JobURL   string
	JobText  string
	Analysis *types.JobAnalysis
}

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	Company         string // substring match, case-insensitive
	ExperienceLevel string // exact match
	Skill           string // exact match against extracted skills, case-insensitive
	Limit           int
}

// SkillTally is one skill with the number of stored analyses mentioning it
type SkillTally struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// AnalysisStats summarizes the stored analyses
type AnalysisStats struct {
	TotalAnalyses    int            `json:"total_analyses"`
	UniqueCompanies  int            `json:"unique_companies"`
	ExperienceLevels map[string]int `json:"experience_levels"`
	TopSkills        []SkillTally   `json:"top_skills"`
	Companies        []string       `json:"companies"`
}

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileInput carries a candidate profile and its experience entries for saving
type ProfileInput struct {
	Name        string
	Email       string
	Phone       string
	Summary     string
	Skills      string
	Experiences []types.Experience
}
