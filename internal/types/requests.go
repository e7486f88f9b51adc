// Package types provides type definitions for structured data used throughout the jobfit system.
package types

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyzeRequest asks the server to analyze a job description supplied
// either inline or by URL, and persist the result.
type AnalyzeRequest struct {
	Title   string `json:"title" validate:"required,min=1"`
	Company string `json:"company,omitempty"`
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty" validate:"omitempty,url"`
}

// Validate checks struct tags and that exactly one of text or url is set.
func (r *AnalyzeRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if (r.Text == "") == (r.URL == "") {
		return errors.New("exactly one of text or url must be provided")
	}
	return nil
}

// ScoreRequest asks for a match score. Candidate skills come inline or from
// a stored profile; the analysis comes inline or from a stored record.
type ScoreRequest struct {
	Skills     []string     `json:"skills,omitempty"`
	ProfileID  *uuid.UUID   `json:"profile_id,omitempty"`
	AnalysisID *uuid.UUID   `json:"analysis_id,omitempty"`
	Analysis   *JobAnalysis `json:"analysis,omitempty"`
}

// Validate checks that one skill source and one analysis source are set.
func (r *ScoreRequest) Validate() error {
	if len(r.Skills) == 0 && r.ProfileID == nil {
		return errors.New("either skills or profile_id must be provided")
	}
	if (r.AnalysisID == nil) == (r.Analysis == nil) {
		return errors.New("exactly one of analysis_id or analysis must be provided")
	}
	return nil
}

// TailorRequest asks for a tailoring plan for a stored profile against a
// stored analysis.
type TailorRequest struct {
	ProfileID  uuid.UUID `json:"profile_id"`
	AnalysisID uuid.UUID `json:"analysis_id"`
}

// Validate checks that both ids are set.
func (r *TailorRequest) Validate() error {
	if r.ProfileID == uuid.Nil {
		return errors.New("profile_id is required")
	}
	if r.AnalysisID == uuid.Nil {
		return errors.New("analysis_id is required")
	}
	return nil
}

// RankRequest asks for stored analyses ranked by match score against a
// candidate skill set.
type RankRequest struct {
	Skills      []string   `json:"skills,omitempty"`
	ProfileID   *uuid.UUID `json:"profile_id,omitempty"`
	Limit       int        `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Concurrency int        `json:"concurrency,omitempty" validate:"omitempty,min=1,max=32"`
}

// Validate checks struct tags and that one skill source is set.
func (r *RankRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if len(r.Skills) == 0 && r.ProfileID == nil {
		return errors.New("either skills or profile_id must be provided")
	}
	return nil
}

// ExperienceInput is one work-history entry in a profile create/update request.
type ExperienceInput struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Company      string   `json:"company,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// CreateProfileRequest creates or replaces a candidate profile with its
// experience entries.
type CreateProfileRequest struct {
	Name        string            `json:"name" validate:"required,min=1"`
	Email       string            `json:"email" validate:"required,email"`
	Phone       string            `json:"phone,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Skills      string            `json:"skills" validate:"required,min=1"`
	Experiences []ExperienceInput `json:"experiences,omitempty" validate:"omitempty,dive"`
}

// Validate validates the CreateProfileRequest using the validator.
func (r *CreateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
