package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/jobfit/internal/pipeline"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/tailor"
	"github.com/jonathan/jobfit/internal/types"
)

// ---------------------------------------------------------------------
// Matching Handlers
// ---------------------------------------------------------------------

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills := req.Skills
	if len(skills) == 0 {
		profile, err := s.store.GetProfile(r.Context(), *req.ProfileID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if profile == nil {
			s.errorResponse(w, http.StatusNotFound, "Profile not found")
			return
		}
		skills = profile.SkillList()
	}

	analysis := req.Analysis
	if analysis == nil {
		record, err := s.store.GetAnalysis(r.Context(), *req.AnalysisID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if record == nil {
			s.errorResponse(w, http.StatusNotFound, "Analysis not found")
			return
		}
		analysis = record.Analysis
	}

	score, err := s.engine.Score(r.Context(), skills, analysis)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Scoring failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]float64{"score": score})
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req types.TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.store.GetProfile(r.Context(), req.ProfileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	record, err := s.store.GetAnalysis(r.Context(), req.AnalysisID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	experiences, err := s.store.ListExperiences(r.Context(), profile.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	plan := tailor.Plan(profile, experiences, record.Analysis)
	s.jsonResponse(w, http.StatusOK, plan)
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills := req.Skills
	if len(skills) == 0 {
		profile, err := s.store.GetProfile(r.Context(), *req.ProfileID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if profile == nil {
			s.errorResponse(w, http.StatusNotFound, "Profile not found")
			return
		}
		skills = profile.SkillList()
	}

	analyses, err := s.store.ListAnalyses(r.Context(), store.AnalysisFilters{Limit: req.Limit})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked, err := pipeline.Rank(r.Context(), s.engine, skills, analyses, req.Concurrency)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"ranked": ranked,
		"count":  len(ranked),
	})
}
