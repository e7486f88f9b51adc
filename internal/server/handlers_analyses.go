package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/jobfit/internal/analyzer"
	"github.com/jonathan/jobfit/internal/ingest"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
)

// ---------------------------------------------------------------------
// Analysis Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jobText := req.Text
	if req.URL != "" {
		fetched, _, err := ingest.FromURL(r.Context(), req.URL, false, false)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
			return
		}
		jobText = fetched
	}

	analysis, err := s.engine.Analyze(r.Context(), jobText)
	if err != nil {
		var invalidInput *analyzer.InvalidInputError
		if errors.As(err, &invalidInput) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	record, err := s.store.SaveAnalysis(r.Context(), &store.SaveAnalysisInput{
		Title:    req.Title,
		Company:  req.Company,
		JobURL:   req.URL,
		JobText:  jobText,
		Analysis: analysis,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, record)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	analysisID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	record, err := s.store.GetAnalysis(r.Context(), analysisID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	filters := store.AnalysisFilters{
		Company:         r.URL.Query().Get("company"),
		ExperienceLevel: r.URL.Query().Get("experience_level"),
		Skill:           r.URL.Query().Get("skill"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		filters.Limit = limit
	}

	records, err := s.store.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": records,
		"count":    len(records),
	})
}

func (s *Server) handleSearchAnalyses(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		s.errorResponse(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	records, err := s.store.SearchAnalyses(r.Context(), term, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": records,
		"count":    len(records),
	})
}

func (s *Server) handleAnalysisStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	analysisID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	deleted, err := s.store.DeleteAnalysis(r.Context(), analysisID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
