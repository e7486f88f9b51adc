package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
)

// ---------------------------------------------------------------------
// Profile Handlers
// ---------------------------------------------------------------------

// convertExperienceInputs maps request entries to experience rows. Order is
// preserved and becomes the stored ordinal.
func convertExperienceInputs(inputs []types.ExperienceInput) []types.Experience {
	experiences := make([]types.Experience, 0, len(inputs))
	for _, in := range inputs {
		experiences = append(experiences, types.Experience{
			Title:        in.Title,
			Company:      in.Company,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			Description:  in.Description,
			Achievements: in.Achievements,
		})
	}
	return experiences
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.store.SaveProfile(r.Context(), &store.ProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Summary:     req.Summary,
		Skills:      req.Skills,
		Experiences: convertExperienceInputs(req.Experiences),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, profile)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	profiles, err := s.store.ListProfiles(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.store.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	experiences, err := s.store.ListExperiences(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile":     profile,
		"experiences": experiences,
	})
}

func (s *Server) handleReplaceExperiences(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var req struct {
		Experiences []types.ExperienceInput `json:"experiences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for i := range req.Experiences {
		if req.Experiences[i].Title == "" {
			s.errorResponse(w, http.StatusBadRequest, "Experience title is required")
			return
		}
	}

	profile, err := s.store.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	if err := s.store.ReplaceExperiences(r.Context(), profileID, convertExperienceInputs(req.Experiences)); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	deleted, err := s.store.DeleteProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
