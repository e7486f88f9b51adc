package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleScore_InlineAnalysis exercises the full scoring path. With both
// skills and the analysis inline the handler never touches the store.
func TestHandleScore_InlineAnalysis(t *testing.T) {
	s := newTestServer()

	body := `{
		"skills": ["Python", "Go"],
		"analysis": {
			"skills": {"technical": ["python", "go"], "soft": []},
			"requirements": [],
			"responsibilities": [],
			"experience_level": "senior",
			"keywords": [],
			"priority_skills": []
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleScore(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp["score"])
}

// TestHandleScore_NoSkillMatch verifies a zero score comes back as 0, not an error
func TestHandleScore_NoSkillMatch(t *testing.T) {
	s := newTestServer()

	body := `{
		"skills": ["cobol"],
		"analysis": {
			"skills": {"technical": ["python"], "soft": []},
			"requirements": [],
			"responsibilities": [],
			"experience_level": "unknown",
			"keywords": [],
			"priority_skills": []
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleScore(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp["score"])
}

// TestHandleScore_InvalidJSON tests /score with invalid JSON
func TestHandleScore_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleScore(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleScore_MissingSkillSource tests /score with neither skills nor profile_id
func TestHandleScore_MissingSkillSource(t *testing.T) {
	s := newTestServer()

	body := `{"analysis": {"skills": {"technical": [], "soft": []}, "requirements": [], "responsibilities": [], "experience_level": "unknown", "keywords": [], "priority_skills": []}}`
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleScore(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "skills or profile_id")
}

// TestHandleScore_MissingAnalysisSource tests /score with neither analysis nor analysis_id
func TestHandleScore_MissingAnalysisSource(t *testing.T) {
	s := newTestServer()

	body := `{"skills": ["python"]}`
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleScore(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "analysis_id or analysis")
}

// TestHandleTailor_InvalidJSON tests /tailor with invalid JSON
func TestHandleTailor_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/tailor", bytes.NewBufferString("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleTailor(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleTailor_MissingIDs tests /tailor without the required ids
func TestHandleTailor_MissingIDs(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/tailor", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleTailor(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "profile_id is required")
}

// TestHandleRank_InvalidJSON tests /rank with invalid JSON
func TestHandleRank_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/rank", bytes.NewBufferString("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRank(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleRank_MissingSkillSource tests /rank with neither skills nor profile_id
func TestHandleRank_MissingSkillSource(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/rank", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRank(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "skills or profile_id")
}

// TestHandleRank_LimitOutOfRange tests /rank with a limit beyond the cap
func TestHandleRank_LimitOutOfRange(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/rank", bytes.NewBufferString(`{"skills": ["go"], "limit": 500}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRank(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
