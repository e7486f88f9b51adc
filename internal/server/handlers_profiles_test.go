package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleSaveProfile_InvalidJSON tests create profile with invalid JSON
func TestHandleSaveProfile_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBufferString("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleSaveProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleSaveProfile_ValidationErrors tests create profile with missing fields
func TestHandleSaveProfile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing name",
			body: `{"email": "dev@example.com", "skills": "go"}`,
		},
		{
			name: "invalid email",
			body: `{"name": "Dev", "email": "not-an-email", "skills": "go"}`,
		},
		{
			name: "missing skills",
			body: `{"name": "Dev", "email": "dev@example.com"}`,
		},
		{
			name: "experience without title",
			body: `{"name": "Dev", "email": "dev@example.com", "skills": "go", "experiences": [{"company": "Acme"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()

			req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			s.handleSaveProfile(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// TestHandleGetProfile_InvalidID tests get profile with invalid UUID
func TestHandleGetProfile_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/profiles/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid profile ID")
}

// TestHandleDeleteProfile_InvalidID tests delete profile with invalid UUID
func TestHandleDeleteProfile_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/profiles/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleDeleteProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleReplaceExperiences_InvalidID tests replace experiences with invalid UUID
func TestHandleReplaceExperiences_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/profiles/not-a-uuid/experiences", bytes.NewBufferString(`{"experiences": []}`))
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleReplaceExperiences(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleReplaceExperiences_MissingTitle rejects entries without a title
// before any store access
func TestHandleReplaceExperiences_MissingTitle(t *testing.T) {
	s := newTestServer()

	profileID := uuid.New()
	body := `{"experiences": [{"company": "Acme"}]}`
	req := httptest.NewRequest(http.MethodPut, "/profiles/"+profileID.String()+"/experiences", bytes.NewBufferString(body))
	req.SetPathValue("id", profileID.String())
	w := httptest.NewRecorder()

	s.handleReplaceExperiences(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "title is required")
}
