package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValidator accepts only the tokens registered on it.
type fakeValidator struct {
	validTokens map[string]uuid.UUID
}

func newFakeValidator() *fakeValidator {
	return &fakeValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return &fakeClaims{userID: userID}, nil
}

type fakeClaims struct {
	userID uuid.UUID
}

func (c *fakeClaims) GetUserID() uuid.UUID {
	return c.userID
}

// runAuthRequest sends one request with the given Authorization header
// through the middleware and reports whether the inner handler ran.
func runAuthRequest(validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	handlerCalled := false
	var contextUserID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		contextUserID, _ = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	AuthMiddleware(validator)(handler).ServeHTTP(w, req)
	return w, handlerCalled, contextUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newFakeValidator()
	userID := uuid.New()
	validator.validTokens["valid-test-token-123"] = userID

	w, handlerCalled, contextUserID := runAuthRequest(validator, "Bearer valid-test-token-123")

	assert.True(t, handlerCalled, "handler should be called")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, contextUserID)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := newFakeValidator()
	userID := uuid.New()
	validator.validTokens["token-abc"] = userID

	for _, prefix := range []string{"bearer", "BEARER", "BeArEr"} {
		w, handlerCalled, _ := runAuthRequest(validator, prefix+" token-abc")
		assert.True(t, handlerCalled, "prefix %q should be accepted", prefix)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w, handlerCalled, _ := runAuthRequest(newFakeValidator(), "")

	assert.False(t, handlerCalled, "handler should not be called")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing Bearer prefix", authHeader: "token123"},
		{name: "only Bearer", authHeader: "Bearer"},
		{name: "wrong scheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "three tokens", authHeader: "Bearer token extra"},
		{name: "unknown token", authHeader: "Bearer never-registered"},
		{name: "malformed jwt", authHeader: "Bearer not.a.valid.jwt.token"},
	}

	validator := newFakeValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, handlerCalled, _ := runAuthRequest(validator, tt.authHeader)

			assert.False(t, handlerCalled, "handler should not be called")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Unauthorized")
		})
	}
}

func TestGetUserID_Success(t *testing.T) {
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, userID))

	extractedUserID, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, extractedUserID)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)

	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
	assert.Contains(t, err.Error(), "user ID not found")
}

func TestGetUserID_WrongType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
}
