package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkValidation(t *testing.T, validate *validator.Validate, req any, wantErr bool, errMsg string) {
	t.Helper()
	err := validate.Struct(req)
	if !wantErr {
		require.NoError(t, err)
		return
	}
	require.Error(t, err)
	if errMsg != "" {
		assert.Contains(t, err.Error(), errMsg)
	}
}

func TestCreateUserRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: CreateUserRequest{Name: "Dana Smith", Email: "dana@example.com", Password: "password123"},
		},
		{
			name:    "missing name",
			request: CreateUserRequest{Email: "dana@example.com", Password: "password123"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "missing email",
			request: CreateUserRequest{Name: "Dana Smith", Password: "password123"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "invalid email format",
			request: CreateUserRequest{Name: "Dana Smith", Email: "not-an-email", Password: "password123"},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name:    "missing password",
			request: CreateUserRequest{Name: "Dana Smith", Email: "dana@example.com"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "password too short",
			request: CreateUserRequest{Name: "Dana Smith", Email: "dana@example.com", Password: "short"},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name:    "password at minimum length",
			request: CreateUserRequest{Name: "Dana Smith", Email: "dana@example.com", Password: "12345678"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, validate, tt.request, tt.wantErr, tt.errMsg)
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "dana@example.com", Password: "password123"},
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "password123"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "invalid email format",
			request: LoginRequest{Email: "not-an-email", Password: "password123"},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name:    "missing password",
			request: LoginRequest{Email: "dana@example.com"},
			wantErr: true,
			errMsg:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, validate, tt.request, tt.wantErr, tt.errMsg)
		})
	}
}

func TestUpdatePasswordRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request UpdatePasswordRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			request: UpdatePasswordRequest{CurrentPassword: "oldpassword123", NewPassword: "newpassword456"},
		},
		{
			name:    "missing current password",
			request: UpdatePasswordRequest{NewPassword: "newpassword456"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "missing new password",
			request: UpdatePasswordRequest{CurrentPassword: "oldpassword123"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "new password too short",
			request: UpdatePasswordRequest{CurrentPassword: "oldpassword123", NewPassword: "short"},
			wantErr: true,
			errMsg:  "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, validate, tt.request, tt.wantErr, tt.errMsg)
		})
	}
}

func TestLoginResponse_Serialization(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	response := LoginResponse{
		User: &User{
			ID:        userID,
			Name:      "Dana Smith",
			Email:     "dana@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		},
		Token: "test-jwt-token-12345",
	}

	jsonBytes, err := json.Marshal(response)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, "user")
	assert.Contains(t, jsonStr, "token")
	assert.Contains(t, jsonStr, userID.String())
	assert.NotContains(t, jsonStr, "password_hash", "credentials must never appear in responses")

	var decoded LoginResponse
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, "test-jwt-token-12345", decoded.Token)
	require.NotNil(t, decoded.User)
	assert.Equal(t, userID, decoded.User.ID)
	assert.Equal(t, "dana@example.com", decoded.User.Email)
}

func TestAuthRequests_ValidateMethod(t *testing.T) {
	createReq := CreateUserRequest{Name: "Dana Smith", Email: "dana@example.com", Password: "password123"}
	require.NoError(t, createReq.Validate())
	createReq.Email = "invalid-email"
	require.Error(t, createReq.Validate())

	loginReq := LoginRequest{Email: "dana@example.com", Password: "password123"}
	require.NoError(t, loginReq.Validate())
	loginReq.Email = "invalid-email"
	require.Error(t, loginReq.Validate())

	pwReq := UpdatePasswordRequest{CurrentPassword: "oldpassword123", NewPassword: "newpassword456"}
	require.NoError(t, pwReq.Validate())
	pwReq.NewPassword = "short"
	require.Error(t, pwReq.Validate())
}
