package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/IshanviChauhan/Interview-Bot/internal/config"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthHandler authenticates the single operator account configured via
// API_USERNAME and API_PASSWORD_HASH (a bcrypt hash) and issues JWTs.
type AuthHandler struct {
	username     string
	passwordHash string
	userID       uuid.UUID
	authConfig   *config.AuthConfig
	jwtService   *JWTService
	validator    *validator.Validate
}

// NewAuthHandler creates an AuthHandler from environment credentials.
func NewAuthHandler(authConfig *config.AuthConfig, jwtService *JWTService) (*AuthHandler, error) {
	username := os.Getenv("API_USERNAME")
	passwordHash := os.Getenv("API_PASSWORD_HASH")
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("API_USERNAME and API_PASSWORD_HASH are required for serve mode")
	}

	return &AuthHandler{
		username:     username,
		passwordHash: passwordHash,
		userID:       uuid.New(),
		authConfig:   authConfig,
		jwtService:   jwtService,
		validator:    validator.New(),
	}, nil
}

// Login handles operator login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	if req.Username != h.username || !h.authConfig.VerifyPassword(req.Password, h.passwordHash) {
		err := &ErrInvalidCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken(h.userID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
