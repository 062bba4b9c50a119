package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/infrastructure/observability"
)

// AuthService defines the auth operations used by the handler.
type AuthService interface {
	Register(ctx context.Context, input services.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, username, password string) (*entities.User, string, error)
}

// AuthHandler handles login and registration.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, token, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().
			Str("username", payload.Username).
			Err(err).
			Msg("login rejected")
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"university_id": user.UniversityID,
		"role":          user.Role,
		"token":         token,
	})
}

type registerRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	University string `json:"university"`
	State      string `json:"state"`
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.Register(r.Context(), services.RegisterInput{
		Username:   payload.Username,
		Password:   payload.Password,
		Role:       payload.Role,
		University: payload.University,
		State:      payload.State,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.LoggerFromContext(r.Context()).Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("account created")

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "account created",
	})
}
