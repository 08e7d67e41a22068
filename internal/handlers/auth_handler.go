package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/casinoapp/casino-games/internal/config"
	"github.com/casinoapp/casino-games/internal/models"
	"github.com/casinoapp/casino-games/internal/services"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authService services.AuthService
	jwtConfig   config.JWTConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService, jwtConfig config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtConfig:   jwtConfig,
	}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
}

// Register creates a new user account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request"})
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "Error registering user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login verifies credentials and returns a signed token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request"})
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "Error logging in")
		return
	}

	tokenString, err := h.authService.GenerateToken(user, h.jwtConfig.SecretKey, h.jwtConfig.TokenTTL)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Could not generate token"})
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token: tokenString,
		User:  user,
	})
}
