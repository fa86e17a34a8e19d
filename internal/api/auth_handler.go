package api

import (
	"net/http"

	"healthcare/internal/entities"
)

type AuthHandler struct {
	service Authenticator
}

func NewAuthHandler(svc Authenticator) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register serves POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, err)
		return
	}
	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "User registered successfully",
		Data:    res.User,
		Token:   res.Token,
	})
}

// Login serves POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, err)
		return
	}
	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Login successful",
		Data:    res.User,
		Token:   res.Token,
	})
}

// Logout serves POST /api/auth/logout. Tokens are stateless, so the client
// just drops its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	respondOK(w, "Logout successful", nil)
}

// Profile serves GET /api/user/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	profile, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondOK(w, "", profile)
}
