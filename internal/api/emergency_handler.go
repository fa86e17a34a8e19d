package api

import (
	"net/http"

	"healthcare/internal/auth"
	"healthcare/internal/entities"
)

type EmergencyHandler struct {
	service EmergencyDispatcher
}

func NewEmergencyHandler(svc EmergencyDispatcher) *EmergencyHandler {
	return &EmergencyHandler{service: svc}
}

// Request serves POST /api/emergency/request. Anonymous callers are allowed.
func (h *EmergencyHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req entities.EmergencyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, err)
		return
	}
	resp, err := h.service.Request(r.Context(), auth.UserIDFromContext(r.Context()), req)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Emergency request submitted",
		Data:    resp,
	})
}
