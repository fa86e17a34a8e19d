package api

import (
	"net/http"

	"healthcare/internal/auth"
	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/utils"
)

type AppointmentHandler struct {
	service AppointmentBooker
}

func NewAppointmentHandler(svc AppointmentBooker) *AppointmentHandler {
	return &AppointmentHandler{service: svc}
}

// Create serves POST /api/appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req entities.AppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, err)
		return
	}
	appt, err := h.service.Book(r.Context(), userID, req)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Appointment booked successfully",
		Data:    appt,
	})
}

// List serves GET /api/appointments?status&limit&offset.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	values := r.URL.Query()
	fields := map[string]string{}
	limit, err := utils.IntOr(values, "limit", 0)
	if err != nil {
		fields["limit"] = err.Error()
	}
	offset, err := utils.IntOr(values, "offset", 0)
	if err != nil {
		fields["offset"] = err.Error()
	}
	if len(fields) > 0 {
		respondWithError(w, r, apperrors.Validation(fields))
		return
	}

	list, err := h.service.List(r.Context(), userID, values.Get("status"), limit, offset)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       list.Appointments,
		Pagination: list.Pagination,
	})
}

// currentUser reads the authenticated user set by auth.Middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := auth.UserIDFromContext(r.Context())
	if id == nil {
		respondWithError(w, r, apperrors.ErrUnauthorized("Unauthenticated."))
		return 0, false
	}
	return *id, true
}
