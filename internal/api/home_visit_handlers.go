package api

import (
	"net/http"

	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
)

type HomeVisitHandler struct {
	service HomeVisitBooker
}

func NewHomeVisitHandler(svc HomeVisitBooker) *HomeVisitHandler {
	return &HomeVisitHandler{service: svc}
}

// List serves GET /api/home-visits.
func (h *HomeVisitHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	fields := map[string]string{}
	q := entities.HomeVisitQuery{
		ProviderType:  values.Get("providerType"),
		Specialty:     values.Get("specialty"),
		MaxPrice:      floatParam(values, "maxPrice", fields),
		Latitude:      floatParam(values, "latitude", fields),
		Longitude:     floatParam(values, "longitude", fields),
		MaxDistanceKm: floatParam(values, "maxDistance", fields),
	}
	if len(fields) > 0 {
		respondWithError(w, r, apperrors.Validation(fields))
		return
	}

	visits, err := h.service.List(r.Context(), q)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondOK(w, "", visits)
}

// Book serves POST /api/home-visits/book.
func (h *HomeVisitHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req entities.HomeVisitBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, err)
		return
	}
	booking, err := h.service.Book(r.Context(), userID, req)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Home visit booked successfully",
		Data:    booking,
	})
}

// MyBookings serves GET /api/home-visits/bookings.
func (h *HomeVisitHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	bookings, err := h.service.MyBookings(r.Context(), userID)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondOK(w, "", bookings)
}
