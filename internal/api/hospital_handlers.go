package api

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/utils"
)

type HospitalHandler struct {
	hospitals HospitalFinder
	doctors   AvailabilityChecker
}

func NewHospitalHandler(hospitals HospitalFinder, doctors AvailabilityChecker) *HospitalHandler {
	return &HospitalHandler{hospitals: hospitals, doctors: doctors}
}

// ListHospitals serves GET /api/hospitals.
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	fields := map[string]string{}
	q := entities.HospitalQuery{Specialty: values.Get("specialty")}
	q.Latitude = floatParam(values, "latitude", fields)
	q.Longitude = floatParam(values, "longitude", fields)
	q.RadiusKm = floatParam(values, "radius", fields)
	if len(fields) > 0 {
		respondWithError(w, r, apperrors.Validation(fields))
		return
	}

	hospitals, err := h.hospitals.ListHospitals(r.Context(), q)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondOK(w, "", hospitals)
}

// HospitalDoctors serves GET /api/hospitals/{hospitalId}/doctors.
func (h *HospitalHandler) HospitalDoctors(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(mux.Vars(r)["hospitalId"])
	if !ok {
		respondWithError(w, r, apperrors.NotFound("Hospital not found"))
		return
	}
	doctors, err := h.hospitals.DoctorsForHospital(r.Context(), id)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondOK(w, "", doctors)
}

// DoctorAvailability serves GET /api/doctors/{doctorId}/availability?date=YYYY-MM-DD.
func (h *HospitalHandler) DoctorAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(mux.Vars(r)["doctorId"])
	if !ok {
		respondWithError(w, r, apperrors.NotFound("Doctor not found"))
		return
	}
	result, err := h.doctors.Availability(r.Context(), id, r.URL.Query().Get("date"))
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	respondOK(w, "", result)
}

// floatParam records a field error instead of returning it so all bad
// parameters are reported together.
func floatParam(values url.Values, key string, fields map[string]string) *float64 {
	f, err := utils.OptionalFloat(values, key)
	if err != nil {
		fields[key] = err.Error()
	}
	return f
}
