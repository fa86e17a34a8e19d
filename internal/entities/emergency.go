package entities

import "time"

type EmergencyRequest struct {
	PatientName      string   `json:"patientName" validate:"required,max=255"`
	PatientPhone     string   `json:"patientPhone" validate:"required,max=20"`
	PatientAddress   string   `json:"patientAddress" validate:"required"`
	PatientLatitude  *float64 `json:"patientLatitude" validate:"required,latitude"`
	PatientLongitude *float64 `json:"patientLongitude" validate:"required,longitude"`
	EmergencyType    string   `json:"emergencyType" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Severity         string   `json:"severity" validate:"required,oneof=low medium high critical"`
}

type EmergencyResponse struct {
	EmergencyID           string    `json:"emergencyId"`
	Status                string    `json:"status"`
	EstimatedResponseTime string    `json:"estimatedResponseTime"`
	AssignedHospital      string    `json:"assignedHospital"`
	Distance              *float64  `json:"distance,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}
