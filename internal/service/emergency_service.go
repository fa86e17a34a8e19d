package service

import (
	"context"
	"database/sql"
	"math"

	"healthcare/internal/config"
	"healthcare/internal/db"
	"healthcare/internal/entities"
	"healthcare/internal/geo"
	"healthcare/internal/logger"
	"healthcare/internal/repository"
)

type EmergencyService struct {
	requests  repository.EmergencyRepository
	hospitals repository.HospitalRepository
	notifier  Notifier
	geo       geo.Config
	cfg       config.EmergencyConfig
}

func NewEmergencyService(requests repository.EmergencyRepository, hospitals repository.HospitalRepository, notifier Notifier, geoCfg geo.Config, cfg config.EmergencyConfig) *EmergencyService {
	return &EmergencyService{requests: requests, hospitals: hospitals, notifier: notifier, geo: geoCfg, cfg: cfg}
}

// Request records an emergency and assigns it to the nearest hospital with an
// emergency department. userID is nil for anonymous callers.
func (s *EmergencyService) Request(ctx context.Context, userID *int64, req entities.EmergencyRequest) (*entities.EmergencyResponse, error) {
	fields, err := fieldErrors(req)
	if err != nil {
		return nil, err
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}
	patient := geo.Point{Lat: *req.PatientLatitude, Lon: *req.PatientLongitude}

	assigned, distance, err := s.assignHospital(ctx, patient)
	if err != nil {
		return nil, err
	}

	e := &db.EmergencyRequest{
		PatientName:           req.PatientName,
		PatientPhone:          req.PatientPhone,
		PatientAddress:        req.PatientAddress,
		PatientLatitude:       patient.Lat,
		PatientLongitude:      patient.Lon,
		EmergencyType:         req.EmergencyType,
		Description:           req.Description,
		Severity:              req.Severity,
		Status:                statusPending,
		EstimatedResponseTime: s.cfg.EstimatedResponseTime,
		AssignedHospital:      assigned,
	}
	if userID != nil {
		e.UserID = sql.NullInt64{Int64: *userID, Valid: true}
	}
	if err := s.requests.Create(ctx, e); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Warn().
		Int64("emergency_id", e.ID).
		Str("severity", e.Severity).
		Str("hospital", assigned).
		Msg("emergency request received")

	if s.notifier != nil {
		s.notifier.EmergencyRaised(entities.EmergencyNotification{
			PatientName:           e.PatientName,
			PatientPhone:          e.PatientPhone,
			EmergencyType:         e.EmergencyType,
			Severity:              e.Severity,
			AssignedHospital:      assigned,
			EstimatedResponseTime: e.EstimatedResponseTime,
		})
	}

	return &entities.EmergencyResponse{
		EmergencyID:           entities.FormatID(e.ID),
		Status:                e.Status,
		EstimatedResponseTime: e.EstimatedResponseTime,
		AssignedHospital:      assigned,
		Distance:              distance,
		CreatedAt:             e.CreatedAt,
	}, nil
}

// assignHospital picks the closest emergency-capable hospital, with no radius
// limit. Rows with invalid coordinates are skipped; without any located
// candidate the configured default is used.
func (s *EmergencyService) assignHospital(ctx context.Context, patient geo.Point) (string, *float64, error) {
	hospitals, err := s.hospitals.ListWithEmergency(ctx)
	if err != nil {
		return "", nil, err
	}
	nearest, ok, err := geo.Nearest(s.geo, patient, locatable(ctx, hospitals, "hospital"), math.MaxFloat64)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return s.cfg.DefaultHospital, nil, nil
	}
	return nearest.Item.Name, nearest.DistanceKm, nil
}
