package repository

import (
	"context"
	"database/sql"
	"fmt"

	"healthcare/internal/db"
)

type EmergencyRepository interface {
	Create(ctx context.Context, e *db.EmergencyRequest) error
}

type emergencyRepository struct {
	db *sql.DB
}

func NewEmergencyRepository(db *sql.DB) EmergencyRepository {
	return &emergencyRepository{db: db}
}

func (r *emergencyRepository) Create(ctx context.Context, e *db.EmergencyRequest) error {
	query := `
		INSERT INTO emergency_requests
		(user_id, patient_name, patient_phone, patient_address, patient_latitude, patient_longitude, emergency_type,
		 description, severity, status, estimated_response_time, assigned_hospital, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		e.UserID,
		e.PatientName,
		e.PatientPhone,
		e.PatientAddress,
		e.PatientLatitude,
		e.PatientLongitude,
		e.EmergencyType,
		e.Description,
		e.Severity,
		e.Status,
		e.EstimatedResponseTime,
		e.AssignedHospital,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating emergency request: %w", err)
	}
	return nil
}
