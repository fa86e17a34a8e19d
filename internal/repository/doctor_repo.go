package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"healthcare/internal/db"
)

type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*db.Doctor, error)
	ListByHospitalIDs(ctx context.Context, hospitalIDs []int64) (map[int64][]db.Doctor, error)
}

type doctorRepository struct {
	db *sql.DB
}

func NewDoctorRepository(db *sql.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

const doctorColumns = `id, hospital_id, name, specialty, qualification, license_number, experience, rating,
	image_url, available_days, available_time, consultation_fee, bio, languages, clinic_name, clinic_address`

func scanDoctor(s scanner) (db.Doctor, error) {
	var d db.Doctor
	err := s.Scan(&d.ID, &d.HospitalID, &d.Name, &d.Specialty, &d.Qualification, &d.LicenseNumber,
		&d.Experience, &d.Rating, &d.ImageURL, pq.Array(&d.AvailableDays), &d.AvailableTime,
		&d.ConsultationFee, &d.Bio, pq.Array(&d.Languages), &d.ClinicName, &d.ClinicAddress)
	return d, err
}

// GetByID returns nil when no doctor has the id.
func (r *doctorRepository) GetByID(ctx context.Context, id int64) (*db.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
	d, err := scanDoctor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying doctor %d: %w", id, err)
	}
	return &d, nil
}

// ListByHospitalIDs loads the doctors of several hospitals in one query.
func (r *doctorRepository) ListByHospitalIDs(ctx context.Context, hospitalIDs []int64) (map[int64][]db.Doctor, error) {
	byHospital := make(map[int64][]db.Doctor, len(hospitalIDs))
	if len(hospitalIDs) == 0 {
		return byHospital, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE hospital_id = ANY($1) ORDER BY hospital_id, id`,
		pq.Array(hospitalIDs))
	if err != nil {
		return nil, fmt.Errorf("error querying doctors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning doctor: %w", err)
		}
		byHospital[d.HospitalID] = append(byHospital[d.HospitalID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating doctor rows: %w", err)
	}
	return byHospital, nil
}

func insertDoctor(ctx context.Context, q querier, d *db.Doctor) error {
	query := `
		INSERT INTO doctors
		(hospital_id, name, specialty, qualification, license_number, experience, rating, image_url,
		 available_days, available_time, consultation_fee, bio, languages, clinic_name, clinic_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id`
	err := q.QueryRowContext(ctx, query,
		d.HospitalID,
		d.Name,
		d.Specialty,
		d.Qualification,
		d.LicenseNumber,
		d.Experience,
		d.Rating,
		d.ImageURL,
		pq.Array(d.AvailableDays),
		d.AvailableTime,
		d.ConsultationFee,
		d.Bio,
		pq.Array(d.Languages),
		d.ClinicName,
		d.ClinicAddress,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("error creating doctor: %w", err)
	}
	return nil
}
