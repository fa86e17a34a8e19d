package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"healthcare/internal/db"
)

type HospitalRepository interface {
	List(ctx context.Context, specialty string) ([]db.Hospital, error)
	ListWithEmergency(ctx context.Context) ([]db.Hospital, error)
	GetByID(ctx context.Context, id int64) (*db.Hospital, error)
	First(ctx context.Context) (*db.Hospital, error)
}

type hospitalRepository struct {
	db *sql.DB
}

func NewHospitalRepository(db *sql.DB) HospitalRepository {
	return &hospitalRepository{db: db}
}

const hospitalColumns = `id, name, address, latitude, longitude, specialties, rating, phone_number, has_emergency, image_url`

func scanHospital(s scanner) (db.Hospital, error) {
	var h db.Hospital
	err := s.Scan(&h.ID, &h.Name, &h.Address, &h.Latitude, &h.Longitude,
		pq.Array(&h.Specialties), &h.Rating, &h.PhoneNumber, &h.HasEmergency, &h.ImageURL)
	return h, err
}

func (r *hospitalRepository) queryHospitals(ctx context.Context, query string, args ...any) ([]db.Hospital, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying hospitals: %w", err)
	}
	defer rows.Close()

	var hospitals []db.Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning hospital: %w", err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating hospital rows: %w", err)
	}
	return hospitals, nil
}

// List returns hospitals in id order, narrowed to those offering specialty when set.
func (r *hospitalRepository) List(ctx context.Context, specialty string) ([]db.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals`
	var args []any
	if specialty != "" {
		query += ` WHERE $1 = ANY(specialties)`
		args = append(args, specialty)
	}
	query += ` ORDER BY id`
	return r.queryHospitals(ctx, query, args...)
}

func (r *hospitalRepository) ListWithEmergency(ctx context.Context) ([]db.Hospital, error) {
	return r.queryHospitals(ctx, `SELECT `+hospitalColumns+` FROM hospitals WHERE has_emergency = TRUE ORDER BY id`)
}

// GetByID returns nil when no hospital has the id.
func (r *hospitalRepository) GetByID(ctx context.Context, id int64) (*db.Hospital, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+hospitalColumns+` FROM hospitals WHERE id = $1`, id)
	h, err := scanHospital(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying hospital %d: %w", id, err)
	}
	return &h, nil
}

func (r *hospitalRepository) First(ctx context.Context) (*db.Hospital, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+hospitalColumns+` FROM hospitals ORDER BY id LIMIT 1`)
	h, err := scanHospital(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying first hospital: %w", err)
	}
	return &h, nil
}
