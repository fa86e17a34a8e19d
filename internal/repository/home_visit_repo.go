package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"healthcare/internal/db"
)

// HomeVisitFilter narrows the provider listing; zero values mean no filter.
type HomeVisitFilter struct {
	ProviderType string
	Specialty    string
	MaxPrice     *float64
}

type HomeVisitRepository interface {
	List(ctx context.Context, f HomeVisitFilter) ([]db.HomeVisit, error)
	GetByID(ctx context.Context, id int64) (*db.HomeVisit, error)
	CreateBooking(ctx context.Context, b *db.HomeVisitBooking) error
	ListBookingsByUser(ctx context.Context, userID int64) ([]db.HomeVisitBooking, error)
}

type homeVisitRepository struct {
	db *sql.DB
}

func NewHomeVisitRepository(db *sql.DB) HomeVisitRepository {
	return &homeVisitRepository{db: db}
}

const homeVisitColumns = `id, provider_id, provider_name, provider_type, specialty, provider_image_url, rating, review_count,
	price, currency, location, latitude, longitude, estimated_travel_time, available_days, available_time_slots,
	is_available, description, services, accepts_insurance`

func scanHomeVisit(s scanner) (db.HomeVisit, error) {
	var h db.HomeVisit
	err := s.Scan(&h.ID, &h.ProviderID, &h.ProviderName, &h.ProviderType, &h.Specialty, &h.ProviderImageURL,
		&h.Rating, &h.ReviewCount, &h.Price, &h.Currency, &h.Location, &h.Latitude, &h.Longitude,
		&h.EstimatedTravelTime, pq.Array(&h.AvailableDays), pq.Array(&h.AvailableTimeSlots),
		&h.IsAvailable, &h.Description, pq.Array(&h.Services), &h.AcceptsInsurance)
	return h, err
}

func (r *homeVisitRepository) List(ctx context.Context, f HomeVisitFilter) ([]db.HomeVisit, error) {
	query := `SELECT ` + homeVisitColumns + ` FROM home_visits WHERE 1=1`
	var args []any
	idx := 1

	if f.ProviderType != "" {
		query += " AND provider_type = $" + strconv.Itoa(idx)
		args = append(args, f.ProviderType)
		idx++
	}
	if f.Specialty != "" {
		query += " AND specialty ILIKE $" + strconv.Itoa(idx)
		args = append(args, "%"+f.Specialty+"%")
		idx++
	}
	if f.MaxPrice != nil {
		query += " AND price <= $" + strconv.Itoa(idx)
		args = append(args, *f.MaxPrice)
		idx++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying home visits: %w", err)
	}
	defer rows.Close()

	var visits []db.HomeVisit
	for rows.Next() {
		h, err := scanHomeVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning home visit: %w", err)
		}
		visits = append(visits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating home visit rows: %w", err)
	}
	return visits, nil
}

// GetByID returns nil when no provider listing has the id.
func (r *homeVisitRepository) GetByID(ctx context.Context, id int64) (*db.HomeVisit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+homeVisitColumns+` FROM home_visits WHERE id = $1`, id)
	h, err := scanHomeVisit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying home visit %d: %w", id, err)
	}
	return &h, nil
}

func (r *homeVisitRepository) CreateBooking(ctx context.Context, b *db.HomeVisitBooking) error {
	query := `
		INSERT INTO home_visit_bookings
		(home_visit_id, provider_id, provider_name, provider_type, user_id, patient_name, patient_phone, patient_address,
		 patient_latitude, patient_longitude, scheduled_date, time_slot, visit_reason, symptoms, amount, currency,
		 status, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		b.HomeVisitID,
		b.ProviderID,
		b.ProviderName,
		b.ProviderType,
		b.UserID,
		b.PatientName,
		b.PatientPhone,
		b.PatientAddress,
		b.PatientLatitude,
		b.PatientLongitude,
		b.ScheduledDate,
		b.TimeSlot,
		b.VisitReason,
		b.Symptoms,
		b.Amount,
		b.Currency,
		b.Status,
		b.PaymentStatus,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating home visit booking: %w", err)
	}
	return nil
}

func (r *homeVisitRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]db.HomeVisitBooking, error) {
	query := `
	SELECT id, home_visit_id, provider_id, provider_name, provider_type, user_id, patient_name, patient_phone,
		patient_address, patient_latitude, patient_longitude, scheduled_date, time_slot, visit_reason, symptoms,
		amount, currency, status, payment_status, notes, actual_visit_time, completed_time, created_at
	FROM home_visit_bookings
	WHERE user_id = $1
	ORDER BY scheduled_date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying home visit bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.HomeVisitBooking
	for rows.Next() {
		var b db.HomeVisitBooking
		err := rows.Scan(&b.ID, &b.HomeVisitID, &b.ProviderID, &b.ProviderName, &b.ProviderType, &b.UserID,
			&b.PatientName, &b.PatientPhone, &b.PatientAddress, &b.PatientLatitude, &b.PatientLongitude,
			&b.ScheduledDate, &b.TimeSlot, &b.VisitReason, &b.Symptoms, &b.Amount, &b.Currency, &b.Status,
			&b.PaymentStatus, &b.Notes, &b.ActualVisitTime, &b.CompletedTime, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning home visit booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating home visit booking rows: %w", err)
	}
	return bookings, nil
}
