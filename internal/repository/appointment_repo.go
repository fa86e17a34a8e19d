package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"healthcare/internal/db"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *db.Appointment) error
	ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]db.Appointment, int64, error)
}

type appointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, a *db.Appointment) error {
	query := `
		INSERT INTO appointments
		(hospital_id, doctor_id, user_id, appointment_date, time_slot, patient_name, patient_phone, problem, status, amount, payment_method, payment_status, stripe_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		a.HospitalID,
		a.DoctorID,
		a.UserID,
		a.AppointmentDate,
		a.TimeSlot,
		a.PatientName,
		a.PatientPhone,
		a.Problem,
		a.Status,
		a.Amount,
		a.PaymentMethod,
		a.PaymentStatus,
		a.StripeSessionID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// ListByUser pages through a user's appointments, newest appointment date first,
// and reports the unpaged total.
func (r *appointmentRepository) ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]db.Appointment, int64, error) {
	where := ` WHERE a.user_id = $1`
	args := []any{userID}
	idx := 2
	if status != "" {
		where += " AND a.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments a`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting appointments: %w", err)
	}

	query := `
	SELECT
		a.id, a.hospital_id, h.name, a.doctor_id, d.name, d.specialty, a.user_id,
		a.appointment_date, a.time_slot, a.patient_name, a.patient_phone, a.problem,
		a.status, a.amount, a.payment_method, a.payment_status, a.stripe_session_id, a.created_at, a.updated_at
	FROM appointments a
	JOIN hospitals h ON h.id = a.hospital_id
	JOIN doctors d ON d.id = a.doctor_id` + where +
		" ORDER BY a.appointment_date DESC LIMIT $" + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	var appointments []db.Appointment
	for rows.Next() {
		var a db.Appointment
		err := rows.Scan(
			&a.ID, &a.HospitalID, &a.HospitalName, &a.DoctorID, &a.DoctorName, &a.DoctorSpecialty, &a.UserID,
			&a.AppointmentDate, &a.TimeSlot, &a.PatientName, &a.PatientPhone, &a.Problem,
			&a.Status, &a.Amount, &a.PaymentMethod, &a.PaymentStatus, &a.StripeSessionID, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error after iterating appointment rows: %w", err)
	}
	return appointments, total, nil
}
