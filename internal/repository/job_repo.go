package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// CompletePastAppointments marks confirmed appointments that started before
// the given time as completed.
func (r *JobRepository) CompletePastAppointments(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE appointments SET status = 'completed', updated_at = NOW() WHERE status = 'confirmed' AND appointment_date < $1`,
		before)
	if err != nil {
		return 0, fmt.Errorf("error completing past appointments: %w", err)
	}
	return result.RowsAffected()
}

// CancelStaleHomeVisitBookings cancels bookings still pending after their scheduled date.
func (r *JobRepository) CancelStaleHomeVisitBookings(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE home_visit_bookings SET status = 'cancelled', updated_at = NOW() WHERE status = 'pending' AND scheduled_date < $1`,
		before)
	if err != nil {
		return 0, fmt.Errorf("error cancelling stale home visit bookings: %w", err)
	}
	return result.RowsAffected()
}
