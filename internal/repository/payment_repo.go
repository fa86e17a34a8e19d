package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type PaymentRepository interface {
	SetStripeSession(ctx context.Context, appointmentID int64, sessionID string) error
	UpdatePaymentStatusBySession(ctx context.Context, sessionID, paymentStatus string) (int64, error)
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) SetStripeSession(ctx context.Context, appointmentID int64, sessionID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET stripe_session_id = $2, updated_at = NOW() WHERE id = $1`,
		appointmentID, sessionID)
	if err != nil {
		return fmt.Errorf("error storing stripe session for appointment %d: %w", appointmentID, err)
	}
	return nil
}

// UpdatePaymentStatusBySession returns the number of appointments updated.
func (r *paymentRepository) UpdatePaymentStatusBySession(ctx context.Context, sessionID, paymentStatus string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET payment_status = $2, updated_at = NOW() WHERE stripe_session_id = $1`,
		sessionID, paymentStatus)
	if err != nil {
		return 0, fmt.Errorf("error updating payment status for session %s: %w", sessionID, err)
	}
	return result.RowsAffected()
}
